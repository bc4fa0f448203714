package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// ServiceProxy sends requests to one downstream service. The target URL is
// the base URL followed by the original path and query, unmodified.
type ServiceProxy struct {
	baseURL string
	client  *http.Client
}

func NewServiceProxy(baseURL string, client *http.Client) *ServiceProxy {
	return &ServiceProxy{
		baseURL: baseURL,
		client:  client,
	}
}

func (p *ServiceProxy) URL(path, rawQuery string) string {
	url := p.baseURL + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}
	return url
}

// ForwardRequest sends method to the target. A nil body sends no body.
func (p *ServiceProxy) ForwardRequest(ctx context.Context, method, path, rawQuery string, body []byte, contentType string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.URL(path, rawQuery), reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	return p.client.Do(req)
}
