package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/joao-fontenele/shopflow/internal/config"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrNoRoute           = errors.New("no route")
)

// DownstreamError reports a non-2xx answer from a forwarded call.
type DownstreamError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *DownstreamError) Error() string {
	msg := fmt.Sprintf("%d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Route sends every path equal to Prefix or below it to one service.
type Route struct {
	Service string
	Prefix  string
	Proxy   *ServiceProxy
}

func (r Route) matches(path string) bool {
	return path == r.Prefix || strings.HasPrefix(path, r.Prefix+"/")
}

// Response is what the gateway writes back to the client.
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

type Router struct {
	routes []Route
}

func NewRouter(routes ...Route) *Router {
	return &Router{routes: routes}
}

// NewServiceRouter builds the fixed rule set: users, products, orders and
// notifications, checked in that order.
func NewServiceRouter(urls config.ServiceURLs, client *http.Client) *Router {
	return NewRouter(
		Route{Service: "users", Prefix: "/api/users", Proxy: NewServiceProxy(urls.UserServiceURL, client)},
		Route{Service: "products", Prefix: "/api/products", Proxy: NewServiceProxy(urls.ProductServiceURL, client)},
		Route{Service: "orders", Prefix: "/api/orders", Proxy: NewServiceProxy(urls.OrderServiceURL, client)},
		Route{Service: "notifications", Prefix: "/api/notifications", Proxy: NewServiceProxy(urls.NotificationServiceURL, client)},
	)
}

func (rt *Router) Match(path string) (Route, bool) {
	for _, r := range rt.routes {
		if r.matches(path) {
			return r, true
		}
	}
	return Route{}, false
}

// Route forwards one request and converts the outcome into the response the
// client sees. GET and POST relay the downstream payload, PUT and DELETE
// answer with an empty 200. Other methods get a 400 and no downstream call.
// Any failure while forwarding becomes a 500 carrying the error text.
func (rt *Router) Route(ctx context.Context, method, path, rawQuery string, body []byte, contentType string) (Response, error) {
	route, ok := rt.Match(path)
	if !ok {
		return Response{StatusCode: http.StatusNotFound}, ErrNoRoute
	}

	var forwardBody []byte
	switch method {
	case http.MethodGet, http.MethodDelete:
	case http.MethodPost, http.MethodPut:
		forwardBody = body
		if forwardBody == nil {
			forwardBody = []byte{}
		}
	default:
		return Response{StatusCode: http.StatusBadRequest}, ErrUnsupportedMethod
	}

	payload, payloadType, err := rt.forward(ctx, route, method, path, rawQuery, forwardBody, contentType)
	if err != nil {
		return Response{
			StatusCode:  http.StatusInternalServerError,
			Body:        []byte("Service unavailable: " + err.Error()),
			ContentType: "text/plain; charset=utf-8",
		}, err
	}

	if method == http.MethodPut || method == http.MethodDelete {
		return Response{StatusCode: http.StatusOK}, nil
	}
	return Response{StatusCode: http.StatusOK, Body: payload, ContentType: payloadType}, nil
}

func (rt *Router) forward(ctx context.Context, route Route, method, path, rawQuery string, body []byte, contentType string) ([]byte, string, error) {
	resp, err := route.Proxy.ForwardRequest(ctx, method, path, rawQuery, body, contentType)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response from %s: %w", route.Service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &DownstreamError{
			StatusCode: resp.StatusCode,
			URL:        route.Proxy.URL(path, rawQuery),
			Body:       strings.TrimSpace(string(payload)),
		}
	}

	return payload, resp.Header.Get("Content-Type"), nil
}
