package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joao-fontenele/shopflow/internal/domain"
)

type UserClient struct {
	client
}

func NewUserClient(baseURL string, httpClient *http.Client) *UserClient {
	return &UserClient{client{baseURL: baseURL, httpClient: httpClient}}
}

func (c *UserClient) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
