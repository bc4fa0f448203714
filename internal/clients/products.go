package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joao-fontenele/shopflow/internal/domain"
)

type ProductClient struct {
	client
}

func NewProductClient(baseURL string, httpClient *http.Client) *ProductClient {
	return &ProductClient{client{baseURL: baseURL, httpClient: httpClient}}
}

func (c *ProductClient) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DecrementStock asks the catalog to subtract quantity from the product's
// stock. The response body is ignored.
func (c *ProductClient) DecrementStock(ctx context.Context, id int64, quantity int) error {
	path := fmt.Sprintf("/api/products/%d/stock?quantity=%d", id, quantity)
	return c.do(ctx, http.MethodPut, path, nil, nil)
}
