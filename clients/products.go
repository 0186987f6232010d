package clients

import (
	"context"
	"net/http"
	"net/url"

	"dalshop-gateway/models"
)

// ProductClient reads the product catalog. All operations are read-only.
type ProductClient struct {
	backend *Backend
}

// NewProductClient creates a new product client
func NewProductClient(backend *Backend) *ProductClient {
	return &ProductClient{backend: backend}
}

// List returns the full catalog.
func (c *ProductClient) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.backend.do(ctx, "products.list", http.MethodGet, "/products/list", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Details returns one product by ID.
func (c *ProductClient) Details(ctx context.Context, productID string) (*models.Product, error) {
	query := url.Values{"productId": {productID}}
	product := &models.Product{}
	if err := c.backend.do(ctx, "products.details", http.MethodGet, "/products/details", query, nil, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Search returns products matching the query string.
func (c *ProductClient) Search(ctx context.Context, q string) ([]models.Product, error) {
	query := url.Values{"query": {q}}
	var products []models.Product
	if err := c.backend.do(ctx, "products.search", http.MethodGet, "/products/search", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
