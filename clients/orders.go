package clients

import (
	"context"
	"net/http"
	"net/url"

	"dalshop-gateway/models"
)

// OrderClient creates and lists orders.
type OrderClient struct {
	backend *Backend
}

// NewOrderClient creates a new order client
func NewOrderClient(backend *Backend) *OrderClient {
	return &OrderClient{backend: backend}
}

// CreateOrderResult is the backend's answer to order creation.
type CreateOrderResult struct {
	OrderID string `json:"orderId"`
}

// Create places an order from the user's current cart.
func (c *OrderClient) Create(ctx context.Context, userID string) (*CreateOrderResult, error) {
	body := map[string]string{"userId": userID}
	result := &CreateOrderResult{}
	if err := c.backend.do(ctx, "orders.create", http.MethodPost, "/orders/create", nil, body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// List returns every order. Admin-scoped on the backend side.
func (c *OrderClient) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.backend.do(ctx, "orders.list", http.MethodGet, "/orders/list", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByUser returns one user's order history.
func (c *OrderClient) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	query := url.Values{"userId": {userID}}
	var orders []models.Order
	if err := c.backend.do(ctx, "orders.user", http.MethodGet, "/orders/user", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
