package clients

import (
	"context"
	"net/http"
	"net/url"

	"dalshop-gateway/models"
)

// CartClient mutates and reads the server-held cart. Each call is one request;
// the returned cart always replaces local state wholesale.
type CartClient struct {
	backend *Backend
}

// NewCartClient creates a new cart client
func NewCartClient(backend *Backend) *CartClient {
	return &CartClient{backend: backend}
}

type cartMutationBody struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId,omitempty"`
	Qty       int    `json:"qty,omitempty"`
}

// Add puts qty units of a product into the user's cart.
func (c *CartClient) Add(ctx context.Context, userID, productID string, qty int) error {
	body := cartMutationBody{UserID: userID, ProductID: productID, Qty: qty}
	return c.backend.do(ctx, "cart.add", http.MethodPost, "/cart/add", nil, body, nil)
}

// Update sets the quantity of a product already in the cart. Callers must
// route qty <= 0 through Remove instead; the backend treats such an update as
// undefined.
func (c *CartClient) Update(ctx context.Context, userID, productID string, qty int) error {
	body := cartMutationBody{UserID: userID, ProductID: productID, Qty: qty}
	return c.backend.do(ctx, "cart.update", http.MethodPost, "/cart/update", nil, body, nil)
}

// Remove deletes a product from the cart.
func (c *CartClient) Remove(ctx context.Context, userID, productID string) error {
	body := cartMutationBody{UserID: userID, ProductID: productID}
	return c.backend.do(ctx, "cart.remove", http.MethodPost, "/cart/remove", nil, body, nil)
}

// Clear empties the cart.
func (c *CartClient) Clear(ctx context.Context, userID string) error {
	body := cartMutationBody{UserID: userID}
	return c.backend.do(ctx, "cart.clear", http.MethodPost, "/cart/clear", nil, body, nil)
}

// Get returns the cart exactly as the backend derived it, totals included.
func (c *CartClient) Get(ctx context.Context, userID string) (*models.Cart, error) {
	query := url.Values{"userId": {userID}}
	cart := &models.Cart{}
	if err := c.backend.do(ctx, "cart.get", http.MethodGet, "/cart/get", query, nil, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
