package clients

import (
	"context"
	"net/http"

	"dalshop-gateway/models"
)

// AdminClient manages the catalog. Updates are whole-record replaces with no
// concurrency token; the last writer wins.
type AdminClient struct {
	backend *Backend
}

// NewAdminClient creates a new admin client
func NewAdminClient(backend *Backend) *AdminClient {
	return &AdminClient{backend: backend}
}

type adminProductBody struct {
	ProductID string `json:"productId,omitempty"`
	models.ProductForm
}

// Add creates a product.
func (c *AdminClient) Add(ctx context.Context, form models.ProductForm) error {
	body := adminProductBody{ProductForm: form}
	return c.backend.do(ctx, "admin.add", http.MethodPost, "/admin/add", nil, body, nil)
}

// Update replaces a product record wholesale.
func (c *AdminClient) Update(ctx context.Context, productID string, form models.ProductForm) error {
	body := adminProductBody{ProductID: productID, ProductForm: form}
	return c.backend.do(ctx, "admin.update", http.MethodPost, "/admin/update", nil, body, nil)
}

// Delete removes a product.
func (c *AdminClient) Delete(ctx context.Context, productID string) error {
	body := adminProductBody{ProductID: productID}
	return c.backend.do(ctx, "admin.delete", http.MethodPost, "/admin/delete", nil, body, nil)
}
