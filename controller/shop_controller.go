package controller

import (
	"context"
	"net/http"

	"dalshop-gateway/clients"
	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"

	"github.com/gin-gonic/gin"
)

// ShopController serves the catalog pages. Read-only; responses mirror the
// backend without transformation.
type ShopController struct {
	ctx      context.Context
	products *clients.ProductClient
	logger   logger.Logger
}

func NewShopController(ctx context.Context, products *clients.ProductClient, log logger.Logger) *ShopController {
	return &ShopController{
		ctx:      ctx,
		products: products,
		logger:   log,
	}
}

// List handles GET /user/shop and GET /admin/shop
func (h *ShopController) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// Details handles GET /product/:id
func (h *ShopController) Details(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.products.Details(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Product details retrieved successfully",
		Data:    product,
	})
}

// Search handles GET /products/search?query=
func (h *ShopController) Search(c *gin.Context) {
	query := c.Query("query")

	products, err := h.products.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Search results retrieved successfully",
		Data:    products,
	})
}
