package controller

import (
	"context"
	"net/http"

	"dalshop-gateway/models"
	"dalshop-gateway/services"
	"dalshop-gateway/utils/logger"

	"github.com/gin-gonic/gin"
)

// CartController exposes the cart view and its mutations. Every mutation
// responds with the reloaded cart so the caller never has to compute totals.
type CartController struct {
	ctx    context.Context
	carts  services.CartServiceInterface
	logger logger.Logger
}

func NewCartController(ctx context.Context, carts services.CartServiceInterface, log logger.Logger) *CartController {
	return &CartController{
		ctx:    ctx,
		carts:  carts,
		logger: log,
	}
}

// Get handles GET /cart
func (h *CartController) Get(c *gin.Context) {
	userID, ok := requireSubject(c)
	if !ok {
		return
	}

	cart, err := h.carts.View(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Cart retrieved successfully",
		Data:    cart,
	})
}

// Add handles POST /cart/add
func (h *CartController) Add(c *gin.Context) {
	userID, ok := requireSubject(c)
	if !ok {
		return
	}

	var req models.CartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := h.carts.Add(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.logger.Infof("Cart add: user=%s product=%s qty=%d", userID, req.ProductID, req.Qty)
	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Item added to cart",
		Data:    cart,
	})
}

// Update handles POST /cart/update. A quantity of zero or below removes the
// line entirely.
func (h *CartController) Update(c *gin.Context) {
	userID, ok := requireSubject(c)
	if !ok {
		return
	}

	var req models.CartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := h.carts.Update(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Cart updated",
		Data:    cart,
	})
}

// Remove handles POST /cart/remove
func (h *CartController) Remove(c *gin.Context) {
	userID, ok := requireSubject(c)
	if !ok {
		return
	}

	var req models.CartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := h.carts.Remove(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Item removed from cart",
		Data:    cart,
	})
}
