package controller

import (
	"context"
	"net/http"

	"dalshop-gateway/clients"
	"dalshop-gateway/models"
	"dalshop-gateway/services"
	"dalshop-gateway/utils/logger"

	"github.com/gin-gonic/gin"
)

// OrderController drives the checkout flow and the order history pages.
type OrderController struct {
	ctx      context.Context
	checkout services.CheckoutServiceInterface
	orders   *clients.OrderClient
	logger   logger.Logger
}

func NewOrderController(ctx context.Context, checkout services.CheckoutServiceInterface, orders *clients.OrderClient, log logger.Logger) *OrderController {
	return &OrderController{
		ctx:      ctx,
		checkout: checkout,
		orders:   orders,
		logger:   log,
	}
}

// Checkout handles POST /checkout. A partial failure, order placed but cart
// not cleared, is reported as a failure that still names the order ID.
func (h *OrderController) Checkout(c *gin.Context) {
	userID, ok := requireSubject(c)
	if !ok {
		return
	}

	result, err := h.checkout.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		if result != nil && result.State == models.CheckoutOrderPlacedCartNotCleared {
			c.JSON(http.StatusInternalServerError, models.APIResponse{
				Status:  "error",
				Code:    http.StatusInternalServerError,
				Message: "Order placed but the cart could not be cleared",
				Data:    result,
				Error: &models.APIError{
					Type:    "CheckoutError",
					Details: err.Error(),
				},
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Order placed successfully",
		Data:    result,
	})
}

// Success handles GET /order-success/:id, the confirmation page fetch.
func (h *OrderController) Success(c *gin.Context) {
	orderID := c.Param("id")

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Order confirmed",
		Data: gin.H{
			"orderId": orderID,
			"state":   models.CheckoutOrderPlaced,
		},
	})
}

// ListMine handles GET /orders, the signed-in user's order history.
func (h *OrderController) ListMine(c *gin.Context) {
	userID, ok := requireSubject(c)
	if !ok {
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// ListAll handles GET /admin/orders, every order across users.
func (h *OrderController) ListAll(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}
