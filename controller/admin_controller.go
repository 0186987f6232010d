package controller

import (
	"context"
	"net/http"

	"dalshop-gateway/clients"
	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"

	"github.com/gin-gonic/gin"
)

// AdminController handles catalog management. All three operations are plain
// forwards; validation happens here, conflict resolution is last writer wins
// on the backend.
type AdminController struct {
	ctx    context.Context
	admin  *clients.AdminClient
	logger logger.Logger
}

func NewAdminController(ctx context.Context, admin *clients.AdminClient, log logger.Logger) *AdminController {
	return &AdminController{
		ctx:    ctx,
		admin:  admin,
		logger: log,
	}
}

type updateProductRequest struct {
	ProductID string `json:"productId" binding:"required"`
	models.ProductForm
}

type deleteProductRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// Add handles POST /admin/add
func (h *AdminController) Add(c *gin.Context) {
	var form models.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.admin.Add(c.Request.Context(), form); err != nil {
		respondServiceError(c, err)
		return
	}

	h.logger.Infof("Product added: %s", form.Name)
	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Product added successfully",
	})
}

// Update handles POST /admin/update
func (h *AdminController) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.admin.Update(c.Request.Context(), req.ProductID, req.ProductForm); err != nil {
		respondServiceError(c, err)
		return
	}

	h.logger.Infof("Product updated: %s", req.ProductID)
	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Product updated successfully",
	})
}

// Delete handles POST /admin/delete
func (h *AdminController) Delete(c *gin.Context) {
	var req deleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.admin.Delete(c.Request.Context(), req.ProductID); err != nil {
		respondServiceError(c, err)
		return
	}

	h.logger.Infof("Product deleted: %s", req.ProductID)
	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Product deleted successfully",
	})
}
