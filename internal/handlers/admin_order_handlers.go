package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

//
// --- Admin Order Management ---
//

// GetAdminOrders is the handler for GET /admin/orders: all orders, newest
// first, optionally filtered by status, paginated.
func (h *Handlers) GetAdminOrders(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultPageSize)))

	orders, total, err := h.Store.Orders.List(c.Request.Context(), store.OrderFilter{
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.Log.Error("admin orders: list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	_, limit = store.NormalizePage(page, limit)
	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"total":      total,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PUT /admin/orders/:id/status. The
// status may be set to any of the six enum values; only membership is
// validated, with no transition table. The write goes through
// OrderStore.SetStatus.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	orderNumber := c.Param("id")

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	if err := h.Store.Orders.SetStatus(c.Request.Context(), orderNumber, input.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.Log.Error("admin orders: status update failed", zap.Error(err),
			zap.String("orderNumber", orderNumber))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	h.Log.Info("order status updated",
		zap.String("orderNumber", orderNumber),
		zap.String("status", input.Status),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
