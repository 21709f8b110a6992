package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDashboardStats is the handler for GET /admin/dashboard: the headline
// numbers for the back-office landing page.
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	userCount, err := h.Store.Users.Count(ctx)
	if err != nil {
		h.Log.Error("dashboard: user count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	productCount, err := h.Store.Products.Count(ctx)
	if err != nil {
		h.Log.Error("dashboard: product count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	orderCount, pendingCount, err := h.Store.Orders.Count(ctx)
	if err != nil {
		h.Log.Error("dashboard: order count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	revenue, err := h.Store.Orders.Revenue(ctx)
	if err != nil {
		h.Log.Error("dashboard: revenue aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	unreadMessages, err := h.Store.Messages.CountUnread(ctx)
	if err != nil {
		h.Log.Error("dashboard: unread count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":          userCount,
		"products":       productCount,
		"orders":         orderCount,
		"pendingOrders":  pendingCount,
		"revenue":        revenue,
		"unreadMessages": unreadMessages,
	})
}
