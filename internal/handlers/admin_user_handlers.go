package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

//
// --- Admin User Management ---
//

// GetAdminUsers is the handler for GET /admin/users. Password hashes never
// leave the model thanks to the json:"-" tag.
func (h *Handlers) GetAdminUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultPageSize)))

	users, total, err := h.Store.Users.List(c.Request.Context(), page, limit)
	if err != nil {
		h.Log.Error("admin users: list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	_, limit = store.NormalizePage(page, limit)
	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"total":      total,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

type BlockUserInput struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// BlockUser is the handler for PATCH /admin/users/:id/block. The body
// carries the desired value so the operation is not a blind toggle.
func (h *Handlers) BlockUser(c *gin.Context) {
	id := c.Param("id")

	var input BlockUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Users.SetBlocked(c.Request.Context(), id, *input.Blocked); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.Log.Error("admin users: block update failed", zap.Error(err), zap.String("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	message := "User unblocked"
	if *input.Blocked {
		message = "User blocked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteUser is the handler for DELETE /admin/users/:id.
func (h *Handlers) DeleteUser(c *gin.Context) {
	err := h.Store.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.Log.Error("admin users: delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
