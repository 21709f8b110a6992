package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

//
// --- Contact Inbox ---
//

type CreateMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Mobile  string `json:"mobile" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateMessage is the handler for POST /messages (public contact form).
func (h *Handlers) CreateMessage(c *gin.Context) {
	var input CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := &models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Mobile:  input.Mobile,
		Message: input.Message,
	}

	id, err := h.Store.Messages.Insert(c.Request.Context(), msg)
	if err != nil {
		h.Log.Error("messages: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	msg.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent. We will get back to you soon.",
		"inquiry": msg,
	})
}

// GetMessages is the handler for GET /messages (admin inbox), optionally
// filtered by status.
func (h *Handlers) GetMessages(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidMessageStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown message status"})
		return
	}

	messages, err := h.Store.Messages.List(c.Request.Context(), status)
	if err != nil {
		h.Log.Error("messages: list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type UpdateMessageStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateMessageStatus is the handler for PATCH /messages/:id/status.
func (h *Handlers) UpdateMessageStatus(c *gin.Context) {
	var input UpdateMessageStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidMessageStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown message status"})
		return
	}

	err := h.Store.Messages.SetStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		h.Log.Error("messages: status update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message status updated"})
}

// DeleteMessage is the handler for DELETE /messages/:id.
func (h *Handlers) DeleteMessage(c *gin.Context) {
	err := h.Store.Messages.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		h.Log.Error("messages: delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
