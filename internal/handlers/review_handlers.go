package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

// GetProductReviews is the handler for GET /products/:id/reviews. The count
// and average rating are recomputed from the full review list on every read;
// a product with zero reviews returns count 0 and average 0.
func (h *Handlers) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")

	reviews, err := h.Store.Reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		h.Log.Error("reviews: list failed", zap.Error(err), zap.String("productId", productID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	summary := models.AggregateRatings(reviews)
	c.JSON(http.StatusOK, gin.H{
		"reviews":       reviews,
		"count":         summary.Count,
		"averageRating": summary.Average,
	})
}

type CreateReviewInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Rating    float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string  `json:"comment" binding:"required"`
}

// CreateReview is the handler for POST /reviews. The product name is
// snapshotted onto the review at write time.
func (h *Handlers) CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Store.Products.FindByID(c.Request.Context(), input.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.Log.Error("reviews: product lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	review := &models.Review{
		ProductID:   input.ProductID,
		ProductName: product.Name,
		Name:        input.Name,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}

	id, err := h.Store.Reviews.Insert(c.Request.Context(), review)
	if err != nil {
		h.Log.Error("reviews: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}
	review.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted",
		"review":  review,
	})
}

// DeleteReview is the handler for DELETE /admin/reviews/:id.
func (h *Handlers) DeleteReview(c *gin.Context) {
	err := h.Store.Reviews.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		h.Log.Error("reviews: delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
