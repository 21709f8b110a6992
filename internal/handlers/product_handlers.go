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
// --- Storefront Catalog (Public) ---
//

// GetProducts is the handler for GET /products. Supports an optional
// category filter plus page/limit pagination; newest products come first.
func (h *Handlers) GetProducts(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultPageSize)))

	products, total, err := h.Store.Products.List(c.Request.Context(), store.ProductFilter{
		Category: category,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.Log.Error("products: list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	_, limit = store.NormalizePage(page, limit)
	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"total":      total,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

// GetProduct is the handler for GET /products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Store.Products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.Log.Error("products: get failed", zap.Error(err), zap.String("id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}
