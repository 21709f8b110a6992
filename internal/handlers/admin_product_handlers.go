package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

//
// --- Admin Catalog Management ---
//
// Product writes arrive as multipart forms: scalar fields as form values,
// the attribute variant as a JSON field, the main image plus up to four
// gallery images as files. Image uploads happen before the record write and
// each one is independent: any failure aborts the request with an error
// naming the file, already-saved files are cleaned up, and a blank URL is
// never persisted.
//

// GetAdminProducts is the handler for GET /admin/products. Same shape as the
// public listing but without the category restriction on unknown values, so
// the back office can page through everything.
func (h *Handlers) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultPageSize)))

	products, total, err := h.Store.Products.List(c.Request.Context(), store.ProductFilter{
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		h.Log.Error("admin products: list failed", zap.Error(err))
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

// GetAdminProduct is the handler for GET /admin/products/:id.
func (h *Handlers) GetAdminProduct(c *gin.Context) {
	product, err := h.Store.Products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.Log.Error("admin products: get failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// validateMergedAttributes applies a category and/or attribute change onto
// the stored product and checks the resulting pair still matches.
func validateMergedAttributes(stored *models.Product, category string, attrs *models.ProductAttributes) error {
	merged := *stored
	if category != "" {
		merged.Category = category
	}
	if attrs != nil {
		merged.Attributes = *attrs
	}
	return merged.ValidateAttributes()
}

// parseAttributes decodes the optional "attributes" JSON form field into the
// typed per-category variant.
func parseAttributes(raw string) (models.ProductAttributes, error) {
	var attrs models.ProductAttributes
	if raw == "" {
		return attrs, nil
	}
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return attrs, fmt.Errorf("attributes field is not valid JSON: %w", err)
	}
	return attrs, nil
}

// uploadProductImages saves the main image and gallery files, returning
// their public URLs. On any failure it cleans up what was already saved and
// reports which file failed.
func (h *Handlers) uploadProductImages(c *gin.Context, requireMain bool) (mainURL string, galleryURLs []string, err error) {
	var saved []string

	mainFile, mainErr := c.FormFile("mainImage")
	if mainErr != nil {
		if requireMain {
			return "", nil, errors.New("main image is required")
		}
	} else {
		mainURL, err = h.saveImage(c, mainFile)
		if err != nil {
			return "", nil, fmt.Errorf("main image upload failed: %w", err)
		}
		saved = append(saved, mainURL)
	}

	form, formErr := c.MultipartForm()
	if formErr == nil && form != nil {
		gallery := form.File["images"]
		if len(gallery) > models.MaxGalleryImages {
			h.removeUploads(saved)
			return "", nil, fmt.Errorf("at most %d gallery images are allowed", models.MaxGalleryImages)
		}
		for _, file := range gallery {
			url, upErr := h.saveImage(c, file)
			if upErr != nil {
				h.removeUploads(saved)
				return "", nil, fmt.Errorf("gallery image %q upload failed: %w", file.Filename, upErr)
			}
			saved = append(saved, url)
			galleryURLs = append(galleryURLs, url)
		}
	}

	return mainURL, galleryURLs, nil
}

// CreateProduct is the handler for POST /admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	description := c.PostForm("description")

	// 1. --- Validate scalar fields ---
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}
	if !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid price is required"})
		return
	}
	discountPrice, _ := strconv.ParseFloat(c.DefaultPostForm("discountPrice", "0"), 64)
	stock, err := strconv.Atoi(c.DefaultPostForm("stock", "0"))
	if err != nil || stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid stock count is required"})
		return
	}

	features := c.PostFormArray("features")
	if len(features) > models.MaxFeatures {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d features are allowed", models.MaxFeatures)})
		return
	}

	attrs, err := parseAttributes(c.PostForm("attributes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Upload images (all-or-nothing before the record write) ---
	mainURL, galleryURLs, err := h.uploadProductImages(c, true)
	if err != nil {
		h.Log.Warn("admin products: image upload failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Build & validate the product ---
	product := &models.Product{
		Name:          name,
		Slug:          slug.Make(name),
		Category:      category,
		Price:         price,
		DiscountPrice: discountPrice,
		Stock:         stock,
		Description:   description,
		Features:      features,
		MainImage:     mainURL,
		Images:        galleryURLs,
		Attributes:    attrs,
	}
	if err := product.ValidateAttributes(); err != nil {
		h.removeUploads(append([]string{mainURL}, galleryURLs...))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 4. --- Persist ---
	id, err := h.Store.Products.Insert(c.Request.Context(), product)
	if err != nil {
		h.removeUploads(append([]string{mainURL}, galleryURLs...))
		h.Log.Error("admin products: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	product.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created",
		"product": product,
	})
}

// UpdateProduct is the handler for PUT /admin/products/:id. Only the fields
// present in the form are merged onto the stored record; replacement images
// are optional. The in-stock flag is recomputed by the store whenever stock
// is among the updates.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	updates := bson.M{}

	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
		updates["slug"] = slug.Make(name)
	}
	newCategory := c.PostForm("category")
	if newCategory != "" {
		if !models.IsValidCategory(newCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		updates["category"] = newCategory
	}
	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid price is required"})
			return
		}
		updates["price"] = price
	}
	if raw := c.PostForm("discountPrice"); raw != "" {
		discountPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || discountPrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid discount price is required"})
			return
		}
		updates["discountPrice"] = discountPrice
	}
	if raw := c.PostForm("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid stock count is required"})
			return
		}
		updates["stock"] = stock
	}
	if description := c.PostForm("description"); description != "" {
		updates["description"] = description
	}
	if features := c.PostFormArray("features"); len(features) > 0 {
		if len(features) > models.MaxFeatures {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d features are allowed", models.MaxFeatures)})
			return
		}
		updates["features"] = features
	}
	var newAttrs *models.ProductAttributes
	if raw := c.PostForm("attributes"); raw != "" {
		attrs, err := parseAttributes(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newAttrs = &attrs
		updates["attributes"] = attrs
	}

	// A changed category or attribute variant must still agree with the
	// stored record once merged, same as on create.
	if newCategory != "" || newAttrs != nil {
		stored, err := h.Store.Products.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			h.Log.Error("admin products: lookup failed", zap.Error(err), zap.String("id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if err := validateMergedAttributes(stored, newCategory, newAttrs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// Replacement images, if any were attached.
	mainURL, galleryURLs, err := h.uploadProductImages(c, false)
	if err != nil {
		h.Log.Warn("admin products: image upload failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if mainURL != "" {
		updates["mainImage"] = mainURL
	}
	if len(galleryURLs) > 0 {
		updates["images"] = galleryURLs
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := h.Store.Products.Update(c.Request.Context(), id, updates); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.Log.Error("admin products: update failed", zap.Error(err), zap.String("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct is the handler for DELETE /admin/products/:id. Deleting an
// already-deleted product is just a 404, not an error state worth more.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	err := h.Store.Products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.Log.Error("admin products: delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
