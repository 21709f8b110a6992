package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveImage stores one uploaded file under the configured upload directory
// with a uuid filename and returns its public URL. Each image is saved
// independently; the caller decides what a failure means for the request.
func (h *Handlers) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	uploadDir := h.Config.Upload.Dir
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			return "", fmt.Errorf("create upload dir: %w", err)
		}
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("save %s: %w", file.Filename, err)
	}

	return fmt.Sprintf("%s/uploads/%s", h.Config.Upload.BaseURL, newFilename), nil
}

// removeUploads best-effort deletes previously saved files when a later step
// of the same request fails, so aborted writes do not leave orphans behind.
func (h *Handlers) removeUploads(urls []string) {
	for _, url := range urls {
		name := filepath.Base(url)
		_ = os.Remove(filepath.Join(h.Config.Upload.Dir, name))
	}
}

// UploadFile handles POST /admin/upload: a single standalone image upload,
// returning the public URL for the admin UI to reference.
func (h *Handlers) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	url, err := h.saveImage(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
