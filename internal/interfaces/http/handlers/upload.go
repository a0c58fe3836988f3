// internal/interfaces/http/handlers/upload.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/upload"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// UploadHandler handles image upload endpoints
type UploadHandler struct {
	uploadService *upload.Service
	config        *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: upload.NewService(db, cfg, log),
		config:        cfg,
	}
}

// UploadImage handles POST /uploads
func (h *UploadHandler) UploadImage(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}
	defer file.Close()

	uploaded, err := h.uploadService.UploadImage(&upload.ImageUploadRequest{
		File:       file,
		Header:     header,
		UploadedBy: userID,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, upload.ErrInvalidFile) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully",
		"data":    uploaded,
	})
}

// ListFiles handles GET /admin/uploads
func (h *UploadHandler) ListFiles(c *gin.Context) {
	files, err := h.uploadService.ListFiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve files",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": files,
	})
}

// DeleteImage handles DELETE /uploads/:id. Only the uploader or an admin
// may delete a file.
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	file, err := h.uploadService.GetFile(c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, upload.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	if file.UploadedBy != userID && !middleware.IsAdminFromContext(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You can only delete your own uploads",
		})
		return
	}

	if err := h.uploadService.DeleteImage(file.ID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, upload.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image deleted successfully",
	})
}
