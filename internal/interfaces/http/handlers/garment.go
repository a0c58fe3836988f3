// internal/interfaces/http/handlers/garment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// GarmentHandler handles garment endpoints
type GarmentHandler struct {
	garmentService *catalog.GarmentService
	config         *config.Config
}

// NewGarmentHandler creates a new garment handler
func NewGarmentHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *GarmentHandler {
	return &GarmentHandler{
		garmentService: catalog.NewGarmentService(db, cfg, log),
		config:         cfg,
	}
}

// ListGarments handles GET /garments, optionally filtered by category
func (h *GarmentHandler) ListGarments(c *gin.Context) {
	var (
		garments []catalog.Garment
		err      error
	)

	if categoryID := c.Query("category_id"); categoryID != "" {
		garments, err = h.garmentService.ListGarmentsByCategory(categoryID)
	} else {
		garments, err = h.garmentService.ListGarments()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve garments",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": garments,
	})
}

// GetGarment handles GET /garments/:id
func (h *GarmentHandler) GetGarment(c *gin.Context) {
	garment, err := h.garmentService.GetGarment(c.Param("id"))
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": garment,
	})
}

// CreateGarment handles POST /admin/garments
func (h *GarmentHandler) CreateGarment(c *gin.Context) {
	var req catalog.GarmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	garment, err := h.garmentService.CreateGarment(&req)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Garment created successfully",
		"data":    garment,
	})
}

// UpdateGarment handles PUT /admin/garments/:id
func (h *GarmentHandler) UpdateGarment(c *gin.Context) {
	var req catalog.GarmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	garment, err := h.garmentService.UpdateGarment(c.Param("id"), &req)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Garment updated successfully",
		"data":    garment,
	})
}

// DeleteGarment handles DELETE /admin/garments/:id
func (h *GarmentHandler) DeleteGarment(c *gin.Context) {
	if err := h.garmentService.DeleteGarment(c.Param("id")); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Garment deleted successfully",
	})
}
