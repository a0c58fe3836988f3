// internal/interfaces/http/handlers/settings.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/settings"
)

// SettingsHandler handles store settings endpoints
type SettingsHandler struct {
	settingsService *settings.Service
	config          *config.Config
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settings.NewService(db, cfg, log),
		config:          cfg,
	}
}

// GetContact handles GET /settings/whatsapp
func (h *SettingsHandler) GetContact(c *gin.Context) {
	contact, err := h.settingsService.GetContact()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, settings.ErrNotConfigured) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": contact,
	})
}

// SaveContact handles PUT /admin/settings/whatsapp
func (h *SettingsHandler) SaveContact(c *gin.Context) {
	var req settings.SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	contact, err := h.settingsService.SaveContact(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Seller contact saved successfully",
		"data":    contact,
	})
}
