// internal/interfaces/http/handlers/lookup.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// LookupHandler handles the reference-entity endpoints: categories,
// colors, materials and sizes share the same CRUD shape
type LookupHandler struct {
	lookupService *catalog.LookupService
	config        *config.Config
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *LookupHandler {
	return &LookupHandler{
		lookupService: catalog.NewLookupService(db, cfg, log),
		config:        cfg,
	}
}

// --- Categories ---

// ListCategories handles GET /categories
func (h *LookupHandler) ListCategories(c *gin.Context) {
	categories, err := h.lookupService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

// GetCategory handles GET /categories/:id
func (h *LookupHandler) GetCategory(c *gin.Context) {
	category, err := h.lookupService.GetCategory(c.Param("id"))
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

// CreateCategory handles POST /admin/categories
func (h *LookupHandler) CreateCategory(c *gin.Context) {
	var req catalog.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	category, err := h.lookupService.CreateCategory(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "data": category})
}

// UpdateCategory handles PUT /admin/categories/:id
func (h *LookupHandler) UpdateCategory(c *gin.Context) {
	var req catalog.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	category, err := h.lookupService.UpdateCategory(c.Param("id"), &req)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": category})
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *LookupHandler) DeleteCategory(c *gin.Context) {
	if err := h.lookupService.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// --- Colors ---

// ListColors handles GET /colors
func (h *LookupHandler) ListColors(c *gin.Context) {
	colors, err := h.lookupService.ListColors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve colors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": colors})
}

// GetColor handles GET /colors/:id
func (h *LookupHandler) GetColor(c *gin.Context) {
	color, err := h.lookupService.GetColor(c.Param("id"))
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": color})
}

// CreateColor handles POST /admin/colors
func (h *LookupHandler) CreateColor(c *gin.Context) {
	var req catalog.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	color, err := h.lookupService.CreateColor(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Color created successfully", "data": color})
}

// UpdateColor handles PUT /admin/colors/:id
func (h *LookupHandler) UpdateColor(c *gin.Context) {
	var req catalog.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	color, err := h.lookupService.UpdateColor(c.Param("id"), &req)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Color updated successfully", "data": color})
}

// DeleteColor handles DELETE /admin/colors/:id
func (h *LookupHandler) DeleteColor(c *gin.Context) {
	if err := h.lookupService.DeleteColor(c.Param("id")); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Color deleted successfully"})
}

// --- Materials ---

// ListMaterials handles GET /materials
func (h *LookupHandler) ListMaterials(c *gin.Context) {
	materials, err := h.lookupService.ListMaterials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve materials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": materials})
}

// GetMaterial handles GET /materials/:id
func (h *LookupHandler) GetMaterial(c *gin.Context) {
	material, err := h.lookupService.GetMaterial(c.Param("id"))
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": material})
}

// CreateMaterial handles POST /admin/materials
func (h *LookupHandler) CreateMaterial(c *gin.Context) {
	var req catalog.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	material, err := h.lookupService.CreateMaterial(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Material created successfully", "data": material})
}

// UpdateMaterial handles PUT /admin/materials/:id
func (h *LookupHandler) UpdateMaterial(c *gin.Context) {
	var req catalog.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	material, err := h.lookupService.UpdateMaterial(c.Param("id"), &req)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material updated successfully", "data": material})
}

// DeleteMaterial handles DELETE /admin/materials/:id
func (h *LookupHandler) DeleteMaterial(c *gin.Context) {
	if err := h.lookupService.DeleteMaterial(c.Param("id")); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}

// --- Sizes ---

// ListSizes handles GET /sizes
func (h *LookupHandler) ListSizes(c *gin.Context) {
	sizes, err := h.lookupService.ListSizes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sizes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sizes})
}

// GetSize handles GET /sizes/:id
func (h *LookupHandler) GetSize(c *gin.Context) {
	size, err := h.lookupService.GetSize(c.Param("id"))
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": size})
}

// CreateSize handles POST /admin/sizes
func (h *LookupHandler) CreateSize(c *gin.Context) {
	var req catalog.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	size, err := h.lookupService.CreateSize(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Size created successfully", "data": size})
}

// UpdateSize handles PUT /admin/sizes/:id
func (h *LookupHandler) UpdateSize(c *gin.Context) {
	var req catalog.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	size, err := h.lookupService.UpdateSize(c.Param("id"), &req)
	if err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Size updated successfully", "data": size})
}

// DeleteSize handles DELETE /admin/sizes/:id
func (h *LookupHandler) DeleteSize(c *gin.Context) {
	if err := h.lookupService.DeleteSize(c.Param("id")); err != nil {
		c.JSON(catalogErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Size deleted successfully"})
}
