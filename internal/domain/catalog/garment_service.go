// internal/domain/catalog/garment_service.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// GarmentService handles garment business logic
type GarmentService struct {
	db     *gorm.DB
	config *config.Config
	logger *logrus.Logger
}

// NewGarmentService creates a new garment service
func NewGarmentService(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *GarmentService {
	return &GarmentService{
		db:     db,
		config: cfg,
		logger: logger,
	}
}

// GarmentCreateRequest represents garment creation data
type GarmentCreateRequest struct {
	Name       string  `json:"name" binding:"required"`
	CategoryID string  `json:"category_id" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

// GarmentUpdateRequest represents garment update data
type GarmentUpdateRequest struct {
	Name       *string  `json:"name"`
	CategoryID *string  `json:"category_id"`
	Price      *float64 `json:"price"`
}

// CreateGarment inserts a new garment. The category must exist.
func (s *GarmentService) CreateGarment(req *GarmentCreateRequest) (*Garment, error) {
	var category Category
	if err := s.db.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %s: %w", req.CategoryID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	garment := Garment{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
	}

	if err := s.db.Create(&garment).Error; err != nil {
		return nil, fmt.Errorf("failed to create garment: %w", err)
	}

	s.logger.WithField("garment_id", garment.ID).Info("Garment created")
	return &garment, nil
}

// GetGarment retrieves a garment by id
func (s *GarmentService) GetGarment(id string) (*Garment, error) {
	var garment Garment
	result := s.db.Where("id = ?", id).First(&garment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve garment: %w", result.Error)
	}
	return &garment, nil
}

// UpdateGarment applies a partial update to a garment
func (s *GarmentService) UpdateGarment(id string, req *GarmentUpdateRequest) (*Garment, error) {
	garment, err := s.GetGarment(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	if len(updates) > 0 {
		if err := s.db.Model(garment).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update garment: %w", err)
		}
	}

	return garment, nil
}

// DeleteGarment removes a garment by id
func (s *GarmentService) DeleteGarment(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Garment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete garment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListGarments retrieves all garments ordered by creation time
func (s *GarmentService) ListGarments() ([]Garment, error) {
	var garments []Garment
	if err := s.db.Order("created_at ASC").Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve garments: %w", err)
	}
	return garments, nil
}

// ListGarmentsByCategory retrieves garments filtered by category
func (s *GarmentService) ListGarmentsByCategory(categoryID string) ([]Garment, error) {
	var garments []Garment
	if err := s.db.Where("category_id = ?", categoryID).Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve garments by category: %w", err)
	}
	return garments, nil
}
