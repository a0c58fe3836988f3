// internal/domain/catalog/lookup_service.go
//
// Categories, colors, materials and sizes are small lookup tables edited
// through the admin back-office and referenced by id from garments and cart
// lines. Their CRUD shape is identical, so one service carries all four.
package catalog

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// LookupService handles the reference-entity CRUD
type LookupService struct {
	db     *gorm.DB
	config *config.Config
	logger *logrus.Logger
}

// NewLookupService creates a new lookup service
func NewLookupService(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *LookupService {
	return &LookupService{
		db:     db,
		config: cfg,
		logger: logger,
	}
}

// NameRequest carries the single editable field of Category and Size
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// ColorRequest carries Color fields
type ColorRequest struct {
	Name    string `json:"name" binding:"required"`
	HexCode string `json:"hex_code"`
}

// MaterialRequest carries Material fields
type MaterialRequest struct {
	Name       string  `json:"name" binding:"required"`
	ExtraPrice float64 `json:"extra_price"`
}

// Categories

func (s *LookupService) CreateCategory(req *NameRequest) (*Category, error) {
	category := Category{Name: req.Name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *LookupService) GetCategory(id string) (*Category, error) {
	var category Category
	if err := s.first(&category, id); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *LookupService) UpdateCategory(id string, req *NameRequest) (*Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(category).Update("name", req.Name).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *LookupService) DeleteCategory(id string) error {
	return s.remove(&Category{}, id)
}

func (s *LookupService) ListCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// Colors

func (s *LookupService) CreateColor(req *ColorRequest) (*Color, error) {
	color := Color{Name: req.Name, HexCode: req.HexCode}
	if err := s.db.Create(&color).Error; err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}
	return &color, nil
}

func (s *LookupService) GetColor(id string) (*Color, error) {
	var color Color
	if err := s.first(&color, id); err != nil {
		return nil, err
	}
	return &color, nil
}

func (s *LookupService) UpdateColor(id string, req *ColorRequest) (*Color, error) {
	color, err := s.GetColor(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"name": req.Name, "hex_code": req.HexCode}
	if err := s.db.Model(color).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update color: %w", err)
	}
	return color, nil
}

func (s *LookupService) DeleteColor(id string) error {
	return s.remove(&Color{}, id)
}

func (s *LookupService) ListColors() ([]Color, error) {
	var colors []Color
	if err := s.db.Order("created_at ASC").Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve colors: %w", err)
	}
	return colors, nil
}

// Materials

func (s *LookupService) CreateMaterial(req *MaterialRequest) (*Material, error) {
	material := Material{Name: req.Name, ExtraPrice: req.ExtraPrice}
	if err := s.db.Create(&material).Error; err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	return &material, nil
}

func (s *LookupService) GetMaterial(id string) (*Material, error) {
	var material Material
	if err := s.first(&material, id); err != nil {
		return nil, err
	}
	return &material, nil
}

func (s *LookupService) UpdateMaterial(id string, req *MaterialRequest) (*Material, error) {
	material, err := s.GetMaterial(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"name": req.Name, "extra_price": req.ExtraPrice}
	if err := s.db.Model(material).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}
	return material, nil
}

func (s *LookupService) DeleteMaterial(id string) error {
	return s.remove(&Material{}, id)
}

func (s *LookupService) ListMaterials() ([]Material, error) {
	var materials []Material
	if err := s.db.Order("created_at ASC").Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve materials: %w", err)
	}
	return materials, nil
}

// Sizes

func (s *LookupService) CreateSize(req *NameRequest) (*Size, error) {
	size := Size{Name: req.Name}
	if err := s.db.Create(&size).Error; err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}
	return &size, nil
}

func (s *LookupService) GetSize(id string) (*Size, error) {
	var size Size
	if err := s.first(&size, id); err != nil {
		return nil, err
	}
	return &size, nil
}

func (s *LookupService) UpdateSize(id string, req *NameRequest) (*Size, error) {
	size, err := s.GetSize(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(size).Update("name", req.Name).Error; err != nil {
		return nil, fmt.Errorf("failed to update size: %w", err)
	}
	return size, nil
}

func (s *LookupService) DeleteSize(id string) error {
	return s.remove(&Size{}, id)
}

func (s *LookupService) ListSizes() ([]Size, error) {
	var sizes []Size
	if err := s.db.Order("created_at ASC").Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve sizes: %w", err)
	}
	return sizes, nil
}

// Shared helpers

func (s *LookupService) first(dest interface{}, id string) error {
	result := s.db.Where("id = ?", id).First(dest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to retrieve record: %w", result.Error)
	}
	return nil
}

func (s *LookupService) remove(model interface{}, id string) error {
	result := s.db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
