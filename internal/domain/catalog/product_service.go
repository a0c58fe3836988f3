// internal/domain/catalog/product_service.go
package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a catalog entity does not exist
var ErrNotFound = errors.New("catalog entity not found")

// ProductService handles product business logic
type ProductService struct {
	db     *gorm.DB
	config *config.Config
	logger *logrus.Logger
}

// NewProductService creates a new product service
func NewProductService(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *ProductService {
	return &ProductService{
		db:     db,
		config: cfg,
		logger: logger,
	}
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
}

// CreateProduct inserts a new product and returns it with its generated id
func (s *ProductService) CreateProduct(req *ProductCreateRequest) (*Product, error) {
	product := Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.WithField("product_id", product.ID).Info("Product created")
	return &product, nil
}

// GetProduct retrieves a product by id
func (s *ProductService) GetProduct(id string) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(id string, req *ProductUpdateRequest) (*Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return product, nil
}

// DeleteProduct removes a product by id
func (s *ProductService) DeleteProduct(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProducts retrieves all products ordered by price, the way the
// storefront displays them
func (s *ProductService) ListProducts() ([]Product, error) {
	var products []Product
	if err := s.db.Order("price ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// ExportProducts writes the product catalog as an xlsx workbook
func (s *ProductService) ExportProducts(w io.Writer) error {
	products, err := s.ListProducts()
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Products"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	headers := []string{"ID", "Name", "Description", "Price", "ImageURL", "CreatedAt", "UpdatedAt"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, h)
	}

	for row, p := range products {
		values := []interface{}{
			p.ID,
			p.Name,
			p.Description,
			p.Price,
			p.ImageURL,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
			p.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, v)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
