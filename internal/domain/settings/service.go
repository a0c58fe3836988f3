// internal/domain/settings/service.go
package settings

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotConfigured is returned when no seller contact has been saved and no
// fallback is configured
var ErrNotConfigured = errors.New("seller whatsapp contact not configured")

// Service handles the seller-contact settings
type Service struct {
	db     *gorm.DB
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new settings service
func NewService(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:     db,
		config: cfg,
		logger: logger,
	}
}

// SaveContactRequest represents the seller contact payload
type SaveContactRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	CountryCode string `json:"country_code" binding:"required"`
}

// GetContact returns the stored seller contact, falling back to the
// configured default when nothing has been saved yet
func (s *Service) GetContact() (*WhatsAppContact, error) {
	var contact WhatsAppContact
	result := s.db.Where("id = ?", DefaultID).First(&contact)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if s.config.WhatsApp.DefaultPhoneNumber != "" {
				return &WhatsAppContact{
					ID:          DefaultID,
					PhoneNumber: s.config.WhatsApp.DefaultPhoneNumber,
					CountryCode: s.config.WhatsApp.DefaultCountryCode,
				}, nil
			}
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to retrieve whatsapp contact: %w", result.Error)
	}
	return &contact, nil
}

// SaveContact creates the singleton row or updates it when it already exists
func (s *Service) SaveContact(req *SaveContactRequest) (*WhatsAppContact, error) {
	contact := WhatsAppContact{
		ID:          DefaultID,
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone_number", "country_code", "updated_at"}),
	}).Create(&contact).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save whatsapp contact: %w", err)
	}

	s.logger.Info("Seller WhatsApp contact updated")
	return &contact, nil
}
