// internal/domain/settings/entity.go
package settings

import "time"

// DefaultID is the fixed id of the singleton seller-contact row
const DefaultID = "default"

// WhatsAppContact is the seller contact the checkout deep link targets.
// A single row with id "default" exists at most once.
type WhatsAppContact struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	PhoneNumber string    `gorm:"not null;size:20" json:"phone_number"`
	CountryCode string    `gorm:"not null;size:5" json:"country_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (WhatsAppContact) TableName() string {
	return "whatsapp_contacts"
}
