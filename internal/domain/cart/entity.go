// internal/domain/cart/entity.go
package cart

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart is the per-user cart document. The items live in a single jsonb
// column so the whole array is read and written as one unit, the way the
// storefront mutates it.
type Cart struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"not null;index;size:36" json:"owner_id"`
	Items     ItemList  `gorm:"type:jsonb;not null;default:'[]'" json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is one line of a cart. Lines are keyed by ProductID; the garment,
// material, color and size references are resolved to display names at
// checkout time.
type Item struct {
	ProductID  string  `json:"product_id"`
	ImageURL   string  `json:"image_url"`
	Name       string  `json:"name"`
	GarmentID  string  `json:"garment_id"`
	MaterialID string  `json:"material_id"`
	ColorID    string  `json:"color_id"`
	SizeID     string  `json:"size_id"`
	Gender     string  `json:"gender"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// ItemList stores the items array as a jsonb column
type ItemList []Item

// Value implements driver.Valuer
func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ItemList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *ItemList) Scan(value interface{}) error {
	if value == nil {
		*l = ItemList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for cart items: %T", value)
	}

	return json.Unmarshal(data, l)
}

// TableName overrides the table name
func (Cart) TableName() string {
	return "carts"
}

// BeforeCreate hook to generate the cart id
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
