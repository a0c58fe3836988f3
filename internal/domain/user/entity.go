// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values for User.Role
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// User represents the user entity. The ID doubles as the auth identity id:
// tokens are issued for it and the profile row is keyed by it.
type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	NationalID string    `gorm:"size:20" json:"national_id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password   string    `gorm:"not null;size:255" json:"-"` // Don't return in JSON
	Role       string    `gorm:"not null;size:20;default:'CLIENT'" json:"role"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Address    string    `gorm:"size:500" json:"address"`
	AvatarURL  string    `gorm:"size:500" json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook to handle business logic before user creation
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	// Email should be lowercase
	u.Email = strings.ToLower(u.Email)
	if u.Role == "" {
		u.Role = RoleClient
	}
	return nil
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
