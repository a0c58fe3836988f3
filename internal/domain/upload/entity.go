// internal/domain/upload/entity.go
package upload

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadedFile represents a stored image and its public URL
type UploadedFile struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	OriginalName string    `gorm:"not null;size:255" json:"original_name"`
	Filename     string    `gorm:"uniqueIndex;not null;size:255" json:"filename"`
	Path         string    `gorm:"not null;size:500" json:"-"`
	URL          string    `gorm:"not null;size:500" json:"url"`
	MimeType     string    `gorm:"size:100" json:"mime_type"`
	Size         int64     `json:"size"`
	UploadedBy   string    `gorm:"index;size:36" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for UploadedFile
func (UploadedFile) TableName() string {
	return "uploaded_files"
}

// BeforeCreate generates the file id
func (f *UploadedFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
