// internal/domain/upload/service.go
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
)

var (
	// ErrNotFound is returned when a file record does not exist
	ErrNotFound = errors.New("file not found")
	// ErrInvalidFile is returned when the uploaded file fails validation
	ErrInvalidFile = errors.New("invalid file")
)

// Service handles image upload business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new upload service
func NewService(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:     db,
		config: cfg,
		logger: logger,
	}
}

// ImageUploadRequest represents an image upload request
type ImageUploadRequest struct {
	File       multipart.File        `json:"-"`
	Header     *multipart.FileHeader `json:"-"`
	UploadedBy string                `json:"uploaded_by"`
}

// UploadImage stores a single image on disk and records it
func (s *Service) UploadImage(req *ImageUploadRequest) (*UploadedFile, error) {
	if err := s.validateImageFile(req.Header); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(req.Header.Filename))
	filename := uuid.NewString() + ext
	relativePath := filepath.Join("images", filename)
	fullPath := filepath.Join(s.config.Upload.LocalPath, relativePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, req.File); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	uploadedFile := UploadedFile{
		OriginalName: req.Header.Filename,
		Filename:     filename,
		Path:         relativePath,
		URL:          s.getFileURL(relativePath),
		MimeType:     req.Header.Header.Get("Content-Type"),
		Size:         req.Header.Size,
		UploadedBy:   req.UploadedBy,
	}

	if err := s.db.Create(&uploadedFile).Error; err != nil {
		// Keep disk and database consistent on insert failure
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to save file info: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"file_id":  uploadedFile.ID,
		"filename": filename,
		"size":     uploadedFile.Size,
	}).Info("Image uploaded")

	return &uploadedFile, nil
}

// GetFile returns a stored file record by id
func (s *Service) GetFile(id string) (*UploadedFile, error) {
	var file UploadedFile
	if err := s.db.Where("id = ?", id).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return &file, nil
}

// ListFiles returns all stored file records, newest first
func (s *Service) ListFiles() ([]UploadedFile, error) {
	var files []UploadedFile
	if err := s.db.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// DeleteImage removes the file from disk and its record
func (s *Service) DeleteImage(id string) error {
	file, err := s.GetFile(id)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.config.Upload.LocalPath, file.Path)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := s.db.Delete(&UploadedFile{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	s.logger.WithField("file_id", id).Info("Image deleted")
	return nil
}

func (s *Service) validateImageFile(header *multipart.FileHeader) error {
	if header == nil {
		return fmt.Errorf("%w: missing file", ErrInvalidFile)
	}
	if header.Size > s.config.Upload.MaxSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidFile, s.config.Upload.MaxSize)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}
	return fmt.Errorf("%w: extension %q is not allowed", ErrInvalidFile, ext)
}

func (s *Service) getFileURL(relativePath string) string {
	base := strings.TrimSuffix(s.config.Upload.PublicBaseURL, "/")
	return base + "/" + filepath.ToSlash(relativePath)
}
