// internal/domain/user/service.go
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Sentinel errors returned by the user service
var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailInUse = errors.New("email already in use")
)

// Service handles user business logic
type Service struct {
	db              *gorm.DB
	config          *config.Config
	logger          *logrus.Logger
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:              db,
		config:          cfg,
		logger:          logger,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	NationalID string `json:"national_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	NationalID *string `json:"national_id"`
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	AvatarURL  *string `json:"avatar_url"`
}

// Register creates a new client account together with its empty cart.
// Both rows are written in one transaction so a failure can never leave
// an identity without a profile or a profile without a cart.
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	return s.provision(req, RoleClient)
}

// ProvisionUser creates an account with an explicit role (admin back-office)
func (s *Service) ProvisionUser(req *RegisterRequest, role string) (*AuthResponse, error) {
	if role != RoleAdmin && role != RoleClient {
		return nil, fmt.Errorf("unknown role: %s", role)
	}
	return s.provision(req, role)
}

func (s *Service) provision(req *RegisterRequest, role string) (*AuthResponse, error) {
	// Emails are stored lowercase, so the lookup has to match
	email := normalizeEmail(req.Email)

	// Check if user already exists
	var existingUser User
	result := s.db.Where("email = ?", email).First(&existingUser)
	if result.Error == nil {
		return nil, ErrEmailInUse
	}

	// Hash password
	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Email:      email,
		Password:   hashedPassword,
		NationalID: req.NationalID,
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Role:       role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := tx.Create(&cart.Cart{OwnerID: user.ID, Items: cart.ItemList{}}).Error; err != nil {
			return fmt.Errorf("failed to create cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")

	return s.buildAuthResponse(&user)
}

// Login authenticates a user
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	// Find user by email
	var user User
	result := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	// Verify password
	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.buildAuthResponse(&user)
}

// RefreshToken generates new tokens using refresh token
func (s *Service) RefreshToken(refreshToken string) (*AuthResponse, error) {
	// Validate refresh token
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	// Find user
	var user User
	result := s.db.Where("id = ?", claims.UserID).First(&user)
	if result.Error != nil {
		return nil, ErrNotFound
	}

	resp, err := s.buildAuthResponse(&user)
	if err != nil {
		return nil, err
	}

	if !s.config.JWT.RefreshTokenRotation {
		// Reuse existing refresh token
		resp.RefreshToken = refreshToken
	}

	return resp, nil
}

// GetProfile gets user profile by ID
func (s *Service) GetProfile(userID string) (*User, error) {
	var user User
	result := s.db.Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", result.Error)
	}

	// Clear password
	user.Password = ""

	return &user, nil
}

// UpdateProfile updates user profile fields that are set in the request
func (s *Service) UpdateProfile(userID string, req *UpdateProfileRequest) (*User, error) {
	var user User
	result := s.db.Where("id = ?", userID).First(&user)
	if result.Error != nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if req.NationalID != nil {
		updates["national_id"] = *req.NationalID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	// Clear password
	user.Password = ""

	return &user, nil
}

// ChangePassword changes user password after verifying current password
func (s *Service) ChangePassword(userID, currentPassword, newPassword string) error {
	var user User
	result := s.db.Where("id = ?", userID).First(&user)
	if result.Error != nil {
		return ErrNotFound
	}

	// Verify current password
	if err := s.passwordManager.VerifyPassword(currentPassword, user.Password); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	// Hash new password
	hashedPassword, err := s.passwordManager.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// Update password
	if err := s.db.Model(&user).Update("password", hashedPassword).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// ListUsers retrieves all users ordered by creation time
func (s *Service) ListUsers() ([]User, error) {
	var users []User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}

// DeleteUser removes a user and their cart
func (s *Service) DeleteUser(userID string) error {
	var user User
	result := s.db.Where("id = ?", userID).First(&user)
	if result.Error != nil {
		return ErrNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", userID).Delete(&cart.Cart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.WithField("user_id", userID).Info("User deleted")
	return nil
}

// normalizeEmail matches the canonical form BeforeCreate writes to the row
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) buildAuthResponse(user *User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Clear password from response
	user.Password = ""

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
