// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors returned by the cart service
var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product not found in cart")
	ErrNotAuthn        = errors.New("user not authenticated")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

const countCacheTTL = 30 * time.Second

// Service handles cart business logic
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
	logger      *logrus.Logger
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
		logger:      logger,
	}
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID  string  `json:"product_id" binding:"required"`
	ImageURL   string  `json:"image_url"`
	Name       string  `json:"name" binding:"required"`
	GarmentID  string  `json:"garment_id"`
	MaterialID string  `json:"material_id"`
	ColorID    string  `json:"color_id"`
	SizeID     string  `json:"size_id"`
	Gender     string  `json:"gender"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	UnitPrice  float64 `json:"unit_price" binding:"required,gt=0"`
}

// UpdateQuantityRequest represents a quantity change for one cart line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CreateCart creates an empty cart for the given owner
func (s *Service) CreateCart(ownerID string) (*Cart, error) {
	c := Cart{OwnerID: ownerID, Items: ItemList{}}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &c, nil
}

// GetByOwner retrieves the cart for a user. One cart per user, by query
// convention rather than a database constraint.
func (s *Service) GetByOwner(ownerID string) (*Cart, error) {
	var c Cart
	result := s.db.Where("owner_id = ?", ownerID).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to retrieve cart: %w", result.Error)
	}
	return &c, nil
}

// GetOrCreate returns the owner's cart, creating it lazily on first use
func (s *Service) GetOrCreate(ownerID string) (*Cart, error) {
	c, err := s.GetByOwner(ownerID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}
	return s.CreateCart(ownerID)
}

// AddItem appends an item to the cart, merging quantities when a line for
// the same product already exists. The cart must exist and the caller must
// be authenticated.
func (s *Service) AddItem(cartID, callerID string, req *AddItemRequest) (*Cart, error) {
	if callerID == "" {
		return nil, ErrNotAuthn
	}

	item := Item{
		ProductID:  req.ProductID,
		ImageURL:   req.ImageURL,
		Name:       req.Name,
		GarmentID:  req.GarmentID,
		MaterialID: req.MaterialID,
		ColorID:    req.ColorID,
		SizeID:     req.SizeID,
		Gender:     req.Gender,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
	}

	return s.mutate(cartID, func(items ItemList) (ItemList, error) {
		return addItem(items, item), nil
	})
}

// RemoveItem removes the line for a product. Removing a product that is not
// in the cart is a no-op.
func (s *Service) RemoveItem(cartID, productID string) (*Cart, error) {
	return s.mutate(cartID, func(items ItemList) (ItemList, error) {
		return removeItem(items, productID), nil
	})
}

// SetItemQuantity replaces the quantity on an existing cart line
func (s *Service) SetItemQuantity(cartID, productID string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return s.mutate(cartID, func(items ItemList) (ItemList, error) {
		if !setQuantity(items, productID, quantity) {
			return nil, ErrItemNotFound
		}
		return items, nil
	})
}

// Clear empties the cart
func (s *Service) Clear(cartID string) (*Cart, error) {
	return s.mutate(cartID, func(ItemList) (ItemList, error) {
		return ItemList{}, nil
	})
}

// Total computes the cart total as Σ quantity × unit price
func (s *Service) Total(cartID string) (float64, error) {
	var c Cart
	result := s.db.Where("id = ?", cartID).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, ErrCartNotFound
		}
		return 0, fmt.Errorf("failed to retrieve cart: %w", result.Error)
	}
	return c.Items.Total(), nil
}

// ItemCount returns the summed quantity across the owner's cart lines.
// The value is cached briefly in Redis for the storefront's badge polling.
func (s *Service) ItemCount(ctx context.Context, ownerID string) (int, error) {
	key := s.countKey(ownerID)

	if cached, err := s.redisClient.Get(ctx, key).Result(); err == nil {
		if count, err := strconv.Atoi(cached); err == nil {
			return count, nil
		}
	}

	c, err := s.GetByOwner(ownerID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	if err := s.redisClient.Set(ctx, key, count, countCacheTTL).Err(); err != nil {
		// Cache failures are not fatal; the count was computed from the database
		s.logger.WithError(err).Warn("Failed to cache cart item count")
	}

	return count, nil
}

// mutate loads the cart under a row lock, applies fn to the items array and
// writes the result back. The lock serializes concurrent mutations so the
// read-modify-write of the items column cannot lose updates.
func (s *Service) mutate(cartID string, fn func(ItemList) (ItemList, error)) (*Cart, error) {
	var c Cart

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", cartID).First(&c)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return fmt.Errorf("failed to retrieve cart: %w", result.Error)
		}

		items, err := fn(c.Items)
		if err != nil {
			return err
		}

		c.Items = items
		c.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&Cart{}).Where("id = ?", c.ID).
			Updates(map[string]interface{}{"items": items, "updated_at": c.UpdatedAt}).Error; err != nil {
			return fmt.Errorf("failed to update cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(c.OwnerID)
	return &c, nil
}

func (s *Service) invalidateCount(ownerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.redisClient.Del(ctx, s.countKey(ownerID)).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate cart count cache")
	}
}

func (s *Service) countKey(ownerID string) string {
	return fmt.Sprintf("cart:count:%s", ownerID)
}
