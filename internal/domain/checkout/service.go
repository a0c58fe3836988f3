// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/settings"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/pkg/whatsapp"
)

var (
	// ErrCartEmpty is returned when checkout is attempted with no items
	ErrCartEmpty = errors.New("cart is empty")
)

// CartStore is the slice of the cart service checkout needs
type CartStore interface {
	GetByOwner(ownerID string) (*cart.Cart, error)
	Clear(cartID string) (*cart.Cart, error)
}

// CustomerStore resolves the buyer's profile
type CustomerStore interface {
	GetProfile(userID string) (*user.User, error)
}

// GarmentStore resolves garment references on cart lines
type GarmentStore interface {
	GetGarment(id string) (*catalog.Garment, error)
}

// LookupStore resolves the reference entities on cart lines
type LookupStore interface {
	GetMaterial(id string) (*catalog.Material, error)
	GetColor(id string) (*catalog.Color, error)
	GetSize(id string) (*catalog.Size, error)
}

// ContactStore provides the seller's WhatsApp contact
type ContactStore interface {
	GetContact() (*settings.WhatsAppContact, error)
}

// Service turns a cart into a WhatsApp order link
type Service struct {
	cartService     CartStore
	userService     CustomerStore
	garmentService  GarmentStore
	lookupService   LookupStore
	settingsService ContactStore
	config          *config.Config
	logger          *logrus.Logger
}

// NewService creates a new checkout service
func NewService(
	cartService CartStore,
	userService CustomerStore,
	garmentService GarmentStore,
	lookupService LookupStore,
	settingsService ContactStore,
	cfg *config.Config,
	logger *logrus.Logger,
) *Service {
	return &Service{
		cartService:     cartService,
		userService:     userService,
		garmentService:  garmentService,
		lookupService:   lookupService,
		settingsService: settingsService,
		config:          cfg,
		logger:          logger,
	}
}

// Result is what a successful checkout hands back to the client
type Result struct {
	Link    string  `json:"link"`
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}

// Checkout composes the order message for the owner's cart, builds the
// wa.me deep link and clears the cart. An empty or missing cart aborts
// before any state changes.
func (s *Service) Checkout(ownerID string) (*Result, error) {
	c, err := s.cartService.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrCartEmpty
	}

	customer, err := s.userService.GetProfile(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	contact, err := s.settingsService.GetContact()
	if err != nil {
		return nil, fmt.Errorf("failed to load seller contact: %w", err)
	}

	lines := make([]Line, 0, len(c.Items))
	for _, item := range c.Items {
		line, err := s.resolveLine(item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	message := ComposeOrderMessage(lines, Customer{
		NationalID: customer.NationalID,
		Name:       customer.Name,
		Phone:      customer.Phone,
		Email:      customer.Email,
		Address:    customer.Address,
	})
	link := whatsapp.BuildDeepLink(contact.CountryCode, contact.PhoneNumber, message)

	// Total from the same snapshot the message was composed from, so the
	// two cannot diverge under a concurrent cart mutation.
	total := c.Items.Total()

	if _, err := s.cartService.Clear(c.ID); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"items":    len(lines),
		"total":    total,
	}).Info("Checkout completed")

	return &Result{
		Link:    link,
		Message: message,
		Total:   total,
	}, nil
}

// resolveLine looks up the display names referenced by a cart item.
// A reference that no longer exists renders as a placeholder instead of
// failing the whole checkout.
func (s *Service) resolveLine(item cart.Item) (Line, error) {
	line := Line{Item: item}

	if item.GarmentID != "" {
		garment, err := s.garmentService.GetGarment(item.GarmentID)
		switch {
		case err == nil:
			line.Garment = garment.Name
		case !errors.Is(err, catalog.ErrNotFound):
			return Line{}, fmt.Errorf("failed to resolve garment: %w", err)
		}
	}
	if item.MaterialID != "" {
		material, err := s.lookupService.GetMaterial(item.MaterialID)
		switch {
		case err == nil:
			line.Material = material.Name
		case !errors.Is(err, catalog.ErrNotFound):
			return Line{}, fmt.Errorf("failed to resolve material: %w", err)
		}
	}
	if item.ColorID != "" {
		color, err := s.lookupService.GetColor(item.ColorID)
		switch {
		case err == nil:
			line.Color = color.Name
		case !errors.Is(err, catalog.ErrNotFound):
			return Line{}, fmt.Errorf("failed to resolve color: %w", err)
		}
	}
	if item.SizeID != "" {
		size, err := s.lookupService.GetSize(item.SizeID)
		switch {
		case err == nil:
			line.Size = size.Name
		case !errors.Is(err, catalog.ErrNotFound):
			return Line{}, fmt.Errorf("failed to resolve size: %w", err)
		}
	}

	return line, nil
}
