// internal/domain/checkout/service_test.go
package checkout

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/settings"
	"github.com/your-org/storefront-backend/internal/domain/user"
)

type mockCartStore struct {
	cart    *cart.Cart
	err     error
	cleared bool
}

func (m *mockCartStore) GetByOwner(_ string) (*cart.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartStore) Clear(_ string) (*cart.Cart, error) {
	m.cleared = true
	m.cart.Items = cart.ItemList{}
	return m.cart, nil
}

type mockCustomerStore struct {
	user *user.User
}

func (m *mockCustomerStore) GetProfile(_ string) (*user.User, error) {
	return m.user, nil
}

type mockCatalogStore struct {
	garments  map[string]string
	materials map[string]string
	colors    map[string]string
	sizes     map[string]string
}

func (m *mockCatalogStore) GetGarment(id string) (*catalog.Garment, error) {
	if name, ok := m.garments[id]; ok {
		return &catalog.Garment{ID: id, Name: name}, nil
	}
	return nil, catalog.ErrNotFound
}

func (m *mockCatalogStore) GetMaterial(id string) (*catalog.Material, error) {
	if name, ok := m.materials[id]; ok {
		return &catalog.Material{ID: id, Name: name}, nil
	}
	return nil, catalog.ErrNotFound
}

func (m *mockCatalogStore) GetColor(id string) (*catalog.Color, error) {
	if name, ok := m.colors[id]; ok {
		return &catalog.Color{ID: id, Name: name}, nil
	}
	return nil, catalog.ErrNotFound
}

func (m *mockCatalogStore) GetSize(id string) (*catalog.Size, error) {
	if name, ok := m.sizes[id]; ok {
		return &catalog.Size{ID: id, Name: name}, nil
	}
	return nil, catalog.ErrNotFound
}

type mockContactStore struct {
	contact *settings.WhatsAppContact
	err     error
}

func (m *mockContactStore) GetContact() (*settings.WhatsAppContact, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.contact, nil
}

func testService(carts *mockCartStore, refs *mockCatalogStore) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	customers := &mockCustomerStore{user: &user.User{
		ID:         "user-1",
		NationalID: "1234567890",
		Name:       "Ana",
		Email:      "ana@example.com",
		Phone:      "0991234567",
		Address:    "Calle 1",
	}}
	contacts := &mockContactStore{contact: &settings.WhatsAppContact{
		ID:          settings.DefaultID,
		CountryCode: "+593",
		PhoneNumber: "0999999999",
	}}

	return NewService(carts, customers, refs, refs, contacts, &config.Config{}, logger)
}

func TestCheckout_ComposesLinkAndClearsCart(t *testing.T) {
	carts := &mockCartStore{cart: &cart.Cart{
		ID:      "cart-1",
		OwnerID: "user-1",
		Items: cart.ItemList{
			{ProductID: "p1", Name: "Camisa clásica", GarmentID: "g1", MaterialID: "m1", ColorID: "c1", SizeID: "s1", Gender: "M", Quantity: 2, UnitPrice: 10},
			{ProductID: "p2", Name: "Falda", Quantity: 1, UnitPrice: 5.5},
		},
	}}
	refs := &mockCatalogStore{
		garments:  map[string]string{"g1": "Camisa"},
		materials: map[string]string{"m1": "Algodón"},
		colors:    map[string]string{"c1": "Azul"},
		sizes:     map[string]string{"s1": "M"},
	}

	result, err := testService(carts, refs).Checkout("user-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Link, "https://wa.me/5930999999999?text="), result.Link)
	assert.Contains(t, result.Message, "Camisa clásica: 2 x $10")
	assert.Contains(t, result.Message, "Prenda: Camisa, Material: Algodón, Color: Azul, Talla: M, Género: M")
	assert.Contains(t, result.Message, "Total: $25.5")
	assert.Equal(t, 25.5, result.Total)
	assert.True(t, carts.cleared)
}

func TestCheckout_EmptyCartLeavesStateUnchanged(t *testing.T) {
	carts := &mockCartStore{cart: &cart.Cart{ID: "cart-1", OwnerID: "user-1", Items: cart.ItemList{}}}

	_, err := testService(carts, &mockCatalogStore{}).Checkout("user-1")
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.False(t, carts.cleared)
}

func TestCheckout_MissingCartLeavesStateUnchanged(t *testing.T) {
	carts := &mockCartStore{cart: &cart.Cart{}, err: cart.ErrCartNotFound}

	_, err := testService(carts, &mockCatalogStore{}).Checkout("user-1")
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
	assert.False(t, carts.cleared)
}

func TestCheckout_UnresolvedReferencesUsePlaceholder(t *testing.T) {
	carts := &mockCartStore{cart: &cart.Cart{
		ID:      "cart-1",
		OwnerID: "user-1",
		Items: cart.ItemList{
			{ProductID: "p1", Name: "Camisa", GarmentID: "gone", MaterialID: "gone", ColorID: "gone", SizeID: "gone", Quantity: 1, UnitPrice: 10},
		},
	}}

	result, err := testService(carts, &mockCatalogStore{}).Checkout("user-1")
	require.NoError(t, err)
	assert.Contains(t, result.Message, "Prenda: Desconocido, Material: Desconocido, Color: Desconocido, Talla: Desconocido")
	assert.True(t, carts.cleared)
}
