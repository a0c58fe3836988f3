// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

func TestCartErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, cartErrorStatus(cart.ErrCartNotFound))
	assert.Equal(t, http.StatusNotFound, cartErrorStatus(cart.ErrItemNotFound))
	assert.Equal(t, http.StatusUnauthorized, cartErrorStatus(cart.ErrNotAuthn))
	assert.Equal(t, http.StatusBadRequest, cartErrorStatus(cart.ErrInvalidQuantity))

	// Wrapped sentinels keep their mapping
	wrapped := fmt.Errorf("failed to update cart: %w", cart.ErrItemNotFound)
	assert.Equal(t, http.StatusNotFound, cartErrorStatus(wrapped))

	// An unrecognized backend failure is a server error, not a caller mistake
	backend := fmt.Errorf("failed to update cart: connection refused")
	assert.Equal(t, http.StatusInternalServerError, cartErrorStatus(backend))
}
