// internal/domain/checkout/message_test.go
package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

func TestComposeOrderMessage(t *testing.T) {
	lines := []Line{
		{
			Item: cart.Item{
				ProductID: "p1",
				Name:      "Camisa clásica",
				Gender:    "Hombre",
				Quantity:  2,
				UnitPrice: 10,
			},
			Garment:  "Camisa",
			Material: "Algodón",
			Color:    "Azul",
			Size:     "M",
		},
		{
			Item: cart.Item{
				ProductID: "p2",
				Name:      "Falda",
				Gender:    "Mujer",
				Quantity:  1,
				UnitPrice: 5.5,
			},
			Garment:  "Falda",
			Material: "Lino",
			Color:    "Rojo",
			Size:     "S",
		},
	}
	customer := Customer{
		NationalID: "1234567890",
		Name:       "Ana Pérez",
		Phone:      "3001234567",
		Email:      "ana@example.com",
		Address:    "Calle 1 # 2-3",
	}

	message := ComposeOrderMessage(lines, customer)

	assert.True(t, strings.HasPrefix(message, "Hola, quiero comprar los siguientes productos:\n"))
	assert.Contains(t, message, "------ Productos ------")
	assert.Contains(t, message, "Camisa clásica: 2 x $10\n")
	assert.Contains(t, message, "Prenda: Camisa, Material: Algodón, Color: Azul, Talla: M, Género: Hombre")
	assert.Contains(t, message, "Falda: 1 x $5.5\n")
	assert.Contains(t, message, "Cedula: 1234567890")
	assert.Contains(t, message, "Nombre: Ana Pérez")
	assert.Contains(t, message, "Direccion: Calle 1 # 2-3")
	assert.Contains(t, message, "Total: $25.5\nGracias!")
	assert.True(t, strings.HasSuffix(message, "Gracias!"))
}

func TestComposeOrderMessage_UnresolvedReferences(t *testing.T) {
	lines := []Line{
		{
			Item: cart.Item{
				ProductID: "p1",
				Name:      "Camisa",
				Gender:    "Hombre",
				Quantity:  1,
				UnitPrice: 20,
			},
		},
	}

	message := ComposeOrderMessage(lines, Customer{Name: "Ana"})

	assert.Contains(t, message, "Prenda: Desconocido, Material: Desconocido, Color: Desconocido, Talla: Desconocido")
}

func TestComposeOrderMessage_TotalIsExact(t *testing.T) {
	lines := []Line{
		{Item: cart.Item{ProductID: "p1", Name: "A", Quantity: 3, UnitPrice: 0.1}},
		{Item: cart.Item{ProductID: "p2", Name: "B", Quantity: 1, UnitPrice: 0.2}},
	}

	message := ComposeOrderMessage(lines, Customer{})

	assert.Contains(t, message, "Total: $0.5\n")
}
