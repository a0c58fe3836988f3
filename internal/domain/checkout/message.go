// internal/domain/checkout/message.go
package checkout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// UnknownLabel substitutes display names whose reference no longer resolves
const UnknownLabel = "Desconocido"

// Line is a cart line with its references resolved to display names
type Line struct {
	Item     cart.Item
	Garment  string
	Material string
	Color    string
	Size     string
}

// Customer carries the identity fields rendered into the order message
type Customer struct {
	NationalID string
	Name       string
	Phone      string
	Email      string
	Address    string
}

// ComposeOrderMessage renders the order summary sent to the seller over
// WhatsApp. The copy is Spanish because that is what the seller reads.
func ComposeOrderMessage(lines []Line, customer Customer) string {
	var b strings.Builder

	b.WriteString("Hola, quiero comprar los siguientes productos:\n")
	b.WriteString("\n------ Productos ------\n")

	total := decimal.Zero
	for _, line := range lines {
		item := line.Item
		b.WriteString("\n-- Producto --\n")
		fmt.Fprintf(&b, "%s: %d x $%s\n", item.Name, item.Quantity, formatPrice(item.UnitPrice))
		fmt.Fprintf(&b, "Prenda: %s, Material: %s, Color: %s, Talla: %s, Género: %s\n",
			orUnknown(line.Garment), orUnknown(line.Material), orUnknown(line.Color),
			orUnknown(line.Size), item.Gender)

		lineTotal := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
	}

	b.WriteString("\n\n------ Cliente ------")
	fmt.Fprintf(&b, "\nCedula: %s", customer.NationalID)
	fmt.Fprintf(&b, "\nNombre: %s", customer.Name)
	fmt.Fprintf(&b, "\nTelefono: %s", customer.Phone)
	fmt.Fprintf(&b, "\nCorreo: %s", customer.Email)
	fmt.Fprintf(&b, "\nDireccion: %s", customer.Address)

	b.WriteString("\n\n------ Total ------")
	totalValue, _ := total.Float64()
	fmt.Fprintf(&b, "\nTotal: $%s\nGracias!", formatPrice(totalValue))

	return b.String()
}

func orUnknown(name string) string {
	if name == "" {
		return UnknownLabel
	}
	return name
}

// formatPrice prints prices without trailing zeros, matching how the
// storefront shows them: 10 not 10.00, 10.5 not 10.50
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
