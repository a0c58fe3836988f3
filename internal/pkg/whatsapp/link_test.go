package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDeepLink(t *testing.T) {
	link := BuildDeepLink("+57", "300 123 4567", "Hola, quiero comprar")
	assert.Equal(t, "https://wa.me/573001234567?text=Hola%2C+quiero+comprar", link)
}

func TestBuildDeepLink_NoMessage(t *testing.T) {
	link := BuildDeepLink("57", "3001234567", "")
	assert.Equal(t, "https://wa.me/573001234567", link)
}

func TestNormalizeNumber_StripsFormatting(t *testing.T) {
	assert.Equal(t, "573001234567", NormalizeNumber("(+57)", "300-123-4567"))
}
