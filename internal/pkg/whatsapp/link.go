// internal/pkg/whatsapp/link.go
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildDeepLink builds a wa.me deep link that opens a chat with the seller
// and the given message pre-filled. The returned URL is handed to the client
// as-is; nothing is read back from WhatsApp.
func BuildDeepLink(countryCode, phoneNumber, message string) string {
	target := NormalizeNumber(countryCode, phoneNumber)
	link := fmt.Sprintf("https://wa.me/%s", target)
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// NormalizeNumber joins country code and phone number, keeping digits only.
func NormalizeNumber(countryCode, phoneNumber string) string {
	return digitsOnly(countryCode) + digitsOnly(phoneNumber)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
