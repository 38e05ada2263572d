package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/freemanindumentaria/storefront-backend/internal/cart"
	"github.com/freemanindumentaria/storefront-backend/internal/catalog"
)

// Method selects how the order reaches the buyer.
type Method string

const (
	MethodPickup   Method = "pickup"
	MethodDelivery Method = "delivery"
)

// Valid reports whether the method is one of the known choices.
func (m Method) Valid() bool {
	return m == MethodPickup || m == MethodDelivery
}

// Selection carries the chosen delivery method. Address and Fee are only
// meaningful for MethodDelivery, after a successful quote.
type Selection struct {
	Method  Method
	Address string
	Fee     int
}

const (
	greeting   = "¡Hola! Quiero encargar estas remeras:"
	pickupLine = "📍 *Retiro en: San Alberto 1336, Barrio San Vicente*"
)

// ComposeMessage renders the cart and delivery choice into the order text
// sent over the messaging deep-link. It is pure formatting; callers decide
// whether an order should be sent at all.
func ComposeMessage(c cart.Cart, sel Selection) string {
	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")

	for _, line := range c.Lines {
		fmt.Fprintf(&b, "• %s - %s - Talle %s x%d = $%d\n",
			line.Product.Name,
			catalog.ColorName(line.Color),
			line.Size,
			line.Quantity,
			line.Total(),
		)
	}

	subtotal := c.Subtotal()
	total := subtotal

	fmt.Fprintf(&b, "\n*Subtotal: $%d*\n", subtotal)

	if sel.Method == MethodDelivery {
		total += sel.Fee
		fmt.Fprintf(&b, "📦 *Envío a domicilio a %s* ($%d)\n", sel.Address, sel.Fee)
	} else {
		b.WriteString(pickupLine)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "*Total: $%d*", total)
	return b.String()
}

// GrandTotal returns what the buyer pays for the given selection.
func GrandTotal(c cart.Cart, sel Selection) int {
	if sel.Method == MethodDelivery {
		return c.Subtotal() + sel.Fee
	}
	return c.Subtotal()
}

// WhatsAppURL builds the deep-link that opens the chat with the order text
// pre-filled. The message is passed through exactly as composed.
func WhatsAppURL(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", strings.TrimSpace(phone), url.QueryEscape(message))
}
