package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/freemanindumentaria/storefront-backend/internal/cart"
	"github.com/freemanindumentaria/storefront-backend/internal/catalog"
)

func sampleCart() cart.Cart {
	return cart.Cart{Lines: []cart.Line{
		{
			Product:  cart.ProductSnapshot{ID: "tshirt-white", Name: "Remera Lisa Blanca", Price: 8500},
			Color:    catalog.ColorWhite,
			Size:     catalog.SizeM,
			Quantity: 2,
		},
		{
			Product:  cart.ProductSnapshot{ID: "tshirt-black", Name: "Remera Lisa Negra", Price: 8500},
			Color:    catalog.ColorBlack,
			Size:     catalog.SizeL,
			Quantity: 1,
		},
	}}
}

func TestComposeMessagePickup(t *testing.T) {
	t.Parallel()

	msg := ComposeMessage(sampleCart(), Selection{Method: MethodPickup})

	for _, want := range []string{
		"¡Hola! Quiero encargar estas remeras:",
		"• Remera Lisa Blanca - Blanca - Talle M x2 = $17000",
		"• Remera Lisa Negra - Negra - Talle L x1 = $8500",
		"*Subtotal: $25500*",
		"Retiro en: San Alberto 1336, Barrio San Vicente",
		"*Total: $25500*",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Envío a domicilio") {
		t.Fatalf("pickup message must not mention delivery:\n%s", msg)
	}
}

func TestComposeMessageDelivery(t *testing.T) {
	t.Parallel()

	sel := Selection{Method: MethodDelivery, Address: "Av. Colón 100, Córdoba", Fee: 2000}
	msg := ComposeMessage(sampleCart(), sel)

	for _, want := range []string{
		"📦 *Envío a domicilio a Av. Colón 100, Córdoba* ($2000)",
		"*Subtotal: $25500*",
		"*Total: $27500*",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Retiro en") {
		t.Fatalf("delivery message must not mention pickup:\n%s", msg)
	}
}

func TestGrandTotal(t *testing.T) {
	t.Parallel()

	c := sampleCart()
	if got := GrandTotal(c, Selection{Method: MethodPickup}); got != 25500 {
		t.Fatalf("pickup total %d", got)
	}
	if got := GrandTotal(c, Selection{Method: MethodDelivery, Fee: 3000}); got != 28500 {
		t.Fatalf("delivery total %d", got)
	}
}

func TestWhatsAppURL(t *testing.T) {
	t.Parallel()

	link := WhatsAppURL(" 5493511234567 ", "hola ¿qué tal?")
	if !strings.HasPrefix(link, "https://wa.me/5493511234567?text=") {
		t.Fatalf("unexpected link %q", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link must parse: %v", err)
	}
	if got := parsed.Query().Get("text"); got != "hola ¿qué tal?" {
		t.Fatalf("text round-trip failed: %q", got)
	}
}

func TestMethodValid(t *testing.T) {
	t.Parallel()

	if !MethodPickup.Valid() || !MethodDelivery.Valid() {
		t.Fatal("known methods must be valid")
	}
	if Method("courier").Valid() {
		t.Fatal("unknown method must be invalid")
	}
}
