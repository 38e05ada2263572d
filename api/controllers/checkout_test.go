package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCheckoutWhatsAppPickup(t *testing.T) {
	svc := &stubCartService{cart: testCartWith(2)}
	handler := CheckoutWhatsApp(svc, "5491112345678", nil)

	body := `{"method":"pickup"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout/whatsapp", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data checkoutResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(envelope.Data.URL, "https://wa.me/5491112345678?text=") {
		t.Fatalf("unexpected deep-link %q", envelope.Data.URL)
	}
	if !strings.Contains(envelope.Data.Message, "Retiro en") {
		t.Fatalf("expected pickup line in message:\n%s", envelope.Data.Message)
	}
	if envelope.Data.Total != 17000 {
		t.Fatalf("expected total 17000 got %d", envelope.Data.Total)
	}
}

func TestCheckoutWhatsAppDelivery(t *testing.T) {
	svc := &stubCartService{cart: testCartWith(1)}
	handler := CheckoutWhatsApp(svc, "5491112345678", nil)

	body := `{"method":"delivery","address":"Av. Colón 1500, Córdoba","fee":2000}`
	req := httptest.NewRequest(http.MethodPost, "/checkout/whatsapp", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data checkoutResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 10500 {
		t.Fatalf("expected total 10500 got %d", envelope.Data.Total)
	}
	if !strings.Contains(envelope.Data.Message, "Envío a domicilio") {
		t.Fatalf("expected delivery line in message:\n%s", envelope.Data.Message)
	}
}

func TestCheckoutWhatsAppEmptyCart(t *testing.T) {
	handler := CheckoutWhatsApp(&stubCartService{}, "5491112345678", nil)

	body := `{"method":"pickup"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout/whatsapp", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCheckoutWhatsAppDeliveryNeedsQuote(t *testing.T) {
	handler := CheckoutWhatsApp(&stubCartService{cart: testCartWith(1)}, "5491112345678", nil)

	body := `{"method":"delivery","address":"Av. Colón 1500, Córdoba"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout/whatsapp", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
