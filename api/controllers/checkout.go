package controllers

import (
	"net/http"
	"strings"

	"github.com/freemanindumentaria/storefront-backend/api/middleware"
	"github.com/freemanindumentaria/storefront-backend/api/responses"
	"github.com/freemanindumentaria/storefront-backend/api/validators"
	cartsvc "github.com/freemanindumentaria/storefront-backend/internal/cart"
	"github.com/freemanindumentaria/storefront-backend/internal/checkout"
	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
)

// CheckoutWhatsApp composes the order message for the session's cart and
// returns the chat deep-link. The cart is left untouched; the buyer confirms
// the order in the chat, not here.
func CheckoutWhatsApp(cartService cartsvc.Service, phone string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cartService == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selection, err := payload.toSelection()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := cartService.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if cart.IsEmpty() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))
			return
		}

		message := checkout.ComposeMessage(cart, selection)

		responses.WriteSuccess(w, checkoutResponse{
			Message: message,
			URL:     checkout.WhatsAppURL(phone, message),
			Total:   checkout.GrandTotal(cart, selection),
		})
	}
}

type checkoutRequest struct {
	Method  string `json:"method" validate:"required,oneof=pickup delivery"`
	Address string `json:"address,omitempty"`
	Fee     int    `json:"fee,omitempty" validate:"min=0"`
}

func (req checkoutRequest) toSelection() (checkout.Selection, error) {
	method := checkout.Method(req.Method)
	if !method.Valid() {
		return checkout.Selection{}, pkgerrors.New(pkgerrors.CodeValidation, "method must be pickup or delivery")
	}

	address := strings.TrimSpace(req.Address)
	if method == checkout.MethodDelivery {
		if address == "" {
			return checkout.Selection{}, pkgerrors.New(pkgerrors.CodeValidation, "delivery address is required")
		}
		if req.Fee <= 0 {
			return checkout.Selection{}, pkgerrors.New(pkgerrors.CodeValidation, "delivery fee is required, request a quote first")
		}
	}

	return checkout.Selection{Method: method, Address: address, Fee: req.Fee}, nil
}

type checkoutResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Total   int    `json:"total"`
}
