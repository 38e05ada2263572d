package controllers

import (
	"net/http"

	"github.com/freemanindumentaria/storefront-backend/api/middleware"
	"github.com/freemanindumentaria/storefront-backend/api/responses"
	"github.com/freemanindumentaria/storefront-backend/api/validators"
	"github.com/freemanindumentaria/storefront-backend/internal/delivery"
	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
)

// DeliveryQuote estimates the home-delivery fee for a destination address.
func DeliveryQuote(svc delivery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), middleware.SessionIDFromContext(r.Context()), payload.Address)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

type quoteRequest struct {
	Address string `json:"address" validate:"required"`
}
