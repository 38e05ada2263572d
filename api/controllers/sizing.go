package controllers

import (
	"net/http"

	"github.com/freemanindumentaria/storefront-backend/api/responses"
	"github.com/freemanindumentaria/storefront-backend/api/validators"
	"github.com/freemanindumentaria/storefront-backend/internal/catalog"
	"github.com/freemanindumentaria/storefront-backend/internal/sizing"
	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
)

// SizingRecommend maps height, weight and build to a suggested size with its
// chart measurements.
func SizingRecommend(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload recommendRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		build := sizing.Build(payload.Build)
		if !build.Valid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "build must be one of: small, medium, large"))
			return
		}

		size, ok := sizing.Recommend(payload.HeightCM, payload.WeightKG, build)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "height must be 140-220 cm and weight 40-150 kg"))
			return
		}

		resp := recommendResponse{Size: size}
		if measurements, found := sizing.Measurements(size); found {
			resp.Measurements = &measurements
		}

		responses.WriteSuccess(w, resp)
	}
}

type recommendRequest struct {
	HeightCM float64 `json:"height_cm" validate:"required"`
	WeightKG float64 `json:"weight_kg" validate:"required"`
	Build    string  `json:"build" validate:"required,oneof=small medium large"`
}

type recommendResponse struct {
	Size         catalog.Size              `json:"size"`
	Measurements *catalog.SizeMeasurements `json:"measurements,omitempty"`
}
