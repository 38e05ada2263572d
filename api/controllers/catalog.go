package controllers

import (
	"net/http"

	"github.com/freemanindumentaria/storefront-backend/api/responses"
	"github.com/freemanindumentaria/storefront-backend/internal/catalog"
)

// CatalogProducts serves the fixed product list.
func CatalogProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"products": catalog.Products()})
	}
}

// CatalogSizeChart serves the measurement table shown in the sizing modal.
func CatalogSizeChart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"size_chart": catalog.SizeChart()})
	}
}
