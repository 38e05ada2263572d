package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/freemanindumentaria/storefront-backend/api/middleware"
	"github.com/freemanindumentaria/storefront-backend/api/responses"
	"github.com/freemanindumentaria/storefront-backend/api/validators"
	cartsvc "github.com/freemanindumentaria/storefront-backend/internal/cart"
	"github.com/freemanindumentaria/storefront-backend/internal/catalog"
	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
)

// CartFetch returns the session's cart as currently persisted.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toCartResponse(cart))
	}
}

// CartAddItem appends or merges a (product, color, size) selection.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddItem(r.Context(), middleware.SessionIDFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toCartResponse(cart))
	}
}

// CartRemoveItem removes the line at the given position.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		index, err := lineIndexFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.RemoveItem(r.Context(), middleware.SessionIDFromContext(r.Context()), index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toCartResponse(cart))
	}
}

// CartUpdateQuantity sets a line's quantity to an absolute value. Zero removes
// the line.
func CartUpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		index, err := lineIndexFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.UpdateQuantity(r.Context(), middleware.SessionIDFromContext(r.Context()), index, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toCartResponse(cart))
	}
}

// CartClear empties the session's cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Clear(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toCartResponse(cart))
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (req addItemRequest) toInput() (cartsvc.AddItemInput, error) {
	product, ok := catalog.ProductByID(strings.TrimSpace(req.ProductID))
	if !ok {
		return cartsvc.AddItemInput{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	color := catalog.Color(strings.TrimSpace(req.Color))
	if !product.HasColor(color) {
		return cartsvc.AddItemInput{}, pkgerrors.New(pkgerrors.CodeValidation, "color not offered for this product")
	}

	size := catalog.Size(strings.ToUpper(strings.TrimSpace(req.Size)))
	if !product.HasSize(size) {
		return cartsvc.AddItemInput{}, pkgerrors.New(pkgerrors.CodeValidation, "size not offered for this product")
	}

	return cartsvc.AddItemInput{
		Product:  product,
		Color:    color,
		Size:     size,
		Quantity: req.Quantity,
	}, nil
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

type cartLineResponse struct {
	Product  cartsvc.ProductSnapshot `json:"product"`
	Color    catalog.Color           `json:"color"`
	Size     catalog.Size            `json:"size"`
	Quantity int                     `json:"quantity"`
	Total    int                     `json:"total"`
}

type cartResponse struct {
	Lines    []cartLineResponse `json:"lines"`
	Subtotal int                `json:"subtotal"`
}

func toCartResponse(cart cartsvc.Cart) cartResponse {
	lines := make([]cartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, cartLineResponse{
			Product:  line.Product,
			Color:    line.Color,
			Size:     line.Size,
			Quantity: line.Quantity,
			Total:    line.Total(),
		})
	}
	return cartResponse{Lines: lines, Subtotal: cart.Subtotal()}
}

func lineIndexFromURL(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid line index")
	}
	return index, nil
}
