package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/api/validators"
	"github.com/paypointhq/pos-register/internal/catalog"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

// CatalogProducts lists products for the register grid. When the platform
// is unreachable the response is served from the built-in fallback set and
// flagged as degraded.
func CatalogProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := catalog.Query{
			Search:   validators.ParseQueryString(r, "search"),
			Category: validators.ParseQueryString(r, "category"),
		}

		products, degraded, err := svc.Products(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"degraded": degraded,
		})
	}
}

func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, degraded, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"categories": categories,
			"degraded":   degraded,
		})
	}
}

type createProductRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	Price      string `json:"price" validate:"required"`
	Stock      int    `json:"stock" validate:"gte=0"`
	SKU        string `json:"sku"`
	Image      string `json:"image"`
}

func CatalogCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), upstream.CreateProductRequest{
			Name:       body.Name,
			CategoryID: body.CategoryID,
			Price:      body.Price,
			Stock:      body.Stock,
			SKU:        body.SKU,
			Status:     true,
			Image:      body.Image,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func CatalogDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
