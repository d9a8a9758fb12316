package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/paypointhq/pos-register/api/middleware"
	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/api/validators"
	"github.com/paypointhq/pos-register/internal/cart"
	"github.com/paypointhq/pos-register/internal/catalog"
	"github.com/paypointhq/pos-register/pkg/config"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
)

type cartLineView struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Image     string          `json:"image,omitempty"`
}

type cartTotalsView struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

type cartView struct {
	Lines  []cartLineView `json:"lines"`
	Totals cartTotalsView `json:"totals"`
}

func renderCart(current *cart.Cart, sale config.SaleConfig) cartView {
	lines := current.Lines()
	view := cartView{Lines: make([]cartLineView, 0, len(lines))}
	for _, line := range lines {
		view.Lines = append(view.Lines, cartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().Round(2),
			Image:     line.Image,
		})
	}
	totals := current.Totals(sale.TaxRateDecimal())
	view.Totals = cartTotalsView{
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Discount: totals.Discount,
		Total:    totals.Total,
	}
	return view
}

func operatorCart(r *http.Request, carts *cart.Registry) (*cart.Cart, error) {
	operatorID := middleware.OperatorIDFromContext(r.Context())
	if operatorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing operator")
	}
	return carts.ForOperator(operatorID), nil
}

// CartGet returns the operator's open cart with derived totals.
func CartGet(carts *cart.Registry, sale config.SaleConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := operatorCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, renderCart(current, sale))
	}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// CartAddItem resolves the product from the catalog and adds it to the
// cart. Prices always come from the catalog, never from the client.
func CartAddItem(carts *cart.Registry, products catalog.Service, sale config.SaleConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := operatorCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body addItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listed, _, err := products.Products(r.Context(), catalog.Query{})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var found *catalog.Product
		for i := range listed {
			if listed[i].ID == body.ProductID {
				found = &listed[i]
				break
			}
		}
		if found == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		current.AddItem(cart.Product{
			ID:    found.ID,
			Name:  found.Name,
			Price: found.Price,
			Image: found.Image,
		})
		responses.WriteSuccess(w, renderCart(current, sale))
	}
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartSetQuantity sets a line's quantity. A quantity below one removes
// the line, matching the register's minus button.
func CartSetQuantity(carts *cart.Registry, sale config.SaleConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := operatorCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := validators.ParsePathID(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current.SetQuantity(productID, body.Quantity)
		responses.WriteSuccess(w, renderCart(current, sale))
	}
}

// CartRemoveItem deletes a line from the cart.
func CartRemoveItem(carts *cart.Registry, sale config.SaleConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := operatorCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := validators.ParsePathID(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current.RemoveItem(productID)
		responses.WriteSuccess(w, renderCart(current, sale))
	}
}

// CartClear empties the cart and resets the discount.
func CartClear(carts *cart.Registry, sale config.SaleConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := operatorCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		current.Clear()
		responses.WriteSuccess(w, renderCart(current, sale))
	}
}

type setDiscountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// CartSetDiscount applies a flat discount amount to the sale.
func CartSetDiscount(carts *cart.Registry, sale config.SaleConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := operatorCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setDiscountRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		amount, err := decimal.NewFromString(body.Amount)
		if err != nil || amount.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "discount must be a non-negative amount"))
			return
		}

		current.SetDiscount(amount)
		responses.WriteSuccess(w, renderCart(current, sale))
	}
}
