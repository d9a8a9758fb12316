package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/paypointhq/pos-register/api/middleware"
	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/api/validators"
	"github.com/paypointhq/pos-register/internal/checkout"
	"github.com/paypointhq/pos-register/internal/invoice"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
)

type checkoutRequest struct {
	Buyer struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email" validate:"omitempty,email"`
		TaxID string `json:"tax_id"`
	} `json:"buyer"`
}

// Checkout completes the sale and streams the invoice PDF back. Receipt
// metadata rides in response headers so the body stays a plain download.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		operatorID := middleware.OperatorIDFromContext(r.Context())
		if operatorID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing operator"))
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Checkout(r.Context(), operatorID, checkout.Input{
			Buyer: invoice.Buyer{
				Name:  body.Buyer.Name,
				Phone: body.Buyer.Phone,
				Email: body.Buyer.Email,
				TaxID: body.Buyer.TaxID,
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.Filename))
		w.Header().Set("X-Invoice-Number", receipt.InvoiceNumber)
		w.Header().Set("X-Submit-Persisted", strconv.FormatBool(receipt.Persisted))
		if receipt.OrderID != nil {
			w.Header().Set("X-Order-Id", strconv.FormatInt(*receipt.OrderID, 10))
		}
		if receipt.JournalID != nil {
			w.Header().Set("X-Journal-Entry", strconv.FormatUint(uint64(*receipt.JournalID), 10))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(receipt.PDF)
	}
}
