package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paypointhq/pos-register/api/middleware"
	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/internal/invoice"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
)

// InvoiceDownload serves a previously rendered invoice back to the
// operator who produced it.
func InvoiceDownload(archive *invoice.Archive, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		operatorID := middleware.OperatorIDFromContext(r.Context())
		if operatorID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "operator not authenticated"))
			return
		}

		filename := chi.URLParam(r, "file")
		pdf, found := archive.Get(operatorID, filename)
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "invoice not available"))
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	}
}
