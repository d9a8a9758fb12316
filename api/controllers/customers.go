package controllers

import (
	"net/http"

	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/api/validators"
	"github.com/paypointhq/pos-register/internal/customers"
	"github.com/paypointhq/pos-register/pkg/logger"
)

// CustomersList serves one page of the platform customer directory.
func CustomersList(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Page(r.Context(), page, validators.ParseQueryString(r, "search"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
