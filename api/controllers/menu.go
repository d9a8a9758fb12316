package controllers

import (
	"net/http"

	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/internal/menu"
	"github.com/paypointhq/pos-register/pkg/logger"
)

// Menu serves the sidebar navigation for the operator's UI.
func Menu(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.Sidebar(r.Context())
		responses.WriteSuccess(w, map[string]any{"menu": items})
	}
}
