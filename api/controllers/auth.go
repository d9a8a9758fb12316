package controllers

import (
	"net/http"

	"github.com/paypointhq/pos-register/api/middleware"
	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/api/validators"
	"github.com/paypointhq/pos-register/internal/auth"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"token":    session.Token,
			"operator": session.Operator,
		})
	}
}

// AuthMe returns the authenticated operator's current profile.
func AuthMe(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		operatorID := middleware.OperatorIDFromContext(r.Context())
		if operatorID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing operator"))
			return
		}

		user, err := svc.Me(r.Context(), operatorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// AuthLogout revokes the caller's session and drops their open cart.
func AuthLogout(svc auth.Service, carts cartDropper, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		accessID := middleware.AccessIDFromContext(r.Context())
		if accessID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session"))
			return
		}

		if err := svc.Logout(r.Context(), accessID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if carts != nil {
			if operatorID := middleware.OperatorIDFromContext(r.Context()); operatorID != "" {
				carts.Drop(operatorID)
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

type cartDropper interface {
	Drop(operatorID string)
}
