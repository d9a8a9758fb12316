package upstream

import (
	"context"
	"net/http"
	"strings"

	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
)

// LoginRequest carries the operator credentials verified by the platform.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials against the platform and returns the operator account.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*User, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	var user User
	if err := c.do(ctx, http.MethodPost, "/login", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
