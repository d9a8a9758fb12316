package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/paypointhq/pos-register/pkg/enums"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
)

// ListUsers returns the platform accounts eligible to operate registers.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp struct {
		Data []User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetUser fetches a single platform account by ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	var user User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUserRequest carries the fields accepted when creating or updating an account.
type UpsertUserRequest struct {
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Role     enums.OperatorRole `json:"role"`
	Status   bool               `json:"status"`
	Password string             `json:"password,omitempty"`
}

// CreateUser registers a new platform account.
func (c *Client) CreateUser(ctx context.Context, req UpsertUserRequest) (*User, error) {
	if err := validateUpsertUser(req); err != nil {
		return nil, err
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser mutates an existing platform account.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpsertUserRequest) (*User, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := validateUpsertUser(req); err != nil {
		return nil, err
	}
	var user User
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the platform account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

func validateUpsertUser(req UpsertUserRequest) error {
	if req.Name == "" || req.Email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user name and email are required")
	}
	if !req.Role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid role %q", req.Role))
	}
	return nil
}
