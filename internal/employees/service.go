package employees

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

type accountSource interface {
	ListUsers(ctx context.Context) ([]upstream.User, error)
	CreateUser(ctx context.Context, req upstream.UpsertUserRequest) (*upstream.User, error)
	UpdateUser(ctx context.Context, id int64, req upstream.UpsertUserRequest) (*upstream.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Service manages the platform accounts that staff the registers.
type Service interface {
	List(ctx context.Context, search string) ([]upstream.User, error)
	Create(ctx context.Context, req upstream.UpsertUserRequest) (*upstream.User, error)
	Update(ctx context.Context, id int64, req upstream.UpsertUserRequest) (*upstream.User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	source accountSource
}

// NewService builds the employee directory service.
func NewService(source accountSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("account source required")
	}
	return &service{source: source}, nil
}

// List returns platform accounts, optionally narrowed by a name or email search.
func (s *service) List(ctx context.Context, search string) ([]upstream.User, error) {
	users, err := s.source.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return users, nil
	}
	matched := make([]upstream.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) || strings.Contains(strings.ToLower(u.Email), needle) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// Create registers a new account. A password is required here even though
// the platform treats it as optional on update.
func (s *service) Create(ctx context.Context, req upstream.UpsertUserRequest) (*upstream.User, error) {
	if req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required for new accounts")
	}
	return s.source.CreateUser(ctx, req)
}

func (s *service) Update(ctx context.Context, id int64, req upstream.UpsertUserRequest) (*upstream.User, error) {
	return s.source.UpdateUser(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.source.DeleteUser(ctx, id)
}
