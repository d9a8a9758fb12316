package employees

import (
	"context"
	"testing"

	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

type stubAccounts struct {
	users   []upstream.User
	listErr error
	created []upstream.UpsertUserRequest
	deleted []int64
}

func (s *stubAccounts) ListUsers(_ context.Context) ([]upstream.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.users, nil
}

func (s *stubAccounts) CreateUser(_ context.Context, req upstream.UpsertUserRequest) (*upstream.User, error) {
	s.created = append(s.created, req)
	return &upstream.User{ID: 99, Name: req.Name, Email: req.Email, Role: req.Role, Status: req.Status}, nil
}

func (s *stubAccounts) UpdateUser(_ context.Context, id int64, req upstream.UpsertUserRequest) (*upstream.User, error) {
	return &upstream.User{ID: id, Name: req.Name, Email: req.Email, Role: req.Role, Status: req.Status}, nil
}

func (s *stubAccounts) DeleteUser(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func directory() []upstream.User {
	return []upstream.User{
		{ID: 1, Name: "Alice Admin", Email: "alice@example.com", Role: "admin", Status: true},
		{ID: 2, Name: "Bob Cashier", Email: "bob@example.com", Role: "cashier", Status: true},
		{ID: 3, Name: "Carol Staff", Email: "carol@shop.test", Role: "staff", Status: false},
	}
}

func TestListFiltersByNameAndEmail(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubAccounts{users: directory()})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(all))
	}

	byName, err := svc.List(context.Background(), "bob")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != 2 {
		t.Fatalf("expected Bob only, got %+v", byName)
	}

	byEmail, err := svc.List(context.Background(), "shop.test")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].ID != 3 {
		t.Fatalf("expected Carol only, got %+v", byEmail)
	}
}

func TestCreateRequiresPassword(t *testing.T) {
	t.Parallel()

	source := &stubAccounts{}
	svc, err := NewService(source)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Create(context.Background(), upstream.UpsertUserRequest{
		Name: "Dora", Email: "dora@example.com", Role: "cashier", Status: true,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(source.created) != 0 {
		t.Fatalf("upstream should not be called without a password")
	}

	created, err := svc.Create(context.Background(), upstream.UpsertUserRequest{
		Name: "Dora", Email: "dora@example.com", Role: "cashier", Status: true, Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 99 || len(source.created) != 1 {
		t.Fatalf("expected account created upstream, got %+v", created)
	}
}

func TestDeleteDelegates(t *testing.T) {
	t.Parallel()

	source := &stubAccounts{}
	svc, err := NewService(source)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(source.deleted) != 1 || source.deleted[0] != 3 {
		t.Fatalf("expected delete forwarded, got %v", source.deleted)
	}
}
