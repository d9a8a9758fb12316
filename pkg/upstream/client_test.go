package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paypointhq/pos-register/pkg/config"
	"github.com/paypointhq/pos-register/pkg/enums"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.UpstreamConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestLoginSendsAPIKeyAndDecodesUser(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-API-KEY"); got != "test-key" {
			t.Fatalf("expected api key header, got %q", got)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login request: %v", err)
		}
		if req.Email != "admin@paypoint.example" {
			t.Fatalf("unexpected email %q", req.Email)
		}
		_ = json.NewEncoder(w).Encode(User{
			ID:    7,
			Name:  "Store Admin",
			Email: req.Email,
			Role:  enums.OperatorRoleAdmin,
		})
	}))

	user, err := client.Login(context.Background(), LoginRequest{
		Email:    "admin@paypoint.example",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != 7 || user.Role != enums.OperatorRoleAdmin {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server should not be called")
	}))

	_, err := client.Login(context.Background(), LoginRequest{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   pkgerrors.Code
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: pkgerrors.CodeUnauthorized},
		{name: "not found", status: http.StatusNotFound, want: pkgerrors.CodeNotFound},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: pkgerrors.CodeValidation},
		{name: "throttled", status: http.StatusTooManyRequests, want: pkgerrors.CodeRateLimit},
		{name: "server error", status: http.StatusBadGateway, want: pkgerrors.CodeDependency},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
			}))

			_, err := client.ListProducts(context.Background())
			typed := pkgerrors.As(err)
			if typed == nil {
				t.Fatalf("expected typed error, got %v", err)
			}
			if typed.Code() != tc.want {
				t.Fatalf("expected code %s, got %s", tc.want, typed.Code())
			}
		})
	}
}

func TestListProductsUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []Product{
				{ID: 1, Name: "Espresso Beans 1kg", Price: "12.50", Stock: 4, Status: true},
				{ID: 2, Name: "Paper Cups", Price: "3.20", Stock: 120, Status: true},
			},
		})
	}))

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Price != "12.50" {
		t.Fatalf("price should stay a string, got %q", products[0].Price)
	}
}

func TestSubmitOrderReturnsAssignedID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders/" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode order request: %v", err)
		}
		if req.PaymentMethod != "cash" {
			t.Fatalf("unexpected payment method %q", req.PaymentMethod)
		}
		if req.CustomerName != nil {
			t.Fatalf("anonymous sale should carry null customer name")
		}
		_ = json.NewEncoder(w).Encode(OrderResponse{ID: 1042})
	}))

	resp, err := client.SubmitOrder(context.Background(), OrderRequest{
		Items:         []OrderItem{{ProductID: 1, Quantity: 2, Price: 12.5}},
		Subtotal:      25,
		Tax:           2,
		Total:         27,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}
	if resp.ID != 1042 {
		t.Fatalf("expected order id 1042, got %d", resp.ID)
	}
}

func TestSubmitOrderRequiresItems(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server should not be called")
	}))

	_, err := client.SubmitOrder(context.Background(), OrderRequest{PaymentMethod: "cash"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
