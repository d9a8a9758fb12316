package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authsvc "github.com/paypointhq/pos-register/internal/auth"
	"github.com/paypointhq/pos-register/internal/cart"
	"github.com/paypointhq/pos-register/internal/catalog"
	checkoutsvc "github.com/paypointhq/pos-register/internal/checkout"
	"github.com/paypointhq/pos-register/internal/invoice"
	"github.com/paypointhq/pos-register/internal/journal"
	"github.com/paypointhq/pos-register/internal/orders"
	pkgauth "github.com/paypointhq/pos-register/pkg/auth"
	"github.com/paypointhq/pos-register/pkg/auth/session"
	"github.com/paypointhq/pos-register/pkg/config"
	"github.com/paypointhq/pos-register/pkg/enums"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
	"github.com/shopspring/decimal"
)

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(context.Context, string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, string, string) (*authsvc.Session, error) {
	return &authsvc.Session{Token: "token", Operator: &upstream.User{ID: 7}}, nil
}

func (stubAuthService) Me(context.Context, string) (*upstream.User, error) {
	return &upstream.User{ID: 7, Name: "Jane Public"}, nil
}

func (stubAuthService) Logout(context.Context, string) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) Products(context.Context, catalog.Query) ([]catalog.Product, bool, error) {
	return []catalog.Product{
		{ID: 5, Name: "Espresso Beans", Category: "Pantry", Price: decimal.New(1250, -2)},
	}, false, nil
}

func (stubCatalogService) Categories(context.Context) ([]catalog.CategoryView, bool, error) {
	return []catalog.CategoryView{}, false, nil
}

func (stubCatalogService) Create(context.Context, upstream.CreateProductRequest) (*upstream.Product, error) {
	return &upstream.Product{ID: 99}, nil
}

func (stubCatalogService) Delete(context.Context, int64) error {
	return nil
}

type stubCustomersService struct{}

func (stubCustomersService) Page(context.Context, int, string) (*upstream.CustomerPage, error) {
	return &upstream.CustomerPage{CurrentPage: 1}, nil
}

type stubEmployeesService struct{}

func (stubEmployeesService) List(context.Context, string) ([]upstream.User, error) {
	return []upstream.User{{ID: 1, Name: "Alice"}}, nil
}

func (stubEmployeesService) Create(context.Context, upstream.UpsertUserRequest) (*upstream.User, error) {
	return &upstream.User{ID: 2}, nil
}

func (stubEmployeesService) Update(context.Context, int64, upstream.UpsertUserRequest) (*upstream.User, error) {
	return &upstream.User{ID: 2}, nil
}

func (stubEmployeesService) Delete(context.Context, int64) error {
	return nil
}

type stubMenuService struct{}

func (stubMenuService) Sidebar(context.Context) []upstream.SidebarItem {
	return []upstream.SidebarItem{}
}

type stubCheckoutService struct{}

func (stubCheckoutService) Checkout(_ context.Context, operatorID string, _ checkoutsvc.Input) (*checkoutsvc.Receipt, error) {
	if operatorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "operator required")
	}
	orderID := int64(42)
	return &checkoutsvc.Receipt{
		State:         checkoutsvc.StateDone,
		InvoiceNumber: "ORD-0042",
		Filename:      "Invoice_ORD-0042.pdf",
		OrderID:       &orderID,
		Persisted:     true,
		PDF:           []byte("%PDF-1.4 stub"),
	}, nil
}

type stubOrdersService struct{}

func (stubOrdersService) ListFailed(context.Context) ([]journal.Entry, error) {
	return []journal.Entry{}, nil
}

func (stubOrdersService) Retry(context.Context, uint) (*orders.RetryResult, error) {
	return &orders.RetryResult{EntryID: 1, OrderID: 1042}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "paypoint-register",
			ExpirationMinutes: 60,
			SessionTTLMinutes: 120,
		},
		Sale: config.SaleConfig{TaxRate: "0.18", DefaultDiscount: "0", PaymentMethod: "cash"},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	router, _ := newTestRouterWithArchive(cfg)
	return router
}

func newTestRouterWithArchive(cfg *config.Config) (http.Handler, *invoice.Archive) {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Output: io.Discard})
	archive := invoice.NewArchive(0)
	router := NewRouter(Deps{
		Config:    cfg,
		Logger:    logg,
		Sessions:  stubSessionChecker{},
		Carts:     cart.NewRegistry(cfg.Sale.DefaultDiscountDecimal()),
		Archive:   archive,
		Auth:      stubAuthService{},
		Catalog:   stubCatalogService{},
		Customers: stubCustomersService{},
		Employees: stubEmployeesService{},
		Menu:      stubMenuService{},
		Checkout:  stubCheckoutService{},
		Orders:    stubOrdersService{},
	})
	return router, archive
}

func buildToken(t *testing.T, cfg *config.Config, role enums.OperatorRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		OperatorID: "7",
		Email:      "jane@example.com",
		Name:       "Jane Public",
		Role:       role,
		JTI:        session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPrivateGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestCartFetchWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleCashier))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Data struct {
			Lines []any `json:"lines"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if body.Data.Lines == nil {
		t.Fatalf("expected empty lines array, got %s", resp.Body.String())
	}
}

func TestEmployeesRequireAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	cashier := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	cashier.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleCashier))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, cashier)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cashier got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestCheckoutStreamsPDF(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"buyer":{"name":"Jane Public"}}`))
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleCashier))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected pdf content type got %q", ct)
	}
	if resp.Header().Get("X-Invoice-Number") != "ORD-0042" {
		t.Fatalf("expected invoice header, got %q", resp.Header().Get("X-Invoice-Number"))
	}
	if resp.Header().Get("X-Order-Id") != "42" {
		t.Fatalf("expected order id header, got %q", resp.Header().Get("X-Order-Id"))
	}
	if !strings.HasPrefix(resp.Body.String(), "%PDF") {
		t.Fatalf("expected pdf body, got %q", resp.Body.String())
	}
}

func TestInvoiceDownloadScopedToOperator(t *testing.T) {
	cfg := testConfig()
	router, archive := newTestRouterWithArchive(cfg)
	archive.Put("7", "Invoice_ORD-0042.pdf", []byte("%PDF-1.4 archived"))
	archive.Put("other", "Invoice_ORD-0001.pdf", []byte("%PDF-1.4 foreign"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/Invoice_ORD-0042.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleCashier))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.HasPrefix(resp.Body.String(), "%PDF") {
		t.Fatalf("expected pdf body, got %q", resp.Body.String())
	}

	foreign := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/Invoice_ORD-0001.pdf", nil)
	foreign.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleCashier))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, foreign)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another operator's invoice got %d", resp.Code)
	}
}

func TestOrderRecoveryRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	cashier := httptest.NewRequest(http.MethodGet, "/api/v1/orders/failed", nil)
	cashier.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleCashier))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, cashier)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cashier got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/v1/orders/failed", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.OperatorRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestLoginRejectsBadJSON(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}
