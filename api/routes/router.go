package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paypointhq/pos-register/api/controllers"
	"github.com/paypointhq/pos-register/api/middleware"
	authsvc "github.com/paypointhq/pos-register/internal/auth"
	"github.com/paypointhq/pos-register/internal/cart"
	"github.com/paypointhq/pos-register/internal/catalog"
	checkoutsvc "github.com/paypointhq/pos-register/internal/checkout"
	"github.com/paypointhq/pos-register/internal/customers"
	"github.com/paypointhq/pos-register/internal/employees"
	"github.com/paypointhq/pos-register/internal/invoice"
	"github.com/paypointhq/pos-register/internal/menu"
	"github.com/paypointhq/pos-register/internal/orders"
	"github.com/paypointhq/pos-register/pkg/auth/session"
	"github.com/paypointhq/pos-register/pkg/config"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	Redis     *redis.Client
	Sessions  session.AccessSessionChecker
	Registry  *prometheus.Registry
	Carts     *cart.Registry
	Archive   *invoice.Archive
	Platform  controllers.UpstreamPinger
	Auth      authsvc.Service
	Catalog   catalog.Service
	Customers customers.Service
	Employees employees.Service
	Menu      menu.Service
	Checkout  checkoutsvc.Service
	Orders    orders.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	// A typed nil *redis.Client must not reach the middleware as a
	// non-nil interface.
	var idemStore redis.IdempotencyStore
	var pinger redis.Pinger
	var limiter middleware.RateLimiterStore
	if d.Redis != nil {
		idemStore = d.Redis
		pinger = d.Redis
		limiter = d.Redis
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, pinger, d.Platform, logg))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).Post("/login", controllers.AuthLogin(d.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Post("/auth/logout", controllers.AuthLogout(d.Auth, d.Carts, logg))
		r.Get("/auth/me", controllers.AuthMe(d.Auth, logg))

		r.Get("/menu", controllers.Menu(d.Menu, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogProducts(d.Catalog, logg))
			r.Get("/categories", controllers.CatalogCategories(d.Catalog, logg))
			r.With(middleware.RequireRole("admin", logg)).Post("/products", controllers.CatalogCreateProduct(d.Catalog, logg))
			r.With(middleware.RequireRole("admin", logg)).Delete("/products/{productID}", controllers.CatalogDeleteProduct(d.Catalog, logg))
		})

		r.Get("/customers", controllers.CustomersList(d.Customers, logg))

		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.RequireRole("admin", logg))
			r.Get("/", controllers.EmployeesList(d.Employees, logg))
			r.Post("/", controllers.EmployeesCreate(d.Employees, logg))
			r.Post("/{employeeID}", controllers.EmployeesUpdate(d.Employees, logg))
			r.Delete("/{employeeID}", controllers.EmployeesDelete(d.Employees, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(d.Carts, cfg.Sale, logg))
			r.Post("/items", controllers.CartAddItem(d.Carts, d.Catalog, cfg.Sale, logg))
			r.Patch("/items/{productID}", controllers.CartSetQuantity(d.Carts, cfg.Sale, logg))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(d.Carts, cfg.Sale, logg))
			r.Delete("/", controllers.CartClear(d.Carts, cfg.Sale, logg))
			r.Post("/discount", controllers.CartSetDiscount(d.Carts, cfg.Sale, logg))
		})

		r.Post("/checkout", controllers.Checkout(d.Checkout, logg))

		if d.Archive != nil {
			r.Get("/invoices/{file}", controllers.InvoiceDownload(d.Archive, logg))
		}

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.RequireRole("admin", logg))
			r.Get("/failed", controllers.OrdersFailed(d.Orders, logg))
			r.Post("/{entryID}/retry", controllers.OrdersRetry(d.Orders, logg))
		})
	})

	return r
}
