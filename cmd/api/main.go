package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/paypointhq/pos-register/api/routes"
	authsvc "github.com/paypointhq/pos-register/internal/auth"
	"github.com/paypointhq/pos-register/internal/cart"
	"github.com/paypointhq/pos-register/internal/catalog"
	checkoutsvc "github.com/paypointhq/pos-register/internal/checkout"
	"github.com/paypointhq/pos-register/internal/customers"
	"github.com/paypointhq/pos-register/internal/employees"
	"github.com/paypointhq/pos-register/internal/invoice"
	"github.com/paypointhq/pos-register/internal/journal"
	"github.com/paypointhq/pos-register/internal/menu"
	"github.com/paypointhq/pos-register/internal/orders"
	"github.com/paypointhq/pos-register/pkg/auth/session"
	"github.com/paypointhq/pos-register/pkg/config"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/metrics"
	"github.com/paypointhq/pos-register/pkg/redis"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "register-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "register-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	platform, err := upstream.NewClient(cfg.Upstream)
	if err != nil {
		logg.Error(context.Background(), "failed to create platform client", err)
		os.Exit(1)
	}

	journalStore, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		logg.Error(context.Background(), "failed to open sales journal", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	carts := cart.NewRegistry(cfg.Sale.DefaultDiscountDecimal())

	authService, err := authsvc.NewService(platform, sessionManager, cfg.JWT, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	catalogService, err := catalog.NewService(platform, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	customersService, err := customers.NewService(platform)
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}
	employeesService, err := employees.NewService(platform)
	if err != nil {
		logg.Error(context.Background(), "failed to create employees service", err)
		os.Exit(1)
	}
	menuService, err := menu.NewService(platform, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}
	renderer, err := invoice.NewRenderer(cfg.Invoice, cfg.Sale)
	if err != nil {
		logg.Error(context.Background(), "failed to create invoice renderer", err)
		os.Exit(1)
	}
	archive := invoice.NewArchive(0)
	checkoutService, err := checkoutsvc.NewService(checkoutsvc.Params{
		Carts:     carts,
		Submitter: platform,
		Journal:   journalStore,
		Renderer:  renderer,
		Metrics:   checkoutMetrics,
		Logger:    logg,
		Sale:      cfg.Sale,
		Timeout:   cfg.Upstream.SubmitTimeout,
		Archive:   archive,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}
	ordersService, err := orders.NewService(journalStore, platform, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting register api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:    cfg,
			Logger:    logg,
			Redis:     redisClient,
			Sessions:  sessionManager,
			Registry:  registry,
			Carts:     carts,
			Archive:   archive,
			Platform:  platform,
			Auth:      authService,
			Catalog:   catalogService,
			Customers: customersService,
			Employees: employeesService,
			Menu:      menuService,
			Checkout:  checkoutService,
			Orders:    ordersService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
