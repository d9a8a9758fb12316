package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
	"github.com/shopspring/decimal"
)

// Product is the register-facing product model: parsed price, resolved
// image, and display hints, flattened from the platform payload.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Barcode  string          `json:"barcode"`
	Image    string          `json:"image"`
	Color    string          `json:"color"`
}

// CategoryView annotates a category name with its display configuration.
type CategoryView struct {
	Name    string  `json:"name"`
	Display Display `json:"display"`
}

// Query filters the product listing.
type Query struct {
	Search   string
	Category string
}

type productSource interface {
	ListProducts(ctx context.Context) ([]upstream.Product, error)
	ListCategories(ctx context.Context) ([]upstream.Category, error)
	CreateProduct(ctx context.Context, req upstream.CreateProductRequest) (*upstream.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// Service exposes the register catalog.
type Service interface {
	// Products lists the sellable catalog. When the platform is down the
	// register degrades to a static fallback set; degraded reports that.
	Products(ctx context.Context, query Query) (products []Product, degraded bool, err error)
	// Categories returns the filter tiles: "All" first, then the
	// categories present in the listing, in first-seen order.
	Categories(ctx context.Context) ([]CategoryView, bool, error)
	Create(ctx context.Context, req upstream.CreateProductRequest) (*upstream.Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	source productSource
	logg   *logger.Logger
}

// NewService builds the catalog service over the platform API.
func NewService(source productSource, logg *logger.Logger) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("product source required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{source: source, logg: logg}, nil
}

func (s *service) Products(ctx context.Context, query Query) ([]Product, bool, error) {
	raw, err := s.source.ListProducts(ctx)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "product listing degraded to fallback catalog")
		return filter(fallbackProducts(), query), true, nil
	}

	products := make([]Product, 0, len(raw))
	for _, p := range raw {
		if !p.Status {
			continue
		}
		price, perr := decimal.NewFromString(p.Price)
		if perr != nil {
			s.logg.Warn(s.logg.WithField(ctx, "product_id", p.ID), "skipping product with unparseable price")
			continue
		}
		image := p.Image
		if image == "" {
			image = ImageFor(p.Category.Name)
		}
		products = append(products, Product{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category.Name,
			Price:    price,
			Stock:    p.Stock,
			Barcode:  p.SKU,
			Image:    image,
			Color:    DisplayFor(p.Category.Name).CardColor,
		})
	}
	return filter(products, query), false, nil
}

func (s *service) Categories(ctx context.Context) ([]CategoryView, bool, error) {
	products, degraded, err := s.Products(ctx, Query{})
	if err != nil {
		return nil, degraded, err
	}

	views := []CategoryView{{Name: "All", Display: allDisplay}}
	seen := map[string]struct{}{}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		views = append(views, CategoryView{Name: p.Category, Display: DisplayFor(p.Category)})
	}
	return views, degraded, nil
}

func (s *service) Create(ctx context.Context, req upstream.CreateProductRequest) (*upstream.Product, error) {
	product, err := s.source.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.source.DeleteProduct(ctx, id)
}

// filter applies the search term (name or barcode, case-insensitive) and
// the category filter. "All" and empty category match everything.
func filter(products []Product, query Query) []Product {
	search := strings.ToLower(strings.TrimSpace(query.Search))
	category := strings.TrimSpace(query.Category)
	matchAll := category == "" || category == "All"

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchAll && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Barcode), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
