package catalog

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

type stubSource struct {
	products []upstream.Product
	err      error
}

func (s *stubSource) ListProducts(ctx context.Context) ([]upstream.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubSource) ListCategories(ctx context.Context) ([]upstream.Category, error) {
	return nil, nil
}

func (s *stubSource) CreateProduct(ctx context.Context, req upstream.CreateProductRequest) (*upstream.Product, error) {
	return &upstream.Product{ID: 99, Name: req.Name}, nil
}

func (s *stubSource) DeleteProduct(ctx context.Context, id int64) error {
	return nil
}

func testService(t *testing.T, source *stubSource) Service {
	t.Helper()
	svc, err := NewService(source, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func sampleProducts() []upstream.Product {
	return []upstream.Product{
		{ID: 1, Name: "Fresh Apples", SKU: "123456789", Price: "3.99", Stock: 45, Status: true, Category: upstream.ProductCategory{ID: 1, Name: "Fruits"}},
		{ID: 2, Name: "Organic Milk", SKU: "123456792", Price: "4.99", Stock: 32, Status: true, Category: upstream.ProductCategory{ID: 2, Name: "Dairy"}},
		{ID: 3, Name: "Retired Item", SKU: "000", Price: "1.00", Stock: 0, Status: false, Category: upstream.ProductCategory{ID: 2, Name: "Dairy"}},
		{ID: 4, Name: "Mystery Widget", SKU: "555", Price: "not-a-price", Stock: 5, Status: true, Category: upstream.ProductCategory{ID: 3, Name: "General"}},
	}
}

func TestProductsMapsAndFiltersPlatformPayload(t *testing.T) {
	t.Parallel()
	svc := testService(t, &stubSource{products: sampleProducts()})

	products, degraded, err := svc.Products(context.Background(), Query{})
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if degraded {
		t.Fatal("healthy upstream must not be degraded")
	}
	// Inactive and unparseable products are dropped.
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Price.String() != "3.99" {
		t.Fatalf("expected parsed price 3.99, got %s", products[0].Price)
	}
	if products[0].Image != ImageFor("Fruits") {
		t.Fatalf("expected category fallback image, got %s", products[0].Image)
	}
	if products[0].Color != "bg-red-50 border-red-100" {
		t.Fatalf("unexpected card color %s", products[0].Color)
	}
}

func TestProductsSearchMatchesNameOrBarcode(t *testing.T) {
	t.Parallel()
	svc := testService(t, &stubSource{products: sampleProducts()})

	products, _, err := svc.Products(context.Background(), Query{Search: "apples"})
	if err != nil {
		t.Fatalf("search by name: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("expected apples by name, got %+v", products)
	}

	products, _, err = svc.Products(context.Background(), Query{Search: "123456792"})
	if err != nil {
		t.Fatalf("search by barcode: %v", err)
	}
	if len(products) != 1 || products[0].ID != 2 {
		t.Fatalf("expected milk by barcode, got %+v", products)
	}
}

func TestProductsCategoryFilter(t *testing.T) {
	t.Parallel()
	svc := testService(t, &stubSource{products: sampleProducts()})

	products, _, err := svc.Products(context.Background(), Query{Category: "Dairy"})
	if err != nil {
		t.Fatalf("category filter: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Organic Milk" {
		t.Fatalf("expected only dairy, got %+v", products)
	}

	products, _, err = svc.Products(context.Background(), Query{Category: "All"})
	if err != nil {
		t.Fatalf("all filter: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("All must match every category, got %d", len(products))
	}
}

func TestProductsDegradesToFallback(t *testing.T) {
	t.Parallel()
	svc := testService(t, &stubSource{err: fmt.Errorf("connection refused")})

	products, degraded, err := svc.Products(context.Background(), Query{})
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if !degraded {
		t.Fatal("expected degraded flag")
	}
	if len(products) != 3 {
		t.Fatalf("expected fallback catalog, got %d products", len(products))
	}
}

func TestCategoriesPrependAllAndKeepOrder(t *testing.T) {
	t.Parallel()
	svc := testService(t, &stubSource{products: sampleProducts()})

	views, degraded, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if degraded {
		t.Fatal("unexpected degraded flag")
	}
	want := []string{"All", "Fruits", "Dairy"}
	if len(views) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(views))
	}
	for i, name := range want {
		if views[i].Name != name {
			t.Fatalf("expected %s at index %d, got %s", name, i, views[i].Name)
		}
	}
	if views[0].Display.ActiveColor != "bg-gray-800 text-white" {
		t.Fatalf("All tile must use its own display, got %+v", views[0].Display)
	}
}

func TestDisplayForUnknownCategory(t *testing.T) {
	t.Parallel()
	d := DisplayFor("Cryptozoology")
	if d.Icon != "box" {
		t.Fatalf("unknown category must use the default display, got %+v", d)
	}
	if img := ImageFor("Cryptozoology"); img != defaultImage {
		t.Fatalf("unknown category must use the default image, got %s", img)
	}
}
