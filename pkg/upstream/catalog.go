package upstream

import (
	"context"
	"fmt"
	"net/http"

	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
)

// ListProducts returns every product the platform exposes to the register.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var resp struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// CreateProductRequest carries the fields accepted when adding a product.
type CreateProductRequest struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	SKU        string `json:"sku"`
	Price      string `json:"price"`
	Stock      int    `json:"stock"`
	Status     bool   `json:"status"`
	Image      string `json:"product_image,omitempty"`
}

// CreateProduct registers a new product with the platform.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product from the platform catalog.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// ListCategories returns the platform category taxonomy.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
