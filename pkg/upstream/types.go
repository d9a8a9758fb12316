package upstream

import "github.com/paypointhq/pos-register/pkg/enums"

// Product mirrors the platform product payload.
type Product struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      string          `json:"price"`
	Stock      int             `json:"stock"`
	Status     bool            `json:"status"`
	Image      string          `json:"product_image"`
	Category   ProductCategory `json:"category"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// ProductCategory is the category reference embedded in a product.
type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category is the standalone category listing payload.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is a platform account that can operate the register.
type User struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Role             enums.OperatorRole `json:"role"`
	Status           bool               `json:"status"`
	DefaultRoleRoute string             `json:"default_role_route"`
	ProfileImage     string             `json:"profile_image"`
}

// Customer is a buyer known to the platform.
type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	OrdersCount int    `json:"orders_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CustomerPage is the paginated customer listing.
type CustomerPage struct {
	CurrentPage int        `json:"current_page"`
	Data        []Customer `json:"data"`
	LastPage    int        `json:"last_page"`
	PerPage     int        `json:"per_page"`
	Total       int        `json:"total"`
}

// OrderItem is one sold line in an order submission.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderRequest is the payload posted when a sale completes.
type OrderRequest struct {
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	CustomerName  *string     `json:"customer_name"`
	CustomerEmail *string     `json:"customer_email"`
	CustomerPhone *string     `json:"customer_phone"`
}

// OrderResponse carries the platform-assigned order identifier.
type OrderResponse struct {
	ID int64 `json:"id"`
}

// SidebarChild is a nested navigation entry.
type SidebarChild struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	URL      string `json:"url,omitempty"`
	ParentID int64  `json:"parent_id,omitempty"`
}

// SidebarItem is a top-level navigation entry.
type SidebarItem struct {
	ID       int64          `json:"id"`
	Heading  string         `json:"heading,omitempty"`
	Name     string         `json:"name"`
	Children []SidebarChild `json:"children,omitempty"`
}
