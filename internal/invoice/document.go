package invoice

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/paypointhq/pos-register/internal/cart"
	"github.com/paypointhq/pos-register/pkg/config"
	"github.com/paypointhq/pos-register/pkg/enums"
	"github.com/shopspring/decimal"
)

const truncationSuffix = "..."

// Issuer identifies the business printed in the invoice header.
type Issuer struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}

// Buyer holds the optional customer block. Empty fields are skipped.
type Buyer struct {
	Name  string
	Phone string
	Email string
	TaxID string
}

// LineItem is one fully resolved invoice row.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Meta carries the per-checkout identifiers minted before building.
type Meta struct {
	BillNumber string
	IssuedAt   time.Time
	OrderID    *int64
}

// Document is the deterministic invoice model: same inputs, same document.
type Document struct {
	Number        string
	IssuedAt      time.Time
	Issuer        Issuer
	Buyer         Buyer
	Items         []LineItem
	TaxRate       decimal.Decimal
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	OrderID       *int64
	PaymentMethod enums.PaymentMethod
}

// Renderer builds and renders invoices using the configured issuer identity.
type Renderer struct {
	issuer        Issuer
	nameBudget    int
	paymentMethod enums.PaymentMethod
}

// NewRenderer constructs a renderer from the invoice and sale configuration.
func NewRenderer(invoiceCfg config.InvoiceConfig, saleCfg config.SaleConfig) (*Renderer, error) {
	if strings.TrimSpace(invoiceCfg.IssuerName) == "" {
		return nil, fmt.Errorf("issuer name is required")
	}
	budget := invoiceCfg.NameBudget
	if budget <= len(truncationSuffix) {
		return nil, fmt.Errorf("name budget must exceed the truncation suffix")
	}
	method := enums.PaymentMethod(saleCfg.PaymentMethod)
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method %q", saleCfg.PaymentMethod)
	}
	return &Renderer{
		issuer: Issuer{
			Name:    invoiceCfg.IssuerName,
			Address: invoiceCfg.IssuerAddress,
			Phone:   invoiceCfg.IssuerPhone,
			Email:   invoiceCfg.IssuerEmail,
			TaxID:   invoiceCfg.IssuerTaxID,
		},
		nameBudget:    budget,
		paymentMethod: method,
	}, nil
}

// Build assembles the invoice document from the cart snapshot. It is pure:
// no clock, no randomness, no mutation of the cart lines.
func (r *Renderer) Build(lines []cart.Line, taxRate decimal.Decimal, totals cart.Totals, buyer Buyer, meta Meta) Document {
	items := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, LineItem{
			Name:      truncateName(line.Name, r.nameBudget),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.Subtotal(),
		})
	}

	number := meta.BillNumber
	if meta.OrderID != nil {
		number = OrderNumber(*meta.OrderID)
	}

	return Document{
		Number:        number,
		IssuedAt:      meta.IssuedAt,
		Issuer:        r.issuer,
		Buyer:         buyer,
		Items:         items,
		TaxRate:       taxRate,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		OrderID:       meta.OrderID,
		PaymentMethod: r.paymentMethod,
	}
}

// OrderNumber formats the platform order reference printed on the invoice.
func OrderNumber(orderID int64) string {
	return fmt.Sprintf("ORD-%04d", orderID)
}

// NewBillNumber mints the fallback invoice number used when no platform
// order exists: INV-YYYYMMDD-XXXX with four random digits.
func NewBillNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%04d", now.Format("20060102"), rand.IntN(10000))
}

// truncateName keeps names on a single table row. Anything longer than
// the budget is cut so that name plus suffix stays within it.
func truncateName(name string, budget int) string {
	runes := []rune(name)
	if len(runes) <= budget {
		return name
	}
	return string(runes[:budget-len(truncationSuffix)]) + truncationSuffix
}
