package cart

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Product is the catalog data needed to add a line to the register.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Image string
}

// Line is one sellable row on the register, keyed by product id.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Image     string
}

// Subtotal returns the full-precision extended price for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is the rounded snapshot shown to the operator. Amounts are
// rounded half-up to two decimal places only here; the cart keeps full
// precision internally.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Cart holds the in-progress sale for a single operator. Lines keep
// insertion order, one per product id. Misuse (unknown ids, bad
// quantities) is a no-op rather than an error.
type Cart struct {
	mu       sync.Mutex
	lines    []Line
	discount decimal.Decimal
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem appends the product as a new line, or bumps the quantity when
// the product is already in the cart. Products without a positive id or
// with a negative price are ignored.
func (c *Cart) AddItem(p Product) {
	if p.ID <= 0 || strings.TrimSpace(p.Name) == "" || p.Price.IsNegative() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Image:     p.Image,
	})
}

// SetQuantity replaces the quantity for the product. A quantity below 1
// removes the line; an unknown product id is a no-op.
func (c *Cart) SetQuantity(productID int64, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty < 1 {
		c.removeLocked(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// RemoveItem deletes the line for the product. Unknown ids are a no-op.
func (c *Cart) RemoveItem(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart and resets the discount.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.discount = decimal.Zero
}

// SetDiscount stores a flat discount amount. Negative amounts are ignored.
func (c *Cart) SetDiscount(amount decimal.Decimal) {
	if amount.IsNegative() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = amount
}

// Discount returns the flat discount currently applied.
func (c *Cart) Discount() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.discount
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Totals computes the display snapshot for the cart using its stored
// discount and the provided tax rate.
func (c *Cart) Totals(taxRate decimal.Decimal) Totals {
	c.mu.Lock()
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	discount := c.discount
	c.mu.Unlock()
	return ComputeTotals(lines, taxRate, discount)
}

// ComputeTotals derives the totals snapshot from the given lines. The
// arithmetic runs at full precision; each amount is rounded half-up to
// two decimal places for the snapshot, and the total is clamped at zero
// so a large discount can never produce a negative amount due.
func ComputeTotals(lines []Line, taxRate, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{
		Subtotal: subtotal.Round(2),
		Tax:      tax.Round(2),
		Discount: discount.Round(2),
		Total:    total.Round(2),
	}
}
