package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Registry hands out one cart per operator. The map is guarded because
// the HTTP transport is concurrent; each cart guards itself.
type Registry struct {
	mu              sync.Mutex
	carts           map[string]*Cart
	defaultDiscount decimal.Decimal
}

// NewRegistry returns an empty registry. The default discount is applied
// to every freshly created cart; non-positive amounts leave carts
// undiscounted.
func NewRegistry(defaultDiscount decimal.Decimal) *Registry {
	return &Registry{
		carts:           make(map[string]*Cart),
		defaultDiscount: defaultDiscount,
	}
}

// ForOperator returns the cart for the operator, creating it on first use.
func (r *Registry) ForOperator(operatorID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[operatorID]; ok {
		return c
	}
	c := New()
	if r.defaultDiscount.IsPositive() {
		c.SetDiscount(r.defaultDiscount)
	}
	r.carts[operatorID] = c
	return c
}

// Drop forgets the operator's cart, used when a session ends.
func (r *Registry) Drop(operatorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, operatorID)
}
