package checkout

// SubmitResult is the explicit outcome of an upstream order submission.
// A failed submission is a value, not error control flow: the checkout
// proceeds to rendering either way.
type SubmitResult struct {
	OrderID       *int64
	FailureReason string
}

// Persisted reports whether the platform accepted the order.
func (r SubmitResult) Persisted() bool {
	return r.OrderID != nil
}
