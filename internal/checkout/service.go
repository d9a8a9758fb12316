package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/paypointhq/pos-register/internal/cart"
	"github.com/paypointhq/pos-register/internal/invoice"
	"github.com/paypointhq/pos-register/internal/journal"
	"github.com/paypointhq/pos-register/pkg/config"
	"github.com/paypointhq/pos-register/pkg/enums"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/metrics"
	"github.com/paypointhq/pos-register/pkg/upstream"
	"github.com/shopspring/decimal"
)

type orderSubmitter interface {
	SubmitOrder(ctx context.Context, req upstream.OrderRequest) (*upstream.OrderResponse, error)
}

type journalAppender interface {
	Append(ctx context.Context, operatorID, invoiceNumber string, status enums.SubmitStatus, reason string, orderID *int64, order upstream.OrderRequest) (*journal.Entry, error)
}

type invoiceRenderer interface {
	Build(lines []cart.Line, taxRate decimal.Decimal, totals cart.Totals, buyer invoice.Buyer, meta invoice.Meta) invoice.Document
	RenderPDF(doc invoice.Document) ([]byte, error)
}

// Input is the operator-provided data for one checkout. All buyer fields
// are optional; an anonymous cash sale submits null customer fields.
type Input struct {
	Buyer invoice.Buyer
}

// Receipt is the outcome of a completed checkout.
type Receipt struct {
	State         State          `json:"state"`
	InvoiceNumber string         `json:"invoice_number"`
	Filename      string         `json:"filename"`
	OrderID       *int64         `json:"order_id,omitempty"`
	Persisted     bool           `json:"persisted"`
	FailureReason string         `json:"failure_reason,omitempty"`
	Totals        cart.Totals    `json:"-"`
	PDF           []byte         `json:"-"`
	JournalID     *uint          `json:"journal_id,omitempty"`
}

// Service drives a cart through submission and invoice rendering.
type Service interface {
	Checkout(ctx context.Context, operatorID string, input Input) (*Receipt, error)
}

// Params configure the checkout service.
type Params struct {
	Carts     *cart.Registry
	Submitter orderSubmitter
	Journal   journalAppender
	Renderer  invoiceRenderer
	Metrics   *metrics.CheckoutMetrics
	Logger    *logger.Logger
	Sale      config.SaleConfig
	Timeout   time.Duration

	// Archive is optional; when set, rendered invoices are retained for
	// re-download.
	Archive *invoice.Archive

	// Clock is overridable for tests; defaults to time.Now.
	Clock func() time.Time
}

type service struct {
	carts     *cart.Registry
	submitter orderSubmitter
	journal   journalAppender
	renderer  invoiceRenderer
	metrics   *metrics.CheckoutMetrics
	logg      *logger.Logger
	archive   *invoice.Archive
	taxRate   decimal.Decimal
	payment   enums.PaymentMethod
	timeout   time.Duration
	clock     func() time.Time
}

// NewService builds the checkout orchestrator.
func NewService(params Params) (Service, error) {
	if params.Carts == nil {
		return nil, fmt.Errorf("cart registry required")
	}
	if params.Submitter == nil {
		return nil, fmt.Errorf("order submitter required")
	}
	if params.Journal == nil {
		return nil, fmt.Errorf("journal required")
	}
	if params.Renderer == nil {
		return nil, fmt.Errorf("invoice renderer required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Timeout <= 0 {
		return nil, fmt.Errorf("submit timeout must be positive")
	}
	if err := params.Sale.Validate(); err != nil {
		return nil, err
	}
	method := enums.PaymentMethod(params.Sale.PaymentMethod)
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method %q", params.Sale.PaymentMethod)
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		carts:     params.Carts,
		submitter: params.Submitter,
		journal:   params.Journal,
		renderer:  params.Renderer,
		metrics:   params.Metrics,
		logg:      params.Logger,
		archive:   params.Archive,
		taxRate:   params.Sale.TaxRateDecimal(),
		payment:   method,
		timeout:   params.Timeout,
		clock:     clock,
	}, nil
}

// Checkout runs the full pipeline for the operator's cart: submit the
// order upstream, journal the outcome, render the invoice, and clear the
// cart only once the receipt is complete. A failed submission degrades
// to an invoice without the order reference; a failed render leaves the
// cart intact so the operator can retry.
func (s *service) Checkout(ctx context.Context, operatorID string, input Input) (*Receipt, error) {
	if strings.TrimSpace(operatorID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "operator id is required")
	}
	current := s.carts.ForOperator(operatorID)
	lines := current.Lines()
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	totals := current.Totals(s.taxRate)

	state := StateIdle
	if hasBuyerInfo(input.Buyer) {
		state = s.transition(ctx, state, StateCollectingBuyerInfo)
	}
	state = s.transition(ctx, state, StateSubmitting)

	now := s.clock()
	billNumber := invoice.NewBillNumber(now)
	order := s.buildOrder(lines, totals, input.Buyer)

	result := s.submit(ctx, operatorID, order)
	if result.Persisted() {
		state = s.transition(ctx, state, StateSubmitted)
	} else {
		state = s.transition(ctx, state, StateSubmitFailed)
	}

	meta := invoice.Meta{BillNumber: billNumber, IssuedAt: now, OrderID: result.OrderID}
	doc := s.renderer.Build(lines, s.taxRate, totals, input.Buyer, meta)
	ctx = s.logg.WithInvoiceNumber(ctx, doc.Number)

	var journalID *uint
	if !result.Persisted() {
		entry, err := s.journal.Append(ctx, operatorID, doc.Number, enums.SubmitStatusFailed, result.FailureReason, nil, order)
		if err != nil {
			s.logg.Error(ctx, "journal append failed", err)
		} else {
			journalID = &entry.ID
		}
	}

	state = s.transition(ctx, state, StateRendering)
	pdf, err := s.renderer.RenderPDF(doc)
	if err != nil {
		s.metrics.IncRenderFailure()
		return nil, pkgerrors.Wrap(pkgerrors.CodeRendering, err, "render invoice")
	}
	state = s.transition(ctx, state, StateDone)

	// The sale is complete only now; clearing earlier would lose the
	// cart on a render failure.
	current.Clear()
	s.metrics.IncInvoiceGenerated()

	filename := invoice.Filename(doc)
	if s.archive != nil {
		s.archive.Put(operatorID, filename, pdf)
	}

	return &Receipt{
		State:         state,
		InvoiceNumber: doc.Number,
		Filename:      filename,
		OrderID:       result.OrderID,
		Persisted:     result.Persisted(),
		FailureReason: result.FailureReason,
		Totals:        totals,
		PDF:           pdf,
		JournalID:     journalID,
	}, nil
}

func (s *service) submit(ctx context.Context, operatorID string, order upstream.OrderRequest) SubmitResult {
	submitCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := s.clock()
	resp, err := s.submitter.SubmitOrder(submitCtx, order)
	s.metrics.ObserveSubmitDuration(operatorID, s.clock().Sub(started))

	if err != nil {
		s.metrics.IncSubmitFailure(operatorID)
		s.logg.Error(ctx, "order submission failed, proceeding without order reference", err)
		return SubmitResult{FailureReason: err.Error()}
	}
	if resp == nil || resp.ID <= 0 {
		s.metrics.IncSubmitFailure(operatorID)
		return SubmitResult{FailureReason: "upstream returned no order id"}
	}
	s.metrics.IncSubmitSuccess(operatorID)
	return SubmitResult{OrderID: &resp.ID}
}

func (s *service) buildOrder(lines []cart.Line, totals cart.Totals, buyer invoice.Buyer) upstream.OrderRequest {
	items := make([]upstream.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, upstream.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice.InexactFloat64(),
		})
	}
	return upstream.OrderRequest{
		Items:         items,
		Subtotal:      totals.Subtotal.InexactFloat64(),
		Tax:           totals.Tax.InexactFloat64(),
		Discount:      totals.Discount.InexactFloat64(),
		Total:         totals.Total.InexactFloat64(),
		PaymentMethod: s.payment.String(),
		CustomerName:  nullable(buyer.Name),
		CustomerEmail: nullable(buyer.Email),
		CustomerPhone: nullable(buyer.Phone),
	}
}

func (s *service) transition(ctx context.Context, from, to State) State {
	next, err := from.Next(to)
	if err != nil {
		// Transitions are driven by this service, so a bad one is a bug.
		s.logg.Error(ctx, "checkout state machine violation", err)
		return from
	}
	s.logg.Info(s.logg.WithField(ctx, "checkout_state", next.String()), "checkout state changed")
	return next
}

func hasBuyerInfo(b invoice.Buyer) bool {
	return b.Name != "" || b.Phone != "" || b.Email != "" || b.TaxID != ""
}

func nullable(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
