package orders

import (
	"context"
	"fmt"

	"github.com/paypointhq/pos-register/internal/journal"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

type journalReader interface {
	ListFailed(ctx context.Context) ([]journal.Entry, error)
	Get(ctx context.Context, id uint) (*journal.Entry, error)
	MarkRecovered(ctx context.Context, id uint, orderID int64) error
}

type orderSubmitter interface {
	SubmitOrder(ctx context.Context, req upstream.OrderRequest) (*upstream.OrderResponse, error)
}

// RetryResult reports the outcome of replaying a journaled order.
type RetryResult struct {
	EntryID       uint   `json:"entry_id"`
	OrderID       int64  `json:"order_id"`
	InvoiceNumber string `json:"invoice_number"`
}

// Service replays sales that were journaled when the platform was
// unreachable at checkout.
type Service interface {
	ListFailed(ctx context.Context) ([]journal.Entry, error)
	Retry(ctx context.Context, entryID uint) (*RetryResult, error)
}

type service struct {
	journal   journalReader
	submitter orderSubmitter
	logg      *logger.Logger
}

// NewService builds the order reconciliation service.
func NewService(journalStore journalReader, submitter orderSubmitter, logg *logger.Logger) (Service, error) {
	if journalStore == nil {
		return nil, fmt.Errorf("journal store required")
	}
	if submitter == nil {
		return nil, fmt.Errorf("order submitter required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{journal: journalStore, submitter: submitter, logg: logg}, nil
}

func (s *service) ListFailed(ctx context.Context) ([]journal.Entry, error) {
	return s.journal.ListFailed(ctx)
}

// Retry resubmits the journaled order and marks the entry recovered.
// Entries that already recovered are rejected with a conflict.
func (s *service) Retry(ctx context.Context, entryID uint) (*RetryResult, error) {
	entry, err := s.journal.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}
	order, err := entry.Order()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode journaled order")
	}

	ctx = s.logg.WithInvoiceNumber(s.logg.WithOperatorID(ctx, entry.OperatorID), entry.InvoiceNumber)
	resp, err := s.submitter.SubmitOrder(ctx, *order)
	if err != nil {
		s.logg.Warn(ctx, "journal retry failed")
		return nil, err
	}
	if resp == nil || resp.ID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "platform returned no order id")
	}
	if err := s.journal.MarkRecovered(ctx, entry.ID, resp.ID); err != nil {
		return nil, err
	}

	s.logg.Info(ctx, "journaled order recovered")
	return &RetryResult{
		EntryID:       entry.ID,
		OrderID:       resp.ID,
		InvoiceNumber: entry.InvoiceNumber,
	}, nil
}
