package orders

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/paypointhq/pos-register/internal/journal"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

type stubJournal struct {
	entries   map[uint]*journal.Entry
	recovered map[uint]int64
}

func newStubJournal() *stubJournal {
	return &stubJournal{entries: map[uint]*journal.Entry{}, recovered: map[uint]int64{}}
}

func (s *stubJournal) ListFailed(_ context.Context) ([]journal.Entry, error) {
	var out []journal.Entry
	for _, e := range s.entries {
		if e.Status == "failed" {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *stubJournal) Get(_ context.Context, id uint) (*journal.Entry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "journal entry not found")
	}
	return entry, nil
}

func (s *stubJournal) MarkRecovered(_ context.Context, id uint, orderID int64) error {
	if _, done := s.recovered[id]; done {
		return pkgerrors.New(pkgerrors.CodeConflict, "entry already recovered")
	}
	s.recovered[id] = orderID
	return nil
}

type stubSubmitter struct {
	resp *upstream.OrderResponse
	err  error
	got  []upstream.OrderRequest
}

func (s *stubSubmitter) SubmitOrder(_ context.Context, req upstream.OrderRequest) (*upstream.OrderResponse, error) {
	s.got = append(s.got, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func failedEntry(t *testing.T, id uint) *journal.Entry {
	t.Helper()
	payload, err := json.Marshal(upstream.OrderRequest{
		Items:         []upstream.OrderItem{{ProductID: 5, Quantity: 2, Price: 12.5}},
		Subtotal:      25,
		Tax:           4.5,
		Total:         29.5,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return &journal.Entry{
		ID:            id,
		OperatorID:    "7",
		InvoiceNumber: "INV-20260829-0042",
		Status:        "failed",
		Reason:        "platform unreachable",
		Payload:       string(payload),
	}
}

func newTestService(t *testing.T, store *stubJournal, submitter *stubSubmitter) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(store, submitter, logg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRetryRecoversJournaledOrder(t *testing.T) {
	t.Parallel()

	store := newStubJournal()
	store.entries[1] = failedEntry(t, 1)
	submitter := &stubSubmitter{resp: &upstream.OrderResponse{ID: 1042}}
	svc := newTestService(t, store, submitter)

	result, err := svc.Retry(context.Background(), 1)
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if result.OrderID != 1042 || result.EntryID != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.InvoiceNumber != "INV-20260829-0042" {
		t.Fatalf("expected invoice number carried through, got %q", result.InvoiceNumber)
	}
	if len(submitter.got) != 1 || submitter.got[0].Total != 29.5 {
		t.Fatalf("journaled payload not replayed: %+v", submitter.got)
	}
	if store.recovered[1] != 1042 {
		t.Fatalf("entry not marked recovered: %v", store.recovered)
	}
}

func TestRetryUnknownEntry(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubJournal(), &stubSubmitter{resp: &upstream.OrderResponse{ID: 1}})

	_, err := svc.Retry(context.Background(), 404)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRetryKeepsEntryFailedOnSubmitError(t *testing.T) {
	t.Parallel()

	store := newStubJournal()
	store.entries[1] = failedEntry(t, 1)
	submitter := &stubSubmitter{err: pkgerrors.New(pkgerrors.CodeDependency, "still down")}
	svc := newTestService(t, store, submitter)

	_, err := svc.Retry(context.Background(), 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(store.recovered) != 0 {
		t.Fatalf("entry must stay failed when the replay fails")
	}
}

func TestRetryRejectsMissingOrderID(t *testing.T) {
	t.Parallel()

	store := newStubJournal()
	store.entries[1] = failedEntry(t, 1)
	submitter := &stubSubmitter{resp: &upstream.OrderResponse{}}
	svc := newTestService(t, store, submitter)

	_, err := svc.Retry(context.Background(), 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
