package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/paypointhq/pos-register/pkg/enums"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/upstream"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one journaled sale. Failed upstream submissions land here so
// the register can reconcile them once the platform is reachable again.
type Entry struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	OperatorID    string             `gorm:"index" json:"operator_id"`
	InvoiceNumber string             `json:"invoice_number"`
	Status        enums.SubmitStatus `gorm:"index" json:"status"`
	Reason        string             `json:"reason,omitempty"`
	OrderID       *int64             `json:"order_id,omitempty"`
	Payload       string             `json:"-"`
}

// Order deserializes the journaled submission payload.
func (e *Entry) Order() (*upstream.OrderRequest, error) {
	var req upstream.OrderRequest
	if err := json.Unmarshal([]byte(e.Payload), &req); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode journaled order")
	}
	return &req, nil
}

// Store persists journal entries in a local sqlite file.
type Store struct {
	db *gorm.DB
}

// Open creates (or reuses) the journal database at the provided path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	return NewStore(db)
}

// NewStore binds the store to an existing GORM handle and migrates the schema.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("journal db handle is required")
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate journal schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records the outcome of a submission attempt.
func (s *Store) Append(ctx context.Context, operatorID, invoiceNumber string, status enums.SubmitStatus, reason string, orderID *int64, order upstream.OrderRequest) (*Entry, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid submit status %q", status))
	}
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode journaled order")
	}
	entry := Entry{
		OperatorID:    operatorID,
		InvoiceNumber: invoiceNumber,
		Status:        status,
		Reason:        reason,
		OrderID:       orderID,
		Payload:       string(payload),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append journal entry")
	}
	return &entry, nil
}

// ListFailed returns the entries still awaiting reconciliation, oldest first.
func (s *Store) ListFailed(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).
		Where("status = ?", enums.SubmitStatusFailed).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list journal entries")
	}
	return entries, nil
}

// Get fetches a single entry by id.
func (s *Store) Get(ctx context.Context, id uint) (*Entry, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "journal entry not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load journal entry")
	}
	return &entry, nil
}

// MarkRecovered flags a failed entry as reconciled with the platform order id.
func (s *Store) MarkRecovered(ctx context.Context, id uint, orderID int64) error {
	result := s.db.WithContext(ctx).
		Model(&Entry{}).
		Where("id = ? AND status = ?", id, enums.SubmitStatusFailed).
		Updates(map[string]any{
			"status":   enums.SubmitStatusRecovered,
			"order_id": orderID,
			"reason":   "",
		})
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "mark journal entry recovered")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "journal entry is not in a failed state")
	}
	return nil
}
