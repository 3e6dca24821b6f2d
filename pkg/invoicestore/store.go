package invoicestore

import (
	"context"
	"errors"
	"time"

	"github.com/chainsafe/invoice-gateway/pkg/invoice"
)

var (
	// ErrInvoiceNotFound is returned when an invoice lookup finds no matching record.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrTokenNotFound is returned when a token has no whitelist entry for the chain.
	ErrTokenNotFound = errors.New("token not whitelisted")
	// ErrStatusConflict is returned by UpdateInvoice when the row no longer matches the expected status or retry count.
	ErrStatusConflict = errors.New("invoice status changed concurrently")
	// ErrDuplicateInvoice is returned when the public invoice id is already taken.
	ErrDuplicateInvoice = errors.New("invoice id already exists")
	// ErrTxHashInUse is returned when a transaction hash is already attached to another invoice.
	ErrTxHashInUse = errors.New("transaction hash already attached to an invoice")
)

// Store defines the invoice persistence operations
type Store interface {
	WhitelistStore
	AuditStore
	CreateInvoice(ctx context.Context, inv *invoice.Invoice) error
	GetInvoice(ctx context.Context, opts ...QueryOption) (*invoice.Invoice, error)
	GetInvoiceByID(ctx context.Context, id int64) (*invoice.Invoice, error)
	GetInvoiceByInvoiceID(ctx context.Context, invoiceID string) (*invoice.Invoice, error)
	FindBatch(ctx context.Context, q BatchQuery) ([]*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, expected invoice.Status, upd *Update) error
	ExpireOverdue(ctx context.Context, chainID int64, now time.Time) (int64, error)
}

// WhitelistStore defines token whitelist lookups
type WhitelistStore interface {
	GetToken(ctx context.Context, chainID int64, tokenAddress string) (*invoice.TokenWhitelistEntry, error)
	UpsertToken(ctx context.Context, entry *invoice.TokenWhitelistEntry) error
}

// AuditStore persists audit log entries
type AuditStore interface {
	RecordAudit(ctx context.Context, entry *invoice.AuditEntry) error
}

// BatchQuery selects invoices awaiting verification
type BatchQuery struct {
	ChainID  int64
	Statuses []invoice.Status
	Limit    int
}

// Update is a partial invoice update. Nil fields are left untouched.
type Update struct {
	Status           *invoice.Status
	TxHash           *string
	PayerAddress     *string
	Confirmations    *int64
	FailureReason    *string
	IncrementRetries bool
	SubmittedAt      *time.Time
	LastCheckedAt    *time.Time
	ConfirmedAt      *time.Time

	// ExpectedRetries, when set, also requires verify_retries to equal it
	ExpectedRetries *int
}

// IsEmpty reports whether the update changes nothing
func (u *Update) IsEmpty() bool {
	return u == nil || (u.Status == nil && u.TxHash == nil && u.PayerAddress == nil &&
		u.Confirmations == nil && u.FailureReason == nil && !u.IncrementRetries && u.SubmittedAt == nil &&
		u.LastCheckedAt == nil && u.ConfirmedAt == nil)
}

// QueryOptions defines options for querying invoices
type QueryOptions struct {
	ID        *int64
	InvoiceID *string
}

// QueryOption is a functional option for querying invoices
type QueryOption func(*QueryOptions)

// WithID sets the surrogate key filter
func WithID(id int64) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithInvoiceID sets the public invoice id filter
func WithInvoiceID(invoiceID string) QueryOption {
	return func(opts *QueryOptions) {
		opts.InvoiceID = &invoiceID
	}
}
