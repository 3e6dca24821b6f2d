package invoicestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/invoice-gateway/pkg/invoice"
)

const pgUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the invoice store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	dao := toInvoiceDao(inv)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create invoice %s: %w", inv.InvoiceID, ErrDuplicateInvoice)
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	inv.ID = dao.ID
	inv.CreatedAt = dao.CreatedAt
	inv.Status = invoice.Status(dao.Status)
	return nil
}

func (s *pgStore) GetInvoice(ctx context.Context, opts ...QueryOption) (*invoice.Invoice, error) {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dao := new(InvoiceDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}
	if options.InvoiceID != nil {
		query = query.Where("invoice_id = ?", *options.InvoiceID)
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return toInvoice(dao), nil
}

func (s *pgStore) GetInvoiceByID(ctx context.Context, id int64) (*invoice.Invoice, error) {
	return s.GetInvoice(ctx, WithID(id))
}

func (s *pgStore) GetInvoiceByInvoiceID(ctx context.Context, invoiceID string) (*invoice.Invoice, error) {
	return s.GetInvoice(ctx, WithInvoiceID(invoiceID))
}

// FindBatch returns up to q.Limit invoices in the given statuses that carry a
// transaction hash, oldest first.
func (s *pgStore) FindBatch(ctx context.Context, q BatchQuery) ([]*invoice.Invoice, error) {
	if len(q.Statuses) == 0 || q.Limit <= 0 {
		return nil, nil
	}

	statuses := make([]string, len(q.Statuses))
	for i, st := range q.Statuses {
		statuses[i] = string(st)
	}

	var daos []InvoiceDao
	query := s.db.NewSelect().
		Model(&daos).
		Where("status IN (?)", bun.In(statuses)).
		Where("tx_hash IS NOT NULL")
	if q.ChainID != 0 {
		query = query.Where("chain_id = ?", q.ChainID)
	}

	err := query.
		OrderExpr("created_at ASC, id ASC").
		Limit(q.Limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice batch: %w", err)
	}

	invoices := make([]*invoice.Invoice, len(daos))
	for i := range daos {
		invoices[i] = toInvoice(&daos[i])
	}
	return invoices, nil
}

// UpdateInvoice applies upd only if the row still has the expected status.
// ErrStatusConflict is returned when no row matched.
func (s *pgStore) UpdateInvoice(ctx context.Context, id int64, expected invoice.Status, upd *Update) error {
	if upd.IsEmpty() {
		return nil
	}

	query := s.db.NewUpdate().
		Model((*InvoiceDao)(nil)).
		Where("id = ?", id).
		Where("status = ?", string(expected))
	if upd.ExpectedRetries != nil {
		query = query.Where("verify_retries = ?", *upd.ExpectedRetries)
	}

	if upd.Status != nil {
		query = query.Set("status = ?", string(*upd.Status))
	}
	if upd.TxHash != nil {
		query = query.Set("tx_hash = ?", *upd.TxHash)
	}
	if upd.PayerAddress != nil {
		query = query.Set("payer_address = ?", *upd.PayerAddress)
	}
	if upd.Confirmations != nil {
		query = query.Set("confirmations = ?", *upd.Confirmations)
	}
	if upd.FailureReason != nil {
		query = query.Set("failure_reason = ?", *upd.FailureReason)
	}
	if upd.IncrementRetries {
		query = query.Set("verify_retries = verify_retries + 1")
	}
	if upd.SubmittedAt != nil {
		query = query.Set("submitted_at = ?", *upd.SubmittedAt)
	}
	if upd.LastCheckedAt != nil {
		query = query.Set("last_checked_at = ?", *upd.LastCheckedAt)
	}
	if upd.ConfirmedAt != nil {
		query = query.Set("confirmed_at = ?", *upd.ConfirmedAt)
	}

	res, err := query.Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrTxHashInUse
		}
		return fmt.Errorf("failed to update invoice %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}

// ExpireOverdue moves pending invoices without a transaction past their
// expiry time to expired and returns how many rows changed.
func (s *pgStore) ExpireOverdue(ctx context.Context, chainID int64, now time.Time) (int64, error) {
	query := s.db.NewUpdate().
		Model((*InvoiceDao)(nil)).
		Set("status = ?", string(invoice.StatusExpired)).
		Set("last_checked_at = ?", now).
		Where("status = ?", string(invoice.StatusPending)).
		Where("tx_hash IS NULL").
		Where("expires_at IS NOT NULL").
		Where("expires_at < ?", now)
	if chainID != 0 {
		query = query.Where("chain_id = ?", chainID)
	}

	res, err := query.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire invoices: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func (s *pgStore) GetToken(ctx context.Context, chainID int64, tokenAddress string) (*invoice.TokenWhitelistEntry, error) {
	dao := new(TokenWhitelistDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("chain_id = ?", chainID).
		Where("token_address = ?", invoice.NormalizeAddress(tokenAddress)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get whitelisted token: %w", err)
	}
	return toTokenWhitelistEntry(dao), nil
}

func (s *pgStore) UpsertToken(ctx context.Context, entry *invoice.TokenWhitelistEntry) error {
	_, err := s.db.NewInsert().
		Model(toTokenWhitelistDao(entry)).
		On("CONFLICT (chain_id, token_address) DO UPDATE").
		Set("token_symbol = EXCLUDED.token_symbol").
		Set("decimals = EXCLUDED.decimals").
		Set("enabled = EXCLUDED.enabled").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert whitelisted token: %w", err)
	}
	return nil
}

func (s *pgStore) RecordAudit(ctx context.Context, entry *invoice.AuditEntry) error {
	_, err := s.db.NewInsert().
		Model(toAuditLogDao(entry)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation
}
