package verifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/invoice-gateway/internal/metrics"
	"github.com/chainsafe/invoice-gateway/pkg/amount"
	"github.com/chainsafe/invoice-gateway/pkg/ethereum"
	"github.com/chainsafe/invoice-gateway/pkg/invoice"
	"github.com/chainsafe/invoice-gateway/pkg/invoicestore"
)

// Failure reasons recorded on transitions to failed
const (
	ReasonMaxRetries     = "max_retries"
	ReasonReverted       = "reverted"
	ReasonMismatch       = "amount_or_recipient_mismatch"
	ReasonReceiptTimeout = "receipt_timeout"
	reasonConfirmed      = "confirmed"
)

// Verification stages used to label errors
const (
	stageLoad        = "load"
	stageTransaction = "transaction"
	stageReceipt     = "receipt"
	stageHead        = "block_number"
	stageToken       = "token"
	stageWrite       = "write"
)

const tickTimeout = 2 * time.Minute

// ChainClient is the read-only chain access used by the scheduler
//
//go:generate mockery --name ChainClient --output ./mocks --outpkg mocks --filename chain_client.go --with-expecter
type ChainClient interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error)
	TransactionReceipt(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error)
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

// Store is the narrow persistence interface used by the scheduler
//
//go:generate mockery --name Store --output ./mocks --outpkg mocks --filename store.go --with-expecter
type Store interface {
	FindBatch(ctx context.Context, q invoicestore.BatchQuery) ([]*invoice.Invoice, error)
	GetInvoiceByID(ctx context.Context, id int64) (*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, expected invoice.Status, upd *invoicestore.Update) error
	GetToken(ctx context.Context, chainID int64, tokenAddress string) (*invoice.TokenWhitelistEntry, error)
	ExpireOverdue(ctx context.Context, chainID int64, now time.Time) (int64, error)
}

// Config holds the scheduler settings
type Config struct {
	ChainID          int64
	PollInterval     time.Duration
	MinConfirmations uint64
	MaxVerifyRetries int
	BatchSize        int
	Workers          int
	ReceiptTimeout   time.Duration
	ExpireInvoices   bool
}

// StageError marks the verification step that failed
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// Scheduler periodically re-checks invoices with an attached transaction and
// moves them through pending/submitted to paid or failed.
type Scheduler struct {
	cfg       Config
	store     Store
	chain     ChainClient
	validator *Validator
	logger    *zap.Logger
	now       func() time.Time

	tickMu   sync.Mutex
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a Scheduler
func NewScheduler(cfg Config, store Store, chain ChainClient, validator *Validator, logger *zap.Logger) *Scheduler {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Scheduler{
		cfg:       cfg,
		store:     store,
		chain:     chain,
		validator: validator,
		logger:    logger,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start runs Tick every poll interval until Stop is called. Ticks never overlap.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.cfg.PollInterval)
		defer ticker.Stop()

		s.logger.Info("Started invoice verifier",
			zap.Duration("interval", s.cfg.PollInterval),
			zap.Uint64("min_confirmations", s.cfg.MinConfirmations),
			zap.Int("max_verify_retries", s.cfg.MaxVerifyRetries),
			zap.Int("workers", s.cfg.Workers))

		for {
			select {
			case <-ticker.C:
				// not derived from stopCh so an in-flight tick finishes its writes
				ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
				if err := s.Tick(ctx); err != nil {
					s.logger.Error("Verification tick failed", zap.Error(err))
				}
				cancel()
			case <-s.stopCh:
				s.logger.Info("Stopping invoice verifier")
				return
			}
		}
	}()
}

// Stop ends the loop and waits for the current tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Tick runs one verification pass: the overdue sweep, then every invoice in
// the batch. A failure on one invoice never aborts the others.
func (s *Scheduler) Tick(ctx context.Context) error {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	start := time.Now()
	defer func() {
		metrics.TickDuration.Observe(time.Since(start).Seconds())
	}()

	if s.cfg.ExpireInvoices {
		s.expireOverdue(ctx)
	}

	batch, err := s.store.FindBatch(ctx, invoicestore.BatchQuery{
		ChainID:  s.cfg.ChainID,
		Statuses: []invoice.Status{invoice.StatusPending, invoice.StatusSubmitted},
		Limit:    s.cfg.BatchSize,
	})
	if err != nil {
		return fmt.Errorf("failed to load invoice batch: %w", err)
	}
	metrics.TickBatchSize.Set(float64(len(batch)))
	if len(batch) == 0 {
		return nil
	}

	s.logger.Debug("Verifying invoice batch", zap.Int("size", len(batch)))

	g := new(errgroup.Group)
	g.SetLimit(min(s.cfg.Workers, len(batch)))
	for _, inv := range batch {
		g.Go(func() error {
			if err := s.process(ctx, inv.ID); err != nil {
				s.recordError(inv, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return nil
}

// VerifyNow runs a single verification pass for one invoice and returns its
// state afterwards. Errors from the pass are returned; the invoice stays
// eligible for the periodic loop.
func (s *Scheduler) VerifyNow(ctx context.Context, id int64) (*invoice.Invoice, error) {
	if err := s.process(ctx, id); err != nil {
		return nil, err
	}
	inv, err := s.store.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, stageErr(stageLoad, err)
	}
	return inv, nil
}

func (s *Scheduler) expireOverdue(ctx context.Context) {
	n, err := s.store.ExpireOverdue(ctx, s.cfg.ChainID, s.now())
	if err != nil {
		s.logger.Warn("Failed to expire overdue invoices", zap.Error(err))
		metrics.VerificationErrors.WithLabelValues("expire").Inc()
		return
	}
	if n > 0 {
		metrics.InvoicesExpired.Add(float64(n))
		s.logger.Info("Expired overdue invoices", zap.Int64("count", n))
	}
}

// process re-reads the invoice and advances it by at most one transition.
// Transport errors leave the row untouched so the next tick retries.
func (s *Scheduler) process(ctx context.Context, id int64) error {
	inv, err := s.store.GetInvoiceByID(ctx, id)
	if err != nil {
		return stageErr(stageLoad, err)
	}
	if inv.Status.IsTerminal() {
		return nil
	}
	if inv.ChainID != s.cfg.ChainID {
		s.logger.Debug("Skipping invoice on another chain",
			zap.String("invoice_id", inv.InvoiceID),
			zap.Int64("chain_id", inv.ChainID))
		return nil
	}

	now := s.now()

	if inv.VerifyRetries >= s.cfg.MaxVerifyRetries {
		return s.fail(ctx, inv, ReasonMaxRetries, "", &invoicestore.Update{LastCheckedAt: &now})
	}

	if !inv.HasTxHash() {
		return s.consumeRetry(ctx, inv, now)
	}

	hash := common.HexToHash(inv.TxHash)

	tx, err := s.chain.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.ErrNotFound) {
		s.logger.Debug("Transaction not found yet",
			zap.String("invoice_id", inv.InvoiceID),
			zap.String("tx_hash", inv.TxHash),
			zap.Int("retries", inv.VerifyRetries+1))
		return s.consumeRetry(ctx, inv, now)
	}
	if err != nil {
		return stageErr(stageTransaction, err)
	}
	payer := payerOf(tx)

	rc, err := s.chain.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.ErrNotFound) {
		if s.receiptOverdue(inv, now) {
			return s.fail(ctx, inv, ReasonReceiptTimeout, "", &invoicestore.Update{
				PayerAddress:  payer,
				LastCheckedAt: &now,
			})
		}
		submitted := invoice.StatusSubmitted
		_, err := s.write(ctx, inv, &invoicestore.Update{
			Status:        &submitted,
			PayerAddress:  payer,
			LastCheckedAt: &now,
		})
		return err
	}
	if err != nil {
		return stageErr(stageReceipt, err)
	}

	if !rc.Succeeded() {
		zero := int64(0)
		return s.fail(ctx, inv, ReasonReverted, "", &invoicestore.Update{
			PayerAddress:  payer,
			Confirmations: &zero,
			LastCheckedAt: &now,
		})
	}

	head, err := s.chain.LatestBlockNumber(ctx)
	if err != nil {
		return stageErr(stageHead, err)
	}
	confirmations := rc.Confirmations(head)

	decimals, err := s.decimals(ctx, inv)
	if err != nil {
		return stageErr(stageToken, err)
	}

	if verdict := s.validator.Validate(inv, decimals, tx, rc); !verdict.Valid {
		return s.fail(ctx, inv, ReasonMismatch, verdict.Reason, &invoicestore.Update{
			PayerAddress:  payer,
			Confirmations: &confirmations,
			LastCheckedAt: &now,
		})
	}

	// a reorg can lower the count; never store fewer than already observed
	confirmations = max(confirmations, inv.Confirmations)

	if confirmations >= int64(s.cfg.MinConfirmations) {
		paid := invoice.StatusPaid
		applied, err := s.write(ctx, inv, &invoicestore.Update{
			Status:        &paid,
			PayerAddress:  payer,
			Confirmations: &confirmations,
			ConfirmedAt:   &now,
			LastCheckedAt: &now,
		})
		if applied {
			metrics.InvoiceTransitions.WithLabelValues(string(invoice.StatusPaid), reasonConfirmed).Inc()
			s.logger.Info("Invoice paid",
				zap.String("invoice_id", inv.InvoiceID),
				zap.String("tx_hash", inv.TxHash),
				zap.Int64("confirmations", confirmations))
		}
		return err
	}

	submitted := invoice.StatusSubmitted
	_, err = s.write(ctx, inv, &invoicestore.Update{
		Status:        &submitted,
		PayerAddress:  payer,
		Confirmations: &confirmations,
		LastCheckedAt: &now,
	})
	return err
}

// consumeRetry spends one unit of the retry budget. The write is also
// conditioned on the retry count read, so overlapping passes over the same
// observation increment it once.
func (s *Scheduler) consumeRetry(ctx context.Context, inv *invoice.Invoice, now time.Time) error {
	retries := inv.VerifyRetries
	_, err := s.write(ctx, inv, &invoicestore.Update{
		IncrementRetries: true,
		ExpectedRetries:  &retries,
		LastCheckedAt:    &now,
	})
	return err
}

func (s *Scheduler) fail(ctx context.Context, inv *invoice.Invoice, reason, detail string, upd *invoicestore.Update) error {
	failed := invoice.StatusFailed
	upd.Status = &failed
	upd.FailureReason = &reason
	applied, err := s.write(ctx, inv, upd)
	if err != nil || !applied {
		return err
	}

	metrics.InvoiceTransitions.WithLabelValues(string(invoice.StatusFailed), reason).Inc()
	fields := []zap.Field{
		zap.String("invoice_id", inv.InvoiceID),
		zap.String("tx_hash", inv.TxHash),
		zap.String("reason", reason),
		zap.Int("retries", inv.VerifyRetries),
	}
	if detail != "" {
		fields = append(fields, zap.String("detail", detail))
	}
	s.logger.Warn("Invoice verification failed", fields...)
	return nil
}

// write applies upd conditioned on the status the invoice was read with and
// reports whether the row changed. Losing that race to a concurrent writer is
// not an error, but callers must not record a transition for it.
func (s *Scheduler) write(ctx context.Context, inv *invoice.Invoice, upd *invoicestore.Update) (bool, error) {
	err := s.store.UpdateInvoice(ctx, inv.ID, inv.Status, upd)
	if errors.Is(err, invoicestore.ErrStatusConflict) {
		s.logger.Debug("Invoice changed concurrently, skipping write",
			zap.String("invoice_id", inv.InvoiceID),
			zap.String("expected_status", string(inv.Status)))
		return false, nil
	}
	if err != nil {
		return false, stageErr(stageWrite, err)
	}
	return true, nil
}

// decimals returns the precision used to convert the invoice amount. The
// native asset is always 18; whitelist rows only apply to token contracts.
func (s *Scheduler) decimals(ctx context.Context, inv *invoice.Invoice) (int32, error) {
	if inv.IsNative() {
		return amount.DefaultDecimals, nil
	}
	tok, err := s.store.GetToken(ctx, inv.ChainID, inv.TokenAddress)
	if errors.Is(err, invoicestore.ErrTokenNotFound) {
		return amount.DefaultDecimals, nil
	}
	if err != nil {
		return 0, err
	}
	return tok.Decimals, nil
}

// receiptOverdue reports whether a known transaction has gone without a
// receipt for longer than the configured timeout.
func (s *Scheduler) receiptOverdue(inv *invoice.Invoice, now time.Time) bool {
	if s.cfg.ReceiptTimeout <= 0 {
		return false
	}
	since := inv.CreatedAt
	if inv.SubmittedAt != nil {
		since = *inv.SubmittedAt
	}
	return now.Sub(since) > s.cfg.ReceiptTimeout
}

func (s *Scheduler) recordError(inv *invoice.Invoice, err error) {
	stage := "unknown"
	var se *StageError
	if errors.As(err, &se) {
		stage = se.Stage
	}
	metrics.VerificationErrors.WithLabelValues(stage).Inc()
	s.logger.Warn("Invoice verification error",
		zap.String("invoice_id", inv.InvoiceID),
		zap.String("tx_hash", inv.TxHash),
		zap.String("stage", stage),
		zap.Error(err))
}

func payerOf(tx *ethereum.Transaction) *string {
	if tx.From == (common.Address{}) {
		return nil
	}
	payer := invoice.NormalizeAddress(tx.From.Hex())
	return &payer
}
