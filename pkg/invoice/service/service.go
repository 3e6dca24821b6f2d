package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chainsafe/invoice-gateway/internal/metrics"
	"github.com/chainsafe/invoice-gateway/pkg/amount"
	apperrors "github.com/chainsafe/invoice-gateway/pkg/app/errors"
	"github.com/chainsafe/invoice-gateway/pkg/invoice"
	"github.com/chainsafe/invoice-gateway/pkg/invoicestore"
)

const (
	invoiceIDBytes   = 8
	createIDAttempts = 3
	maxExpireSeconds = 30 * 24 * 60 * 60

	// accepted in place of the all-zero native token address
	nativeShorthand = "0x0"
)

var (
	ErrTokenNotAllowed = errors.New("token not allowed")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNotPending      = errors.New("invoice is not pending")
	ErrInvoiceExpired  = errors.New("invoice expired")
	ErrWrongChain      = errors.New("wrong chain")
	ErrInvalidTxHash   = errors.New("invalid transaction hash")
	ErrTxHashInUse     = errors.New("transaction hash already used")
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Store is the narrow data-access interface for the invoice service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetToken(ctx context.Context, chainID int64, tokenAddress string) (*invoice.TokenWhitelistEntry, error)
	CreateInvoice(ctx context.Context, inv *invoice.Invoice) error
	GetInvoiceByInvoiceID(ctx context.Context, invoiceID string) (*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, expected invoice.Status, upd *invoicestore.Update) error
}

// Verifier runs an immediate verification pass for one invoice.
//
//go:generate mockery --name Verifier --output mocks --outpkg mocks --filename mock_verifier.go --with-expecter
type Verifier interface {
	VerifyNow(ctx context.Context, id int64) (*invoice.Invoice, error)
}

// Service defines the invoice business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateInvoice(ctx context.Context, req *invoice.CreateRequest) (*invoice.Response, error)
	GetInvoice(ctx context.Context, invoiceID string) (*invoice.Response, error)
	ConfirmPayment(ctx context.Context, invoiceID string, req *invoice.ConfirmRequest) (*invoice.ConfirmResponse, error)
}

type invoiceService struct {
	store    Store
	verifier Verifier
	chainID  int64
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
	newID    func() (string, error)
}

// NewService creates a new invoice service for the given chain
func NewService(store Store, verifier Verifier, chainID int64, logger *zap.Logger) Service {
	return &invoiceService{
		store:    store,
		verifier: verifier,
		chainID:  chainID,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
		newID:    newInvoiceID,
	}
}

// CreateInvoice validates the request against the token whitelist and stores
// a new pending invoice.
func (s *invoiceService) CreateInvoice(ctx context.Context, req *invoice.CreateRequest) (*invoice.Response, error) {
	if req.TokenAddress == nativeShorthand {
		req.TokenAddress = invoice.NativeTokenAddress
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid request")
	}
	if req.ChainID != s.chainID {
		return nil, apperrors.BadRequestError(ErrWrongChain, fmt.Sprintf("unsupported chain %d", req.ChainID))
	}
	if req.ExpireSeconds > maxExpireSeconds {
		return nil, apperrors.BadRequestError(nil, "expireSeconds too large")
	}

	tokenAddress := invoice.NormalizeAddress(req.TokenAddress)
	token, err := s.store.GetToken(ctx, req.ChainID, tokenAddress)
	if errors.Is(err, invoicestore.ErrTokenNotFound) {
		return nil, apperrors.BadRequestError(ErrTokenNotAllowed, "token not allowed")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if !token.Enabled {
		return nil, apperrors.BadRequestError(ErrTokenNotAllowed, "token not allowed")
	}

	if err := amount.Validate(req.Amount); err != nil {
		return nil, apperrors.BadRequestError(ErrInvalidAmount, "invalid amount")
	}
	decimals := token.Decimals
	if tokenAddress == invoice.NativeTokenAddress {
		decimals = amount.DefaultDecimals
	}
	if !amount.IsPositive(req.Amount, decimals) {
		return nil, apperrors.BadRequestError(ErrInvalidAmount, "amount must be positive")
	}

	symbol := req.TokenSymbol
	if symbol == "" {
		symbol = token.TokenSymbol
	}

	now := s.now()
	inv := &invoice.Invoice{
		ChainID:      req.ChainID,
		TokenAddress: tokenAddress,
		TokenSymbol:  symbol,
		Amount:       req.Amount,
		ToAddress:    invoice.NormalizeAddress(req.ToAddress),
		Status:       invoice.StatusPending,
		Description:  req.Description,
	}
	if req.ExpireSeconds > 0 {
		expiresAt := now.Add(time.Duration(req.ExpireSeconds) * time.Second)
		inv.ExpiresAt = &expiresAt
	}

	if err := s.insertWithFreshID(ctx, inv); err != nil {
		return nil, err
	}

	metrics.InvoicesCreated.WithLabelValues(symbol).Inc()
	return invoice.NewResponse(inv, decimals), nil
}

// insertWithFreshID retries the insert when the random public id collides
func (s *invoiceService) insertWithFreshID(ctx context.Context, inv *invoice.Invoice) error {
	for attempt := 1; ; attempt++ {
		id, err := s.newID()
		if err != nil {
			return fmt.Errorf("failed to generate invoice id: %w", err)
		}
		inv.InvoiceID = id

		err = s.store.CreateInvoice(ctx, inv)
		if err == nil {
			return nil
		}
		if !errors.Is(err, invoicestore.ErrDuplicateInvoice) || attempt >= createIDAttempts {
			return fmt.Errorf("failed to create invoice: %w", err)
		}
		s.logger.Warn("Invoice id collision, retrying", zap.String("invoice_id", id))
	}
}

// GetInvoice returns the public view of an invoice
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*invoice.Response, error) {
	inv, err := s.getInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice.NewResponse(inv, s.decimals(ctx, inv)), nil
}

// ConfirmPayment attaches a transaction to a pending invoice and runs one
// verification pass immediately. If that pass cannot reach the chain the
// invoice stays submitted and the periodic loop picks it up.
func (s *invoiceService) ConfirmPayment(
	ctx context.Context,
	invoiceID string,
	req *invoice.ConfirmRequest,
) (*invoice.ConfirmResponse, error) {
	if !txHashPattern.MatchString(req.TxHash) {
		return nil, apperrors.BadRequestError(ErrInvalidTxHash, "invalid txHash")
	}
	txHash := strings.ToLower(req.TxHash)

	inv, err := s.getInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != invoice.StatusPending {
		return nil, apperrors.ConflictError(ErrNotPending, "invoice not pending")
	}
	if inv.ChainID != s.chainID {
		return nil, apperrors.BadRequestError(ErrWrongChain, "wrong chain")
	}

	now := s.now()
	// the expiry sweep may not have run yet
	if inv.IsOverdue(now) {
		return nil, apperrors.ConflictError(ErrInvoiceExpired, "invoice expired")
	}

	submitted := invoice.StatusSubmitted
	err = s.store.UpdateInvoice(ctx, inv.ID, invoice.StatusPending, &invoicestore.Update{
		Status:      &submitted,
		TxHash:      &txHash,
		SubmittedAt: &now,
	})
	switch {
	case errors.Is(err, invoicestore.ErrStatusConflict):
		return nil, apperrors.ConflictError(ErrNotPending, "invoice not pending")
	case errors.Is(err, invoicestore.ErrTxHashInUse):
		return nil, apperrors.ConflictError(ErrTxHashInUse, "txHash already used for another invoice")
	case err != nil:
		return nil, fmt.Errorf("failed to attach transaction: %w", err)
	}

	resp := &invoice.ConfirmResponse{Status: invoice.StatusSubmitted, TxHash: txHash}

	verified, err := s.verifier.VerifyNow(ctx, inv.ID)
	if err != nil {
		s.logger.Warn("Immediate verification failed, deferring to scheduler",
			zap.String("invoice_id", invoiceID),
			zap.String("tx_hash", txHash),
			zap.Error(err))
		return resp, nil
	}

	resp.Status = verified.Status
	resp.Payer = verified.PayerAddress
	return resp, nil
}

func (s *invoiceService) getInvoice(ctx context.Context, invoiceID string) (*invoice.Invoice, error) {
	inv, err := s.store.GetInvoiceByInvoiceID(ctx, invoiceID)
	if errors.Is(err, invoicestore.ErrInvoiceNotFound) {
		return nil, apperrors.ResourceNotFoundError(ErrInvoiceNotFound, "invoice not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

// decimals resolves the display scale of an invoice amount. Native currency
// is always wei-based regardless of its whitelist row.
func (s *invoiceService) decimals(ctx context.Context, inv *invoice.Invoice) int32 {
	if inv.IsNative() {
		return amount.DefaultDecimals
	}
	tok, err := s.store.GetToken(ctx, inv.ChainID, inv.TokenAddress)
	if err != nil {
		if !errors.Is(err, invoicestore.ErrTokenNotFound) {
			s.logger.Warn("Failed to look up token decimals", zap.String("token", inv.TokenAddress), zap.Error(err))
		}
		return amount.DefaultDecimals
	}
	return tok.Decimals
}

func newInvoiceID() (string, error) {
	b := make([]byte, invoiceIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
