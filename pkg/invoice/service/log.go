package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/invoice-gateway/pkg/invoice"
)

const serviceName = "InvoiceService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the invoice Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreateInvoice wraps the service method with logging
func (ls *logService) CreateInvoice(
	ctx context.Context,
	req *invoice.CreateRequest,
) (resp *invoice.Response, err error) {
	start := time.Now()

	ls.logger.Info("CreateInvoice started",
		zap.String("service", serviceName),
		zap.String("method", "CreateInvoice"),
		zap.Int64("chain_id", req.ChainID),
		zap.String("token_address", req.TokenAddress),
		zap.String("amount", req.Amount),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("CreateInvoice failed",
				zap.String("service", serviceName),
				zap.String("method", "CreateInvoice"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("CreateInvoice completed",
			zap.String("service", serviceName),
			zap.String("method", "CreateInvoice"),
			zap.String("invoice_id", resp.InvoiceID),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.CreateInvoice(ctx, req)
}

// GetInvoice wraps the service method with logging. Reads are frequent so
// only failures are logged.
func (ls *logService) GetInvoice(ctx context.Context, invoiceID string) (resp *invoice.Response, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Warn("GetInvoice failed",
				zap.String("service", serviceName),
				zap.String("method", "GetInvoice"),
				zap.String("invoice_id", invoiceID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.GetInvoice(ctx, invoiceID)
}

// ConfirmPayment wraps the service method with logging
func (ls *logService) ConfirmPayment(
	ctx context.Context,
	invoiceID string,
	req *invoice.ConfirmRequest,
) (resp *invoice.ConfirmResponse, err error) {
	start := time.Now()

	ls.logger.Info("ConfirmPayment started",
		zap.String("service", serviceName),
		zap.String("method", "ConfirmPayment"),
		zap.String("invoice_id", invoiceID),
		zap.String("tx_hash", req.TxHash),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("ConfirmPayment failed",
				zap.String("service", serviceName),
				zap.String("method", "ConfirmPayment"),
				zap.String("invoice_id", invoiceID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("ConfirmPayment completed",
			zap.String("service", serviceName),
			zap.String("method", "ConfirmPayment"),
			zap.String("invoice_id", invoiceID),
			zap.String("status", string(resp.Status)),
			zap.String("payer", resp.Payer),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.ConfirmPayment(ctx, invoiceID, req)
}
