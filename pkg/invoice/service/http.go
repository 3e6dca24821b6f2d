package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/invoice-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/invoice-gateway/pkg/app/http"
	"github.com/chainsafe/invoice-gateway/pkg/invoice"
)

const maxBodyBytes = 1 << 20

// AuditRecorder persists audit entries for API actions.
//
//go:generate mockery --name AuditRecorder --output mocks --outpkg mocks --filename mock_audit_recorder.go --with-expecter
type AuditRecorder interface {
	RecordAudit(ctx context.Context, entry *invoice.AuditEntry) error
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	audit   AuditRecorder
	logger  *zap.Logger
}

// RegisterRoutes registers the payment endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, audit AuditRecorder, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		audit:   audit,
		logger:  logger,
	}

	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.create))
		r.Get("/{invoiceId}", apphttp.HandleError(h.get))
		r.Patch("/{invoiceId}/confirm", apphttp.HandleError(h.confirm))
	})
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	var req invoice.CreateRequest
	if err := readJSON(r, &req); err != nil {
		return err
	}

	h.recordAudit(r, &invoice.AuditEntry{
		Action: invoice.AuditCreateInvoice,
		Target: invoice.NormalizeAddress(req.ToAddress),
		Meta: map[string]any{
			"chainId":      req.ChainID,
			"tokenAddress": req.TokenAddress,
			"amount":       req.Amount,
		},
	})

	resp, err := h.service.CreateInvoice(r.Context(), &req)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetInvoice(r.Context(), chi.URLParam(r, "invoiceId"))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) confirm(w http.ResponseWriter, r *http.Request) error {
	invoiceID := chi.URLParam(r, "invoiceId")

	var req invoice.ConfirmRequest
	if err := readJSON(r, &req); err != nil {
		return err
	}

	h.recordAudit(r, &invoice.AuditEntry{
		Action: invoice.AuditConfirmPayment,
		Target: invoiceID,
		Meta:   map[string]any{"txHash": req.TxHash},
	})

	resp, err := h.service.ConfirmPayment(r.Context(), invoiceID, &req)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, resp)
	return nil
}

// recordAudit never fails the request
func (h *HTTP) recordAudit(r *http.Request, entry *invoice.AuditEntry) {
	if h.audit == nil {
		return
	}
	entry.IP = apphttp.ClientIP(r)
	if err := h.audit.RecordAudit(r.Context(), entry); err != nil {
		h.logger.Warn("Failed to record audit entry",
			zap.String("action", string(entry.Action)),
			zap.String("target", entry.Target),
			zap.Error(err))
	}
}

func readJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
