package invoice

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusExpired   Status = "expired"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusPaid, StatusFailed, StatusExpired:
		return true
	default:
		return false
	}
}

// NativeTokenAddress identifies the chain's native currency in the whitelist.
const NativeTokenAddress = "0x0000000000000000000000000000000000000000"

// Invoice is the domain model for a payment request.
type Invoice struct {
	ID            int64
	InvoiceID     string
	ChainID       int64
	TokenAddress  string
	TokenSymbol   string
	Amount        string
	ToAddress     string
	Status        Status
	TxHash        string
	PayerAddress  string
	Confirmations int64
	VerifyRetries int
	FailureReason string
	Description   string
	CreatedAt     time.Time
	SubmittedAt   *time.Time
	LastCheckedAt *time.Time
	ConfirmedAt   *time.Time
	ExpiresAt     *time.Time
}

// IsNative reports whether the invoice is denominated in the native currency.
func (i *Invoice) IsNative() bool {
	return NormalizeAddress(i.TokenAddress) == NativeTokenAddress
}

// HasTxHash reports whether a payment transaction has been attached.
func (i *Invoice) HasTxHash() bool {
	return i.TxHash != ""
}

// IsOverdue reports whether an unpaid invoice has passed its expiry time.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == StatusPending && !i.HasTxHash() && i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}

// TokenWhitelistEntry is a token accepted for invoicing on a chain.
type TokenWhitelistEntry struct {
	ChainID      int64
	TokenAddress string
	TokenSymbol  string
	Decimals     int32
	Enabled      bool
}

// NormalizeAddress lowercases and trims an address for storage and comparison.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// AuditAction names an entry in the audit log.
type AuditAction string

const (
	AuditCreateInvoice  AuditAction = "CREATE_INVOICE"
	AuditConfirmPayment AuditAction = "CONFIRM_PAYMENT"
)

// AuditEntry is a best-effort record of an API action.
type AuditEntry struct {
	Action AuditAction
	Target string
	IP     string
	Meta   map[string]any
}

// CreateRequest is the body of an invoice creation call.
type CreateRequest struct {
	ChainID       int64  `json:"chainId" validate:"required,gt=0"`
	TokenAddress  string `json:"tokenAddress" validate:"required,eth_addr"`
	TokenSymbol   string `json:"tokenSymbol,omitzero" validate:"omitempty,max=32"`
	Amount        string `json:"amount" validate:"required,max=100"`
	ToAddress     string `json:"toAddress" validate:"required,eth_addr"`
	Description   string `json:"description,omitzero" validate:"omitempty,max=500"`
	ExpireSeconds int64  `json:"expireSeconds,omitzero" validate:"gte=0"`
}

// ConfirmRequest attaches a payment transaction to an invoice.
type ConfirmRequest struct {
	TxHash string `json:"txHash"`
}

// ConfirmResponse reports the status after an immediate verification pass.
type ConfirmResponse struct {
	Status Status `json:"status"`
	TxHash string `json:"txHash"`
	Payer  string `json:"payer,omitzero"`
}

// Response is the public view of an invoice.
type Response struct {
	InvoiceID     string     `json:"invoiceId"`
	ChainID       int64      `json:"chainId"`
	TokenAddress  string     `json:"tokenAddress"`
	TokenSymbol   string     `json:"tokenSymbol"`
	Decimals      int32      `json:"decimals"`
	Amount        string     `json:"amount"`
	ToAddress     string     `json:"toAddress"`
	Status        Status     `json:"status"`
	TxHash        string     `json:"txHash,omitzero"`
	PayerAddress  string     `json:"payerAddress,omitzero"`
	Confirmations int64      `json:"confirmations"`
	FailureReason string     `json:"failureReason,omitzero"`
	Description   string     `json:"description,omitzero"`
	CreatedAt     time.Time  `json:"createdAt"`
	ConfirmedAt   *time.Time `json:"confirmedAt,omitzero"`
	ExpiresAt     *time.Time `json:"expiresAt,omitzero"`
}

// NewResponse builds the public view of inv.
func NewResponse(inv *Invoice, decimals int32) *Response {
	return &Response{
		InvoiceID:     inv.InvoiceID,
		ChainID:       inv.ChainID,
		TokenAddress:  inv.TokenAddress,
		TokenSymbol:   inv.TokenSymbol,
		Decimals:      decimals,
		Amount:        inv.Amount,
		ToAddress:     inv.ToAddress,
		Status:        inv.Status,
		TxHash:        inv.TxHash,
		PayerAddress:  inv.PayerAddress,
		Confirmations: inv.Confirmations,
		FailureReason: inv.FailureReason,
		Description:   inv.Description,
		CreatedAt:     inv.CreatedAt,
		ConfirmedAt:   inv.ConfirmedAt,
		ExpiresAt:     inv.ExpiresAt,
	}
}
