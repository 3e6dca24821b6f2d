package invoicestore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/invoice-gateway/pkg/invoice"
)

const metaDescription = "description"

// InvoiceDao maps to the 'invoices' table.
type InvoiceDao struct {
	bun.BaseModel `bun:"table:invoices,alias:i"`
	ID            int64          `bun:"id,pk,autoincrement"`
	InvoiceID     string         `bun:"invoice_id,unique,notnull,type:varchar(32)"`
	ChainID       int64          `bun:"chain_id,notnull"`
	TokenAddress  string         `bun:"token_address,notnull,type:varchar(42)"`
	TokenSymbol   string         `bun:"token_symbol,notnull,type:varchar(32)"`
	Amount        string         `bun:"amount,notnull,type:varchar(100)"`
	ToAddress     string         `bun:"to_address,notnull,type:varchar(42)"`
	Status        string         `bun:"status,notnull,type:varchar(16),default:'pending'"`
	TxHash        *string        `bun:"tx_hash,unique,type:varchar(66)"`
	PayerAddress  *string        `bun:"payer_address,type:varchar(42)"`
	Confirmations int64          `bun:"confirmations,notnull,default:0"`
	VerifyRetries int            `bun:"verify_retries,notnull,default:0"`
	FailureReason *string        `bun:"failure_reason,type:varchar(64)"`
	Meta          map[string]any `bun:"meta,type:jsonb"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	SubmittedAt   *time.Time     `bun:"submitted_at"`
	LastCheckedAt *time.Time     `bun:"last_checked_at"`
	ConfirmedAt   *time.Time     `bun:"confirmed_at"`
	ExpiresAt     *time.Time     `bun:"expires_at"`
}

// TokenWhitelistDao maps to the 'token_whitelist' table.
type TokenWhitelistDao struct {
	bun.BaseModel `bun:"table:token_whitelist,alias:tw"`
	ChainID       int64     `bun:"chain_id,pk"`
	TokenAddress  string    `bun:"token_address,pk,type:varchar(42)"`
	TokenSymbol   string    `bun:"token_symbol,notnull,type:varchar(32)"`
	Decimals      int32     `bun:"decimals,notnull"`
	Enabled       bool      `bun:"enabled,notnull,default:true"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// AuditLogDao maps to the 'audit_logs' table.
type AuditLogDao struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`
	ID            uuid.UUID      `bun:"id,pk,type:uuid"`
	Action        string         `bun:"action,notnull,type:varchar(32)"`
	Target        *string        `bun:"target,type:varchar(255)"`
	IP            *string        `bun:"ip,type:varchar(64)"`
	Meta          map[string]any `bun:"meta,type:jsonb"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toInvoiceDao(inv *invoice.Invoice) *InvoiceDao {
	dao := &InvoiceDao{
		ID:            inv.ID,
		InvoiceID:     inv.InvoiceID,
		ChainID:       inv.ChainID,
		TokenAddress:  inv.TokenAddress,
		TokenSymbol:   inv.TokenSymbol,
		Amount:        inv.Amount,
		ToAddress:     inv.ToAddress,
		Status:        string(inv.Status),
		Confirmations: inv.Confirmations,
		VerifyRetries: inv.VerifyRetries,
		CreatedAt:     inv.CreatedAt,
		SubmittedAt:   inv.SubmittedAt,
		LastCheckedAt: inv.LastCheckedAt,
		ConfirmedAt:   inv.ConfirmedAt,
		ExpiresAt:     inv.ExpiresAt,
	}

	if dao.Status == "" {
		dao.Status = string(invoice.StatusPending)
	}
	if inv.TxHash != "" {
		dao.TxHash = &inv.TxHash
	}
	if inv.PayerAddress != "" {
		dao.PayerAddress = &inv.PayerAddress
	}
	if inv.FailureReason != "" {
		dao.FailureReason = &inv.FailureReason
	}
	if inv.Description != "" {
		dao.Meta = map[string]any{metaDescription: inv.Description}
	}

	return dao
}

func toInvoice(dao *InvoiceDao) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:            dao.ID,
		InvoiceID:     dao.InvoiceID,
		ChainID:       dao.ChainID,
		TokenAddress:  dao.TokenAddress,
		TokenSymbol:   dao.TokenSymbol,
		Amount:        dao.Amount,
		ToAddress:     dao.ToAddress,
		Status:        invoice.Status(dao.Status),
		Confirmations: dao.Confirmations,
		VerifyRetries: dao.VerifyRetries,
		CreatedAt:     dao.CreatedAt,
		SubmittedAt:   dao.SubmittedAt,
		LastCheckedAt: dao.LastCheckedAt,
		ConfirmedAt:   dao.ConfirmedAt,
		ExpiresAt:     dao.ExpiresAt,
	}

	if dao.TxHash != nil {
		inv.TxHash = *dao.TxHash
	}
	if dao.PayerAddress != nil {
		inv.PayerAddress = *dao.PayerAddress
	}
	if dao.FailureReason != nil {
		inv.FailureReason = *dao.FailureReason
	}
	if desc, ok := dao.Meta[metaDescription].(string); ok {
		inv.Description = desc
	}

	return inv
}

func toTokenWhitelistDao(entry *invoice.TokenWhitelistEntry) *TokenWhitelistDao {
	return &TokenWhitelistDao{
		ChainID:      entry.ChainID,
		TokenAddress: invoice.NormalizeAddress(entry.TokenAddress),
		TokenSymbol:  entry.TokenSymbol,
		Decimals:     entry.Decimals,
		Enabled:      entry.Enabled,
	}
}

func toTokenWhitelistEntry(dao *TokenWhitelistDao) *invoice.TokenWhitelistEntry {
	return &invoice.TokenWhitelistEntry{
		ChainID:      dao.ChainID,
		TokenAddress: dao.TokenAddress,
		TokenSymbol:  dao.TokenSymbol,
		Decimals:     dao.Decimals,
		Enabled:      dao.Enabled,
	}
}

func toAuditLogDao(entry *invoice.AuditEntry) *AuditLogDao {
	dao := &AuditLogDao{
		ID:     uuid.New(),
		Action: string(entry.Action),
		Meta:   entry.Meta,
	}
	if entry.Target != "" {
		dao.Target = &entry.Target
	}
	if entry.IP != "" {
		dao.IP = &entry.IP
	}
	return dao
}
