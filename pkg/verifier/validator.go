package verifier

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/invoice-gateway/pkg/amount"
	"github.com/chainsafe/invoice-gateway/pkg/ethereum"
	"github.com/chainsafe/invoice-gateway/pkg/invoice"
)

// Mismatch reasons reported by Validator
const (
	ReasonWrongRecipient = "recipient_not_gateway"
	ReasonAmountMismatch = "amount_mismatch"
	ReasonNoTransfer     = "no_matching_transfer"
	ReasonBadAmount      = "invalid_invoice_amount"
)

// Verdict is the outcome of matching a transaction against an invoice
type Verdict struct {
	Valid  bool
	Reason string
}

// Validator decides whether a mined transaction pays an invoice exactly
type Validator struct {
	gateway      common.Address
	feeRecipient common.Address
}

// NewValidator creates a Validator. feeRecipient may be empty; when set it is
// accepted as a token transfer recipient alongside the gateway.
func NewValidator(gateway, feeRecipient string) *Validator {
	v := &Validator{gateway: common.HexToAddress(gateway)}
	if feeRecipient != "" {
		v.feeRecipient = common.HexToAddress(feeRecipient)
	}
	return v
}

// Validate checks tx and its receipt against inv. decimals are the token's
// decimals from the whitelist and are ignored for the native asset, which is
// always 18.
func (v *Validator) Validate(inv *invoice.Invoice, decimals int32, tx *ethereum.Transaction, rc *ethereum.Receipt) Verdict {
	if tx == nil || tx.To == nil || *tx.To != v.gateway {
		return Verdict{Reason: ReasonWrongRecipient}
	}
	if inv.IsNative() {
		decimals = amount.DefaultDecimals
	}

	want, err := amount.ToUnits(inv.Amount, decimals)
	if err != nil {
		return Verdict{Reason: ReasonBadAmount}
	}

	if inv.IsNative() {
		return v.validateNative(tx, want)
	}
	return v.validateToken(common.HexToAddress(inv.TokenAddress), rc, want)
}

func (v *Validator) validateNative(tx *ethereum.Transaction, want *big.Int) Verdict {
	if tx.Value == nil || tx.Value.Cmp(want) != 0 {
		return Verdict{Reason: ReasonAmountMismatch}
	}
	return Verdict{Valid: true}
}

// validateToken accepts the receipt if any Transfer log emitted by token moves
// exactly want to an accepted recipient. Logs from other contracts and logs
// that do not decode are ignored.
func (v *Validator) validateToken(token common.Address, rc *ethereum.Receipt, want *big.Int) Verdict {
	if rc == nil {
		return Verdict{Reason: ReasonNoTransfer}
	}

	reason := ReasonNoTransfer
	for _, log := range rc.Logs {
		if log == nil || log.Address != token {
			continue
		}
		transfer, ok := ethereum.DecodeTransferLog(log)
		if !ok || !v.acceptsRecipient(transfer.To) {
			continue
		}
		if transfer.Value.Cmp(want) == 0 {
			return Verdict{Valid: true}
		}
		reason = ReasonAmountMismatch
	}
	return Verdict{Reason: reason}
}

func (v *Validator) acceptsRecipient(addr common.Address) bool {
	if addr == v.gateway {
		return true
	}
	return v.feeRecipient != (common.Address{}) && addr == v.feeRecipient
}
