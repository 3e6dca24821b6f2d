package verifier

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"

	"github.com/chainsafe/invoice-gateway/pkg/ethereum"
	"github.com/chainsafe/invoice-gateway/pkg/invoice"
)

var (
	gatewayAddr = common.HexToAddress("0x1111111111111111111111111111111111111111")
	payerAddr   = common.HexToAddress("0x2222222222222222222222222222222222222222")
	feeAddr     = common.HexToAddress("0x3333333333333333333333333333333333333333")
	usdcAddr    = common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238")
	otherToken  = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func weiFromString(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}

func nativeInvoice(amount string) *invoice.Invoice {
	return &invoice.Invoice{
		ChainID:      11155111,
		TokenAddress: invoice.NativeTokenAddress,
		TokenSymbol:  "ETH",
		Amount:       amount,
		ToAddress:    gatewayAddr.Hex(),
		Status:       invoice.StatusSubmitted,
	}
}

func tokenInvoice(amount string) *invoice.Invoice {
	inv := nativeInvoice(amount)
	inv.TokenAddress = invoice.NormalizeAddress(usdcAddr.Hex())
	inv.TokenSymbol = "USDC"
	return inv
}

func txTo(to common.Address, value *big.Int) *ethereum.Transaction {
	return &ethereum.Transaction{From: payerAddr, To: &to, Value: value}
}

func erc20Log(token, to common.Address, value *big.Int) *types.Log {
	return &types.Log{
		Address: token,
		Topics: []common.Hash{
			ethereum.TransferEventID,
			common.BytesToHash(payerAddr.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: common.LeftPadBytes(value.Bytes(), 32),
	}
}

func receiptWith(logs ...*types.Log) *ethereum.Receipt {
	return &ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: 100, Logs: logs}
}

func TestValidator_Native(t *testing.T) {
	v := NewValidator(gatewayAddr.Hex(), "")
	want := weiFromString("10000000000000000")

	tests := []struct {
		name   string
		tx     *ethereum.Transaction
		valid  bool
		reason string
	}{
		{"exact value", txTo(gatewayAddr, want), true, ""},
		{"one wei short", txTo(gatewayAddr, new(big.Int).Sub(want, big.NewInt(1))), false, ReasonAmountMismatch},
		{"one wei over", txTo(gatewayAddr, new(big.Int).Add(want, big.NewInt(1))), false, ReasonAmountMismatch},
		{"wrong recipient", txTo(payerAddr, want), false, ReasonWrongRecipient},
		{"contract creation", &ethereum.Transaction{Value: want}, false, ReasonWrongRecipient},
		{"nil value", &ethereum.Transaction{To: &gatewayAddr}, false, ReasonAmountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(nativeInvoice("0.01"), 18, tt.tx, receiptWith())
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestValidator_RecipientCaseInsensitive(t *testing.T) {
	v := NewValidator("0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD", "")
	to := common.HexToAddress("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	got := v.Validate(nativeInvoice("1"), 18, txTo(to, weiFromString("1000000000000000000")), receiptWith())
	assert.True(t, got.Valid)
}

func TestValidator_Token(t *testing.T) {
	want := big.NewInt(1_500_000) // 1.5 USDC

	tests := []struct {
		name   string
		fee    string
		logs   []*types.Log
		valid  bool
		reason string
	}{
		{"exact transfer to gateway", "", []*types.Log{erc20Log(usdcAddr, gatewayAddr, want)}, true, ""},
		{"one unit short", "", []*types.Log{erc20Log(usdcAddr, gatewayAddr, big.NewInt(1_499_999))}, false, ReasonAmountMismatch},
		{"transfer to someone else", "", []*types.Log{erc20Log(usdcAddr, payerAddr, want)}, false, ReasonNoTransfer},
		{"emitted by another token", "", []*types.Log{erc20Log(otherToken, gatewayAddr, want)}, false, ReasonNoTransfer},
		{"no logs", "", nil, false, ReasonNoTransfer},
		{"fee recipient accepted", feeAddr.Hex(), []*types.Log{erc20Log(usdcAddr, feeAddr, want)}, true, ""},
		{"fee recipient not configured", "", []*types.Log{erc20Log(usdcAddr, feeAddr, want)}, false, ReasonNoTransfer},
		{"match among noise", "", []*types.Log{
			{Address: usdcAddr, Topics: []common.Hash{ethereum.TransferEventID}},
			erc20Log(otherToken, gatewayAddr, want),
			erc20Log(usdcAddr, gatewayAddr, big.NewInt(1)),
			erc20Log(usdcAddr, gatewayAddr, want),
		}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(gatewayAddr.Hex(), tt.fee)
			got := v.Validate(tokenInvoice("1.5"), 6, txTo(gatewayAddr, big.NewInt(0)), receiptWith(tt.logs...))
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestValidator_TokenRequiresGatewayCall(t *testing.T) {
	v := NewValidator(gatewayAddr.Hex(), "")
	rc := receiptWith(erc20Log(usdcAddr, gatewayAddr, big.NewInt(1_500_000)))

	// a direct token.transfer has tx.to == token contract
	got := v.Validate(tokenInvoice("1.5"), 6, txTo(usdcAddr, big.NewInt(0)), rc)
	assert.False(t, got.Valid)
	assert.Equal(t, ReasonWrongRecipient, got.Reason)
}

func TestValidator_DecimalsTruncate(t *testing.T) {
	v := NewValidator(gatewayAddr.Hex(), "")
	rc := receiptWith(erc20Log(usdcAddr, gatewayAddr, big.NewInt(1_234_567)))

	got := v.Validate(tokenInvoice("1.2345678"), 6, txTo(gatewayAddr, big.NewInt(0)), rc)
	assert.True(t, got.Valid)
}

func TestValidator_BadInvoiceAmount(t *testing.T) {
	v := NewValidator(gatewayAddr.Hex(), "")
	got := v.Validate(nativeInvoice("1e18"), 18, txTo(gatewayAddr, big.NewInt(1)), receiptWith())
	assert.False(t, got.Valid)
	assert.Equal(t, ReasonBadAmount, got.Reason)
}

func TestValidator_NativeAlwaysUses18Decimals(t *testing.T) {
	v := NewValidator(gatewayAddr.Hex(), "")
	tx := txTo(gatewayAddr, weiFromString("10000000000000000"))

	got := v.Validate(nativeInvoice("0.01"), 6, tx, receiptWith())
	assert.True(t, got.Valid)
}
