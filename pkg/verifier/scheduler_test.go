package verifier

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/invoice-gateway/internal/metrics"
	"github.com/chainsafe/invoice-gateway/pkg/ethereum"
	"github.com/chainsafe/invoice-gateway/pkg/invoice"
	"github.com/chainsafe/invoice-gateway/pkg/invoicestore"
	"github.com/chainsafe/invoice-gateway/pkg/verifier/mocks"
)

const testChainID = int64(11155111)

var (
	fixedNow   = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	testTxHash = "0xab" + strings.Repeat("0", 61) + "1"
	oneHundred = uint64(100)
)

func testConfig() Config {
	return Config{
		ChainID:          testChainID,
		PollInterval:     time.Second,
		MinConfirmations: 2,
		MaxVerifyRetries: 30,
		BatchSize:        50,
		Workers:          4,
		ReceiptTimeout:   30 * time.Minute,
	}
}

func newTestScheduler(t *testing.T, cfg Config) (*Scheduler, *mocks.Store, *mocks.ChainClient) {
	t.Helper()
	store := mocks.NewStore(t)
	chain := mocks.NewChainClient(t)
	s := NewScheduler(cfg, store, chain, NewValidator(gatewayAddr.Hex(), ""), zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	return s, store, chain
}

func submittedInvoice(id int64) *invoice.Invoice {
	submittedAt := fixedNow.Add(-time.Minute)
	inv := nativeInvoice("0.01")
	inv.ID = id
	inv.InvoiceID = "inv-" + strconv.FormatInt(id, 10)
	inv.TxHash = testTxHash
	inv.CreatedAt = fixedNow.Add(-time.Hour)
	inv.SubmittedAt = &submittedAt
	return inv
}

func exactPayment() *ethereum.Transaction {
	return txTo(gatewayAddr, weiFromString("10000000000000000"))
}

// captureUpdate records the update written for an invoice
func captureUpdate(store *mocks.Store, id int64, expected invoice.Status) *invoicestore.Update {
	captured := new(invoicestore.Update)
	store.EXPECT().UpdateInvoice(mock.Anything, id, expected, mock.Anything).
		RunAndReturn(func(_ context.Context, _ int64, _ invoice.Status, upd *invoicestore.Update) error {
			*captured = *upd
			return nil
		}).Once()
	return captured
}

func expectNativeToken(store *mocks.Store) {
	store.EXPECT().GetToken(mock.Anything, testChainID, invoice.NativeTokenAddress).
		Return(&invoice.TokenWhitelistEntry{ChainID: testChainID, TokenAddress: invoice.NativeTokenAddress, TokenSymbol: "ETH", Decimals: 18, Enabled: true}, nil).
		Maybe()
}

func TestProcess_MaxRetries(t *testing.T) {
	s, store, _ := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	inv.VerifyRetries = 30
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))

	require.NotNil(t, upd.Status)
	assert.Equal(t, invoice.StatusFailed, *upd.Status)
	require.NotNil(t, upd.FailureReason)
	assert.Equal(t, ReasonMaxRetries, *upd.FailureReason)
	require.NotNil(t, upd.LastCheckedAt)
	assert.Equal(t, fixedNow, *upd.LastCheckedAt)
}

func TestProcess_TransactionNotFound(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	inv.VerifyRetries = 29
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
	chain.EXPECT().TransactionByHash(mock.Anything, common.HexToHash(testTxHash)).Return(nil, ethereum.ErrNotFound)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))

	assert.True(t, upd.IncrementRetries)
	require.NotNil(t, upd.ExpectedRetries)
	assert.Equal(t, 29, *upd.ExpectedRetries)
	assert.Nil(t, upd.Status, "a missing transaction only consumes retry budget")
}

func TestProcess_ReceiptPending(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	inv.Status = invoice.StatusPending
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).Return(nil, ethereum.ErrNotFound)
	upd := captureUpdate(store, 1, invoice.StatusPending)

	require.NoError(t, s.process(context.Background(), 1))

	require.NotNil(t, upd.Status)
	assert.Equal(t, invoice.StatusSubmitted, *upd.Status)
	require.NotNil(t, upd.PayerAddress)
	assert.Equal(t, invoice.NormalizeAddress(payerAddr.Hex()), *upd.PayerAddress)
	assert.False(t, upd.IncrementRetries)
}

func TestProcess_ReceiptTimeout(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	longAgo := fixedNow.Add(-31 * time.Minute)
	inv.SubmittedAt = &longAgo
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).Return(nil, ethereum.ErrNotFound)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))

	require.NotNil(t, upd.Status)
	assert.Equal(t, invoice.StatusFailed, *upd.Status)
	require.NotNil(t, upd.FailureReason)
	assert.Equal(t, ReasonReceiptTimeout, *upd.FailureReason)
}

func TestProcess_ReceiptTimeoutDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.ReceiptTimeout = 0
	s, store, chain := newTestScheduler(t, cfg)
	inv := submittedInvoice(1)
	longAgo := fixedNow.Add(-48 * time.Hour)
	inv.SubmittedAt = &longAgo
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).Return(nil, ethereum.ErrNotFound)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))
	assert.Equal(t, invoice.StatusSubmitted, *upd.Status)
}

func TestProcess_Reverted(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
		Return(&ethereum.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: oneHundred}, nil)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))

	assert.Equal(t, invoice.StatusFailed, *upd.Status)
	assert.Equal(t, ReasonReverted, *upd.FailureReason)
	require.NotNil(t, upd.Confirmations)
	assert.Zero(t, *upd.Confirmations)
}

func TestProcess_Confirmations(t *testing.T) {
	tests := []struct {
		name       string
		head       uint64
		stored     int64
		wantStatus invoice.Status
		wantConf   int64
	}{
		{"head behind receipt", 99, 0, invoice.StatusSubmitted, 0},
		{"one confirmation", 100, 0, invoice.StatusSubmitted, 1},
		{"threshold reached", 101, 0, invoice.StatusPaid, 2},
		{"well past threshold", 150, 0, invoice.StatusPaid, 51},
		{"reorg never lowers count", 99, 1, invoice.StatusSubmitted, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store, chain := newTestScheduler(t, testConfig())
			inv := submittedInvoice(1)
			inv.Confirmations = tt.stored
			store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
			expectNativeToken(store)
			chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
			chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
				Return(&ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}, nil)
			chain.EXPECT().LatestBlockNumber(mock.Anything).Return(tt.head, nil)
			upd := captureUpdate(store, 1, invoice.StatusSubmitted)

			require.NoError(t, s.process(context.Background(), 1))

			assert.Equal(t, tt.wantStatus, *upd.Status)
			require.NotNil(t, upd.Confirmations)
			assert.Equal(t, tt.wantConf, *upd.Confirmations)
			if tt.wantStatus == invoice.StatusPaid {
				require.NotNil(t, upd.ConfirmedAt)
				assert.Equal(t, fixedNow, *upd.ConfirmedAt)
			} else {
				assert.Nil(t, upd.ConfirmedAt)
			}
		})
	}
}

func TestProcess_UnderpaymentFails(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
	expectNativeToken(store)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).
		Return(txTo(gatewayAddr, weiFromString("9000000000000000")), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
		Return(&ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}, nil)
	chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(105), nil)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))

	assert.Equal(t, invoice.StatusFailed, *upd.Status)
	assert.Equal(t, ReasonMismatch, *upd.FailureReason)
	assert.Equal(t, int64(6), *upd.Confirmations)
}

func TestProcess_NativeIgnoresWhitelistDecimals(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
	// a misconfigured native row must not change how native amounts are scaled
	store.EXPECT().GetToken(mock.Anything, testChainID, invoice.NativeTokenAddress).
		Return(&invoice.TokenWhitelistEntry{ChainID: testChainID, TokenAddress: invoice.NativeTokenAddress, TokenSymbol: "ETH", Decimals: 6, Enabled: true}, nil).
		Maybe()
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
		Return(&ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}, nil)
	chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(101), nil)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))

	assert.Equal(t, invoice.StatusPaid, *upd.Status)
	assert.Nil(t, upd.FailureReason)
	store.AssertNotCalled(t, "GetToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_LostRaceRecordsNoTransition(t *testing.T) {
	t.Run("failed", func(t *testing.T) {
		s, store, _ := newTestScheduler(t, testConfig())
		inv := submittedInvoice(1)
		inv.VerifyRetries = 30
		store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
		store.EXPECT().UpdateInvoice(mock.Anything, int64(1), invoice.StatusSubmitted, mock.Anything).
			Return(invoicestore.ErrStatusConflict).Once()

		counter := metrics.InvoiceTransitions.WithLabelValues(string(invoice.StatusFailed), ReasonMaxRetries)
		before := testutil.ToFloat64(counter)

		require.NoError(t, s.process(context.Background(), 1))
		assert.Equal(t, before, testutil.ToFloat64(counter))
	})

	t.Run("paid", func(t *testing.T) {
		s, store, chain := newTestScheduler(t, testConfig())
		store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
		chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
		chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
			Return(&ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}, nil)
		chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(110), nil)
		store.EXPECT().UpdateInvoice(mock.Anything, int64(1), invoice.StatusSubmitted, mock.Anything).
			Return(invoicestore.ErrStatusConflict).Once()

		counter := metrics.InvoiceTransitions.WithLabelValues(string(invoice.StatusPaid), reasonConfirmed)
		before := testutil.ToFloat64(counter)

		require.NoError(t, s.process(context.Background(), 1))
		assert.Equal(t, before, testutil.ToFloat64(counter))
	})
}

func TestProcess_Transitions(t *testing.T) {
	s, store, _ := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	inv.VerifyRetries = 30
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
	captureUpdate(store, 1, invoice.StatusSubmitted)

	counter := metrics.InvoiceTransitions.WithLabelValues(string(invoice.StatusFailed), ReasonMaxRetries)
	before := testutil.ToFloat64(counter)

	require.NoError(t, s.process(context.Background(), 1))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestProcess_Mismatch(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
	expectNativeToken(store)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).
		Return(txTo(gatewayAddr, weiFromString("9999999999999999")), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
		Return(&ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}, nil)
	chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(104), nil)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))

	assert.Equal(t, invoice.StatusFailed, *upd.Status)
	assert.Equal(t, ReasonMismatch, *upd.FailureReason)
	assert.Equal(t, int64(5), *upd.Confirmations)
}

func TestProcess_UnlistedTokenDefaultsTo18Decimals(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	inv := tokenInvoice("1")
	inv.ID = 1
	inv.TxHash = testTxHash
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)
	store.EXPECT().GetToken(mock.Anything, testChainID, inv.TokenAddress).Return(nil, invoicestore.ErrTokenNotFound)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(txTo(gatewayAddr, big.NewInt(0)), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
		Return(receiptWith(erc20Log(usdcAddr, gatewayAddr, weiFromString("1000000000000000000"))), nil)
	chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(101), nil)
	upd := captureUpdate(store, 1, invoice.StatusSubmitted)

	require.NoError(t, s.process(context.Background(), 1))
	assert.Equal(t, invoice.StatusPaid, *upd.Status)
}

func TestProcess_TransportErrorsLeaveRowUntouched(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("transaction", func(t *testing.T) {
		s, store, chain := newTestScheduler(t, testConfig())
		store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
		chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(nil, boom)

		err := s.process(context.Background(), 1)
		var se *StageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stageTransaction, se.Stage)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("receipt", func(t *testing.T) {
		s, store, chain := newTestScheduler(t, testConfig())
		store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
		chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
		chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).Return(nil, boom)

		assert.ErrorIs(t, s.process(context.Background(), 1), boom)
	})

	t.Run("head", func(t *testing.T) {
		s, store, chain := newTestScheduler(t, testConfig())
		store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
		chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
		chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
			Return(&ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}, nil)
		chain.EXPECT().LatestBlockNumber(mock.Anything).Return(0, boom)

		assert.ErrorIs(t, s.process(context.Background(), 1), boom)
	})
}

func TestProcess_SkipsTerminalInvoices(t *testing.T) {
	for _, status := range []invoice.Status{invoice.StatusPaid, invoice.StatusFailed, invoice.StatusExpired} {
		t.Run(string(status), func(t *testing.T) {
			s, store, _ := newTestScheduler(t, testConfig())
			inv := submittedInvoice(1)
			inv.Status = status
			store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)

			// no chain calls and no writes are expected
			require.NoError(t, s.process(context.Background(), 1))
		})
	}
}

func TestProcess_SkipsOtherChain(t *testing.T) {
	s, store, _ := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	inv.ChainID = 1
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil)

	require.NoError(t, s.process(context.Background(), 1))
}

func TestProcess_LostRaceIsNotAnError(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(nil, ethereum.ErrNotFound)
	store.EXPECT().UpdateInvoice(mock.Anything, int64(1), invoice.StatusSubmitted, mock.Anything).
		Return(invoicestore.ErrStatusConflict)

	assert.NoError(t, s.process(context.Background(), 1))
}

func TestProcess_WriteError(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(submittedInvoice(1), nil)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(nil, ethereum.ErrNotFound)
	store.EXPECT().UpdateInvoice(mock.Anything, int64(1), invoice.StatusSubmitted, mock.Anything).
		Return(errors.New("db down"))

	var se *StageError
	require.ErrorAs(t, s.process(context.Background(), 1), &se)
	assert.Equal(t, stageWrite, se.Stage)
}

func TestTick_IsolatesFailures(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	batch := []*invoice.Invoice{submittedInvoice(1), submittedInvoice(2), submittedInvoice(3)}
	batch[1].TxHash = "0xcd" + testTxHash[4:]

	store.EXPECT().FindBatch(mock.Anything, invoicestore.BatchQuery{
		ChainID:  testChainID,
		Statuses: []invoice.Status{invoice.StatusPending, invoice.StatusSubmitted},
		Limit:    50,
	}).Return(batch, nil)
	for _, inv := range batch {
		store.EXPECT().GetInvoiceByID(mock.Anything, inv.ID).Return(inv, nil)
	}

	failing := common.HexToHash(batch[1].TxHash)
	chain.EXPECT().TransactionByHash(mock.Anything, failing).Return(nil, errors.New("timeout"))
	chain.EXPECT().TransactionByHash(mock.Anything, common.HexToHash(testTxHash)).Return(nil, ethereum.ErrNotFound).Twice()

	var mu sync.Mutex
	written := map[int64]bool{}
	store.EXPECT().UpdateInvoice(mock.Anything, mock.Anything, invoice.StatusSubmitted, mock.Anything).
		RunAndReturn(func(_ context.Context, id int64, _ invoice.Status, upd *invoicestore.Update) error {
			mu.Lock()
			defer mu.Unlock()
			written[id] = upd.IncrementRetries
			return nil
		}).Twice()

	require.NoError(t, s.Tick(context.Background()))

	assert.Equal(t, map[int64]bool{1: true, 3: true}, written)
}

func TestTick_EmptyBatch(t *testing.T) {
	s, store, _ := newTestScheduler(t, testConfig())
	store.EXPECT().FindBatch(mock.Anything, mock.Anything).Return(nil, nil)

	assert.NoError(t, s.Tick(context.Background()))
}

func TestTick_BatchError(t *testing.T) {
	s, store, _ := newTestScheduler(t, testConfig())
	store.EXPECT().FindBatch(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	assert.Error(t, s.Tick(context.Background()))
}

func TestTick_ExpiresOverdue(t *testing.T) {
	cfg := testConfig()
	cfg.ExpireInvoices = true
	s, store, _ := newTestScheduler(t, cfg)
	store.EXPECT().ExpireOverdue(mock.Anything, testChainID, fixedNow).Return(2, nil).Once()
	store.EXPECT().FindBatch(mock.Anything, mock.Anything).Return(nil, nil)

	require.NoError(t, s.Tick(context.Background()))
}

func TestTick_ExpireErrorDoesNotBlockVerification(t *testing.T) {
	cfg := testConfig()
	cfg.ExpireInvoices = true
	s, store, _ := newTestScheduler(t, cfg)
	store.EXPECT().ExpireOverdue(mock.Anything, testChainID, fixedNow).Return(0, errors.New("lock timeout"))
	store.EXPECT().FindBatch(mock.Anything, mock.Anything).Return(nil, nil).Once()

	require.NoError(t, s.Tick(context.Background()))
}

func TestVerifyNow(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	paid := *inv
	paid.Status = invoice.StatusPaid
	paid.Confirmations = 2

	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil).Once()
	expectNativeToken(store)
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).
		Return(&ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}, nil)
	chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(101), nil)
	captureUpdate(store, 1, invoice.StatusSubmitted)
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(&paid, nil).Once()

	got, err := s.VerifyNow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, got.Status)
}

func TestScheduler_StartStop(t *testing.T) {
	cfg := testConfig()
	cfg.PollInterval = 5 * time.Millisecond
	s, store, _ := newTestScheduler(t, cfg)

	ticked := make(chan struct{}, 1)
	store.EXPECT().FindBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, invoicestore.BatchQuery) ([]*invoice.Invoice, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return nil, nil
		}).Maybe()

	s.Start()
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not tick")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop() did not return")
	}

	// a second Stop is a no-op
	s.Stop()
}

// A native 0.01 ETH invoice paid with exactly 10^16 wei reaches paid once the
// receipt has two confirmations, and is never touched again afterwards.
func TestScenario_NativePaymentLifecycle(t *testing.T) {
	s, store, chain := newTestScheduler(t, testConfig())
	inv := submittedInvoice(1)
	inv.Status = invoice.StatusPending
	rc := &ethereum.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: oneHundred}

	// tick 1: transaction still in the mempool
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(inv, nil).Once()
	chain.EXPECT().TransactionByHash(mock.Anything, mock.Anything).Return(exactPayment(), nil).Times(3)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).Return(nil, ethereum.ErrNotFound).Once()
	upd := captureUpdate(store, 1, invoice.StatusPending)
	require.NoError(t, s.process(context.Background(), 1))
	require.Equal(t, invoice.StatusSubmitted, *upd.Status)

	// tick 2: mined, one confirmation
	submitted := *inv
	submitted.Status = invoice.StatusSubmitted
	submitted.PayerAddress = *upd.PayerAddress
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(&submitted, nil).Once()
	expectNativeToken(store)
	chain.EXPECT().TransactionReceipt(mock.Anything, mock.Anything).Return(rc, nil).Twice()
	chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(100), nil).Once()
	upd = captureUpdate(store, 1, invoice.StatusSubmitted)
	require.NoError(t, s.process(context.Background(), 1))
	require.Equal(t, invoice.StatusSubmitted, *upd.Status)
	require.Equal(t, int64(1), *upd.Confirmations)

	// tick 3: second confirmation
	submitted.Confirmations = 1
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(&submitted, nil).Once()
	chain.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(101), nil).Once()
	upd = captureUpdate(store, 1, invoice.StatusSubmitted)
	require.NoError(t, s.process(context.Background(), 1))
	assert.Equal(t, invoice.StatusPaid, *upd.Status)
	assert.GreaterOrEqual(t, *upd.Confirmations, int64(2))
	assert.NotNil(t, upd.ConfirmedAt)

	// tick 4: terminal, nothing else happens
	paid := submitted
	paid.Status = invoice.StatusPaid
	store.EXPECT().GetInvoiceByID(mock.Anything, int64(1)).Return(&paid, nil).Once()
	require.NoError(t, s.process(context.Background(), 1))
}
