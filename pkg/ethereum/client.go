package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/chainsafe/invoice-gateway/internal/metrics"
	"github.com/chainsafe/invoice-gateway/pkg/config"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when the node does not know the transaction or
// has not produced a receipt for it yet.
var ErrNotFound = errors.New("not found")

const (
	methodTransactionByHash  = "eth_getTransactionByHash"
	methodTransactionReceipt = "eth_getTransactionReceipt"
	methodBlockNumber        = "eth_blockNumber"
	methodChainID            = "eth_chainId"
)

// backend is the subset of ethclient.Client used by Client
type backend interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// Client is a read-only, rate-limited view of an EVM chain
type Client struct {
	backend backend
	limiter *rate.Limiter
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient dials the configured JSON-RPC endpoint
func NewClient(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("gateway", cfg.GatewayAddress),
		zap.Float64("rate_limit_rps", cfg.RateLimitRPS))

	return newClient(rpc, cfg, logger), nil
}

func newClient(b backend, cfg *config.EthereumConfig, logger *zap.Logger) *Client {
	timeout := cfg.RPCTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		backend: b,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		timeout: timeout,
		logger:  logger,
	}
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	if c.backend != nil {
		c.backend.Close()
	}
}

// TransactionByHash fetches a transaction and recovers its sender.
// Returns ErrNotFound if the node does not know the hash.
func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*Transaction, error) {
	var (
		tx      *types.Transaction
		pending bool
	)
	err := c.call(ctx, methodTransactionByHash, func(ctx context.Context) error {
		var err error
		tx, pending, err = c.backend.TransactionByHash(ctx, hash)
		return err
	})
	if err != nil {
		return nil, err
	}

	from, err := sender(tx)
	if err != nil {
		c.logger.Warn("Failed to recover transaction sender",
			zap.String("tx_hash", hash.Hex()),
			zap.Error(err))
	}

	return &Transaction{
		Hash:    tx.Hash(),
		From:    from,
		To:      tx.To(),
		Value:   tx.Value(),
		ChainID: tx.ChainId(),
		Pending: pending,
	}, nil
}

// TransactionReceipt fetches the receipt of a mined transaction.
// Returns ErrNotFound while the transaction is still pending.
func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	var rc *types.Receipt
	err := c.call(ctx, methodTransactionReceipt, func(ctx context.Context) error {
		var err error
		rc, err = c.backend.TransactionReceipt(ctx, hash)
		return err
	})
	if err != nil {
		return nil, err
	}
	if rc.BlockNumber == nil {
		return nil, fmt.Errorf("receipt for %s has no block number", hash.Hex())
	}

	return &Receipt{
		TxHash:      rc.TxHash,
		Status:      rc.Status,
		BlockNumber: rc.BlockNumber.Uint64(),
		Logs:        rc.Logs,
	}, nil
}

// LatestBlockNumber returns the chain head height
func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var head uint64
	err := c.call(ctx, methodBlockNumber, func(ctx context.Context) error {
		var err error
		head, err = c.backend.BlockNumber(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return head, nil
}

// ChainID returns the chain id reported by the node
func (c *Client) ChainID(ctx context.Context) (int64, error) {
	var id *big.Int
	err := c.call(ctx, methodChainID, func(ctx context.Context) error {
		var err error
		id, err = c.backend.ChainID(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get chain id: %w", err)
	}
	return id.Int64(), nil
}

// call waits for a rate limiter token, bounds the call with the RPC timeout
// and records the outcome.
func (c *Client) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limiter: %w", method, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := fn(callCtx)
	metrics.ChainRPCDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ChainRPCCalls.WithLabelValues(method, "ok").Inc()
		return nil
	case errors.Is(err, geth.NotFound):
		metrics.ChainRPCCalls.WithLabelValues(method, "not_found").Inc()
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		metrics.ChainRPCCalls.WithLabelValues(method, "timeout").Inc()
	default:
		metrics.ChainRPCCalls.WithLabelValues(method, "error").Inc()
	}
	return fmt.Errorf("%s: %w", method, err)
}

func sender(tx *types.Transaction) (common.Address, error) {
	var signer types.Signer
	if tx.Protected() {
		signer = types.LatestSignerForChainID(tx.ChainId())
	} else {
		signer = types.HomesteadSigner{}
	}
	return types.Sender(signer, tx)
}
