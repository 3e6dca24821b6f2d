// Package api implements app.Runner for the invoice gateway process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/invoice-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/invoice-gateway/pkg/app/http"
	"github.com/chainsafe/invoice-gateway/pkg/config"
	"github.com/chainsafe/invoice-gateway/pkg/ethereum"
	invoiceservice "github.com/chainsafe/invoice-gateway/pkg/invoice/service"
	"github.com/chainsafe/invoice-gateway/pkg/invoicestore"
	"github.com/chainsafe/invoice-gateway/pkg/pgutil"
	"github.com/chainsafe/invoice-gateway/pkg/verifier"
)

// Server holds cfg to init the invoice gateway.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new invoice gateway server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run connects to the database and chain node, starts the verification loop
// and serves the HTTP API until SIGINT or SIGTERM.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting invoice gateway",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Int64("chain_id", cfg.Ethereum.ChainID),
		zap.String("gateway", cfg.Ethereum.GatewayAddress),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	chain, err := s.openChainClient(ctx, logger)
	if err != nil {
		return err
	}
	defer chain.Close()

	store := invoicestore.NewStore(db)

	scheduler := verifier.NewScheduler(
		schedulerConfig(cfg),
		store,
		chain,
		verifier.NewValidator(cfg.Ethereum.GatewayAddress, cfg.Ethereum.FeeRecipient),
		logger,
	)
	scheduler.Start()
	// stopped explicitly below for shutdown ordering; the defer covers early returns
	defer scheduler.Stop()

	invoiceService := invoiceservice.NewLog(
		invoiceservice.NewService(store, scheduler, cfg.Ethereum.ChainID, logger),
		logger,
	)

	router := s.setupRouter(db, invoiceService, store, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// finish the in-flight tick before the DB and RPC client close
	scheduler.Stop()

	return err
}

func (s *Server) openChainClient(ctx context.Context, logger *zap.Logger) (*ethereum.Client, error) {
	client, err := ethereum.NewClient(ctx, &s.cfg.Ethereum, logger)
	if err != nil {
		return nil, fmt.Errorf("create ethereum client: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("query chain id: %w", err)
	}
	if chainID != s.cfg.Ethereum.ChainID {
		client.Close()
		return nil, fmt.Errorf("chain id mismatch: node reports %d, configured %d", chainID, s.cfg.Ethereum.ChainID)
	}

	logger.Info("Connected to Ethereum node", zap.Int64("chain_id", chainID))
	return client, nil
}

func (s *Server) setupRouter(
	db *bun.DB,
	invoiceService invoiceservice.Service,
	audit invoiceservice.AuditRecorder,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/health", apphttp.HandleError(func(w http.ResponseWriter, r *http.Request) error {
		if err := db.PingContext(r.Context()); err != nil {
			return apperrors.DependencyFailureError(err, "database unavailable")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
		return nil
	}))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if rl := s.cfg.Server.RateLimit; rl.RPS > 0 {
			r.Use(apphttp.NewIPRateLimiter(rl.RPS, rl.Burst, logger).Middleware)
		}
		invoiceservice.RegisterRoutes(r, invoiceService, audit, logger)
	})

	return r
}

func schedulerConfig(cfg *config.Config) verifier.Config {
	return verifier.Config{
		ChainID:          cfg.Ethereum.ChainID,
		PollInterval:     cfg.Verifier.PollInterval(),
		MinConfirmations: cfg.Verifier.MinConfirmations,
		MaxVerifyRetries: cfg.Verifier.MaxVerifyRetries,
		BatchSize:        cfg.Verifier.BatchSize,
		Workers:          cfg.Verifier.Workers,
		ReceiptTimeout:   cfg.Verifier.ReceiptTimeout,
		ExpireInvoices:   cfg.Verifier.ExpireInvoices,
	}
}
