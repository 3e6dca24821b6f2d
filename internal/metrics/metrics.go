package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InvoiceTransitions counts status changes written by the verifier, by target status and reason
	InvoiceTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_transitions_total",
			Help: "Total number of invoice status transitions",
		},
		[]string{"status", "reason"},
	)

	// VerificationErrors counts per-invoice verification passes aborted by an error
	VerificationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_verification_errors_total",
			Help: "Total number of invoice verification errors",
		},
		[]string{"stage"},
	)

	// TickDuration tracks how long a verification tick takes
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "invoice_tick_duration_seconds",
			Help:    "Verification tick duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// TickBatchSize is the number of invoices selected by the last tick
	TickBatchSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "invoice_tick_batch_size",
			Help: "Number of invoices selected in the last verification tick",
		},
	)

	// InvoicesExpired counts invoices moved to expired by the overdue sweep
	InvoicesExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "invoices_expired_total",
			Help: "Total number of invoices expired without payment",
		},
	)

	// InvoicesCreated counts invoices created through the API
	InvoicesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoices_created_total",
			Help: "Total number of invoices created",
		},
		[]string{"token"},
	)

	// ChainRPCCalls counts JSON-RPC calls to the chain node by method and outcome
	ChainRPCCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chain_rpc_calls_total",
			Help: "Total number of chain RPC calls",
		},
		[]string{"method", "status"},
	)

	// ChainRPCDuration tracks chain RPC latency by method
	ChainRPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chain_rpc_duration_seconds",
			Help:    "Chain RPC call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// HTTPRequestsRejected counts requests refused by the per-IP rate limiter
	HTTPRequestsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Total number of HTTP requests rejected by rate limiting",
		},
	)
)
