package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
ethereum:
  rpc_url: https://rpc.sepolia.example
  gateway_address: "0x1111111111111111111111111111111111111111"
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, int64(11155111), cfg.Ethereum.ChainID)
	assert.Equal(t, 10*time.Second, cfg.Ethereum.RPCTimeout)
	assert.Equal(t, 20, cfg.Verifier.PollIntervalSeconds)
	assert.Equal(t, 20*time.Second, cfg.Verifier.PollInterval())
	assert.Equal(t, uint64(2), cfg.Verifier.MinConfirmations)
	assert.Equal(t, 30, cfg.Verifier.MaxVerifyRetries)
	assert.Equal(t, 50, cfg.Verifier.BatchSize)
	assert.Equal(t, 30*time.Minute, cfg.Verifier.ReceiptTimeout)
	assert.True(t, cfg.Verifier.ExpireInvoices)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig + `
verifier:
  poll_interval_seconds: 5
  min_confirmations: 12
  receipt_timeout: 0s
  expire_invoices: false
logging:
  level: debug
  format: console
`))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Verifier.PollInterval())
	assert.Equal(t, uint64(12), cfg.Verifier.MinConfirmations)
	assert.Zero(t, cfg.Verifier.ReceiptTimeout)
	assert.False(t, cfg.Verifier.ExpireInvoices)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing rpc url", "ethereum:\n  gateway_address: \"0x1111111111111111111111111111111111111111\"\n"},
		{"bad gateway", "ethereum:\n  rpc_url: http://localhost:8545\n  gateway_address: nope\n"},
		{"bad fee recipient", minimalConfig + "  fee_recipient: 0x12\n"},
		{"zero workers", minimalConfig + "verifier:\n  workers: 0\n"},
		{"bad log level", minimalConfig + "logging:\n  level: loud\n"},
		{"malformed yaml", "ethereum: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("INVOICE_RPC_URL", "https://rpc.example.org")
	t.Setenv("INVOICE_DB_PASSWORD", "s3cret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  password: ${INVOICE_DB_PASSWORD}
ethereum:
  rpc_url: ${INVOICE_RPC_URL}
  gateway_address: "0x1111111111111111111111111111111111111111"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.example.org", cfg.Ethereum.RPCURL)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}
