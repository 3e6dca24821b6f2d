package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the invoice gateway configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Ethereum EthereumConfig `yaml:"ethereum"`
	Verifier VerifierConfig `yaml:"verifier"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string          `yaml:"host" default:"0.0.0.0"`
	Port            int             `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration   `yaml:"request_timeout" default:"60s"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" default:"30s"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig bounds request rate per client IP. Zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" default:"5" validate:"gte=0"`
	Burst int     `yaml:"burst" default:"20" validate:"gte=0"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host         string `yaml:"host" default:"localhost" validate:"required"`
	Port         int    `yaml:"port" default:"5432" validate:"gt=0"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database" default:"invoices" validate:"required"`
	SSLMode      string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" default:"20" validate:"gte=0"`
}

// EthereumConfig contains the JSON-RPC endpoint and payment addresses
type EthereumConfig struct {
	RPCURL         string        `yaml:"rpc_url" validate:"required,url"`
	ChainID        int64         `yaml:"chain_id" default:"11155111" validate:"gt=0"`
	GatewayAddress string        `yaml:"gateway_address" validate:"required,eth_addr"`
	FeeRecipient   string        `yaml:"fee_recipient" validate:"omitempty,eth_addr"`
	RPCTimeout     time.Duration `yaml:"rpc_timeout" default:"10s"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps" default:"20" validate:"gt=0"`
	RateLimitBurst int           `yaml:"rate_limit_burst" default:"10" validate:"gt=0"`
}

// VerifierConfig controls the background verification loop
type VerifierConfig struct {
	PollIntervalSeconds int           `yaml:"poll_interval_seconds" default:"20" validate:"gt=0"`
	MinConfirmations    uint64        `yaml:"min_confirmations" default:"2"`
	MaxVerifyRetries    int           `yaml:"max_verify_retries" default:"30" validate:"gt=0"`
	BatchSize           int           `yaml:"batch_size" default:"50" validate:"gt=0"`
	Workers             int           `yaml:"workers" default:"8" validate:"gt=0"`
	ReceiptTimeout      time.Duration `yaml:"receipt_timeout" default:"30m"`
	ExpireInvoices      bool          `yaml:"expire_invoices" default:"true"`
}

// PollInterval returns the tick period as a duration
func (c *VerifierConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load reads the YAML file at configPath, expands ${VAR} references from the
// environment, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse([]byte(os.ExpandEnv(string(raw))))
}

// Parse decodes YAML config bytes on top of the defaults and validates them
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set defaults: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
