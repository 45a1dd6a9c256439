package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-configured values, read once at startup.
// Explorer and chain metadata degrade gracefully when absent; they are used
// only to build links and select the submission target, never to block the
// deployment flow.
type Config struct {
	RPCURL          string
	ChainID         int64
	ExplorerBaseURL string
	DatabaseURL     string
	DatabasePath    string
	Port            int
	JwksURI         string
	// DeployerPrivateKey enables the local-key wallet connector.
	DeployerPrivateKey string

	ConfirmationTimeout time.Duration
	ReceiptPollInterval time.Duration
	ProgressInterval    time.Duration
}

// Load reads configuration from the environment. A .env file is honored
// when present.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	cfg := &Config{
		RPCURL:              os.Getenv("RPC_URL"),
		ExplorerBaseURL:     os.Getenv("EXPLORER_BASE_URL"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DatabasePath:        os.Getenv("FLOWFORGE_DB"),
		JwksURI:             os.Getenv("JWKS_URI"),
		DeployerPrivateKey:  os.Getenv("DEPLOYER_PRIVATE_KEY"),
		Port:                3000,
		ConfirmationTimeout: 3 * time.Minute,
		ReceiptPollInterval: 2 * time.Second,
		ProgressInterval:    2 * time.Second,
	}

	if v := os.Getenv("CHAIN_ID"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &cfg.ChainID); err != nil {
			return nil, fmt.Errorf("invalid CHAIN_ID %q: %w", v, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &cfg.Port); err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
	}

	if v := os.Getenv("CONFIRMATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CONFIRMATION_TIMEOUT %q: %w", v, err)
		}
		cfg.ConfirmationTimeout = d
	}

	if cfg.DatabasePath == "" && cfg.DatabaseURL == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DatabasePath = filepath.Join(home, "flowforge.db")
	}

	return cfg, nil
}
