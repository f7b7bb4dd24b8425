package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings. A YAML file (LAUNCHPAD_CONFIG) seeds
// the values; environment variables always win so Cloud Run style
// deployments need no file at all.
type Config struct {
	Port       string `yaml:"port"`
	RPCURL     string `yaml:"rpcUrl"`
	Commitment string `yaml:"commitment"`
	LogLevel   string `yaml:"logLevel"`

	// Wallet key sources, first match wins (env key wins over both).
	WalletKeyFile   string `yaml:"walletKeyFile"`
	WalletKeySecret string `yaml:"walletKeySecret"` // Secret Manager version path
}

// Load reads the optional YAML file named by LAUNCHPAD_CONFIG, then applies
// env overrides and defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := strings.TrimSpace(os.Getenv("LAUNCHPAD_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	overrideEnv(&cfg.Port, "PORT")
	overrideEnv(&cfg.RPCURL, "SOLANA_RPC_URL")
	overrideEnv(&cfg.Commitment, "SOLANA_COMMITMENT")
	overrideEnv(&cfg.LogLevel, "LOG_LEVEL")
	overrideEnv(&cfg.WalletKeyFile, "SOLANA_WALLET_KEY_FILE")
	overrideEnv(&cfg.WalletKeySecret, "SOLANA_WALLET_KEY_SECRET")

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Commitment == "" {
		cfg.Commitment = "finalized"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func overrideEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
