package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LAUNCHPAD_CONFIG", "")
	t.Setenv("PORT", "")
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("SOLANA_COMMITMENT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "finalized", cfg.Commitment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RPCURL)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launchpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
rpcUrl: https://api.devnet.solana.com
logLevel: debug
walletKeyFile: /etc/launchpad/wallet.json
`), 0o600))

	t.Setenv("LAUNCHPAD_CONFIG", path)
	t.Setenv("PORT", "9100") // env wins over file
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("SOLANA_COMMITMENT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPCURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/launchpad/wallet.json", cfg.WalletKeyFile)
}

func TestLoadBadFile(t *testing.T) {
	t.Setenv("LAUNCHPAD_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
