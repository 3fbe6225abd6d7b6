package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/gifportal/internal/adapters/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, v, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, ledger.DefaultEndpoint, cfg.Network.Endpoint)
	assert.Equal(t, "processed", cfg.Network.Commitment)
	assert.Equal(t, filepath.Join(dir, "idl.json"), cfg.Program.IDL)
	assert.Empty(t, cfg.List.Address)
	assert.True(t, cfg.List.WriteThrough)
	assert.Equal(t, 60*time.Second, cfg.List.ConfirmTimeout)
	assert.Equal(t, filepath.Join(dir, "trusted.toml"), cfg.Trust.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, SecretBackendAuto, cfg.Wallet.SecretBackend)
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `
[network]
endpoint = "http://127.0.0.1:8899"
commitment = "confirmed"

[list]
address = "FileAddress111"
write_through = false
confirm_timeout = "5s"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
	t.Setenv("PORTAL_LIST_ADDRESS", "EnvAddress222")

	cfg, _, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8899", cfg.Network.Endpoint)
	assert.Equal(t, "confirmed", cfg.Network.Commitment)
	assert.Equal(t, "EnvAddress222", cfg.List.Address)
	assert.False(t, cfg.List.WriteThrough)
	assert.Equal(t, 5*time.Second, cfg.List.ConfirmTimeout)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PORTAL_NETWORK_COMMITMENT", "recent")

	_, _, err := Load(dir)
	require.Error(t, err)
}

func TestLoadRejectsUnknownSecretBackend(t *testing.T) {
	t.Setenv("PORTAL_WALLET_SECRET_BACKEND", "vault")

	_, _, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeySecretBackend)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[network\n"), 0o600))

	_, _, err := Load(dir)
	require.Error(t, err)
}

func TestSaveMergesKeys(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DirName)

	require.NoError(t, Save(dir, KeyEndpoint, "http://127.0.0.1:8899"))
	require.NoError(t, Save(dir, KeyListAddress, "NewList333"))

	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configMode), info.Mode().Perm())

	cfg, _, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8899", cfg.Network.Endpoint)
	assert.Equal(t, "NewList333", cfg.List.Address)
}
