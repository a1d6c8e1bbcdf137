package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORTFOLIO_DATA", "")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DataPath)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "typo.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	data := "server_addr: \":9090\"\ndata_path: out\nlog_level: debug\nshutdown_timeout: 3s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "out", cfg.DataPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("PORTFOLIO_DATA", "elsewhere")
	cfg, err = Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
	assert.Equal(t, "elsewhere", cfg.DataPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("server_addr: [\n"), 0644))
	_, err := Load(bad, true)
	assert.Error(t, err)

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("shutdown_timeout: -1s\n"), 0644))
	_, err = Load(neg, true)
	assert.Error(t, err)
}
