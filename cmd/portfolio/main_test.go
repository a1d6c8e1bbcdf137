package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/services"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0644))
	return runCLIWithConfig(t, cfgPath, args...)
}

func runCLIWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORTFOLIO_DATA", "")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--log-level", "error"}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		exportFormat = "json"
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "export", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 4 revisions")

	_, err = os.Stat(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)

	rs, err := services.NewRevisionService(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, rs.LatestNumber())
}

func TestExportCommand_YAML(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "export", "--format", "yaml", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "projects.yaml"))
	assert.NoError(t, err)
}

func TestExportCommand_BadFormat(t *testing.T) {
	_, err := runCLI(t, "export", "--format", "xml", t.TempDir())
	assert.Error(t, err)
}

func TestServeCommand_StopsOnCancel(t *testing.T) {
	_, err := runCLI(t, "export", t.TempDir())
	require.NoError(t, err)
	cfg.ServerAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, runServer(ctx))
}

func TestRevisionService_BadDataPath(t *testing.T) {
	_, err := runCLI(t, "export", t.TempDir())
	require.NoError(t, err)
	cfg.DataPath = filepath.Join(t.TempDir(), "missing")

	_, err = revisionService()
	assert.Error(t, err)
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := runCLIWithConfig(t, filepath.Join(t.TempDir(), "typo.yaml"), "export", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
