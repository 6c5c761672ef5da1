package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()

	origArgs, origDotEnv := os.Args, dotEnvFile
	t.Cleanup(func() {
		os.Args = origArgs
		dotEnvFile = origDotEnv
	})

	os.Args = []string{"testbin"}
	dotEnvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Setenv("SOS_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.CallTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	isolate(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout)
}

func TestLoadConfig_Layers(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	dotEnvFile = filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotEnvFile, []byte("SOS_CLIENT_LOG_LEVEL=error\n"), 0o600))
	t.Setenv("SOS_CLIENT_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("SOS_CLIENT_LOG_LEVEL"))

	t.Setenv("SOS_CLIENT_SERVER_ADDR", "env:1")
	t.Setenv("SOS_CLIENT_CALL_TIMEOUT", "750ms")

	cfgPath := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"server_endpoint_addr":"json:2"}`), 0o600))
	os.Args = []string{"testbin", "-config", cfgPath}

	cfg := LoadConfig()

	assert.Equal(t, "json:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 750*time.Millisecond, cfg.CallTimeout)
	assert.Equal(t, "error", cfg.LogLevel)

	os.Args = []string{"testbin", "-config", cfgPath, "-a", "flag:3", "-t", "2"}

	cfg = LoadConfig()

	assert.Equal(t, "flag:3", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.CallTimeout)
}
