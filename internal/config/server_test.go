package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadServerConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  cors_origins:
    - https://app.example.com
  max_body_bytes: 1048576
  extract_rate: 2
  extract_burst: 5
  shutdown_timeout: 30s
`)

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, int64(1048576), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 2.0, cfg.Server.ExtractRate)
	assert.Equal(t, 5, cfg.Server.ExtractBurst)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout())
}

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Server.CORSOrigins)
	assert.Equal(t, int64(8<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 0.5, cfg.Server.ExtractRate)
	assert.Equal(t, 3, cfg.Server.ExtractBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
}

func TestLoadServerConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
}

func TestLoadServerConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [")
		_, err := LoadServerConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("negative body limit", func(t *testing.T) {
		path := writeConfig(t, "server:\n  max_body_bytes: -1\n")
		_, err := LoadServerConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_body_bytes must be positive")
	})

	t.Run("bad shutdown timeout", func(t *testing.T) {
		path := writeConfig(t, "server:\n  shutdown_timeout: soon\n")
		_, err := LoadServerConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shutdown_timeout must be a duration")
	})
}
