package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mfreeman451/networkhub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("DEBUG", "")
	t.Setenv("FLASK_DEBUG", "")
	t.Setenv("NETWORKHUB_GRPC_ADDR", "")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultListenAddr, cfg.ListenAddr)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networkhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: 127.0.0.1:8080\nstream_interval: 500ms\n"), 0o600))

	t.Setenv("HOST", "")
	t.Setenv("PORT", "9090")
	t.Setenv("FLASK_DEBUG", "1")
	t.Setenv("DEBUG", "")
	t.Setenv("NETWORKHUB_GRPC_ADDR", "")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 500*time.Millisecond, time.Duration(cfg.StreamInterval))
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"stream_interval": "1ms"}`), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
