package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)
	assert.Equal(t, 50, cfg.Preview.Width)
	assert.Equal(t, "+7 (XXX) XXX-XX-XX", cfg.Preview.Contact)
	assert.Equal(t, DefaultCashiers, cfg.Cashiers)
	assert.Equal(t, "Васильев Григорий Павлович", cfg.DefaultCashier())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "log:\n  level: debug\n  json: true\ncashiers:\n  - Иванов\npreview:\n  width: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, []string{"Иванов"}, cfg.Cashiers)
	assert.Equal(t, 60, cfg.Preview.Width)
	assert.Equal(t, float32(800), cfg.Window.Width)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RECEIPT_LOG_LEVEL", "error")
	t.Setenv("RECEIPT_WINDOW_WIDTH", "1024")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, float32(1024), cfg.Window.Width)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNarrowPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preview:\n  width: 5\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultCashierEmpty(t *testing.T) {
	assert.Equal(t, "", (&Config{}).DefaultCashier())
}
