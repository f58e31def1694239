package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/sentimeter/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, client.DefaultEndpoint, c.Endpoint)
	assert.Equal(t, "./saved_key.txt", c.CredentialPath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Empty(t, c.HistoryPath)
	assert.Equal(t, 1000, c.HistoryLimit)
	assert.Equal(t, "info", c.LogLevel)
	assert.Zero(t, c.Recent)
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"sentimeter"}
	chdir(t, t.TempDir())

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, client.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	chdir(t, dir)
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"endpoint":        "https://json.example/model",
		"credential_path": "json-key.txt",
		"log_level":       "warn",
	})
	t.Setenv("SENTIMETER_CREDENTIAL_PATH", "env-key.txt")
	t.Setenv("SENTIMETER_LOG_LEVEL", "error")

	os.Args = []string{"sentimeter", "-c", path, "-l", "debug"}
	cfg := LoadConfig()

	assert.Equal(t, "https://json.example/model", cfg.Endpoint, "json over defaults")
	assert.Equal(t, "env-key.txt", cfg.CredentialPath, "env over json")
	assert.Equal(t, "debug", cfg.LogLevel, "flags over env")
}
