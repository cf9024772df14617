package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	writeConfig(t, "api:\n  base_url: \"http://localhost:8000\"\n")

	cfg := LoadConfig()

	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.Equal(t, "./views", cfg.Server.TemplatePath)
	assert.Equal(t, "./static", cfg.Server.StaticPath)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "access_token", cfg.Auth.TokenCookie)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	writeConfig(t, "api:\n  base_url: \"http://localhost:8000\"\nserver:\n  port: \":4000\"\n")
	t.Setenv("REGISTRY_API_URL", "http://registry.internal:9000")
	t.Setenv("REGISTRY_PORT", ":5000")

	cfg := LoadConfig()

	assert.Equal(t, "http://registry.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, ":5000", cfg.Server.Port)
}

func TestLoadConfigFullFile(t *testing.T) {
	writeConfig(t, `
server:
  port: ":8080"
  template_path: "./tpl"
  static_path: "./assets"
api:
  base_url: "http://api.local"
  timeout: 30s
auth:
  token_cookie: "session"
`)

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "./tpl", cfg.Server.TemplatePath)
	assert.Equal(t, "http://api.local", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "session", cfg.Auth.TokenCookie)
}
