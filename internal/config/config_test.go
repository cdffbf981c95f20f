package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8090", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.Equal(t, "config.json", cfg.Gateway.ConfigFile)
	assert.Empty(t, cfg.Gateway.Roots)
	assert.Empty(t, cfg.Gateway.Extensions)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GATEWAY_ROOTS", "/data,/srv/shared")
	t.Setenv("GATEWAY_EXTENSIONS", ".txt,.md")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPS", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"/data", "/srv/shared"}, cfg.Gateway.Roots)
	assert.Equal(t, []string{".txt", ".md"}, cfg.Gateway.Extensions)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"allowed_dirs": ["/data"], "allowed_extensions": [".txt", ".json"], "ignore_patterns": [".git"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data"}, fc.AllowedDirs)
	assert.Equal(t, []string{".txt", ".json"}, fc.AllowedExtensions)
	assert.Equal(t, []string{".git"}, fc.IgnorePatterns)
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "allowed_dirs:\n  - /data\nallowed_extensions:\n  - .txt\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data"}, fc.AllowedDirs)
	assert.Equal(t, []string{".txt"}, fc.AllowedExtensions)
}

func TestLoadFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "allowed_dirs = [\"/data\"]\nallowed_extensions = [\".txt\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data"}, fc.AllowedDirs)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestApplyFilePrecedence(t *testing.T) {
	cfg := Default()
	cfg.Gateway.Roots = []string{"/explicit"}

	cfg.ApplyFile(&FileConfig{
		AllowedDirs:       []string{"/from-file"},
		AllowedExtensions: []string{".md"},
	})

	// Explicit settings win; unset fields come from the file.
	assert.Equal(t, []string{"/explicit"}, cfg.Gateway.Roots)
	assert.Equal(t, []string{".md"}, cfg.Gateway.Extensions)
}
