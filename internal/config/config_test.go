package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CODESMITH_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000/api/v1", cfg.Server.BaseURL)
	require.Equal(t, 300, cfg.Server.TimeoutSeconds)
	require.Equal(t, "python", cfg.Generation.DefaultLanguage)
	require.False(t, cfg.UI.Notify)
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
base_url = "http://backend:9000/api/v1"
timeout_seconds = 60

[generation]
default_language = "go"
`), 0o644))

	t.Setenv("CODESMITH_CONFIG", path)
	t.Setenv("CODESMITH_GENERATION_DEFAULT_LANGUAGE", "rust")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://backend:9000/api/v1", cfg.Server.BaseURL, "file overrides default")
	require.Equal(t, 60, cfg.Server.TimeoutSeconds)
	require.Equal(t, "rust", cfg.Generation.DefaultLanguage, "env overrides file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("CODESMITH_CONFIG", path)

	in := Config{
		Server:     ServerConfig{BaseURL: "http://h:1/api/v1", TimeoutSeconds: 10},
		Generation: GenerationConfig{DefaultLanguage: "typescript", Framework: "react"},
		UI:         UIConfig{Notify: true, Theme: "light"},
	}
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	require.Equal(t, in, out)
}
