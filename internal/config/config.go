package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig
	Generation GenerationConfig
	UI         UIConfig
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// GenerationConfig holds defaults applied to new requests.
type GenerationConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`
	Framework       string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Notify bool
	Theme  string
}

// Load reads configuration from file and env. Env var overrides use prefix CODESMITH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.base_url", "http://localhost:8000/api/v1")
	// Matches the backend's max_request_time; generation can genuinely take minutes.
	v.SetDefault("server.timeout_seconds", 300)
	v.SetDefault("generation.default_language", "python")
	v.SetDefault("generation.framework", "")
	v.SetDefault("ui.notify", false)
	v.SetDefault("ui.theme", "dark")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CODESMITH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "codesmith"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CODESMITH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings surface for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("CODESMITH_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "codesmith", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("server.base_url", cfg.Server.BaseURL)
	v.Set("server.timeout_seconds", cfg.Server.TimeoutSeconds)
	v.Set("generation.default_language", cfg.Generation.DefaultLanguage)
	v.Set("generation.framework", cfg.Generation.Framework)
	v.Set("ui.notify", cfg.UI.Notify)
	v.Set("ui.theme", cfg.UI.Theme)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
