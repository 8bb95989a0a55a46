// Package config loads service configuration from YAML files and the
// environment. Project config overrides global config; environment
// variables supply secrets.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`

	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	Suggest struct {
		Enabled bool          `mapstructure:"enabled"`
		APIKey  string        `mapstructure:"api_key"`
		Model   string        `mapstructure:"model"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"suggest"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Database.Path = "~/.specforge/specforge.db"
	cfg.Suggest.Enabled = true
	cfg.Suggest.Timeout = 30 * time.Second
	return cfg
}

// Load merges configuration from global and project sources over the
// defaults. Missing files are not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(home, ".specforge", "config.yaml")
		if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cwd, err := os.Getwd()
	if err == nil {
		projectPath := filepath.Join(cwd, "specforge.yaml")
		if err := loadFile(projectPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Secrets come from the environment when not configured.
	if cfg.Suggest.APIKey == "" {
		cfg.Suggest.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}
