package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string `mapstructure:"ENV"`
	APIBaseURL string `mapstructure:"API_BASE_URL"`
	Offline    bool   `mapstructure:"OFFLINE"`
	SessionDir string `mapstructure:"SESSION_DIR"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("OFFLINE", false)
	v.SetDefault("SESSION_DIR", defaultSessionDir())

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("API_BASE_URL")
	v.BindEnv("OFFLINE")
	v.BindEnv("SESSION_DIR")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is usable. The API base URL must
// parse as an absolute http(s) URL unless the client runs offline, and a
// session directory is always required.
func (c *Config) Validate() error {
	if c.SessionDir == "" {
		return fmt.Errorf("SESSION_DIR is required")
	}
	if c.Offline {
		return nil
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("API_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be absolute")
	}
	return nil
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hms-console"
	}
	return filepath.Join(home, ".hms-console")
}
