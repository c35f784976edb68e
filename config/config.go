package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Onboarding placeholders shipped in .env.example. Credentials that still
// carry them must be treated as unset, never sent to the store.
const (
	urlPlaceholder = "your_store_url_here"
	keyPlaceholder = "your_store_key_here"
)

// Config holds the engine's environment parameters. StoreURL and StoreKey
// locate and authenticate the remote catalog store; everything else tunes
// the process around it.
type Config struct {
	StoreURL     string        `mapstructure:"store_url"`
	StoreKey     string        `mapstructure:"store_key"`
	RefreshEvery time.Duration `mapstructure:"refresh_every"`
	LogMode      string        `mapstructure:"log_mode"`
}

// Load reads configuration from DELIVERY_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DELIVERY")
	v.AutomaticEnv()

	v.SetDefault("store_url", "")
	v.SetDefault("store_key", "")
	v.SetDefault("refresh_every", "0")
	v.SetDefault("log_mode", "development")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// IsConfigured reports whether both store parameters look like real values.
// Empty strings, the literal placeholders and anything containing
// "placeholder" count as unset.
func (c *Config) IsConfigured() bool {
	return looksSet(c.StoreURL, urlPlaceholder) && looksSet(c.StoreKey, keyPlaceholder)
}

func looksSet(v, placeholder string) bool {
	v = strings.TrimSpace(v)
	if v == "" || v == placeholder {
		return false
	}
	return !strings.Contains(strings.ToLower(v), "placeholder")
}

// DSN combines the store endpoint with the access key, which travels as the
// connection credential.
func (c *Config) DSN() (string, error) {
	u, err := url.Parse(c.StoreURL)
	if err != nil {
		return "", fmt.Errorf("invalid store url: %w", err)
	}
	user := "delivery"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.StoreKey)
	return u.String(), nil
}
