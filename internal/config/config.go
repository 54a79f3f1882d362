// Package config loads wpkit configuration from file and environment.
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
	API  APIConfig
	Site SiteConfig
	Data DataConfig
}

// APIConfig holds REST service settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// SiteConfig identifies the site and account being managed.
type SiteConfig struct {
	ID       int64
	URL      string
	Username string
}

// DataConfig holds local storage settings.
type DataConfig struct {
	// Dir is the app data directory holding the webview engine stores and
	// logs.
	Dir string
	// Engine selects which webview engine's cookie store to use: "legacy"
	// or "webkit".
	Engine string
}

// Load reads configuration from file and env. Env var overrides use prefix
// WPKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "https://public-api.wordpress.com/rest/v1.1")
	v.SetDefault("site.id", 0)
	v.SetDefault("site.url", "")
	v.SetDefault("site.username", "")
	v.SetDefault("data.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "wpkit"))
	v.SetDefault("data.engine", "webkit")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WPKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "wpkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WPKIT")
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
