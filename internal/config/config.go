// Package config loads CLI settings from flags, MOLTBOOK_* environment
// variables and an optional config.json in the user config directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pp/moltbook/internal/api"
)

// Keys.
const (
	KeyAPIURL   = "api_url"
	KeyTimeout  = "timeout"
	KeyEnvFile  = "env_file"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

// Config holds resolved settings. Built once per process.
type Config struct {
	APIURL   string
	Timeout  time.Duration
	EnvFile  string
	LogLevel string
	LogFile  string
	// ConfigDir holds config.json and credentials.json.
	ConfigDir string
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyAPIURL, api.BaseURL)
	v.SetDefault(KeyTimeout, api.DefaultTimeout)
	v.SetDefault(KeyEnvFile, ".env")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix("MOLTBOOK")
	v.AutomaticEnv()

	return v
}

// BindFlags binds command-line flags over config keys. Flags that are not
// defined on the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyAPIURL:  "api-url",
		KeyLogFile: "log-file",
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads config.json from configDir, if present, and resolves settings.
func Load(v *viper.Viper, configDir string) (*Config, error) {
	if configDir != "" {
		v.SetConfigFile(filepath.Join(configDir, "config.json"))
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		APIURL:    v.GetString(KeyAPIURL),
		Timeout:   v.GetDuration(KeyTimeout),
		EnvFile:   v.GetString(KeyEnvFile),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFile:   v.GetString(KeyLogFile),
		ConfigDir: configDir,
	}

	if cfg.APIURL == "" {
		return nil, errors.New("api_url must not be empty")
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative: %s", cfg.Timeout)
	}

	return cfg, nil
}

// isNotFound reports whether err means the config file does not exist.
// SetConfigFile surfaces a *fs.PathError rather than ConfigFileNotFoundError.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
