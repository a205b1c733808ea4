package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fieldcrm/fieldcrm/internal/validation"
)

// Настройки клиента по умолчанию
const (
	DefaultRemoteAPIURL        = "http://localhost:8080"
	DefaultSyncIntervalMinutes = 30
)

// ValidationError описывает отклоненное значение настройки.
// Возвращается на границе вызова, до обращения к сети.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config field %q: %s", e.Field, e.Reason)
}

// Config настройки клиента синхронизации
type Config struct {
	RemoteAPIURL        string `mapstructure:"remote_api_url"`
	RemoteAPIKey        string `mapstructure:"remote_api_key"`
	AutoSyncEnabled     bool   `mapstructure:"auto_sync_enabled"`
	SyncIntervalMinutes int    `mapstructure:"sync_interval_minutes"`
}

// DefaultPath возвращает путь к файлу настроек по умолчанию
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".fieldcrm", "config.yaml"), nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("FIELDCRM")
	v.AutomaticEnv()

	v.SetDefault("remote_api_url", DefaultRemoteAPIURL)
	v.SetDefault("remote_api_key", "")
	v.SetDefault("auto_sync_enabled", false)
	v.SetDefault("sync_interval_minutes", DefaultSyncIntervalMinutes)

	return v
}

// Load reads the settings file at path. A missing file is not an error:
// defaults plus environment overrides are returned instead.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the settings file, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(path)
	v.Set("remote_api_url", cfg.RemoteAPIURL)
	v.Set("remote_api_key", cfg.RemoteAPIKey)
	v.Set("auto_sync_enabled", cfg.AutoSyncEnabled)
	v.Set("sync_interval_minutes", cfg.SyncIntervalMinutes)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// Validate rejects malformed settings before they reach the network layer.
func (c *Config) Validate() error {
	if err := validation.ValidateAPIURL(c.RemoteAPIURL); err != nil {
		return &ValidationError{Field: "remote_api_url", Reason: err.Error()}
	}
	if err := validation.ValidateSyncInterval(c.SyncIntervalMinutes); err != nil {
		return &ValidationError{Field: "sync_interval_minutes", Reason: err.Error()}
	}
	return nil
}
