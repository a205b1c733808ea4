package validation

import (
	"fmt"
	"net/url"
)

const (
	// MinSyncIntervalMinutes минимальный интервал автосинхронизации
	MinSyncIntervalMinutes = 5
	// MaxSyncIntervalMinutes максимальный интервал автосинхронизации (сутки)
	MaxSyncIntervalMinutes = 1440
)

// ValidateAPIURL проверяет, что адрес удаленного API является абсолютным
// http/https URL
func ValidateAPIURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("remote API URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("remote API URL is not a valid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("remote API URL must use http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("remote API URL has no host")
	}

	return nil
}

// ValidateSyncInterval проверяет интервал автосинхронизации в минутах.
// Допустимый диапазон: 5-1440 минут.
func ValidateSyncInterval(minutes int) error {
	if minutes < MinSyncIntervalMinutes {
		return fmt.Errorf("sync interval must be at least %d minutes", MinSyncIntervalMinutes)
	}
	if minutes > MaxSyncIntervalMinutes {
		return fmt.Errorf("sync interval must not exceed %d minutes", MaxSyncIntervalMinutes)
	}
	return nil
}

// ValidateAPIKey проверяет, что API ключ задан
func ValidateAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}
	return nil
}
