package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldcrm/fieldcrm/internal/config"
)

// RunConfigure интерактивно собирает настройки и сохраняет их на диск.
// Пустой ввод оставляет текущее значение, так что повторный запуск
// правит одно поле, не переспрашивая остальные.
func (c *Cli) RunConfigure(ctx context.Context) error {
	c.io.Println("=== FieldCRM Configuration ===")
	c.io.Println()

	updated := *c.cfg

	url, err := c.io.ReadInput(fmt.Sprintf("Server URL [%s]: ", updated.RemoteAPIURL))
	if err != nil {
		return fmt.Errorf("failed to read server URL: %w", err)
	}
	if url != "" {
		updated.RemoteAPIURL = url
	}

	// Ключ читается без эха и не показывается как текущее значение
	keyPrompt := "API key: "
	if updated.RemoteAPIKey != "" {
		keyPrompt = "API key [keep current]: "
	}
	key, err := c.io.ReadPassword(keyPrompt)
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	if key != "" {
		updated.RemoteAPIKey = key
	}

	intervalRaw, err := c.io.ReadInput(fmt.Sprintf("Sync interval, minutes [%d]: ", updated.SyncIntervalMinutes))
	if err != nil {
		return fmt.Errorf("failed to read sync interval: %w", err)
	}
	if intervalRaw != "" {
		interval, err := strconv.Atoi(intervalRaw)
		if err != nil {
			return fmt.Errorf("sync interval must be a number: %q", intervalRaw)
		}
		updated.SyncIntervalMinutes = interval
	}

	autoRaw, err := c.io.ReadInput(fmt.Sprintf("Enable auto-sync (y/n) [%s]: ", yesNo(updated.AutoSyncEnabled)))
	if err != nil {
		return fmt.Errorf("failed to read auto-sync choice: %w", err)
	}
	switch strings.ToLower(autoRaw) {
	case "":
		// оставляем как было
	case "y", "yes":
		updated.AutoSyncEnabled = true
	case "n", "no":
		updated.AutoSyncEnabled = false
	default:
		return fmt.Errorf("expected y or n, got %q", autoRaw)
	}

	// Save валидирует все поля до записи на диск
	if err := config.Save(c.configPath, &updated); err != nil {
		return err
	}
	*c.cfg = updated

	c.io.Println()
	c.io.Printf("Configuration saved to %s\n", c.configPath)
	return nil
}

func yesNo(v bool) string {
	if v {
		return "y"
	}
	return "n"
}
