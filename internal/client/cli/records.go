package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	"github.com/fieldcrm/fieldcrm/internal/models"
)

// RunPut создает или обновляет локальную запись из JSON файла.
// Команда существует, чтобы у движка было что отправлять: полноценный
// редактор сущностей живет в другом приложении.
func (c *Cli) RunPut(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fieldcrm put <kind> <file>")
	}

	kind, err := models.ParseKind(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}

	rec, err := models.DecodeRecord(kind, data)
	if err != nil {
		return fmt.Errorf("invalid %s record: %w", kind, err)
	}
	if rec.RecordID() == "" {
		return fmt.Errorf("record id cannot be empty")
	}

	_, err = c.entities.GetEntity(ctx, kind, rec.RecordID())
	switch {
	case err == nil:
		if err := c.entities.UpdateEntity(ctx, kind, rec); err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}
		c.io.Printf("Updated %s %s, queued for push\n", kind, rec.RecordID())
	case errors.Is(err, storage.ErrEntityNotFound):
		if err := c.entities.InsertEntity(ctx, kind, rec); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
		c.io.Printf("Created %s %s, queued for push\n", kind, rec.RecordID())
	default:
		return fmt.Errorf("failed to look up record: %w", err)
	}

	return nil
}

// RunList выводит локальные записи одного типа
func (c *Cli) RunList(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: fieldcrm list <kind>")
	}

	kind, err := models.ParseKind(args[0])
	if err != nil {
		return err
	}

	records, err := c.entities.ListEntities(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		c.io.Printf("No local %s.\n", kind)
		return nil
	}

	c.io.Printf("%d local %s:\n", len(records), kind)
	for _, rec := range records {
		marker := ""
		if rec.IsDeleted() {
			marker = "  [deleted]"
		}
		c.io.Printf("  %-36s  updated %s%s\n",
			rec.RecordID(), rec.ModifiedAt().Format(time.RFC3339), marker)
	}
	return nil
}
