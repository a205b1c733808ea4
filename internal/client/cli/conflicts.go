package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	syncpkg "github.com/fieldcrm/fieldcrm/internal/client/sync"
)

// RunConflicts выводит журнал неразрешенных конфликтов
func (c *Cli) RunConflicts(ctx context.Context) error {
	conflicts, err := c.manager.GetPendingConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	if len(conflicts) == 0 {
		c.io.Println("No unresolved conflicts.")
		return nil
	}

	c.io.Printf("%d unresolved conflict(s):\n", len(conflicts))
	c.io.Println()
	for _, conflict := range conflicts {
		c.io.Printf("  %s\n", conflict.ID)
		c.io.Printf("    %s %s, %s, detected %s\n",
			conflict.Kind, conflict.EntityID, conflict.Type,
			conflict.CreatedAt.Format(time.RFC3339))
	}
	c.io.Println()
	c.io.Println("Resolve with: fieldcrm resolve <id> <local|remote|file> [path]")
	return nil
}

// RunResolve разрешает один конфликт по его id
func (c *Cli) RunResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fieldcrm resolve <id> <local|remote|file> [path]")
	}

	id := args[0]
	choice := args[1]

	var res syncpkg.Resolution
	switch choice {
	case "local":
		res.Keep = syncpkg.StrategyLocalWins
	case "remote":
		res.Keep = syncpkg.StrategyRemoteWins
	case "file":
		if len(args) < 3 {
			return fmt.Errorf("usage: fieldcrm resolve <id> file <path>")
		}
		merged, err := os.ReadFile(args[2])
		if err != nil {
			return fmt.Errorf("failed to read merged record: %w", err)
		}
		if !json.Valid(merged) {
			return fmt.Errorf("merged record %s is not valid JSON", args[2])
		}
		res.Merged = merged
	default:
		return fmt.Errorf("unknown resolution %q: expected local, remote or file", choice)
	}

	conflict, err := c.manager.ResolveConflict(ctx, id, res)
	if err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	c.io.Printf("Conflict %s resolved as %q (%s %s)\n",
		conflict.ID, conflict.Resolution, conflict.Kind, conflict.EntityID)
	if conflict.Resolution != "remote" {
		c.io.Println("The record is queued for the next push.")
	}
	return nil
}
