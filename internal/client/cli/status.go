package cli

import (
	"context"
	"fmt"
	"time"
)

// RunStatus показывает состояние движка синхронизации
func (c *Cli) RunStatus(ctx context.Context) error {
	status, err := c.manager.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Println("=== Sync Status ===")
	c.io.Println()
	c.io.Printf("Server:            %s\n", c.cfg.RemoteAPIURL)
	c.io.Printf("Connected:         %s\n", yesNo(status.Connected))
	c.io.Printf("Session running:   %s\n", yesNo(status.Running))
	if status.AutoSyncArmed {
		c.io.Printf("Auto-sync:         every %d minute(s)\n", status.IntervalMinutes)
	} else {
		c.io.Println("Auto-sync:         off")
	}
	c.io.Println()

	stats := status.Stats
	if stats.TotalSyncs == 0 {
		c.io.Println("No sync sessions yet.")
	} else {
		c.io.Printf("Last sync:         %s\n", stats.LastSyncAt.Format(time.RFC3339))
		c.io.Printf("Sessions:          %d total, %d ok, %d failed\n",
			stats.TotalSyncs, stats.SuccessfulSyncs, stats.FailedSyncs)
		c.io.Printf("Records:           %d pulled, %d pushed\n",
			stats.RecordsPulled, stats.RecordsPushed)
		c.io.Printf("Conflicts solved:  %d\n", stats.ConflictsResolved)
	}

	if status.PendingConflicts > 0 {
		c.io.Println()
		c.io.Printf("%d unresolved conflict(s). Run 'fieldcrm conflicts' to review them.\n", status.PendingConflicts)
	}

	return nil
}
