package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	syncpkg "github.com/fieldcrm/fieldcrm/internal/client/sync"
	"github.com/fieldcrm/fieldcrm/internal/validation"
)

// RunWatch запускает периодическую синхронизацию в переднем плане
// и печатает события сессий до прерывания
func (c *Cli) RunWatch(ctx context.Context) error {
	if err := validation.ValidateAPIKey(c.cfg.RemoteAPIKey); err != nil {
		return fmt.Errorf("%w: run 'fieldcrm configure' first", err)
	}

	interval := c.cfg.SyncIntervalMinutes

	unsubscribe := c.manager.Reporter().Subscribe(func(ev syncpkg.Event) {
		switch ev.Type {
		case syncpkg.EventStart:
			c.io.Printf("[%s] sync started\n", ev.Timestamp.Format(time.TimeOnly))
		case syncpkg.EventEntity:
			if ev.Result != nil {
				c.io.Printf("[%s]   %s: pulled %d, pushed %d\n",
					ev.Timestamp.Format(time.TimeOnly), ev.Kind,
					ev.Result.PulledCount, ev.Result.PushedCount)
			}
		case syncpkg.EventComplete:
			c.io.Printf("[%s] sync complete\n", ev.Timestamp.Format(time.TimeOnly))
		case syncpkg.EventError:
			c.io.Printf("[%s] sync failed: %s\n", ev.Timestamp.Format(time.TimeOnly), ev.Error)
		}
	})
	defer unsubscribe()

	// Первая сессия сразу: планировщик сработает только через интервал
	if _, err := c.manager.SyncAll(ctx, syncpkg.DefaultOptions()); err != nil {
		c.io.Printf("initial sync failed: %v\n", err)
	}

	if err := c.manager.StartAutoSync(interval); err != nil {
		return fmt.Errorf("failed to start auto-sync: %w", err)
	}
	defer c.manager.StopAutoSync()

	c.io.Printf("Watching, next sync in %d minute(s). Press Ctrl+C to stop.\n", interval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	c.io.Println("Stopped.")
	return nil
}
