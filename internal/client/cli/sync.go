package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	syncpkg "github.com/fieldcrm/fieldcrm/internal/client/sync"
	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/internal/validation"
)

// RunSync запускает одну сессию синхронизации
func (c *Cli) RunSync(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	kindFlag := fs.String("kind", "", "sync only one entity kind (customers|quotes|orders)")
	directionFlag := fs.String("direction", "both", "sync direction (pull|push|both)")
	resolveFlag := fs.String("resolve", "manual", "conflict strategy (local|remote|manual)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := parseSyncOptions(*directionFlag, *resolveFlag)
	if err != nil {
		return err
	}

	if err := validation.ValidateAPIKey(c.cfg.RemoteAPIKey); err != nil {
		return fmt.Errorf("%w: run 'fieldcrm configure' first", err)
	}

	if *kindFlag != "" {
		kind, err := models.ParseKind(*kindFlag)
		if err != nil {
			return err
		}

		result, err := c.manager.SyncEntity(ctx, kind, opts)
		if err != nil {
			return syncRunError(err)
		}
		c.printResult(result)
		return nil
	}

	session, err := c.manager.SyncAll(ctx, opts)
	if err != nil {
		return syncRunError(err)
	}

	for _, result := range session.Results {
		c.printResult(result)
	}
	if conflicts := session.Conflicts(); len(conflicts) > 0 {
		c.io.Println()
		c.io.Printf("%d conflict(s) need a decision. Run 'fieldcrm conflicts' to review them.\n", len(conflicts))
	}
	return nil
}

func parseSyncOptions(direction, resolve string) (syncpkg.Options, error) {
	opts := syncpkg.DefaultOptions()

	switch syncpkg.Direction(direction) {
	case syncpkg.DirectionPull, syncpkg.DirectionPush, syncpkg.DirectionBoth:
		opts.Direction = syncpkg.Direction(direction)
	default:
		return opts, fmt.Errorf("invalid direction %q: expected pull, push or both", direction)
	}

	switch syncpkg.Strategy(resolve) {
	case syncpkg.StrategyLocalWins, syncpkg.StrategyRemoteWins, syncpkg.StrategyManual:
		opts.Strategy = syncpkg.Strategy(resolve)
	default:
		return opts, fmt.Errorf("invalid strategy %q: expected local, remote or manual", resolve)
	}

	return opts, nil
}

func syncRunError(err error) error {
	if errors.Is(err, syncpkg.ErrSyncInProgress) {
		return fmt.Errorf("another sync session is already running, try again later")
	}
	return err
}

func (c *Cli) printResult(result *models.SyncResult) {
	c.io.Printf("%-10s pulled %d, pushed %d", result.Kind, result.PulledCount, result.PushedCount)
	if len(result.Conflicts) > 0 {
		c.io.Printf(", %d conflict(s)", len(result.Conflicts))
	}
	if len(result.Errors) > 0 {
		c.io.Printf(", %d error(s)", len(result.Errors))
	}
	c.io.Println()

	for _, msg := range result.Errors {
		c.io.Printf("  error: %s\n", msg)
	}
}
