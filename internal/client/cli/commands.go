package cli

import (
	"context"
	"fmt"
)

// Run диспетчеризует одну команду. Возвращает ошибку вызывающему:
// коды выхода — забота main.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "configure":
		return c.RunConfigure(ctx)
	case "test-connection":
		return c.RunTestConnection(ctx)
	case "sync":
		return c.RunSync(ctx, args)
	case "status":
		return c.RunStatus(ctx)
	case "conflicts":
		return c.RunConflicts(ctx)
	case "resolve":
		return c.RunResolve(ctx, args)
	case "put":
		return c.RunPut(ctx, args)
	case "list":
		return c.RunList(ctx, args)
	case "watch":
		return c.RunWatch(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
