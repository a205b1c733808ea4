package cli

import (
	"context"
	"fmt"
)

// RunTestConnection проверяет доступность удаленного сервера
func (c *Cli) RunTestConnection(ctx context.Context) error {
	c.io.Printf("Checking %s ...\n", c.cfg.RemoteAPIURL)

	status := c.manager.TestConnection(ctx)
	if !status.Success {
		return fmt.Errorf("server is not reachable: %s", status.Error)
	}

	c.io.Printf("Server is reachable: %s\n", status.Message)
	return nil
}
