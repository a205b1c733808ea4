package cli

import (
	"fmt"

	"github.com/fieldcrm/fieldcrm/internal/client/iocli"
	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	syncpkg "github.com/fieldcrm/fieldcrm/internal/client/sync"
	"github.com/fieldcrm/fieldcrm/internal/config"
)

// Cli связывает команды терминала с движком синхронизации и локальным
// хранилищем. Все зависимости передаются явно из композиционного корня.
type Cli struct {
	io         iocli.IO
	manager    *syncpkg.Manager
	entities   storage.EntityStorage
	cfg        *config.Config
	configPath string
}

func New(io iocli.IO, manager *syncpkg.Manager, entities storage.EntityStorage, cfg *config.Config, configPath string) *Cli {
	return &Cli{
		io:         io,
		manager:    manager,
		entities:   entities,
		cfg:        cfg,
		configPath: configPath,
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println(`FieldCRM sync client

Usage: fieldcrm [flags] <command> [arguments]

Commands:
  configure                        Interactive configuration (server URL, API key, sync interval)
  test-connection                  Check that the remote server is reachable
  sync [--kind] [--direction] [--resolve]
                                   Run a synchronization session
  status                           Show connection state, counters and pending conflicts
  conflicts                        List unresolved conflicts
  resolve <id> <local|remote|file> [path]
                                   Resolve a conflict; "file" applies a merged record from path
  put <kind> <file>                Create or update a local record from a JSON file
  list <kind>                      List local records of a kind
  watch                            Run periodic sync in the foreground until interrupted

Kinds: customers, quotes, orders

Flags:
  -version        Show version information
  -config PATH    Path to the config file
  -db PATH        Path to the local database`)
}
