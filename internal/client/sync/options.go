package sync

import "errors"

// Direction определяет, какие фазы выполняет синхронизация
type Direction string

const (
	// DirectionPull только прием удаленных изменений
	DirectionPull Direction = "pull"
	// DirectionPush только отправка локальных изменений
	DirectionPush Direction = "push"
	// DirectionBoth pull, затем push
	DirectionBoth Direction = "both"
)

// Strategy определяет политику разрешения конфликтов в рамках одного вызова
type Strategy string

const (
	// StrategyRemoteWins применить удаленный снапшот поверх локального
	StrategyRemoteWins Strategy = "remote"
	// StrategyLocalWins оставить локальную запись, удаленный снапшот пропустить
	StrategyLocalWins Strategy = "local"
	// StrategyManual сохранить оба снапшота в журнал и ждать решения
	StrategyManual Strategy = "manual"
)

// Options параметры одного вызова синхронизации
type Options struct {
	Direction Direction
	Strategy  Strategy
}

// DefaultOptions: двунаправленная синхронизация, конфликты в ручной разбор
func DefaultOptions() Options {
	return Options{Direction: DirectionBoth, Strategy: StrategyManual}
}

func (o *Options) normalize() {
	if o.Direction == "" {
		o.Direction = DirectionBoth
	}
	if o.Strategy == "" {
		o.Strategy = StrategyManual
	}
}

// ErrSyncInProgress возвращается, когда сессия синхронизации уже запущена.
// Попытка не ставится в очередь: single-flight.
var ErrSyncInProgress = errors.New("already syncing")
