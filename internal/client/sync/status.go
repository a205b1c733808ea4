package sync

import (
	"sync"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/models"
)

// EventType тип события жизненного цикла сессии
type EventType string

const (
	// EventStart сессия началась
	EventStart EventType = "start"
	// EventEntity завершена синхронизация одного типа сущностей
	EventEntity EventType = "entity"
	// EventComplete сессия завершена
	EventComplete EventType = "complete"
	// EventError сессия прервана ошибкой соединения
	EventError EventType = "error"
)

// Event уведомление подписчикам о ходе сессии
type Event struct {
	Timestamp time.Time
	Session   *models.SyncSession // заполнено для complete
	Result    *models.SyncResult  // заполнено для entity
	Type      EventType
	Kind      models.EntityKind // заполнено для entity
	Error     string            // заполнено для error
}

// Stats накопительные счетчики синхронизации
type Stats struct {
	LastSyncAt        time.Time `json:"last_sync_at"`
	TotalSyncs        int64     `json:"total_syncs"`
	SuccessfulSyncs   int64     `json:"successful_syncs"`
	FailedSyncs       int64     `json:"failed_syncs"`
	ConflictsResolved int64     `json:"conflicts_resolved"`
	RecordsPushed     int64     `json:"records_pushed"`
	RecordsPulled     int64     `json:"records_pulled"`
}

// Reporter ведет счетчики и рассылает события жизненного цикла сессии.
// Подписчики уведомляются fire-and-forget: их обработчики не могут
// повлиять на исход сессии. Subscribe возвращает функцию отписки, чтобы
// слушатели не утекали между тестами и экранами UI.
type Reporter struct {
	subs   map[int]func(Event)
	mu     sync.Mutex
	stats  Stats
	nextID int
}

// NewReporter creates a new status reporter
func NewReporter() *Reporter {
	return &Reporter{subs: make(map[int]func(Event))}
}

// Subscribe registers a session lifecycle listener and returns an
// unsubscribe func
func (r *Reporter) Subscribe(fn func(Event)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.subs[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// Stats returns a copy of the current counters
func (r *Reporter) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Reporter) publish(ev Event) {
	ev.Timestamp = time.Now().UTC()

	r.mu.Lock()
	listeners := make([]func(Event), 0, len(r.subs))
	for _, fn := range r.subs {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	// Вызываем без удержания lock: подписчик может отписаться
	// из собственного обработчика
	for _, fn := range listeners {
		fn(ev)
	}
}

func (r *Reporter) sessionStarted() {
	r.publish(Event{Type: EventStart})
}

func (r *Reporter) entitySynced(kind models.EntityKind, result *models.SyncResult) {
	r.publish(Event{Type: EventEntity, Kind: kind, Result: result})
}

// sessionCompleted обновляет счетчики один раз, в конце сессии
func (r *Reporter) sessionCompleted(session *models.SyncSession) {
	r.mu.Lock()
	r.stats.TotalSyncs++
	if session.Success {
		r.stats.SuccessfulSyncs++
	} else {
		r.stats.FailedSyncs++
	}
	for _, res := range session.Results {
		r.stats.RecordsPushed += int64(res.PushedCount)
		r.stats.RecordsPulled += int64(res.PulledCount)
	}
	r.stats.LastSyncAt = session.Timestamp
	r.mu.Unlock()

	r.publish(Event{Type: EventComplete, Session: session})
}

// sessionFailed фиксирует сессию, прерванную до обработки сущностей
func (r *Reporter) sessionFailed(err error) {
	r.mu.Lock()
	r.stats.TotalSyncs++
	r.stats.FailedSyncs++
	r.mu.Unlock()

	r.publish(Event{Type: EventError, Error: err.Error()})
}

func (r *Reporter) conflictResolved() {
	r.mu.Lock()
	r.stats.ConflictsResolved++
	r.mu.Unlock()
}
