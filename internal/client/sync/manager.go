package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	httpclient "github.com/fieldcrm/fieldcrm/internal/client/api"
	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/internal/validation"
)

// ConnectionStatus результат проверки соединения
type ConnectionStatus struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// Status текущее состояние движка синхронизации для UI
type Status struct {
	Stats            Stats `json:"stats"`
	IntervalMinutes  int   `json:"interval_minutes,omitempty"`
	PendingConflicts int   `json:"pending_conflicts"`
	Running          bool  `json:"running"`
	Connected        bool  `json:"connected"`
	AutoSyncArmed    bool  `json:"auto_sync_armed"`
}

// Manager единая точка входа для UI слоя: команды и запросы движка
// синхронизации. Конструируется один раз композиционным корнем и
// передается вызывающим явно.
type Manager struct {
	service   *Service
	resolver  *Resolver
	reporter  *Reporter
	scheduler *Scheduler
	apiClient httpclient.ClientAPI
	conflicts storage.ConflictStorage
	logger    *slog.Logger

	// running — единственное по-настоящему конкурентное состояние:
	// его делят ручные вызовы и тики планировщика
	running   atomic.Bool
	connected atomic.Bool
}

// NewManager creates the sync manager and wires the scheduler to it
func NewManager(apiClient httpclient.ClientAPI, entities storage.EntityStorage, metadata storage.MetadataStorage, conflicts storage.ConflictStorage, logger *slog.Logger) *Manager {
	reporter := NewReporter()
	resolver := NewResolver(entities, metadata, conflicts, reporter, logger)
	service := NewService(apiClient, entities, metadata, resolver, reporter, logger)

	m := &Manager{
		service:   service,
		resolver:  resolver,
		reporter:  reporter,
		apiClient: apiClient,
		conflicts: conflicts,
		logger:    logger,
	}
	m.scheduler = NewScheduler(m.scheduledSync, logger)
	return m
}

// Reporter exposes the status reporter for subscriptions
func (m *Manager) Reporter() *Reporter { return m.reporter }

// TestConnection проверяет доступность удаленного сервера
func (m *Manager) TestConnection(ctx context.Context) ConnectionStatus {
	resp, err := m.apiClient.Health(ctx)
	if err != nil {
		m.connected.Store(false)
		return ConnectionStatus{Success: false, Error: err.Error()}
	}
	m.connected.Store(true)
	return ConnectionStatus{Success: true, Message: resp.Message}
}

// SyncAll запускает полную сессию синхронизации. Вызов во время идущей
// сессии немедленно отклоняется с ErrSyncInProgress, не изменив ни одной
// записи.
func (m *Manager) SyncAll(ctx context.Context, opts Options) (*models.SyncSession, error) {
	if !m.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer m.running.Store(false)

	session, err := m.service.SyncAll(ctx, opts)
	m.connected.Store(err == nil || !httpclient.IsConnectionError(err))
	return session, err
}

// SyncEntity синхронизирует один тип сущностей. Разделяет single-flight
// флаг с полной сессией.
func (m *Manager) SyncEntity(ctx context.Context, kind models.EntityKind, opts Options) (*models.SyncResult, error) {
	if !m.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer m.running.Store(false)

	return m.service.SyncEntity(ctx, kind, opts), nil
}

// GetPendingConflicts возвращает неразрешенные конфликты для ручного
// разбора (side-by-side сравнение в UI)
func (m *Manager) GetPendingConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	return m.conflicts.ListPendingConflicts(ctx)
}

// ResolveConflict применяет решение к отложенному конфликту
func (m *Manager) ResolveConflict(ctx context.Context, id string, res Resolution) (*models.SyncConflict, error) {
	return m.resolver.ResolveConflict(ctx, id, res)
}

// GetStatus возвращает текущее состояние движка и статистику
func (m *Manager) GetStatus(ctx context.Context) (*Status, error) {
	pending, err := m.conflicts.ListPendingConflicts(ctx)
	if err != nil {
		return nil, err
	}

	armed, interval := m.scheduler.Armed()

	return &Status{
		Running:          m.running.Load(),
		Connected:        m.connected.Load(),
		AutoSyncArmed:    armed,
		IntervalMinutes:  int(interval / time.Minute),
		PendingConflicts: len(pending),
		Stats:            m.reporter.Stats(),
	}, nil
}

// StartAutoSync взводит периодическую синхронизацию. Повторный вызов
// с новым интервалом перевооружает таймер без немедленного срабатывания.
func (m *Manager) StartAutoSync(minutes int) error {
	if err := validation.ValidateSyncInterval(minutes); err != nil {
		return err
	}
	m.scheduler.Start(time.Duration(minutes) * time.Minute)
	return nil
}

// StopAutoSync снимает таймер автосинхронизации
func (m *Manager) StopAutoSync() {
	m.scheduler.Stop()
}

// scheduledSync вызывается планировщиком; проигранный single-flight —
// штатная ситуация (идет ручная сессия), тик просто отбрасывается
func (m *Manager) scheduledSync() {
	_, err := m.SyncAll(context.Background(), DefaultOptions())
	if err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			m.logger.Debug("scheduled sync skipped, session in flight")
			return
		}
		m.logger.Warn("scheduled sync failed", "error", err)
	}
}
