package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpclient "github.com/fieldcrm/fieldcrm/internal/client/api"
	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

// Service организует pull-then-push синхронизацию между локальным
// хранилищем и удаленным system-of-record
type Service struct {
	apiClient httpclient.ClientAPI
	entities  storage.EntityStorage
	metadata  storage.MetadataStorage
	resolver  *Resolver
	reporter  *Reporter
	logger    *slog.Logger
}

// NewService creates a new sync orchestrator
func NewService(apiClient httpclient.ClientAPI, entities storage.EntityStorage, metadata storage.MetadataStorage, resolver *Resolver, reporter *Reporter, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		entities:  entities,
		metadata:  metadata,
		resolver:  resolver,
		reporter:  reporter,
		logger:    logger,
	}
}

// SyncAll синхронизирует все типы сущностей в фиксированном порядке
// зависимостей: customers, затем quotes, затем orders. Сначала
// проверяется доступность сервера: при ошибке соединения сессия
// прерывается целиком, не тронув ни одной сущности.
func (s *Service) SyncAll(ctx context.Context, opts Options) (*models.SyncSession, error) {
	opts.normalize()

	if _, err := s.apiClient.Health(ctx); err != nil {
		s.logger.Warn("sync session aborted, server unreachable", "error", err)
		s.reporter.sessionFailed(err)
		return nil, err
	}

	s.reporter.sessionStarted()
	s.logger.Info("sync session started",
		"direction", opts.Direction, "strategy", opts.Strategy)

	session := &models.SyncSession{
		Timestamp: time.Now().UTC(),
		Success:   true,
	}

	// Последовательно, не параллельно: quotes и orders ссылаются
	// на customer id
	for _, kind := range models.KindsInSyncOrder() {
		result, connErr := s.syncEntity(ctx, kind, opts)
		session.Results = append(session.Results, result)
		if !result.Success {
			session.Success = false
		}
		s.reporter.entitySynced(kind, result)
		if connErr != nil {
			// Сервер пропал посреди сессии: оставшиеся типы не трогаем
			session.Success = false
			s.logger.Warn("sync session aborted, connection lost", "kind", kind, "error", connErr)
			break
		}
	}

	s.reporter.sessionCompleted(session)
	s.logger.Info("sync session completed",
		"success", session.Success,
		"conflicts", len(session.Conflicts()),
		"errors", len(session.Errors()))

	return session, nil
}

// SyncEntity синхронизирует один тип сущностей: pull завершается до
// начала push, чтобы push не отправил запись, которую pull этой же
// сессии только что перезаписал с сервера.
func (s *Service) SyncEntity(ctx context.Context, kind models.EntityKind, opts Options) *models.SyncResult {
	result, _ := s.syncEntity(ctx, kind, opts)
	return result
}

// syncEntity выполняет прогон по одному типу. Ненулевая ошибка означает
// потерю соединения: вызывающая сессия обрывает оставшиеся типы.
func (s *Service) syncEntity(ctx context.Context, kind models.EntityKind, opts Options) (*models.SyncResult, error) {
	opts.normalize()

	result := &models.SyncResult{Kind: kind}

	// Будущий курсор снимается до первого fetch: запись, измененная
	// на сервере по ходу сессии, попадет в следующий pull
	startedAt := time.Now().UTC()

	var connErr error
	if opts.Direction == DirectionPull || opts.Direction == DirectionBoth {
		connErr = s.pull(ctx, kind, opts.Strategy, result)
	}
	if connErr == nil && (opts.Direction == DirectionPush || opts.Direction == DirectionBoth) {
		connErr = s.push(ctx, kind, result)
	}

	result.Success = len(result.Errors) == 0

	// Курсор двигается только после чистого прогона,
	// чтобы не потерять записи (at-least-once)
	if result.Success && result.PulledCount+result.PushedCount > 0 {
		if err := s.metadata.SaveSyncCursor(ctx, kind, startedAt); err != nil {
			s.logger.Warn("failed to advance sync cursor", "kind", kind, "error", err)
		}
	}

	s.logger.Info("entity sync finished",
		"kind", kind,
		"pushed", result.PushedCount,
		"pulled", result.PulledCount,
		"conflicts", len(result.Conflicts),
		"errors", len(result.Errors))

	return result, connErr
}

// pull забирает удаленные изменения с последнего курсора и примиряет
// их с локальным хранилищем
func (s *Service) pull(ctx context.Context, kind models.EntityKind, strategy Strategy, result *models.SyncResult) error {
	cursor, err := s.metadata.GetSyncCursor(ctx, kind)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("pull %s: %v", kind, err))
		return nil
	}

	records, err := s.apiClient.FetchUpdatedSince(ctx, kind, cursor)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("pull %s: %v", kind, err))
		if httpclient.IsConnectionError(err) {
			return err
		}
		return nil
	}

	for _, env := range records {
		if err := s.applyPulled(ctx, kind, strategy, env, result); err != nil {
			// Сбой одной записи не прерывает пачку
			result.Errors = append(result.Errors, fmt.Sprintf("pull %s/%s: %v", kind, env.ID, err))
		}
	}

	return nil
}

// applyPulled примиряет одну удаленную запись с локальным состоянием
func (s *Service) applyPulled(ctx context.Context, kind models.EntityKind, strategy Strategy, env api.Record, result *models.SyncResult) error {
	remote, err := models.DecodeRecord(kind, env.Payload)
	if err != nil {
		return err
	}
	if remote.RecordID() != env.ID {
		return fmt.Errorf("payload id %q does not match envelope id %q", remote.RecordID(), env.ID)
	}

	local, err := s.entities.GetEntity(ctx, kind, env.ID)
	if err != nil && !errors.Is(err, storage.ErrEntityNotFound) {
		return err
	}

	var meta *models.SyncMetadata
	if local != nil {
		meta, err = s.metadata.GetMetadata(ctx, kind, env.ID)
		if err != nil && !errors.Is(err, storage.ErrMetadataNotFound) {
			return err
		}
	}

	// Новая запись либо первая синхронизация: удаленная сторона
	// перезаписывает безусловно, конфликт невозможен
	if local == nil || meta == nil {
		if err := s.entities.ApplyRemote(ctx, kind, remote); err != nil {
			return err
		}
		if err := s.metadata.UpsertMetadata(ctx, kind, env.ID, env.Version); err != nil {
			return err
		}
		result.PulledCount++
		return nil
	}

	conflict, err := Detect(kind, local, remote, meta)
	if err != nil {
		return err
	}
	if conflict != nil {
		applied, queued, err := s.resolver.resolveDetected(ctx, strategy, conflict, remote, env.Version)
		if err != nil {
			return err
		}
		if applied {
			result.PulledCount++
		}
		if queued {
			result.Conflicts = append(result.Conflicts, conflict)
		}
		return nil
	}

	if remote.ModifiedAt().After(meta.LastSyncedAt) {
		// Изменилась только удаленная сторона: применяем
		if err := s.entities.ApplyRemote(ctx, kind, remote); err != nil {
			return err
		}
		if err := s.metadata.UpsertMetadata(ctx, kind, env.ID, env.Version); err != nil {
			return err
		}
		result.PulledCount++
		return nil
	}

	// Удаленная запись не новее точки синхронизации: локальная правка,
	// если есть, уйдет в фазе push
	return s.metadata.TrackRemoteVersion(ctx, kind, env.ID, env.Version)
}

// push отправляет локально ожидающие записи
func (s *Service) push(ctx context.Context, kind models.EntityKind, result *models.SyncResult) error {
	pending, err := s.entities.ListPending(ctx, kind)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("push %s: %v", kind, err))
		return nil
	}

	for _, rec := range pending {
		env, err := s.toWire(ctx, kind, rec)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("push %s/%s: %v", kind, rec.RecordID(), err))
			continue
		}

		resp, err := s.apiClient.Upsert(ctx, kind, env)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("push %s/%s: %v", kind, rec.RecordID(), err))
			if httpclient.IsConnectionError(err) {
				return err
			}
			// Сбой одной записи: фиксируем и продолжаем со следующей
			continue
		}

		if err := s.metadata.UpsertMetadata(ctx, kind, rec.RecordID(), resp.Version); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("push %s/%s: %v", kind, rec.RecordID(), err))
			continue
		}
		result.PushedCount++
	}

	return nil
}

// toWire упаковывает запись в транспортный конверт
func (s *Service) toWire(ctx context.Context, kind models.EntityKind, rec models.Record) (api.Record, error) {
	payload, err := models.EncodeRecord(rec)
	if err != nil {
		return api.Record{}, err
	}

	version := int64(1)
	if meta, err := s.metadata.GetMetadata(ctx, kind, rec.RecordID()); err == nil {
		version = meta.LocalVersion
	}

	env := api.Record{
		ID:        rec.RecordID(),
		Version:   version,
		UpdatedAt: rec.ModifiedAt(),
		Payload:   payload,
	}
	// Сервер видит soft delete и в конверте, без разбора payload
	env.DeletedAt = rec.DeletedTime()
	return env, nil
}
