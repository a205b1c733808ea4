package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	"github.com/fieldcrm/fieldcrm/internal/models"
)

// Resolution описывает решение по отложенному конфликту.
// Merged имеет приоритет: непустой payload применяется как уже слитая
// запись; иначе Keep выбирает сторону.
type Resolution struct {
	Merged json.RawMessage
	Keep   Strategy // StrategyLocalWins или StrategyRemoteWins
}

// Resolver применяет стратегии разрешения конфликтов. При стратегии
// manual данные не трогаются: конфликт сохраняется в журнал и ждет
// явного решения через ResolveConflict.
type Resolver struct {
	entities  storage.EntityStorage
	metadata  storage.MetadataStorage
	conflicts storage.ConflictStorage
	reporter  *Reporter
	logger    *slog.Logger
}

// NewResolver creates a new conflict resolver
func NewResolver(entities storage.EntityStorage, metadata storage.MetadataStorage, conflicts storage.ConflictStorage, reporter *Reporter, logger *slog.Logger) *Resolver {
	return &Resolver{
		entities:  entities,
		metadata:  metadata,
		conflicts: conflicts,
		reporter:  reporter,
		logger:    logger,
	}
}

// resolveDetected обрабатывает конфликт, найденный во время pull.
// Возвращает (applied, queued): applied — удаленный снапшот записан
// локально; queued — конфликт отложен в журнал.
func (r *Resolver) resolveDetected(ctx context.Context, strategy Strategy, conflict *models.SyncConflict, remote models.Record, remoteVersion int64) (bool, bool, error) {
	kind := conflict.Kind
	id := conflict.EntityID

	switch strategy {
	case StrategyRemoteWins:
		if err := r.entities.ApplyRemote(ctx, kind, remote); err != nil {
			return false, false, fmt.Errorf("failed to apply remote snapshot: %w", err)
		}
		if err := r.metadata.UpsertMetadata(ctx, kind, id, remoteVersion); err != nil {
			return false, false, fmt.Errorf("failed to update metadata: %w", err)
		}
		r.reporter.conflictResolved()
		r.logger.Debug("conflict resolved, remote wins", "kind", kind, "entity_id", id)
		return true, false, nil

	case StrategyLocalWins:
		// Локальная запись не трогается; фиксируем только то,
		// что удаленная версия была увидена
		if err := r.metadata.TrackRemoteVersion(ctx, kind, id, remoteVersion); err != nil {
			return false, false, fmt.Errorf("failed to track remote version: %w", err)
		}
		r.reporter.conflictResolved()
		r.logger.Debug("conflict resolved, local wins", "kind", kind, "entity_id", id)
		return false, false, nil

	case StrategyManual:
		if err := r.conflicts.SaveConflict(ctx, conflict); err != nil {
			return false, false, fmt.Errorf("failed to save conflict: %w", err)
		}
		if err := r.metadata.MarkConflict(ctx, kind, id, remoteVersion, conflict.RemoteData); err != nil {
			return false, false, fmt.Errorf("failed to mark conflict: %w", err)
		}
		r.logger.Info("conflict queued for manual resolution",
			"kind", kind, "entity_id", id, "conflict_id", conflict.ID)
		return false, true, nil
	}

	return false, false, fmt.Errorf("unknown conflict resolution strategy %q", strategy)
}

// ResolveConflict применяет решение к отложенному конфликту.
// "local" оставляет данные нетронутыми, "remote" применяет сохраненный
// удаленный снапшот, merged payload применяется как есть. В любом случае
// конфликт помечается разрешенным и остается в журнале.
func (r *Resolver) ResolveConflict(ctx context.Context, id string, res Resolution) (*models.SyncConflict, error) {
	conflict, err := r.conflicts.GetConflict(ctx, id)
	if err != nil {
		return nil, err
	}
	if conflict.Resolved {
		return nil, fmt.Errorf("conflict %s is already resolved", id)
	}

	kind := conflict.Kind
	entityID := conflict.EntityID

	var resolution string
	switch {
	case len(res.Merged) > 0:
		resolution = "merged"
		merged, err := models.DecodeRecord(kind, res.Merged)
		if err != nil {
			return nil, fmt.Errorf("invalid merged payload: %w", err)
		}
		if merged.RecordID() != entityID {
			return nil, fmt.Errorf("merged payload id %q does not match conflict entity %q", merged.RecordID(), entityID)
		}
		// Слитая запись применяется дословно и уходит на сервер
		// при следующем push
		if err := r.entities.ApplyRemote(ctx, kind, merged); err != nil {
			return nil, fmt.Errorf("failed to apply merged record: %w", err)
		}
		if err := r.metadata.MarkPending(ctx, kind, entityID); err != nil {
			return nil, fmt.Errorf("failed to mark pending: %w", err)
		}

	case res.Keep == StrategyLocalWins:
		resolution = "local"
		// Данные не трогаются; локальная версия уйдет следующим push
		if err := r.metadata.MarkPending(ctx, kind, entityID); err != nil {
			return nil, fmt.Errorf("failed to mark pending: %w", err)
		}

	case res.Keep == StrategyRemoteWins:
		resolution = "remote"
		remote, err := conflict.RemoteData.Decode()
		if err != nil {
			return nil, fmt.Errorf("failed to decode remote snapshot: %w", err)
		}
		if err := r.entities.ApplyRemote(ctx, kind, remote); err != nil {
			return nil, fmt.Errorf("failed to apply remote snapshot: %w", err)
		}

		remoteVersion := int64(0)
		if meta, err := r.metadata.GetMetadata(ctx, kind, entityID); err == nil {
			remoteVersion = meta.RemoteVersion
		}
		if err := r.metadata.UpsertMetadata(ctx, kind, entityID, remoteVersion); err != nil {
			return nil, fmt.Errorf("failed to update metadata: %w", err)
		}

	default:
		return nil, fmt.Errorf("invalid resolution: keep must be %q or %q, or a merged payload must be given",
			StrategyLocalWins, StrategyRemoteWins)
	}

	now := time.Now().UTC()
	conflict.Resolved = true
	conflict.Resolution = resolution
	conflict.ResolvedAt = &now
	if err := r.conflicts.SaveConflict(ctx, conflict); err != nil {
		return nil, fmt.Errorf("failed to persist resolution: %w", err)
	}

	r.reporter.conflictResolved()
	r.logger.Info("conflict resolved",
		"conflict_id", id, "kind", kind, "entity_id", entityID, "resolution", resolution)

	return conflict, nil
}
