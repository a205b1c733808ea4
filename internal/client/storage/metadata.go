package storage

import (
	"context"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines the per-record sync bookkeeping store.
// Rows are unique per (kind, entity id), created on first successful
// pull/push and never deleted; last_synced_at never decreases.
type MetadataStorage interface {
	// GetMetadata retrieves the sync metadata for one entity.
	// Returns ErrMetadataNotFound if no row exists yet.
	GetMetadata(ctx context.Context, kind models.EntityKind, id string) (*models.SyncMetadata, error)

	// UpsertMetadata creates or updates the row after a completed
	// pull/push: sets the remote version, marks the row synced, clears
	// conflict data and advances last_synced_at to now
	UpsertMetadata(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64) error

	// MarkConflict flags the row as conflicted and stores the remote
	// snapshot. Advances remote version tracking but not last_synced_at,
	// so the conflict survives until resolved.
	MarkConflict(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64, remote models.Snapshot) error

	// MarkPending flags the row for the next push and clears any
	// conflict data. Used after resolving a conflict in favor of local
	// or merged data.
	MarkPending(ctx context.Context, kind models.EntityKind, id string) error

	// TrackRemoteVersion records the remote version that was observed
	// without touching status or timestamps (local-wins resolution)
	TrackRemoteVersion(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64) error

	// GetSyncCursor returns the pull cursor for a kind: the maximum
	// last_synced_at previously observed. nil means "never synced".
	GetSyncCursor(ctx context.Context, kind models.EntityKind) (*time.Time, error)

	// SaveSyncCursor advances the pull cursor for a kind
	SaveSyncCursor(ctx context.Context, kind models.EntityKind, cursor time.Time) error
}
