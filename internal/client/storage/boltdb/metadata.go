package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	"github.com/fieldcrm/fieldcrm/internal/models"
)

// GetMetadata retrieves the sync metadata row for one entity
func (s *Storage) GetMetadata(ctx context.Context, kind models.EntityKind, id string) (*models.SyncMetadata, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var meta *models.SyncMetadata

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get(metadataKey(kind, id))
		if data == nil {
			return storage.ErrMetadataNotFound
		}

		meta = &models.SyncMetadata{}
		if err := json.Unmarshal(data, meta); err != nil {
			return fmt.Errorf("failed to decode metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return meta, nil
}

// UpsertMetadata creates or updates the row after a completed pull/push.
// Always sets sync status to synced and advances last_synced_at; the
// timestamp never decreases over the lifetime of the row.
func (s *Storage) UpsertMetadata(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64) error {
	return s.mutateMetadata(kind, id, true, func(meta *models.SyncMetadata) {
		meta.RemoteVersion = remoteVersion
		meta.SyncStatus = models.StatusSynced
		meta.ConflictData = nil

		// last_synced_at монотонно не убывает
		now := time.Now().UTC()
		if now.After(meta.LastSyncedAt) {
			meta.LastSyncedAt = now
		}
	})
}

// MarkConflict flags the row as conflicted and stores the remote snapshot.
// last_synced_at is left untouched so the conflict window stays open for
// re-detection until the conflict is resolved.
func (s *Storage) MarkConflict(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64, remote models.Snapshot) error {
	return s.mutateMetadata(kind, id, false, func(meta *models.SyncMetadata) {
		meta.RemoteVersion = remoteVersion
		meta.SyncStatus = models.StatusConflict
		meta.ConflictData = &remote
	})
}

// MarkPending flags the row for the next push and clears conflict data
func (s *Storage) MarkPending(ctx context.Context, kind models.EntityKind, id string) error {
	return s.mutateMetadata(kind, id, false, func(meta *models.SyncMetadata) {
		meta.SyncStatus = models.StatusPending
		meta.ConflictData = nil
	})
}

// TrackRemoteVersion records the observed remote version without touching
// status or timestamps
func (s *Storage) TrackRemoteVersion(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64) error {
	return s.mutateMetadata(kind, id, false, func(meta *models.SyncMetadata) {
		meta.RemoteVersion = remoteVersion
	})
}

// mutateMetadata читает-изменяет-записывает строку метаданных в одной
// транзакции. createIfMissing создает строку с localVersion = 1.
func (s *Storage) mutateMetadata(kind models.EntityKind, id string, createIfMissing bool, mutate func(*models.SyncMetadata)) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		key := metadataKey(kind, id)

		meta := &models.SyncMetadata{}
		data := bucket.Get(key)
		switch {
		case data != nil:
			if err := json.Unmarshal(data, meta); err != nil {
				return fmt.Errorf("failed to decode metadata: %w", err)
			}
		case createIfMissing:
			meta.Kind = kind
			meta.EntityID = id
			meta.LocalVersion = 1
		default:
			return storage.ErrMetadataNotFound
		}

		mutate(meta)

		updated, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
		return bucket.Put(key, updated)
	})
	if err != nil {
		if errors.Is(err, storage.ErrMetadataNotFound) {
			return err
		}
		return fmt.Errorf("metadata transaction failed: %w", err)
	}

	return nil
}

// GetSyncCursor returns the pull cursor for a kind.
// nil means the kind has never been synced.
func (s *Storage) GetSyncCursor(ctx context.Context, kind models.EntityKind) (*time.Time, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var cursor *time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCursors).Get([]byte(kind))
		if data == nil {
			return nil
		}

		t, err := time.Parse(time.RFC3339Nano, string(data))
		if err != nil {
			return fmt.Errorf("failed to parse sync cursor: %w", err)
		}
		cursor = &t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sync cursor for %s: %w", kind, err)
	}

	return cursor, nil
}

// SaveSyncCursor advances the pull cursor for a kind. A cursor older than
// the stored one is ignored: the cursor is monotonic like last_synced_at.
func (s *Storage) SaveSyncCursor(ctx context.Context, kind models.EntityKind, cursor time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCursors)

		if data := bucket.Get([]byte(kind)); data != nil {
			existing, err := time.Parse(time.RFC3339Nano, string(data))
			if err == nil && !cursor.After(existing) {
				return nil
			}
		}

		return bucket.Put([]byte(kind), []byte(cursor.UTC().Format(time.RFC3339Nano)))
	})
	if err != nil {
		return fmt.Errorf("failed to save sync cursor for %s: %w", kind, err)
	}

	return nil
}
