package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	"github.com/fieldcrm/fieldcrm/internal/models"
)

// fakeStore — хранилище в памяти поверх сгенерированных моков,
// повторяющее семантику boltdb реализации в объеме, нужном тестам
type fakeStore struct {
	entities  map[string]models.Record
	meta      map[string]*models.SyncMetadata
	conflicts map[string]*models.SyncConflict
	cursors   map[models.EntityKind]time.Time

	Entities  *storage.EntityStorageMock
	Metadata  *storage.MetadataStorageMock
	Conflicts *storage.ConflictStorageMock
}

func key(kind models.EntityKind, id string) string {
	return fmt.Sprintf("%s/%s", kind, id)
}

func newFakeStore() *fakeStore {
	f := &fakeStore{
		entities:  make(map[string]models.Record),
		meta:      make(map[string]*models.SyncMetadata),
		conflicts: make(map[string]*models.SyncConflict),
		cursors:   make(map[models.EntityKind]time.Time),
	}

	f.Entities = &storage.EntityStorageMock{
		GetEntityFunc: func(ctx context.Context, kind models.EntityKind, id string) (models.Record, error) {
			rec, ok := f.entities[key(kind, id)]
			if !ok {
				return nil, storage.ErrEntityNotFound
			}
			return rec, nil
		},
		ListEntitiesFunc: func(ctx context.Context, kind models.EntityKind) ([]models.Record, error) {
			var out []models.Record
			for k, rec := range f.entities {
				if strings.HasPrefix(k, string(kind)+"/") {
					out = append(out, rec)
				}
			}
			return out, nil
		},
		ListPendingFunc: func(ctx context.Context, kind models.EntityKind) ([]models.Record, error) {
			var out []models.Record
			for k, rec := range f.entities {
				if !strings.HasPrefix(k, string(kind)+"/") {
					continue
				}
				meta, ok := f.meta[k]
				if !ok || meta.SyncStatus == models.StatusPending {
					out = append(out, rec)
				}
			}
			return out, nil
		},
		InsertEntityFunc: func(ctx context.Context, kind models.EntityKind, rec models.Record) error {
			f.entities[key(kind, rec.RecordID())] = rec
			return nil
		},
		UpdateEntityFunc: func(ctx context.Context, kind models.EntityKind, rec models.Record) error {
			rec.Touch(time.Now().UTC())
			f.entities[key(kind, rec.RecordID())] = rec
			if meta, ok := f.meta[key(kind, rec.RecordID())]; ok {
				meta.LocalVersion++
				meta.SyncStatus = models.StatusPending
			}
			return nil
		},
		ApplyRemoteFunc: func(ctx context.Context, kind models.EntityKind, rec models.Record) error {
			f.entities[key(kind, rec.RecordID())] = rec
			return nil
		},
	}

	f.Metadata = &storage.MetadataStorageMock{
		GetMetadataFunc: func(ctx context.Context, kind models.EntityKind, id string) (*models.SyncMetadata, error) {
			meta, ok := f.meta[key(kind, id)]
			if !ok {
				return nil, storage.ErrMetadataNotFound
			}
			return meta, nil
		},
		UpsertMetadataFunc: func(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64) error {
			meta := f.ensureMeta(kind, id)
			meta.RemoteVersion = remoteVersion
			meta.SyncStatus = models.StatusSynced
			meta.ConflictData = nil
			if now := time.Now().UTC(); now.After(meta.LastSyncedAt) {
				meta.LastSyncedAt = now
			}
			return nil
		},
		MarkConflictFunc: func(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64, remote models.Snapshot) error {
			meta := f.ensureMeta(kind, id)
			meta.RemoteVersion = remoteVersion
			meta.SyncStatus = models.StatusConflict
			meta.ConflictData = &remote
			return nil
		},
		MarkPendingFunc: func(ctx context.Context, kind models.EntityKind, id string) error {
			meta := f.ensureMeta(kind, id)
			meta.SyncStatus = models.StatusPending
			meta.ConflictData = nil
			return nil
		},
		TrackRemoteVersionFunc: func(ctx context.Context, kind models.EntityKind, id string, remoteVersion int64) error {
			meta := f.ensureMeta(kind, id)
			meta.RemoteVersion = remoteVersion
			return nil
		},
		GetSyncCursorFunc: func(ctx context.Context, kind models.EntityKind) (*time.Time, error) {
			cursor, ok := f.cursors[kind]
			if !ok {
				return nil, nil
			}
			return &cursor, nil
		},
		SaveSyncCursorFunc: func(ctx context.Context, kind models.EntityKind, cursor time.Time) error {
			if prev, ok := f.cursors[kind]; !ok || cursor.After(prev) {
				f.cursors[kind] = cursor
			}
			return nil
		},
	}

	f.Conflicts = &storage.ConflictStorageMock{
		SaveConflictFunc: func(ctx context.Context, conflict *models.SyncConflict) error {
			cp := *conflict
			f.conflicts[conflict.ID] = &cp
			return nil
		},
		GetConflictFunc: func(ctx context.Context, id string) (*models.SyncConflict, error) {
			conflict, ok := f.conflicts[id]
			if !ok {
				return nil, storage.ErrConflictNotFound
			}
			cp := *conflict
			return &cp, nil
		},
		ListPendingConflictsFunc: func(ctx context.Context) ([]*models.SyncConflict, error) {
			var out []*models.SyncConflict
			for _, c := range f.conflicts {
				if !c.Resolved {
					cp := *c
					out = append(out, &cp)
				}
			}
			return out, nil
		},
	}

	return f
}

func (f *fakeStore) ensureMeta(kind models.EntityKind, id string) *models.SyncMetadata {
	k := key(kind, id)
	meta, ok := f.meta[k]
	if !ok {
		meta = &models.SyncMetadata{
			Kind:         kind,
			EntityID:     id,
			LocalVersion: 1,
		}
		f.meta[k] = meta
	}
	return meta
}

// seedSynced кладет запись и помечает ее синхронизированной на момент at
func (f *fakeStore) seedSynced(kind models.EntityKind, rec models.Record, remoteVersion int64, at time.Time) {
	f.entities[key(kind, rec.RecordID())] = rec
	f.meta[key(kind, rec.RecordID())] = &models.SyncMetadata{
		Kind:          kind,
		EntityID:      rec.RecordID(),
		SyncStatus:    models.StatusSynced,
		LocalVersion:  1,
		RemoteVersion: remoteVersion,
		LastSyncedAt:  at,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestResolver(t *testing.T, f *fakeStore) *Resolver {
	t.Helper()
	return NewResolver(f.Entities, f.Metadata, f.Conflicts, NewReporter(), testLogger())
}
