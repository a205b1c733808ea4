package storage

import (
	"context"

	"github.com/fieldcrm/fieldcrm/internal/models"
)

//go:generate moq -out entities_mock.go . EntityStorage

// EntityStorage defines the local store for entity records.
// All writes are per-record atomic; there is no multi-record transaction
// spanning a pull or push batch.
type EntityStorage interface {
	// GetEntity retrieves an entity by id.
	// Returns ErrEntityNotFound if it doesn't exist.
	GetEntity(ctx context.Context, kind models.EntityKind, id string) (models.Record, error)

	// ListEntities returns all records of a kind, including soft-deleted ones
	ListEntities(ctx context.Context, kind models.EntityKind) ([]models.Record, error)

	// ListPending returns records awaiting a push: records whose sync
	// metadata is missing or marked pending
	ListPending(ctx context.Context, kind models.EntityKind) ([]models.Record, error)

	// InsertEntity stores a new local record
	InsertEntity(ctx context.Context, kind models.EntityKind, rec models.Record) error

	// UpdateEntity replaces a local record (full replace except id),
	// stamps a fresh updated_at and marks the record pending
	UpdateEntity(ctx context.Context, kind models.EntityKind, rec models.Record) error

	// ApplyRemote writes a remote snapshot verbatim: no timestamp refresh,
	// no pending mark. Used by the sync engine only.
	ApplyRemote(ctx context.Context, kind models.EntityKind, rec models.Record) error
}
