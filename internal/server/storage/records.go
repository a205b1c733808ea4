package storage

import (
	"context"
	"errors"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

// ErrRecordNotFound возвращается, когда запись не существует
var ErrRecordNotFound = errors.New("record not found")

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines the server-side store: the system-of-record for
// entity records. One table per entity kind; soft-deleted rows stay in
// place and keep appearing in ListUpdatedSince.
type RecordStorage interface {
	// GetRecord retrieves one record envelope by id.
	// Returns ErrRecordNotFound if it doesn't exist.
	GetRecord(ctx context.Context, kind models.EntityKind, id string) (*api.Record, error)

	// ListUpdatedSince returns records modified strictly after since,
	// in updated_at order. nil returns every record of the kind.
	ListUpdatedSince(ctx context.Context, kind models.EntityKind, since *time.Time) ([]api.Record, error)

	// UpsertRecord creates or replaces a record and returns the new
	// server-assigned version: 1 for a fresh record, previous+1 otherwise.
	UpsertRecord(ctx context.Context, kind models.EntityKind, rec api.Record) (int64, error)
}
