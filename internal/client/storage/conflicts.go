package storage

import (
	"context"

	"github.com/fieldcrm/fieldcrm/internal/models"
)

//go:generate moq -out conflicts_mock.go . ConflictStorage

// ConflictStorage defines the conflict log. Rows are appended when a
// manual-strategy conflict is detected and marked resolved in place;
// they are never deleted.
type ConflictStorage interface {
	// SaveConflict creates or replaces a conflict row by id
	SaveConflict(ctx context.Context, conflict *models.SyncConflict) error

	// GetConflict retrieves a conflict row by id.
	// Returns ErrConflictNotFound if it doesn't exist.
	GetConflict(ctx context.Context, id string) (*models.SyncConflict, error)

	// ListPendingConflicts returns all unresolved conflict rows
	ListPendingConflicts(ctx context.Context) ([]*models.SyncConflict, error)
}
