package storage

import "errors"

// Common client storage errors
var (
	// ErrEntityNotFound indicates that the entity record was not found
	ErrEntityNotFound = errors.New("entity not found")

	// ErrMetadataNotFound indicates that no sync metadata exists for the entity
	ErrMetadataNotFound = errors.New("sync metadata not found")

	// ErrConflictNotFound indicates that the conflict row was not found
	ErrConflictNotFound = errors.New("sync conflict not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
