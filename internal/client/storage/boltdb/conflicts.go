package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/fieldcrm/fieldcrm/internal/client/storage"
	"github.com/fieldcrm/fieldcrm/internal/models"
)

// SaveConflict creates or replaces a conflict row by id
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.SyncConflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if conflict.ID == "" {
		return fmt.Errorf("conflict id cannot be empty")
	}

	data, err := json.Marshal(conflict)
	if err != nil {
		return fmt.Errorf("failed to encode conflict: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).Put([]byte(conflict.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save conflict %s: %w", conflict.ID, err)
	}

	return nil
}

// GetConflict retrieves a conflict row by id
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflict *models.SyncConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketConflicts).Get([]byte(id))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		conflict = &models.SyncConflict{}
		if err := json.Unmarshal(data, conflict); err != nil {
			return fmt.Errorf("failed to decode conflict: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return conflict, nil
}

// ListPendingConflicts returns all unresolved conflict rows
func (s *Storage) ListPendingConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflicts []*models.SyncConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).ForEach(func(k, v []byte) error {
			var conflict models.SyncConflict
			if err := json.Unmarshal(v, &conflict); err != nil {
				return fmt.Errorf("failed to decode conflict %s: %w", k, err)
			}
			if !conflict.Resolved {
				conflicts = append(conflicts, &conflict)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending conflicts: %w", err)
	}

	return conflicts, nil
}
