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

// GetEntity retrieves an entity record by id
func (s *Storage) GetEntity(ctx context.Context, kind models.EntityKind, id string) (models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(kind)
	if err != nil {
		return nil, err
	}

	var rec models.Record

	err = s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketName).Get([]byte(id))
		if data == nil {
			return storage.ErrEntityNotFound
		}

		rec, err = models.DecodeRecord(kind, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListEntities returns all records of a kind, including soft-deleted ones
func (s *Storage) ListEntities(ctx context.Context, kind models.EntityKind) ([]models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(kind)
	if err != nil {
		return nil, err
	}

	var records []models.Record

	err = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			rec, err := models.DecodeRecord(kind, v)
			if err != nil {
				return fmt.Errorf("failed to decode entity %s: %w", k, err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	return records, nil
}

// ListPending returns records awaiting a push: metadata missing or pending.
// Каждое локальное изменение помечает строку метаданных pending, поэтому
// проверка статуса покрывает и случай localVersion > remoteVersion.
func (s *Storage) ListPending(ctx context.Context, kind models.EntityKind) ([]models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(kind)
	if err != nil {
		return nil, err
	}

	var records []models.Record

	err = s.db.View(func(tx *bbolt.Tx) error {
		metaBucket := tx.Bucket(bucketMetadata)

		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			metaData := metaBucket.Get(metadataKey(kind, string(k)))
			if metaData != nil {
				var meta models.SyncMetadata
				if err := json.Unmarshal(metaData, &meta); err != nil {
					return fmt.Errorf("failed to decode metadata for %s: %w", k, err)
				}
				// Конфликтные записи не отправляются до разрешения,
				// синхронизированные не отправляются повторно
				if meta.SyncStatus != models.StatusPending {
					return nil
				}
			}

			rec, err := models.DecodeRecord(kind, v)
			if err != nil {
				return fmt.Errorf("failed to decode entity %s: %w", k, err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending %s: %w", kind, err)
	}

	return records, nil
}

// InsertEntity stores a new local record. The record stays pending until
// its first successful push creates sync metadata.
func (s *Storage) InsertEntity(ctx context.Context, kind models.EntityKind, rec models.Record) error {
	if rec.RecordID() == "" {
		return fmt.Errorf("entity id cannot be empty")
	}
	if rec.ModifiedAt().IsZero() {
		rec.Touch(time.Now().UTC())
	}
	return s.putEntity(kind, rec)
}

// UpdateEntity replaces a local record, stamps a fresh updated_at and
// marks it pending for the next push
func (s *Storage) UpdateEntity(ctx context.Context, kind models.EntityKind, rec models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(kind)
	if err != nil {
		return err
	}

	rec.Touch(time.Now().UTC())

	data, err := models.EncodeRecord(rec)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketName).Get([]byte(rec.RecordID())) == nil {
			return storage.ErrEntityNotFound
		}
		if err := tx.Bucket(bucketName).Put([]byte(rec.RecordID()), data); err != nil {
			return fmt.Errorf("failed to save entity: %w", err)
		}

		// Локальная правка: поднимаем localVersion и помечаем pending
		return markEdited(tx, kind, rec.RecordID())
	})
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			return err
		}
		return fmt.Errorf("update transaction failed: %w", err)
	}

	return nil
}

// ApplyRemote writes a remote snapshot verbatim. No timestamp refresh and
// no pending mark: the record equals the remote side exactly.
func (s *Storage) ApplyRemote(ctx context.Context, kind models.EntityKind, rec models.Record) error {
	return s.putEntity(kind, rec)
}

// putEntity сохраняет запись как есть
func (s *Storage) putEntity(kind models.EntityKind, rec models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(kind)
	if err != nil {
		return err
	}

	data, err := models.EncodeRecord(rec)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(rec.RecordID()), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save entity %s/%s: %w", kind, rec.RecordID(), err)
	}

	return nil
}

// markEdited поднимает счетчик локальных правок в существующей строке
// метаданных. Отсутствие строки — не ошибка: запись без метаданных
// и так считается pending.
func markEdited(tx *bbolt.Tx, kind models.EntityKind, id string) error {
	bucket := tx.Bucket(bucketMetadata)
	key := metadataKey(kind, id)

	data := bucket.Get(key)
	if data == nil {
		return nil
	}

	var meta models.SyncMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("failed to decode metadata: %w", err)
	}

	meta.LocalVersion++
	if meta.SyncStatus != models.StatusConflict {
		meta.SyncStatus = models.StatusPending
	}

	updated, err := json.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	return bucket.Put(key, updated)
}
