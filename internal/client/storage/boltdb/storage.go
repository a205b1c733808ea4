package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/fieldcrm/fieldcrm/internal/models"
)

var (
	// BoltDB bucket names
	bucketCustomers = []byte("customers")
	bucketQuotes    = []byte("quotes")
	bucketOrders    = []byte("orders")
	bucketMetadata  = []byte("sync_metadata")
	bucketConflicts = []byte("sync_conflicts")
	bucketCursors   = []byte("sync_cursors")
)

// Storage represents the BoltDB local store for the client.
// It implements storage.EntityStorage, storage.MetadataStorage and
// storage.ConflictStorage.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	buckets := [][]byte{
		bucketCustomers,
		bucketQuotes,
		bucketOrders,
		bucketMetadata,
		bucketConflicts,
		bucketCursors,
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// entityBucket возвращает bucket для типа сущности.
// Закрытый switch: имя bucket никогда не строится из входной строки.
func entityBucket(kind models.EntityKind) ([]byte, error) {
	switch kind {
	case models.KindCustomer:
		return bucketCustomers, nil
	case models.KindQuote:
		return bucketQuotes, nil
	case models.KindOrder:
		return bucketOrders, nil
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

// metadataKey ключ строки метаданных в общем bucket
func metadataKey(kind models.EntityKind, id string) []byte {
	return []byte(string(kind) + "/" + id)
}
