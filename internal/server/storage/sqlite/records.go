package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/internal/server/storage"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

// tableFor возвращает имя таблицы для типа сущности.
// Закрытый switch: имя таблицы никогда не строится из входной строки.
func tableFor(kind models.EntityKind) (string, error) {
	switch kind {
	case models.KindCustomer:
		return "customers", nil
	case models.KindQuote:
		return "quotes", nil
	case models.KindOrder:
		return "orders", nil
	}
	return "", fmt.Errorf("unknown entity kind %q", kind)
}

// GetRecord retrieves one record envelope by id
func (s *Storage) GetRecord(ctx context.Context, kind models.EntityKind, id string) (*api.Record, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, version, updated_at, deleted_at, payload
		FROM %s
		WHERE id = ?
	`, table)

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return rec, nil
}

// ListUpdatedSince returns records modified strictly after since in
// updated_at order. Soft-deleted rows are included: clients need to see
// deletions to propagate them.
func (s *Storage) ListUpdatedSince(ctx context.Context, kind models.EntityKind, since *time.Time) ([]api.Record, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, version, updated_at, deleted_at, payload
		FROM %s
		WHERE updated_at > ?
		ORDER BY updated_at ASC
	`, table)

	cutoff := int64(0)
	if since != nil {
		cutoff = since.UnixNano()
	}

	rows, err := s.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []api.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", kind, err)
	}

	return records, nil
}

// UpsertRecord creates or replaces a record. The server owns the version
// counter: a fresh record gets 1, an existing one previous+1, whatever
// version the client sent.
func (s *Storage) UpsertRecord(ctx context.Context, kind models.EntityKind, rec api.Record) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current int64
	query := fmt.Sprintf(`SELECT version FROM %s WHERE id = ?`, table)
	err = tx.QueryRowContext(ctx, query, rec.ID).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to read current version: %w", err)
	}

	version := current + 1

	var deletedAt sql.NullInt64
	if rec.DeletedAt != nil {
		deletedAt = sql.NullInt64{Int64: rec.DeletedAt.UnixNano(), Valid: true}
	}

	query = fmt.Sprintf(`
		INSERT INTO %s (id, version, updated_at, deleted_at, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			version = excluded.version,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at,
			payload = excluded.payload
	`, table)

	_, err = tx.ExecContext(ctx, query,
		rec.ID,
		version,
		rec.UpdatedAt.UnixNano(),
		deletedAt,
		[]byte(rec.Payload),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit upsert: %w", err)
	}

	return version, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*api.Record, error) {
	var rec api.Record
	var updatedAt int64
	var deletedAt sql.NullInt64
	var payload []byte

	if err := row.Scan(&rec.ID, &rec.Version, &updatedAt, &deletedAt, &payload); err != nil {
		return nil, err
	}

	rec.UpdatedAt = time.Unix(0, updatedAt).UTC()
	if deletedAt.Valid {
		t := time.Unix(0, deletedAt.Int64).UTC()
		rec.DeletedAt = &t
	}
	rec.Payload = payload

	return &rec, nil
}
