package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/internal/server/storage"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func envelope(t *testing.T, rec models.Record) api.Record {
	t.Helper()

	payload, err := json.Marshal(rec)
	require.NoError(t, err)
	return api.Record{
		ID:        rec.RecordID(),
		UpdatedAt: rec.ModifiedAt(),
		DeletedAt: rec.DeletedTime(),
		Payload:   payload,
	}
}

func TestUpsertRecord_AssignsVersions(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := envelope(t, &models.Customer{ID: "c1", Name: "Acme", UpdatedAt: time.Now().UTC()})

	version, err := s.UpsertRecord(ctx, models.KindCustomer, rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Версию назначает сервер, присланная клиентом игнорируется
	rec.Version = 99
	version, err = s.UpsertRecord(ctx, models.KindCustomer, rec)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	got, err := s.GetRecord(ctx, models.KindCustomer, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}

func TestGetRecord_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	updatedAt := time.Now().UTC().Truncate(time.Microsecond)
	customer := &models.Customer{ID: "c1", Name: "Acme", Email: "sales@acme.example", UpdatedAt: updatedAt}
	_, err := s.UpsertRecord(ctx, models.KindCustomer, envelope(t, customer))
	require.NoError(t, err)

	got, err := s.GetRecord(ctx, models.KindCustomer, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
	assert.True(t, got.UpdatedAt.Equal(updatedAt))
	assert.Nil(t, got.DeletedAt)

	decoded, err := models.DecodeRecord(models.KindCustomer, got.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Acme", decoded.(*models.Customer).Name)
}

func TestGetRecord_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRecord(context.Background(), models.KindCustomer, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestTables_KindsAreIsolated(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.UpsertRecord(ctx, models.KindQuote, envelope(t, &models.Quote{
		ID: "same-id", CustomerID: "c1", Status: "draft", UpdatedAt: time.Now().UTC(),
	}))
	require.NoError(t, err)

	_, err = s.GetRecord(ctx, models.KindOrder, "same-id")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestListUpdatedSince(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i, id := range []string{"c1", "c2", "c3"} {
		_, err := s.UpsertRecord(ctx, models.KindCustomer, envelope(t, &models.Customer{
			ID: id, Name: id, UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
		require.NoError(t, err)
	}

	// nil курсор: все записи в порядке updated_at
	all, err := s.ListUpdatedSince(ctx, models.KindCustomer, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, "c3", all[2].ID)

	// Строго "после": запись с updated_at равным курсору не возвращается
	cutoff := base.Add(time.Minute)
	newer, err := s.ListUpdatedSince(ctx, models.KindCustomer, &cutoff)
	require.NoError(t, err)
	require.Len(t, newer, 1)
	assert.Equal(t, "c3", newer[0].ID)

	future := time.Now().UTC()
	none, err := s.ListUpdatedSince(ctx, models.KindCustomer, &future)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListUpdatedSince_IncludesSoftDeleted(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	deletedAt := time.Now().UTC()
	_, err := s.UpsertRecord(ctx, models.KindOrder, envelope(t, &models.Order{
		ID: "o1", CustomerID: "c1", Status: "cancelled", UpdatedAt: deletedAt, DeletedAt: &deletedAt,
	}))
	require.NoError(t, err)

	records, err := s.ListUpdatedSince(ctx, models.KindOrder, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].DeletedAt)
	assert.True(t, records[0].DeletedAt.Equal(deletedAt))
}

func TestUpsertRecord_UnknownKind(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.UpsertRecord(context.Background(), models.EntityKind("invoices"), api.Record{ID: "x", Payload: []byte("{}")})
	assert.Error(t, err)
}
