package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/internal/server/storage"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

func newRecordsHandler(t *testing.T, mock *storage.RecordStorageMock) *RecordsHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRecordsHandler(logger, mock)
}

// customerEnvelope собирает валидный конверт с payload клиента
func customerEnvelope(t *testing.T, id string, updatedAt time.Time) api.Record {
	t.Helper()

	customer := &models.Customer{
		ID:        id,
		Name:      "Acme Corp",
		Email:     "sales@acme.test",
		UpdatedAt: updatedAt,
	}
	payload, err := models.EncodeRecord(customer)
	require.NoError(t, err)

	return api.Record{
		ID:        id,
		UpdatedAt: updatedAt,
		Payload:   payload,
	}
}

func TestRecordsHandler_List(t *testing.T) {
	now := time.Now().UTC()

	mock := &storage.RecordStorageMock{
		ListUpdatedSinceFunc: func(ctx context.Context, kind models.EntityKind, since *time.Time) ([]api.Record, error) {
			return []api.Record{
				{ID: "cust-1", UpdatedAt: now, Version: 3},
			}, nil
		},
	}
	handler := newRecordsHandler(t, mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindCustomer)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.FetchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "cust-1", resp.Records[0].ID)
	assert.Equal(t, int64(3), resp.Records[0].Version)

	// Без updatedSince хранилище получает nil — полная выборка
	calls := mock.ListUpdatedSinceCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.KindCustomer, calls[0].Kind)
	assert.Nil(t, calls[0].Since)
}

func TestRecordsHandler_ListWithCursor(t *testing.T) {
	cursor := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	mock := &storage.RecordStorageMock{
		ListUpdatedSinceFunc: func(ctx context.Context, kind models.EntityKind, since *time.Time) ([]api.Record, error) {
			return nil, nil
		},
	}
	handler := newRecordsHandler(t, mock)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/quotes?updatedSince="+cursor.Format(time.RFC3339Nano), nil)
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindQuote)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	calls := mock.ListUpdatedSinceCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Since)
	assert.True(t, calls[0].Since.Equal(cursor))
}

func TestRecordsHandler_ListInvalidCursor(t *testing.T) {
	mock := &storage.RecordStorageMock{}
	handler := newRecordsHandler(t, mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers?updatedSince=yesterday", nil)
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindCustomer)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, mock.ListUpdatedSinceCalls())
}

func TestRecordsHandler_ListStorageError(t *testing.T) {
	mock := &storage.RecordStorageMock{
		ListUpdatedSinceFunc: func(ctx context.Context, kind models.EntityKind, since *time.Time) ([]api.Record, error) {
			return nil, errors.New("database is locked")
		},
	}
	handler := newRecordsHandler(t, mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindCustomer)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecordsHandler_Upsert(t *testing.T) {
	mock := &storage.RecordStorageMock{
		UpsertRecordFunc: func(ctx context.Context, kind models.EntityKind, rec api.Record) (int64, error) {
			return 4, nil
		},
	}
	handler := newRecordsHandler(t, mock)

	envelope := customerEnvelope(t, "cust-1", time.Now().UTC())
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindCustomer)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UpsertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Version)

	calls := mock.UpsertRecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "cust-1", calls[0].Rec.ID)
}

func TestRecordsHandler_UpsertValidation(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		mutate func(r *api.Record)
		name   string
	}{
		{
			name:   "Empty id",
			mutate: func(r *api.Record) { r.ID = "" },
		},
		{
			name:   "Zero updated_at",
			mutate: func(r *api.Record) { r.UpdatedAt = time.Time{} },
		},
		{
			name:   "Empty payload",
			mutate: func(r *api.Record) { r.Payload = nil },
		},
		{
			name:   "Payload is not an entity",
			mutate: func(r *api.Record) { r.Payload = json.RawMessage(`"just a string"`) },
		},
		{
			name:   "Payload id differs from envelope id",
			mutate: func(r *api.Record) { r.ID = "other-id" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &storage.RecordStorageMock{}
			handler := newRecordsHandler(t, mock)

			envelope := customerEnvelope(t, "cust-1", now)
			tt.mutate(&envelope)

			body, err := json.Marshal(envelope)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.HandleKind(models.KindCustomer)(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			// До хранилища невалидный конверт не доходит
			assert.Empty(t, mock.UpsertRecordCalls())
		})
	}
}

func TestRecordsHandler_UpsertInvalidBody(t *testing.T) {
	mock := &storage.RecordStorageMock{}
	handler := newRecordsHandler(t, mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindCustomer)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordsHandler_UpsertStorageError(t *testing.T) {
	mock := &storage.RecordStorageMock{
		UpsertRecordFunc: func(ctx context.Context, kind models.EntityKind, rec api.Record) (int64, error) {
			return 0, errors.New("database is locked")
		},
	}
	handler := newRecordsHandler(t, mock)

	envelope := customerEnvelope(t, "cust-1", time.Now().UTC())
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindCustomer)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecordsHandler_MethodNotAllowed(t *testing.T) {
	mock := &storage.RecordStorageMock{}
	handler := newRecordsHandler(t, mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/customers", nil)
	rec := httptest.NewRecorder()

	handler.HandleKind(models.KindCustomer)(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
