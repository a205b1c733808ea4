package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/internal/server/storage"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

// RecordsHandler обслуживает выборку и запись сущностей одного типа
type RecordsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:  logger,
		storage: recordStorage,
	}
}

// HandleKind возвращает обработчик GET/POST /api/v1/{kind} для одного
// типа сущностей. Тип фиксируется при регистрации маршрута, а не
// извлекается из пути.
func (h *RecordsHandler) HandleKind(kind models.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r, kind)
		case http.MethodPost:
			h.upsert(w, r, kind)
		default:
			writeError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}

// list обрабатывает GET /api/v1/{kind}?updatedSince=RFC3339
func (h *RecordsHandler) list(w http.ResponseWriter, r *http.Request, kind models.EntityKind) {
	var since *time.Time
	if raw := r.URL.Query().Get("updatedSince"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "invalid updatedSince parameter")
			return
		}
		since = &t
	}

	records, err := h.storage.ListUpdatedSince(r.Context(), kind, since)
	if err != nil {
		h.logger.Error("failed to list records", "kind", kind, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to list records")
		return
	}

	h.logger.Debug("records listed", "kind", kind, "count", len(records))

	writeJSON(w, h.logger, http.StatusOK, api.FetchResponse{Records: records})
}

// upsert обрабатывает POST /api/v1/{kind} с одним конвертом записи
func (h *RecordsHandler) upsert(w http.ResponseWriter, r *http.Request, kind models.EntityKind) {
	var rec api.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateEnvelope(kind, rec); err != nil {
		writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		return
	}

	version, err := h.storage.UpsertRecord(r.Context(), kind, rec)
	if err != nil {
		h.logger.Error("failed to upsert record", "kind", kind, "id", rec.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to save record")
		return
	}

	h.logger.Info("record upserted", "kind", kind, "id", rec.ID, "version", version)

	writeJSON(w, h.logger, http.StatusOK, api.UpsertResponse{Version: version})
}

// validateEnvelope проверяет конверт до записи: payload обязан
// декодироваться в сущность данного типа и совпадать с конвертом по id
func validateEnvelope(kind models.EntityKind, rec api.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("record id cannot be empty")
	}
	if rec.UpdatedAt.IsZero() {
		return fmt.Errorf("record updated_at cannot be zero")
	}
	if len(rec.Payload) == 0 {
		return fmt.Errorf("record payload cannot be empty")
	}

	decoded, err := models.DecodeRecord(kind, rec.Payload)
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if decoded.RecordID() != rec.ID {
		return fmt.Errorf("payload id %q does not match envelope id %q", decoded.RecordID(), rec.ID)
	}

	return nil
}
