package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fieldcrm/fieldcrm/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// Health обрабатывает GET /api/v1/health.
// Без авторизации: клиент проверяет доступность сервера перед каждой
// сессией синхронизации.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.HealthResponse{Message: "ok"})
}
