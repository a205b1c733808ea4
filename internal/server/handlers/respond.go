package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldcrm/fieldcrm/pkg/api"
)

// writeJSON отправляет ответ в формате JSON
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError отправляет ошибку в формате api.ErrorResponse
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{Message: message})
}
