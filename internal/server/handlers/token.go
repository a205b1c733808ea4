package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldcrm/fieldcrm/internal/server/auth"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

// TokenHandler обменивает статический API ключ на короткоживущий
// access token
type TokenHandler struct {
	logger *slog.Logger
	tokens *auth.TokenService
	apiKey string
}

// NewTokenHandler creates a new token exchange handler
func NewTokenHandler(logger *slog.Logger, tokens *auth.TokenService, apiKey string) *TokenHandler {
	return &TokenHandler{
		logger: logger,
		tokens: tokens,
		apiKey: apiKey,
	}
}

// Token обрабатывает POST /api/v1/auth/token
func (h *TokenHandler) Token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req api.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	// Сравнение за постоянное время
	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.apiKey)) != 1 {
		h.logger.Warn("token exchange rejected", "remote_addr", r.RemoteAddr)
		writeError(w, h.logger, http.StatusUnauthorized, "invalid API key")
		return
	}

	token, expiresIn, err := h.tokens.IssueAccessToken()
	if err != nil {
		h.logger.Error("failed to issue access token", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}
