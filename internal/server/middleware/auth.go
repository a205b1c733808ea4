package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fieldcrm/fieldcrm/internal/server/auth"
)

// AuthMiddleware создает middleware проверки bearer учетных данных.
// Принимаются два вида: статический API ключ (сравнение за постоянное
// время) либо access token, выданный обменом ключа.
func AuthMiddleware(logger *slog.Logger, apiKey string, tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				http.Error(w, "Unauthorized: missing credentials", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <credential>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid credential format", http.StatusUnauthorized)
				return
			}

			credential := parts[1]

			if subtle.ConstantTimeCompare([]byte(credential), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			if err := tokens.ValidateAccessToken(credential); err != nil {
				logger.Warn("credential rejected", "error", err, "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: invalid credentials", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
