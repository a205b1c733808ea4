package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL срок жизни access token по умолчанию
const DefaultAccessTokenTTL = time.Hour

// TokenService выпускает и проверяет короткоживущие access token'ы,
// выдаваемые в обмен на статический API ключ
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service.
// secret should be a cryptographically secure random string.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// IssueAccessToken creates a signed HS256 token and returns it together
// with its lifetime in seconds
func (s *TokenService) IssueAccessToken() (string, int64, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   "sync-client",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, int64(s.ttl.Seconds()), nil
}

// ValidateAccessToken checks the signature and expiry of a token
func (s *TokenService) ValidateAccessToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("invalid access token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid access token")
	}
	return nil
}
