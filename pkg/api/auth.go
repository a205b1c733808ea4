package api

// TokenRequest представляет запрос на обмен API ключа на access token
type TokenRequest struct {
	APIKey string `json:"api_key"`
}

// TokenResponse представляет ответ с выданным access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // всегда "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // срок действия в секундах
}
