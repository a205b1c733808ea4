package api

import (
	"encoding/json"
	"time"
)

// Record представляет одну запись сущности в транспортном формате.
// Payload содержит типизированную сущность (Customer/Quote/Order) в JSON;
// остальные поля дублируют служебную информацию, чтобы сервер и движок
// синхронизации не разбирали payload.
type Record struct {
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Version   int64           `json:"version"`
}

// FetchResponse представляет ответ сервера на запрос изменений
type FetchResponse struct {
	Records []Record `json:"records"`
}

// UpsertResponse представляет ответ сервера на запись одной сущности
type UpsertResponse struct {
	Version int64 `json:"version"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ошибку сервера
type ErrorResponse struct {
	Message string `json:"message"`
}
