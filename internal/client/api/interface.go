package api

import (
	"context"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного адаптера для движка синхронизации
type ClientAPI interface {
	// Health проверяет доступность сервера с коротким таймаутом
	Health(ctx context.Context) (*api.HealthResponse, error)

	// FetchUpdatedSince возвращает записи, измененные после since.
	// nil означает "все записи" (первая синхронизация).
	FetchUpdatedSince(ctx context.Context, kind models.EntityKind, since *time.Time) ([]api.Record, error)

	// Upsert отправляет одну запись и возвращает присвоенную сервером версию
	Upsert(ctx context.Context, kind models.EntityKind, rec api.Record) (*api.UpsertResponse, error)
}
