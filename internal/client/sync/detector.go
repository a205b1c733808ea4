package sync

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldcrm/fieldcrm/internal/models"
)

// Detect решает, является ли пара (локальная запись, удаленная запись)
// конфликтом. Чистая функция: конфликт есть тогда и только тогда, когда
// метаданные существуют и обе стороны изменены после последней успешной
// синхронизации.
//
// Без локальной записи удаленная считается новой (insert). Без метаданных
// конфликт невозможен: удаленная запись перезаписывает локальную
// безусловно (семантика первой синхронизации).
//
// Сравнение идет по wall-clock updated_at обеих сторон; компенсации
// расхождения часов нет, как нет ее и у удаленной стороны.
func Detect(kind models.EntityKind, local, remote models.Record, meta *models.SyncMetadata) (*models.SyncConflict, error) {
	if local == nil || meta == nil {
		return nil, nil
	}

	if !local.ModifiedAt().After(meta.LastSyncedAt) || !remote.ModifiedAt().After(meta.LastSyncedAt) {
		return nil, nil
	}

	localData, err := models.MakeSnapshot(kind, local)
	if err != nil {
		return nil, err
	}
	remoteData, err := models.MakeSnapshot(kind, remote)
	if err != nil {
		return nil, err
	}

	return &models.SyncConflict{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   local.RecordID(),
		Type:       classify(local, remote),
		LocalData:  localData,
		RemoteData: remoteData,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func classify(local, remote models.Record) models.ConflictType {
	switch {
	case remote.IsDeleted() && !local.IsDeleted():
		return models.ConflictUpdateDelete
	case local.IsDeleted() && !remote.IsDeleted():
		return models.ConflictDeleteUpdate
	default:
		return models.ConflictUpdateUpdate
	}
}
