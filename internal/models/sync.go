package models

import "time"

// SyncStatus состояние синхронизации одной записи
type SyncStatus string

const (
	// StatusPending запись изменена локально и ожидает отправки
	StatusPending SyncStatus = "pending"
	// StatusSynced запись совпадает с удаленной стороной
	StatusSynced SyncStatus = "synced"
	// StatusConflict у записи есть неразрешенный конфликт
	StatusConflict SyncStatus = "conflict"
)

// SyncMetadata хранит состояние синхронизации одной сущности.
// Уникальна по (Kind, EntityID); создается при первом успешном pull/push
// и далее никогда не удаляется.
type SyncMetadata struct {
	LastSyncedAt  time.Time  `json:"last_synced_at"`
	Kind          EntityKind `json:"kind"`
	EntityID      string     `json:"entity_id"`
	SyncStatus    SyncStatus `json:"sync_status"`
	ConflictData  *Snapshot  `json:"conflict_data,omitempty"`
	LocalVersion  int64      `json:"local_version"`  // монотонный счетчик локальных правок, начинается с 1
	RemoteVersion int64      `json:"remote_version"` // 0 до первого успешного push/pull
}

// ConflictType классифицирует обнаруженный конфликт
type ConflictType string

const (
	// ConflictUpdateUpdate обе стороны изменили запись после последней синхронизации
	ConflictUpdateUpdate ConflictType = "update-update"
	// ConflictUpdateDelete локальная правка против удаленного soft delete
	ConflictUpdateDelete ConflictType = "update-delete"
	// ConflictDeleteUpdate локальный soft delete против удаленной правки
	ConflictDeleteUpdate ConflictType = "delete-update"
)

// SyncConflict одна строка журнала конфликтов. Создается только при
// стратегии manual; строки никогда не удаляются, разрешение помечается
// на месте.
type SyncConflict struct {
	CreatedAt  time.Time    `json:"created_at"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
	ID         string       `json:"id"`
	Kind       EntityKind   `json:"kind"`
	EntityID   string       `json:"entity_id"`
	Type       ConflictType `json:"type"`
	Resolution string       `json:"resolution,omitempty"` // "local", "remote" или "merged"
	LocalData  Snapshot     `json:"local_data"`
	RemoteData Snapshot     `json:"remote_data"`
	Resolved   bool         `json:"resolved"`
}

// SyncResult итог синхронизации одного типа сущностей
type SyncResult struct {
	Kind        EntityKind      `json:"kind"`
	Conflicts   []*SyncConflict `json:"conflicts,omitempty"`
	Errors      []string        `json:"errors,omitempty"`
	PushedCount int             `json:"pushed_count"`
	PulledCount int             `json:"pulled_count"`
	Success     bool            `json:"success"`
}

// SyncSession итог одного прогона "sync all".
// Живет только в памяти: наружу попадают статистика и строки конфликтов.
type SyncSession struct {
	Timestamp time.Time     `json:"timestamp"`
	Results   []*SyncResult `json:"results"`
	Success   bool          `json:"success"`
}

// Conflicts returns every conflict across all entity kinds in the session.
func (s *SyncSession) Conflicts() []*SyncConflict {
	var out []*SyncConflict
	for _, r := range s.Results {
		out = append(out, r.Conflicts...)
	}
	return out
}

// Errors returns every error message across all entity kinds in the session.
func (s *SyncSession) Errors() []string {
	var out []string
	for _, r := range s.Results {
		out = append(out, r.Errors...)
	}
	return out
}
