package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EntityKind идентифицирует один из трех синхронизируемых типов записей.
// Закрытое множество: имена таблиц и bucket'ов выбираются только через
// switch по известным константам, никогда через интерполяцию строк.
type EntityKind string

// Синхронизируемые типы сущностей
const (
	KindCustomer EntityKind = "customers"
	KindQuote    EntityKind = "quotes"
	KindOrder    EntityKind = "orders"
)

// KindsInSyncOrder returns the entity kinds in dependency order.
// Customers come first: quotes and orders reference a customer id, so
// syncing customers first avoids dangling references in the local store.
func KindsInSyncOrder() []EntityKind {
	return []EntityKind{KindCustomer, KindQuote, KindOrder}
}

// ParseKind validates a user-supplied kind name.
func ParseKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindCustomer, KindQuote, KindOrder:
		return EntityKind(s), nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Record is the behavior every synchronized entity shares. The engine only
// needs identity, modification time and the soft-delete flag; business
// fields stay opaque to it.
type Record interface {
	RecordID() string
	ModifiedAt() time.Time
	IsDeleted() bool
	DeletedTime() *time.Time

	// Touch устанавливает новое время изменения (локальное редактирование)
	Touch(t time.Time)
}

// Customer представляет клиента
type Customer struct {
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

func (c *Customer) RecordID() string      { return c.ID }
func (c *Customer) ModifiedAt() time.Time { return c.UpdatedAt }
func (c *Customer) IsDeleted() bool       { return c.DeletedAt != nil }
func (c *Customer) DeletedTime() *time.Time { return c.DeletedAt }
func (c *Customer) Touch(t time.Time)     { c.UpdatedAt = t }

// Quote представляет коммерческое предложение для клиента
type Quote struct {
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	Status     string     `json:"status"` // draft, sent, accepted, rejected
	Notes      string     `json:"notes,omitempty"`
	Total      float64    `json:"total"`
}

func (q *Quote) RecordID() string      { return q.ID }
func (q *Quote) ModifiedAt() time.Time { return q.UpdatedAt }
func (q *Quote) IsDeleted() bool       { return q.DeletedAt != nil }
func (q *Quote) DeletedTime() *time.Time { return q.DeletedAt }
func (q *Quote) Touch(t time.Time)     { q.UpdatedAt = t }

// Order представляет заказ, созданный из предложения
type Order struct {
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	QuoteID    string     `json:"quote_id,omitempty"`
	Status     string     `json:"status"` // pending, confirmed, delivered, cancelled
	Total      float64    `json:"total"`
}

func (o *Order) RecordID() string      { return o.ID }
func (o *Order) ModifiedAt() time.Time { return o.UpdatedAt }
func (o *Order) IsDeleted() bool       { return o.DeletedAt != nil }
func (o *Order) DeletedTime() *time.Time { return o.DeletedAt }
func (o *Order) Touch(t time.Time)     { o.UpdatedAt = t }

// NewRecord returns an empty record of the given kind.
func NewRecord(kind EntityKind) (Record, error) {
	switch kind {
	case KindCustomer:
		return &Customer{}, nil
	case KindQuote:
		return &Quote{}, nil
	case KindOrder:
		return &Order{}, nil
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

// DecodeRecord deserializes a typed entity. This is the single decoding
// boundary between stored/transmitted JSON and typed records.
func DecodeRecord(kind EntityKind, data []byte) (Record, error) {
	rec, err := NewRecord(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to decode %s record: %w", kind, err)
	}
	return rec, nil
}

// EncodeRecord serializes a typed entity.
func EncodeRecord(rec Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record %s: %w", rec.RecordID(), err)
	}
	return data, nil
}

// SnapshotSchemaVersion версия формата снапшотов конфликтов
const SnapshotSchemaVersion = 1

// Snapshot хранит состояние одной стороны конфликта.
// Версионируется явно, чтобы старые снапшоты оставались читаемыми
// после изменения формата сущностей.
type Snapshot struct {
	Kind          EntityKind      `json:"kind"`
	Data          json.RawMessage `json:"data"`
	SchemaVersion int             `json:"schema_version"`
}

// MakeSnapshot captures a record into a versioned snapshot.
func MakeSnapshot(kind EntityKind, rec Record) (Snapshot, error) {
	data, err := EncodeRecord(rec)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Kind:          kind,
		Data:          data,
	}, nil
}

// Decode restores the typed record captured in the snapshot.
func (s Snapshot) Decode() (Record, error) {
	if s.SchemaVersion != SnapshotSchemaVersion {
		return nil, fmt.Errorf("unsupported snapshot schema version %d", s.SchemaVersion)
	}
	return DecodeRecord(s.Kind, s.Data)
}
