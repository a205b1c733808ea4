package api

import (
	"errors"
	"fmt"
)

// ConnectionError означает, что удаленный сервер недоступен либо отверг
// учетные данные. Отличается от ошибок уровня данных: сессия синхронизации
// прерывается целиком, вместо пропуска одной записи.
type ConnectionError struct {
	Err error
	Op  string

	// unreachable выставляется для транспортных сбоев; отказ в
	// авторизации оставляет его false
	unreachable bool
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("remote connection failed (%s): %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// transient: транспортный сбой может пройти при повторе,
// отвергнутый ключ — нет
func (e *ConnectionError) transient() bool { return e.unreachable }

// IsConnectionError reports whether err is a connection-level failure.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}
