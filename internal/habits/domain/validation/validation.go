// Package validation определяет типизированные ошибки валидации привычек.
package validation

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку валидации.
type Kind string

// Виды ошибок валидации.
const (
	KindMissingField     Kind = "MISSING_FIELD"
	KindInvalidEnumValue Kind = "INVALID_ENUM_VALUE"
	KindInvalidRange     Kind = "INVALID_RANGE"
	KindDuplicateValue   Kind = "DUPLICATE_VALUE"
	KindInvalidDate      Kind = "INVALID_DATE"
	KindCrossField       Kind = "CROSS_FIELD_CONSTRAINT_VIOLATION"
)

// Error представляет ошибку валидации конкретного поля.
// Валидация останавливается на первой ошибке, поэтому Error всегда
// описывает ровно одно поле.
type Error struct {
	Field   string
	Kind    Kind
	Message string
}

// NewError создает новую ошибку валидации.
func NewError(field string, kind Kind, message string) *Error {
	return &Error{Field: field, Kind: kind, Message: message}
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsError извлекает *Error из цепочки ошибок.
func AsError(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
