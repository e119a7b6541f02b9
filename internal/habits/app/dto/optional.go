package dto

import (
	"bytes"
	"encoding/json"
)

var nullLiteral = []byte("null")

// Optional моделирует поле JSON-тела, для которого различаются три состояния:
// отсутствует, явный null и значение. Частичное обновление привычки опирается
// на это различие: отсутствующее поле не трогается, null обнуляет.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// UnmarshalJSON вызывается только для присутствующих в теле полей.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// HasValue сообщает, что поле присутствует и не является null.
func (o Optional[T]) HasValue() bool {
	return o.Present && !o.Null
}
