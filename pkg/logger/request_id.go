package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestIDKeyType - собственный тип ключа, чтобы не пересекаться
// со значениями других пакетов.
type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// GenerateRequestID возвращает новый идентификатор запроса в виде UUID v4.
func GenerateRequestID() string {
	return uuid.New().String()
}

// NewRequestIDContext кладет идентификатор запроса в контекст.
// Пустой идентификатор заменяется сгенерированным.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// WithRequestID возвращает логгер с полем request_id из контекста.
// Без идентификатора в контексте возвращается исходный логгер.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	if id, ok := GetRequestID(ctx); ok {
		return l.With(zap.String(RequestID, id))
	}
	return l
}
