package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для операций с токенами сессии.
type TokenService interface {
	// GenerateAccessToken выпускает подписанный токен с id и email владельца.
	GenerateAccessToken(ctx context.Context, userID, email string) (string, time.Time, error)

	// ValidateAccessToken проверяет токен и возвращает ID владельца.
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
