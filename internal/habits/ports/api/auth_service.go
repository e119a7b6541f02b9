// Package api определяет основные порты (use cases) сервиса привычек.
package api

import (
	"context"
	"time"

	"gohabits/internal/habits/domain/entities"
)

// AuthUseCase определяет операции аутентификации.
type AuthUseCase interface {
	// Register создает нового пользователя; занятые email или имя
	// возвращают entities.ErrUserAlreadyExists.
	Register(ctx context.Context, email, username, password string) (*entities.User, error)

	// Login аутентифицирует пользователя и выпускает токен сессии.
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}
