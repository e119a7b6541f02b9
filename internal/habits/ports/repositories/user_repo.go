// Package repositories определяет интерфейсы хранилищ сервиса привычек.
package repositories

import (
	"context"

	"gohabits/internal/habits/domain/entities"
)

// UserRepository определяет операции сохранения данных пользователя.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByEmailOrUsername ищет пользователя по email или имени;
	// используется проверкой дубликатов при регистрации.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entities.User, error)
}
