package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gohabits/internal/habits/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo  repositories.UserRepository
	habitRepo repositories.HabitRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:  NewUserRepository(pool),
		habitRepo: NewHabitRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// HabitRepository возвращает репозиторий привычек.
func (f *RepositoryFactory) HabitRepository() repositories.HabitRepository {
	return f.habitRepo
}
