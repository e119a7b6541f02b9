package repositories

import (
	"context"

	"gohabits/internal/habits/domain/entities"
)

// HabitRepository определяет операции хранилища привычек.
// Все операции ограничены владельцем: доступ к чужой привычке
// неотличим от "не найдено". Активные выборки исключают архивные записи.
type HabitRepository interface {
	// FindOwned возвращает активную привычку владельца или entities.ErrHabitNotFound.
	FindOwned(ctx context.Context, id, ownerID string) (*entities.Habit, error)

	// ListOwned возвращает активные привычки владельца по возрастанию created_at.
	ListOwned(ctx context.Context, ownerID string) ([]*entities.Habit, error)

	// Create сохраняет привычку; id и created_at назначает хранилище.
	Create(ctx context.Context, habit *entities.Habit) (*entities.Habit, error)

	// Update применяет разреженный набор изменений к активной привычке владельца.
	Update(ctx context.Context, id, ownerID string, update *entities.HabitUpdate) (*entities.Habit, error)

	// Archive помечает активную привычку владельца как архивную.
	Archive(ctx context.Context, id, ownerID string) (*entities.Habit, error)
}
