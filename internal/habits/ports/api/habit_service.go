package api

import (
	"context"

	"gohabits/internal/habits/app/dto"
	"gohabits/internal/habits/domain/entities"
)

// HabitUseCase определяет операции управления привычками.
// Все операции принимают id владельца, установленный промежуточным ПО
// аутентификации, и никогда не выходят за его пределы.
type HabitUseCase interface {
	CreateHabit(ctx context.Context, ownerID string, req *dto.CreateHabitRequest) (*entities.Habit, error)

	GetHabit(ctx context.Context, ownerID, habitID string) (*entities.Habit, error)

	ListHabits(ctx context.Context, ownerID string) ([]*entities.Habit, error)

	UpdateHabit(ctx context.Context, ownerID, habitID string, req *dto.UpdateHabitRequest) (*entities.Habit, error)

	ArchiveHabit(ctx context.Context, ownerID, habitID string) (*entities.Habit, error)
}
