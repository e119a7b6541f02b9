package dto

import (
	"gohabits/internal/habits/domain/entities"
)

// CreateHabitRequest содержит сырые данные для создания привычки.
// Поля намеренно нестрогие: значения проверяет и нормализует валидатор,
// в хранилище попадает только собранная им entities.Habit.
type CreateHabitRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category"`
	Priority        *string   `json:"priority"`
	RepeatInterval  *string   `json:"repeatInterval"`
	DaysOfWeek      []float64 `json:"daysOfWeek"`
	TargetPerPeriod *float64  `json:"targetPerPeriod"`
	StartDate       *string   `json:"startDate"`
	EndDate         *string   `json:"endDate"`
}

// UpdateHabitRequest содержит сырые данные частичного обновления привычки.
// startDate после создания неизменяем и в теле обновления игнорируется.
type UpdateHabitRequest struct {
	Title           Optional[string]    `json:"title"`
	Description     Optional[string]    `json:"description"`
	Category        Optional[string]    `json:"category"`
	Priority        Optional[string]    `json:"priority"`
	RepeatInterval  Optional[string]    `json:"repeatInterval"`
	DaysOfWeek      Optional[[]float64] `json:"daysOfWeek"`
	TargetPerPeriod Optional[float64]   `json:"targetPerPeriod"`
	EndDate         Optional[string]    `json:"endDate"`
}

// HabitResponse содержит привычку для ответа.
type HabitResponse struct {
	Habit *entities.Habit `json:"habit"`
}

// ListHabitsResponse содержит список привычек пользователя.
type ListHabitsResponse struct {
	Habits []*entities.Habit `json:"habits"`
}

// ArchiveHabitResponse содержит заархивированную привычку и сообщение.
type ArchiveHabitResponse struct {
	Message string          `json:"message"`
	Habit   *entities.Habit `json:"habit"`
}
