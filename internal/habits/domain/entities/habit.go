package entities

import (
	"errors"
	"strings"
	"time"
)

// Ошибки домена привычек.
var (
	ErrHabitNotFound = errors.New("habit not found")
)

// Priority определяет приоритет привычки.
type Priority string

// Допустимые значения приоритета.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority разбирает приоритет без учета регистра.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(strings.ToUpper(s)) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(strings.ToUpper(s)), true
	default:
		return "", false
	}
}

// RepeatInterval определяет периодичность повторения привычки.
type RepeatInterval string

// Допустимые значения периодичности.
const (
	RepeatDaily   RepeatInterval = "DAILY"
	RepeatWeekly  RepeatInterval = "WEEKLY"
	RepeatMonthly RepeatInterval = "MONTHLY"
	RepeatCustom  RepeatInterval = "CUSTOM"
)

// ParseRepeatInterval разбирает периодичность без учета регистра.
func ParseRepeatInterval(s string) (RepeatInterval, bool) {
	switch RepeatInterval(strings.ToUpper(s)) {
	case RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom:
		return RepeatInterval(strings.ToUpper(s)), true
	default:
		return "", false
	}
}

// Habit представляет привычку пользователя.
// Инвариант: DaysOfWeek непустой тогда и только тогда, когда RepeatInterval == CUSTOM.
// Инвариант: EndDate, если задан, строго позже StartDate.
type Habit struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	Title           string         `json:"title"`
	Description     *string        `json:"description"`
	Category        *string        `json:"category"`
	Priority        Priority       `json:"priority"`
	RepeatInterval  RepeatInterval `json:"repeatInterval"`
	DaysOfWeek      []int32        `json:"daysOfWeek"`
	TargetPerPeriod int32          `json:"targetPerPeriod"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         *time.Time     `json:"endDate"`
	IsArchived      bool           `json:"isArchived"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// HabitUpdate представляет разреженный набор изменяемых полей привычки.
// Поле-указатель nil означает "без изменений"; для обнуляемых полей
// отдельный флаг *Set отличает "записать NULL" от "не трогать".
type HabitUpdate struct {
	Title           *string
	Description     *string
	DescriptionSet  bool
	Category        *string
	CategorySet     bool
	Priority        *Priority
	RepeatInterval  *RepeatInterval
	DaysOfWeek      []int32
	DaysOfWeekSet   bool
	TargetPerPeriod *int32
	EndDate         *time.Time
	EndDateSet      bool
}

// IsEmpty сообщает, что набор не содержит ни одного изменения.
func (u *HabitUpdate) IsEmpty() bool {
	return u.Title == nil && !u.DescriptionSet && !u.CategorySet &&
		u.Priority == nil && u.RepeatInterval == nil && !u.DaysOfWeekSet &&
		u.TargetPerPeriod == nil && !u.EndDateSet
}
