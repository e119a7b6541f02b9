package habitvalidator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gohabits/internal/habits/app"
	"gohabits/internal/habits/app/dto"
	"gohabits/internal/habits/domain/entities"
	"gohabits/internal/habits/domain/validation"
)

const testOwnerID = "owner-1"

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func TestValidateCreate_Title(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		title *string
	}{
		{name: "Missing title", title: nil},
		{name: "Empty title", title: strPtr("")},
		{name: "Whitespace-only title", title: strPtr("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.CreateHabitRequest{Title: tt.title}
			habit, err := app.ValidateCreate(req, testOwnerID, now)

			assert.Nil(t, habit)
			vErr, ok := validation.AsError(err)
			require.True(t, ok)
			assert.Equal(t, "title", vErr.Field)
			assert.Equal(t, validation.KindMissingField, vErr.Kind)
			assert.Equal(t, "Title is required", vErr.Message)
		})
	}

	t.Run("Title is trimmed", func(t *testing.T) {
		req := &dto.CreateHabitRequest{Title: strPtr("  Read books  ")}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Equal(t, "Read books", habit.Title)
	})
}

func TestValidateCreate_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	req := &dto.CreateHabitRequest{Title: strPtr("Meditate")}
	habit, err := app.ValidateCreate(req, testOwnerID, now)

	require.NoError(t, err)
	assert.Equal(t, testOwnerID, habit.UserID)
	assert.Equal(t, entities.RepeatDaily, habit.RepeatInterval)
	assert.Equal(t, entities.PriorityMedium, habit.Priority)
	assert.Equal(t, int32(1), habit.TargetPerPeriod)
	assert.Equal(t, now, habit.StartDate)
	assert.Nil(t, habit.EndDate)
	assert.Empty(t, habit.DaysOfWeek)
	assert.NotNil(t, habit.DaysOfWeek)
	assert.Nil(t, habit.Description)
	assert.Nil(t, habit.Category)
	assert.False(t, habit.IsArchived)
}

func TestValidateCreate_RepeatInterval(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Case-insensitive interval", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:          strPtr("Run"),
			RepeatInterval: strPtr("weekly"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Equal(t, entities.RepeatWeekly, habit.RepeatInterval)
	})

	t.Run("Unknown interval", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:          strPtr("Run"),
			RepeatInterval: strPtr("YEARLY"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "repeatInterval", vErr.Field)
		assert.Equal(t, validation.KindInvalidEnumValue, vErr.Kind)
		assert.Equal(t, "Invalid repeatInterval. Must be DAILY, WEEKLY, MONTHLY, or CUSTOM.", vErr.Message)
	})
}

func TestValidateCreate_DaysOfWeek(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval string
		days     []float64
		wantKind validation.Kind
		wantMsg  string
	}{
		{
			name:     "CUSTOM without daysOfWeek",
			interval: "CUSTOM",
			days:     nil,
			wantKind: validation.KindCrossField,
			wantMsg:  "CUSTOM habits require daysOfWeek (e.g., [1,3,5]).",
		},
		{
			name:     "CUSTOM with empty daysOfWeek",
			interval: "CUSTOM",
			days:     []float64{},
			wantKind: validation.KindCrossField,
			wantMsg:  "CUSTOM habits require daysOfWeek (e.g., [1,3,5]).",
		},
		{
			name:     "Day out of range",
			interval: "CUSTOM",
			days:     []float64{1, 7},
			wantKind: validation.KindInvalidRange,
			wantMsg:  "daysOfWeek must contain integers from 0 (Sun) to 6 (Sat).",
		},
		{
			name:     "Negative day",
			interval: "CUSTOM",
			days:     []float64{-1, 2},
			wantKind: validation.KindInvalidRange,
			wantMsg:  "daysOfWeek must contain integers from 0 (Sun) to 6 (Sat).",
		},
		{
			name:     "Non-integer day",
			interval: "CUSTOM",
			days:     []float64{1.5},
			wantKind: validation.KindInvalidRange,
			wantMsg:  "daysOfWeek must contain integers from 0 (Sun) to 6 (Sat).",
		},
		{
			name:     "Duplicate days",
			interval: "CUSTOM",
			days:     []float64{1, 3, 1},
			wantKind: validation.KindDuplicateValue,
			wantMsg:  "daysOfWeek must not contain duplicates.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.CreateHabitRequest{
				Title:          strPtr("Gym"),
				RepeatInterval: strPtr(tt.interval),
				DaysOfWeek:     tt.days,
			}
			habit, err := app.ValidateCreate(req, testOwnerID, now)

			assert.Nil(t, habit)
			vErr, ok := validation.AsError(err)
			require.True(t, ok)
			assert.Equal(t, "daysOfWeek", vErr.Field)
			assert.Equal(t, tt.wantKind, vErr.Kind)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}

	t.Run("Valid CUSTOM days are kept", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:          strPtr("Gym"),
			RepeatInterval: strPtr("CUSTOM"),
			DaysOfWeek:     []float64{1, 3, 5},
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Equal(t, []int32{1, 3, 5}, habit.DaysOfWeek)
	})

	t.Run("Days supplied for non-CUSTOM are dropped", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:          strPtr("Gym"),
			RepeatInterval: strPtr("DAILY"),
			DaysOfWeek:     []float64{1, 3, 5},
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Empty(t, habit.DaysOfWeek)
	})
}

func TestValidateCreate_Priority(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Case-insensitive priority", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:    strPtr("Stretch"),
			Priority: strPtr("high"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Equal(t, entities.PriorityHigh, habit.Priority)
	})

	t.Run("Unknown priority", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:    strPtr("Stretch"),
			Priority: strPtr("URGENT"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "priority", vErr.Field)
		assert.Equal(t, validation.KindInvalidEnumValue, vErr.Kind)
		assert.Equal(t, "Invalid priority. Must be LOW, MEDIUM, or HIGH.", vErr.Message)
	})
}

func TestValidateCreate_TargetPerPeriod(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target *float64
		want   int32
		bad    bool
	}{
		{name: "Default is 1", target: nil, want: 1},
		{name: "Explicit value", target: f64Ptr(3), want: 3},
		{name: "Zero rejected", target: f64Ptr(0), bad: true},
		{name: "Negative rejected", target: f64Ptr(-2), bad: true},
		{name: "Fractional rejected", target: f64Ptr(1.5), bad: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.CreateHabitRequest{
				Title:           strPtr("Drink water"),
				TargetPerPeriod: tt.target,
			}
			habit, err := app.ValidateCreate(req, testOwnerID, now)

			if tt.bad {
				assert.Nil(t, habit)
				vErr, ok := validation.AsError(err)
				require.True(t, ok)
				assert.Equal(t, "targetPerPeriod", vErr.Field)
				assert.Equal(t, validation.KindInvalidRange, vErr.Kind)
				assert.Equal(t, "targetPerPeriod must be an integer >= 1.", vErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, habit.TargetPerPeriod)
		})
	}
}

func TestValidateCreate_Dates(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("RFC 3339 startDate", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:     strPtr("Journal"),
			StartDate: strPtr("2025-04-01T08:00:00Z"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC), habit.StartDate)
	})

	t.Run("Date-only startDate", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:     strPtr("Journal"),
			StartDate: strPtr("2025-04-01"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), habit.StartDate)
	})

	t.Run("Garbage startDate", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:     strPtr("Journal"),
			StartDate: strPtr("not-a-date"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "startDate", vErr.Field)
		assert.Equal(t, validation.KindInvalidDate, vErr.Kind)
		assert.Equal(t, "Invalid startDate.", vErr.Message)
	})

	t.Run("Empty startDate falls back to now", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:     strPtr("Journal"),
			StartDate: strPtr(""),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Equal(t, now, habit.StartDate)
	})

	t.Run("Whitespace-only startDate is rejected", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:     strPtr("Journal"),
			StartDate: strPtr("   "),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "startDate", vErr.Field)
		assert.Equal(t, "Invalid startDate.", vErr.Message)
	})

	t.Run("Whitespace-only endDate is rejected", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:   strPtr("Journal"),
			EndDate: strPtr(" "),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "endDate", vErr.Field)
		assert.Equal(t, "Invalid endDate.", vErr.Message)
	})

	t.Run("Garbage endDate", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:   strPtr("Journal"),
			EndDate: strPtr("soon"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "endDate", vErr.Field)
		assert.Equal(t, validation.KindInvalidDate, vErr.Kind)
		assert.Equal(t, "Invalid endDate.", vErr.Message)
	})

	t.Run("endDate equal to startDate rejected", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:     strPtr("Journal"),
			StartDate: strPtr("2025-04-01T08:00:00Z"),
			EndDate:   strPtr("2025-04-01T08:00:00Z"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "endDate", vErr.Field)
		assert.Equal(t, validation.KindCrossField, vErr.Kind)
		assert.Equal(t, "endDate must be after startDate.", vErr.Message)
	})

	t.Run("endDate before startDate rejected", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:     strPtr("Journal"),
			StartDate: strPtr("2025-04-02"),
			EndDate:   strPtr("2025-04-01"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		assert.Nil(t, habit)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "endDate", vErr.Field)
	})

	t.Run("endDate after default startDate", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:   strPtr("Journal"),
			EndDate: strPtr("2025-06-01"),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		require.NotNil(t, habit.EndDate)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *habit.EndDate)
	})
}

func TestValidateCreate_Normalization(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Description and category trimmed", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:       strPtr("Walk"),
			Description: strPtr("  morning walk  "),
			Category:    strPtr(" health "),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		require.NotNil(t, habit.Description)
		assert.Equal(t, "morning walk", *habit.Description)
		require.NotNil(t, habit.Category)
		assert.Equal(t, "health", *habit.Category)
	})

	t.Run("Blank description and category collapse to nil", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:       strPtr("Walk"),
			Description: strPtr("   "),
			Category:    strPtr(""),
		}
		habit, err := app.ValidateCreate(req, testOwnerID, now)

		require.NoError(t, err)
		assert.Nil(t, habit.Description)
		assert.Nil(t, habit.Category)
	})
}

func TestValidateCreate_RuleOrder(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// Несколько нарушений сразу: отдается ошибка первого по порядку правила.
	t.Run("Title error wins over interval error", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:          strPtr(" "),
			RepeatInterval: strPtr("YEARLY"),
		}
		_, err := app.ValidateCreate(req, testOwnerID, now)

		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "title", vErr.Field)
	})

	t.Run("Interval error wins over priority error", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:          strPtr("Gym"),
			RepeatInterval: strPtr("YEARLY"),
			Priority:       strPtr("URGENT"),
		}
		_, err := app.ValidateCreate(req, testOwnerID, now)

		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "repeatInterval", vErr.Field)
	})

	t.Run("daysOfWeek error wins over priority error", func(t *testing.T) {
		req := &dto.CreateHabitRequest{
			Title:          strPtr("Gym"),
			RepeatInterval: strPtr("CUSTOM"),
			Priority:       strPtr("URGENT"),
		}
		_, err := app.ValidateCreate(req, testOwnerID, now)

		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "daysOfWeek", vErr.Field)
	})
}
