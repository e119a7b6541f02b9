// Package app реализует бизнес-логику сервиса привычек.
package app

import (
	"math"
	"strings"
	"time"

	"gohabits/internal/habits/app/dto"
	"gohabits/internal/habits/domain/entities"
	"gohabits/internal/habits/domain/validation"
)

// Имена полей в ошибках валидации.
const (
	fieldTitle           = "title"
	fieldPriority        = "priority"
	fieldRepeatInterval  = "repeatInterval"
	fieldDaysOfWeek      = "daysOfWeek"
	fieldTargetPerPeriod = "targetPerPeriod"
	fieldStartDate       = "startDate"
	fieldEndDate         = "endDate"
)

// Сообщения ошибок валидации.
const (
	msgTitleRequired      = "Title is required"
	msgInvalidTitle       = "Invalid title"
	msgInvalidInterval    = "Invalid repeatInterval. Must be DAILY, WEEKLY, MONTHLY, or CUSTOM."
	msgInvalidPriority    = "Invalid priority. Must be LOW, MEDIUM, or HIGH."
	msgDaysRequired       = "CUSTOM habits require daysOfWeek (e.g., [1,3,5])."
	msgDaysRequiredUpdate = "CUSTOM habits require a non-empty daysOfWeek array."
	msgDaysRange          = "daysOfWeek must contain integers from 0 (Sun) to 6 (Sat)."
	msgDaysRangeUpdate    = "daysOfWeek must contain integers from 0 to 6."
	msgDaysDuplicates     = "daysOfWeek must not contain duplicates."
	msgDaysOnlyCustom     = "daysOfWeek is only allowed when repeatInterval is CUSTOM."
	msgInvalidTarget      = "targetPerPeriod must be an integer >= 1."
	msgInvalidStartDate   = "Invalid startDate."
	msgInvalidEndDate     = "Invalid endDate."
	msgEndBeforeStart     = "endDate must be after startDate."
)

// Форматы дат, принимаемые в телах запросов.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ValidateCreate проверяет и нормализует запрос на создание привычки.
// Правила применяются по порядку, первая ошибка прерывает проверку.
// Результат - полностью заполненная привычка, готовая к сохранению.
func ValidateCreate(req *dto.CreateHabitRequest, ownerID string, now time.Time) (*entities.Habit, error) {
	// Правило 1: обязательный непустой title.
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, validation.NewError(fieldTitle, validation.KindMissingField, msgTitleRequired)
	}
	title := strings.TrimSpace(*req.Title)

	// Правило 2: repeatInterval, по умолчанию DAILY.
	interval := entities.RepeatDaily
	if req.RepeatInterval != nil {
		parsed, ok := entities.ParseRepeatInterval(*req.RepeatInterval)
		if !ok {
			return nil, validation.NewError(fieldRepeatInterval, validation.KindInvalidEnumValue, msgInvalidInterval)
		}
		interval = parsed
	}

	// Правило 3: CUSTOM требует корректного daysOfWeek.
	var daysOfWeek []int32
	if interval == entities.RepeatCustom {
		days, vErr := validateDaysOfWeek(req.DaysOfWeek, msgDaysRequired, msgDaysRange)
		if vErr != nil {
			return nil, vErr
		}
		daysOfWeek = days
	}

	// Правило 4: priority, по умолчанию MEDIUM.
	priority := entities.PriorityMedium
	if req.Priority != nil {
		parsed, ok := entities.ParsePriority(*req.Priority)
		if !ok {
			return nil, validation.NewError(fieldPriority, validation.KindInvalidEnumValue, msgInvalidPriority)
		}
		priority = parsed
	}

	// Правило 5: targetPerPeriod, по умолчанию 1.
	target := int32(1)
	if req.TargetPerPeriod != nil {
		parsed, ok := toPositiveInt(*req.TargetPerPeriod)
		if !ok {
			return nil, validation.NewError(fieldTargetPerPeriod, validation.KindInvalidRange, msgInvalidTarget)
		}
		target = parsed
	}

	// Правило 6: startDate, по умолчанию текущее время. Отсутствием считается
	// только пустая строка; строка из пробелов проходит разбор и отклоняется.
	startDate := now
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, ok := parseDate(*req.StartDate)
		if !ok {
			return nil, validation.NewError(fieldStartDate, validation.KindInvalidDate, msgInvalidStartDate)
		}
		startDate = parsed
	}

	// Правило 7: endDate, если задан, строго позже startDate.
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, ok := parseDate(*req.EndDate)
		if !ok {
			return nil, validation.NewError(fieldEndDate, validation.KindInvalidDate, msgInvalidEndDate)
		}
		if !parsed.After(startDate) {
			return nil, validation.NewError(fieldEndDate, validation.KindCrossField, msgEndBeforeStart)
		}
		endDate = &parsed
	}

	// Правило 8: нормализация. daysOfWeek пуст для всех интервалов кроме CUSTOM,
	// description и category обрезаются и схлопываются в NULL.
	if daysOfWeek == nil {
		daysOfWeek = []int32{}
	}

	return &entities.Habit{
		UserID:          ownerID,
		Title:           title,
		Description:     trimOrNil(req.Description),
		Category:        trimOrNil(req.Category),
		Priority:        priority,
		RepeatInterval:  interval,
		DaysOfWeek:      daysOfWeek,
		TargetPerPeriod: target,
		StartDate:       startDate,
		EndDate:         endDate,
		IsArchived:      false,
	}, nil
}

// ValidateUpdate проверяет частичное обновление привычки относительно
// существующего состояния. Проверяются только присутствующие в теле поля;
// межполевые правила используют эффективный интервал: значение из запроса,
// если оно задано, иначе сохраненное.
func ValidateUpdate(existing *entities.Habit, req *dto.UpdateHabitRequest) (*entities.HabitUpdate, error) {
	upd := &entities.HabitUpdate{}

	if req.Title.Present {
		if req.Title.Null || strings.TrimSpace(req.Title.Value) == "" {
			return nil, validation.NewError(fieldTitle, validation.KindMissingField, msgInvalidTitle)
		}
		title := strings.TrimSpace(req.Title.Value)
		upd.Title = &title
	}

	if req.Description.Present {
		upd.DescriptionSet = true
		if !req.Description.Null {
			upd.Description = trimOrNil(&req.Description.Value)
		}
	}

	if req.Category.Present {
		upd.CategorySet = true
		if !req.Category.Null {
			upd.Category = trimOrNil(&req.Category.Value)
		}
	}

	if req.Priority.Present {
		if req.Priority.Null {
			return nil, validation.NewError(fieldPriority, validation.KindInvalidEnumValue, msgInvalidPriority)
		}
		parsed, ok := entities.ParsePriority(req.Priority.Value)
		if !ok {
			return nil, validation.NewError(fieldPriority, validation.KindInvalidEnumValue, msgInvalidPriority)
		}
		upd.Priority = &parsed
	}

	effectiveInterval := existing.RepeatInterval
	if req.RepeatInterval.Present {
		if req.RepeatInterval.Null {
			return nil, validation.NewError(fieldRepeatInterval, validation.KindInvalidEnumValue, msgInvalidInterval)
		}
		parsed, ok := entities.ParseRepeatInterval(req.RepeatInterval.Value)
		if !ok {
			return nil, validation.NewError(fieldRepeatInterval, validation.KindInvalidEnumValue, msgInvalidInterval)
		}
		effectiveInterval = parsed
		upd.RepeatInterval = &parsed
	}

	if req.DaysOfWeek.Present {
		if effectiveInterval != entities.RepeatCustom {
			return nil, validation.NewError(fieldDaysOfWeek, validation.KindCrossField, msgDaysOnlyCustom)
		}
		if req.DaysOfWeek.Null {
			return nil, validation.NewError(fieldDaysOfWeek, validation.KindCrossField, msgDaysRequiredUpdate)
		}
		days, vErr := validateDaysOfWeek(req.DaysOfWeek.Value, msgDaysRequiredUpdate, msgDaysRangeUpdate)
		if vErr != nil {
			return nil, vErr
		}
		upd.DaysOfWeek = days
		upd.DaysOfWeekSet = true
	}

	// Уход с CUSTOM очищает подборку дней, даже если daysOfWeek не передан.
	if req.RepeatInterval.Present && effectiveInterval != entities.RepeatCustom {
		upd.DaysOfWeek = []int32{}
		upd.DaysOfWeekSet = true
	}

	// Слитое состояние обязано сохранять инвариант: у CUSTOM привычки
	// эффективный daysOfWeek непуст.
	if effectiveInterval == entities.RepeatCustom {
		effectiveDays := existing.DaysOfWeek
		if upd.DaysOfWeekSet {
			effectiveDays = upd.DaysOfWeek
		}
		if len(effectiveDays) == 0 {
			return nil, validation.NewError(fieldDaysOfWeek, validation.KindCrossField, msgDaysRequiredUpdate)
		}
	}

	if req.TargetPerPeriod.Present {
		if req.TargetPerPeriod.Null {
			return nil, validation.NewError(fieldTargetPerPeriod, validation.KindInvalidRange, msgInvalidTarget)
		}
		parsed, ok := toPositiveInt(req.TargetPerPeriod.Value)
		if !ok {
			return nil, validation.NewError(fieldTargetPerPeriod, validation.KindInvalidRange, msgInvalidTarget)
		}
		upd.TargetPerPeriod = &parsed
	}

	if req.EndDate.Present {
		upd.EndDateSet = true
		if !req.EndDate.Null {
			parsed, ok := parseDate(req.EndDate.Value)
			if !ok {
				return nil, validation.NewError(fieldEndDate, validation.KindInvalidDate, msgInvalidEndDate)
			}
			// startDate после создания неизменяем, сравниваем с сохраненным.
			if !parsed.After(existing.StartDate) {
				return nil, validation.NewError(fieldEndDate, validation.KindCrossField, msgEndBeforeStart)
			}
			upd.EndDate = &parsed
		}
	}

	return upd, nil
}

// validateDaysOfWeek проверяет непустоту, диапазон [0,6] и отсутствие
// дубликатов (мощность множества равна длине массива).
func validateDaysOfWeek(raw []float64, emptyMsg, rangeMsg string) ([]int32, *validation.Error) {
	if len(raw) == 0 {
		return nil, validation.NewError(fieldDaysOfWeek, validation.KindCrossField, emptyMsg)
	}

	days := make([]int32, 0, len(raw))
	seen := make(map[int32]struct{}, len(raw))
	for _, d := range raw {
		if d != math.Trunc(d) || d < 0 || d > 6 {
			return nil, validation.NewError(fieldDaysOfWeek, validation.KindInvalidRange, rangeMsg)
		}
		days = append(days, int32(d))
	}
	for _, d := range days {
		seen[d] = struct{}{}
	}
	if len(seen) != len(days) {
		return nil, validation.NewError(fieldDaysOfWeek, validation.KindDuplicateValue, msgDaysDuplicates)
	}

	return days, nil
}

// toPositiveInt проверяет, что значение JSON является целым числом >= 1.
func toPositiveInt(v float64) (int32, bool) {
	if v != math.Trunc(v) || v < 1 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// parseDate разбирает дату в одном из поддерживаемых форматов.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// trimOrNil обрезает строку и схлопывает пустую в nil.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
