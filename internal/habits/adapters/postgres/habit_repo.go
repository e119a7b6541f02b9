package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"gohabits/internal/habits/domain/entities"
	"gohabits/internal/habits/ports/repositories"
	"gohabits/pkg/logger"
)

// habitColumns - список колонок привычки в порядке сканирования.
const habitColumns = `id, user_id, title, description, category, priority, repeat_interval,
        days_of_week, target_per_period, start_date, end_date, is_archived, created_at, updated_at`

// HabitRepository реализует интерфейс repositories.HabitRepository для работы с Postgres.
type HabitRepository struct {
	pool PgxPoolInterface
}

// NewHabitRepository создает новый экземпляр репозитория привычек.
func NewHabitRepository(pool PgxPoolInterface) repositories.HabitRepository {
	return &HabitRepository{pool: pool}
}

// scanHabit сканирует строку результата в сущность привычки.
func scanHabit(row pgx.Row) (*entities.Habit, error) {
	var habit entities.Habit
	err := row.Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Title,
		&habit.Description,
		&habit.Category,
		&habit.Priority,
		&habit.RepeatInterval,
		&habit.DaysOfWeek,
		&habit.TargetPerPeriod,
		&habit.StartDate,
		&habit.EndDate,
		&habit.IsArchived,
		&habit.CreatedAt,
		&habit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if habit.DaysOfWeek == nil {
		habit.DaysOfWeek = []int32{}
	}
	return &habit, nil
}

// isNotFound трактует отсутствие строки и некорректный текст uuid одинаково:
// чужой, архивный и несуществующий id неразличимы для вызывающего.
func isNotFound(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}

// FindOwned возвращает активную привычку владельца.
func (r *HabitRepository) FindOwned(ctx context.Context, id, ownerID string) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("repository", "habit"), zap.String("method", "FindOwned"))

	query := `
        SELECT ` + habitColumns + `
        FROM habits
        WHERE id = $1 AND user_id = $2 AND is_archived = FALSE
    `

	habit, err := scanHabit(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if isNotFound(err) {
			log.Debug(ctx, "habit not found", zap.String("id", id))
			return nil, entities.ErrHabitNotFound
		}
		log.Error(ctx, "error finding habit", zap.Error(err))
		return nil, fmt.Errorf("error querying habit: %w", err)
	}

	return habit, nil
}

// ListOwned возвращает активные привычки владельца по возрастанию created_at.
func (r *HabitRepository) ListOwned(ctx context.Context, ownerID string) ([]*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("repository", "habit"), zap.String("method", "ListOwned"))

	query := `
        SELECT ` + habitColumns + `
        FROM habits
        WHERE user_id = $1 AND is_archived = FALSE
        ORDER BY created_at ASC
    `

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		log.Error(ctx, "error listing habits", zap.Error(err))
		return nil, fmt.Errorf("error listing habits: %w", err)
	}
	defer rows.Close()

	habits := make([]*entities.Habit, 0)
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			log.Error(ctx, "error scanning habit", zap.Error(err))
			return nil, fmt.Errorf("error scanning habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return habits, nil
}

// Create сохраняет новую привычку; id и created_at назначает база.
func (r *HabitRepository) Create(ctx context.Context, habit *entities.Habit) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("repository", "habit"), zap.String("method", "Create"))

	query := `
        INSERT INTO habits (user_id, title, description, category, priority, repeat_interval,
                            days_of_week, target_per_period, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + habitColumns + `
    `

	created, err := scanHabit(r.pool.QueryRow(ctx, query,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.Category,
		habit.Priority,
		habit.RepeatInterval,
		habit.DaysOfWeek,
		habit.TargetPerPeriod,
		habit.StartDate,
		habit.EndDate,
	))
	if err != nil {
		log.Error(ctx, "error creating habit", zap.Error(err))
		return nil, fmt.Errorf("error creating habit: %w", err)
	}

	log.Debug(ctx, "habit created", zap.String("habitID", created.ID))
	return created, nil
}

// Update применяет разреженный набор изменений к активной привычке владельца.
// SET-часть собирается только из заданных полей, updated_at обновляется всегда.
func (r *HabitRepository) Update(ctx context.Context, id, ownerID string, update *entities.HabitUpdate) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("repository", "habit"), zap.String("method", "Update"))

	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 10)

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.DescriptionSet {
		addSet("description", update.Description)
	}
	if update.CategorySet {
		addSet("category", update.Category)
	}
	if update.Priority != nil {
		addSet("priority", *update.Priority)
	}
	if update.RepeatInterval != nil {
		addSet("repeat_interval", *update.RepeatInterval)
	}
	if update.DaysOfWeekSet {
		addSet("days_of_week", update.DaysOfWeek)
	}
	if update.TargetPerPeriod != nil {
		addSet("target_per_period", *update.TargetPerPeriod)
	}
	if update.EndDateSet {
		addSet("end_date", update.EndDate)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	idArg := len(args)
	args = append(args, ownerID)
	ownerArg := len(args)

	query := `
        UPDATE habits
        SET ` + strings.Join(sets, ", ") + `
        WHERE id = $` + strconv.Itoa(idArg) + ` AND user_id = $` + strconv.Itoa(ownerArg) + ` AND is_archived = FALSE
        RETURNING ` + habitColumns + `
    `

	updated, err := scanHabit(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isNotFound(err) {
			log.Debug(ctx, "habit not found for update", zap.String("id", id))
			return nil, entities.ErrHabitNotFound
		}
		log.Error(ctx, "error updating habit", zap.Error(err))
		return nil, fmt.Errorf("error updating habit: %w", err)
	}

	log.Debug(ctx, "habit updated", zap.String("habitID", updated.ID))
	return updated, nil
}

// Archive помечает активную привычку владельца как архивную.
func (r *HabitRepository) Archive(ctx context.Context, id, ownerID string) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("repository", "habit"), zap.String("method", "Archive"))

	query := `
        UPDATE habits
        SET is_archived = TRUE, updated_at = now()
        WHERE id = $1 AND user_id = $2 AND is_archived = FALSE
        RETURNING ` + habitColumns + `
    `

	archived, err := scanHabit(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if isNotFound(err) {
			log.Debug(ctx, "habit not found for archiving", zap.String("id", id))
			return nil, entities.ErrHabitNotFound
		}
		log.Error(ctx, "error archiving habit", zap.Error(err))
		return nil, fmt.Errorf("error archiving habit: %w", err)
	}

	log.Debug(ctx, "habit archived", zap.String("habitID", archived.ID))
	return archived, nil
}
