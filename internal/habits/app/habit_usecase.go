package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gohabits/internal/habits/app/dto"
	"gohabits/internal/habits/domain/entities"
	"gohabits/internal/habits/ports/api"
	"gohabits/internal/habits/ports/cache"
	"gohabits/internal/habits/ports/repositories"
	"gohabits/pkg/logger"
)

// Настройки кэширования списка привычек.
const (
	habitListKeyPrefix = "habits:"
	habitListCacheTTL  = 5 * time.Minute
)

const (
	methodCreateHabit  = "CreateHabit"
	methodGetHabit     = "GetHabit"
	methodListHabits   = "ListHabits"
	methodUpdateHabit  = "UpdateHabit"
	methodArchiveHabit = "ArchiveHabit"

	msgCreatingHabit    = "creating habit"
	msgHabitCreated     = "habit created"
	msgHabitRejected    = "habit input rejected"
	msgListingHabits    = "listing habits"
	msgListFromCache    = "habit list served from cache"
	msgUpdatingHabit    = "updating habit"
	msgHabitUpdated     = "habit updated"
	msgArchivingHabit   = "archiving habit"
	msgHabitArchived    = "habit archived"
	msgErrCreateHabit   = "failed to create habit"
	msgErrFindHabit     = "failed to find habit"
	msgErrListHabits    = "failed to list habits"
	msgErrUpdateHabit   = "failed to update habit"
	msgErrArchiveHabit  = "failed to archive habit"
	msgErrCacheRead     = "failed to read habit list cache"
	msgErrCacheWrite    = "failed to cache habit list"
	msgErrCacheInvalid  = "failed to invalidate habit list cache"

	errCtxCreatingHabit  = "creating habit"
	errCtxFindingHabit   = "finding habit"
	errCtxListingHabits  = "listing habits"
	errCtxUpdatingHabit  = "updating habit"
	errCtxArchivingHabit = "archiving habit"
)

// HabitUseCaseImpl реализует интерфейс api.HabitUseCase.
// Одновременные обновления одной привычки не упорядочиваются:
// выигрывает последняя запись, это принятая гонка.
type HabitUseCaseImpl struct {
	habitRepo repositories.HabitRepository
	listCache cache.Cache
}

// NewHabitUseCase создает новый экземпляр сервиса привычек.
func NewHabitUseCase(habitRepo repositories.HabitRepository, listCache cache.Cache) api.HabitUseCase {
	return &HabitUseCaseImpl{
		habitRepo: habitRepo,
		listCache: listCache,
	}
}

// CreateHabit проверяет входные данные и сохраняет новую привычку владельца.
func (u *HabitUseCaseImpl) CreateHabit(ctx context.Context, ownerID string, req *dto.CreateHabitRequest) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateHabit), zap.String("userID", ownerID))
	log.Debug(ctx, msgCreatingHabit)

	habit, err := ValidateCreate(req, ownerID, time.Now())
	if err != nil {
		log.Debug(ctx, msgHabitRejected, zap.Error(err))
		return nil, err
	}

	created, err := u.habitRepo.Create(ctx, habit)
	if err != nil {
		log.Error(ctx, msgErrCreateHabit, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingHabit, err)
	}

	u.invalidateListCache(ctx, ownerID)

	log.Info(ctx, msgHabitCreated, zap.String("habitID", created.ID))
	return created, nil
}

// GetHabit возвращает активную привычку владельца.
func (u *HabitUseCaseImpl) GetHabit(ctx context.Context, ownerID, habitID string) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetHabit), zap.String("habitID", habitID))

	habit, err := u.habitRepo.FindOwned(ctx, habitID, ownerID)
	if err != nil {
		log.Debug(ctx, msgErrFindHabit, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingHabit, err)
	}

	return habit, nil
}

// ListHabits возвращает активные привычки владельца по возрастанию created_at.
// Список читается сквозь кэш; ошибки кэша не фатальны.
func (u *HabitUseCaseImpl) ListHabits(ctx context.Context, ownerID string) ([]*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListHabits), zap.String("userID", ownerID))
	log.Debug(ctx, msgListingHabits)

	cacheKey := habitListKeyPrefix + ownerID

	if u.listCache != nil {
		cached, err := u.listCache.Get(ctx, cacheKey)
		if err != nil {
			log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		} else if cached != "" {
			var habits []*entities.Habit
			if err := json.Unmarshal([]byte(cached), &habits); err == nil {
				log.Debug(ctx, msgListFromCache)
				return habits, nil
			}
		}
	}

	habits, err := u.habitRepo.ListOwned(ctx, ownerID)
	if err != nil {
		log.Error(ctx, msgErrListHabits, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingHabits, err)
	}

	if u.listCache != nil {
		if encoded, err := json.Marshal(habits); err == nil {
			if err := u.listCache.Set(ctx, cacheKey, string(encoded), habitListCacheTTL); err != nil {
				log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
			}
		}
	}

	return habits, nil
}

// UpdateHabit применяет частичное обновление: загружает существующее
// состояние, проверяет патч относительно него и сохраняет слитый результат.
func (u *HabitUseCaseImpl) UpdateHabit(ctx context.Context, ownerID, habitID string, req *dto.UpdateHabitRequest) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateHabit), zap.String("habitID", habitID))
	log.Debug(ctx, msgUpdatingHabit)

	existing, err := u.habitRepo.FindOwned(ctx, habitID, ownerID)
	if err != nil {
		log.Debug(ctx, msgErrFindHabit, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingHabit, err)
	}

	update, err := ValidateUpdate(existing, req)
	if err != nil {
		log.Debug(ctx, msgHabitRejected, zap.Error(err))
		return nil, err
	}

	updated, err := u.habitRepo.Update(ctx, habitID, ownerID, update)
	if err != nil {
		log.Error(ctx, msgErrUpdateHabit, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingHabit, err)
	}

	u.invalidateListCache(ctx, ownerID)

	log.Info(ctx, msgHabitUpdated)
	return updated, nil
}

// ArchiveHabit помечает привычку как архивную (мягкое удаление).
func (u *HabitUseCaseImpl) ArchiveHabit(ctx context.Context, ownerID, habitID string) (*entities.Habit, error) {
	log := logger.Log(ctx).With(zap.String("method", methodArchiveHabit), zap.String("habitID", habitID))
	log.Debug(ctx, msgArchivingHabit)

	archived, err := u.habitRepo.Archive(ctx, habitID, ownerID)
	if err != nil {
		log.Debug(ctx, msgErrArchiveHabit, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxArchivingHabit, err)
	}

	u.invalidateListCache(ctx, ownerID)

	log.Info(ctx, msgHabitArchived)
	return archived, nil
}

// invalidateListCache сбрасывает кэшированный список привычек владельца.
func (u *HabitUseCaseImpl) invalidateListCache(ctx context.Context, ownerID string) {
	if u.listCache == nil {
		return
	}
	if err := u.listCache.Delete(ctx, habitListKeyPrefix+ownerID); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheInvalid, zap.Error(err))
	}
}
