// Package habits содержит HTTP обработчики для операций с привычками.
package habits

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gohabits/internal/habits/adapters/http/middleware"
	"gohabits/internal/habits/app/dto"
	"gohabits/internal/habits/domain/entities"
	"gohabits/internal/habits/domain/validation"
	"gohabits/internal/habits/ports/api"
	"gohabits/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreate  = "habits handler: create"
	LogHandlerGet     = "habits handler: get"
	LogHandlerList    = "habits handler: list"
	LogHandlerUpdate  = "habits handler: update"
	LogHandlerArchive = "habits handler: archive"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Тексты ошибок, отдаваемые клиенту.
const (
	MsgUnauthorized     = "Unauthorized"
	MsgHabitIDRequired  = "habitId is required"
	MsgHabitNotFound    = "Habit not found"
	MsgHabitNotFoundArc = "Habit not found or already archived"
	MsgInternalError    = "Internal server error"
	MsgHabitArchived    = "Habit archived successfully"
)

// Handler содержит HTTP обработчики привычек.
type Handler struct {
	habitUseCase api.HabitUseCase
}

// NewHandler создает новый экземпляр обработчика привычек.
func NewHandler(habitUseCase api.HabitUseCase) *Handler {
	return &Handler{
		habitUseCase: habitUseCase,
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ownerID достает идентификатор пользователя, установленный auth middleware.
func ownerID(ctx fiber.Ctx) (string, bool) {
	id, ok := ctx.Locals(middleware.UserIDKey).(string)
	return id, ok && id != ""
}

// handleError переводит ошибки уровня приложения в HTTP статус и тело.
// Ошибки валидации отдаются клиенту с исходным текстом сообщения.
func handleError(ctx fiber.Ctx, err error, notFoundMsg string) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	if vErr, ok := validation.AsError(err); ok {
		return sendErrorResponse(ctx, http.StatusBadRequest, vErr.Message)
	}
	if errors.Is(err, entities.ErrHabitNotFound) {
		return sendErrorResponse(ctx, http.StatusNotFound, notFoundMsg)
	}

	log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
	return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
}

// CreateHabit обрабатывает запрос на создание привычки.
func (h *Handler) CreateHabit(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	var req dto.CreateHabitRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	habit, err := h.habitUseCase.CreateHabit(requestCtx, userID, &req)
	if err != nil {
		return handleError(ctx, err, MsgHabitNotFound)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.HabitResponse{Habit: habit}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetHabit обрабатывает запрос на получение одной привычки.
func (h *Handler) GetHabit(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	habitID := ctx.Params("habitId")
	if habitID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgHabitIDRequired)
	}

	habit, err := h.habitUseCase.GetHabit(requestCtx, userID, habitID)
	if err != nil {
		return handleError(ctx, err, MsgHabitNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.HabitResponse{Habit: habit}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListHabits обрабатывает запрос на получение всех активных привычек пользователя.
func (h *Handler) ListHabits(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	habits, err := h.habitUseCase.ListHabits(requestCtx, userID)
	if err != nil {
		return handleError(ctx, err, MsgHabitNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ListHabitsResponse{Habits: habits}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateHabit обрабатывает запрос на частичное обновление привычки.
func (h *Handler) UpdateHabit(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	habitID := ctx.Params("habitId")
	if habitID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgHabitIDRequired)
	}

	var req dto.UpdateHabitRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	habit, err := h.habitUseCase.UpdateHabit(requestCtx, userID, habitID, &req)
	if err != nil {
		return handleError(ctx, err, MsgHabitNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.HabitResponse{Habit: habit}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ArchiveHabit обрабатывает запрос на мягкое удаление привычки.
func (h *Handler) ArchiveHabit(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerArchive)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	habitID := ctx.Params("habitId")
	if habitID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgHabitIDRequired)
	}

	habit, err := h.habitUseCase.ArchiveHabit(requestCtx, userID, habitID)
	if err != nil {
		return handleError(ctx, err, MsgHabitNotFoundArc)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ArchiveHabitResponse{
		Message: MsgHabitArchived,
		Habit:   habit,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
