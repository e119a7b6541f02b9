// Package auth содержит HTTP обработчики для регистрации и входа пользователей.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gohabits/internal/habits/app/dto"
	"gohabits/internal/habits/domain/entities"
	"gohabits/internal/habits/domain/services"
	"gohabits/internal/habits/ports/api"
	"gohabits/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Тексты ошибок, отдаваемые клиенту.
const (
	MsgMissingFields     = "Missing fields"
	MsgUserAlreadyExists = "User already exists"
	MsgUserDoesNotExist  = "User does not exist"
	MsgIncorrectPassword = "Incorrect password"
	MsgInternalError     = "Internal server error"
	MsgLoginSuccessful   = "User logged in successfully"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingFields)
	}

	user, err := h.authUseCase.Register(requestCtx, req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingFields)
		case errors.Is(err, entities.ErrUserAlreadyExists):
			return sendErrorResponse(ctx, http.StatusConflict, MsgUserAlreadyExists)
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingFields)
	}

	token, _, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingFields)
		case errors.Is(err, entities.ErrUserNotFound):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserDoesNotExist)
		case errors.Is(err, services.ErrInvalidCredentials):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgIncorrectPassword)
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.LoginResponse{
		Message: MsgLoginSuccessful,
		Token:   token,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
