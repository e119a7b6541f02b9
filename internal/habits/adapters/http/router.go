// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"gohabits/internal/habits/adapters/http/auth"
	"gohabits/internal/habits/adapters/http/habits"
	"gohabits/internal/habits/adapters/http/middleware"
	"gohabits/internal/habits/ports/api"
	"gohabits/internal/habits/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, habitUseCase api.HabitUseCase, tokenService services.TokenService) {
	authHandler := auth.NewHandler(authUseCase)
	habitsHandler := habits.NewHandler(habitUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (публичные).
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Маршруты привычек (требуют авторизации).
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	app.Post("/createHabit", habitsHandler.CreateHabit, authMiddleware)

	habitRoutes := app.Group("/habits")
	habitRoutes.Use(authMiddleware)
	habitRoutes.Get("/", habitsHandler.ListHabits)
	habitRoutes.Get("/:habitId", habitsHandler.GetHabit)
	habitRoutes.Patch("/:habitId", habitsHandler.UpdateHabit)
	habitRoutes.Delete("/:habitId", habitsHandler.ArchiveHabit)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
