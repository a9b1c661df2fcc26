// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"notekeeper/internal/app/http/auth"
	"notekeeper/internal/app/http/middleware"
	"notekeeper/internal/app/http/notes"
	"notekeeper/internal/config"
	"notekeeper/internal/ports/api"
	svc "notekeeper/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// Чтение и создание заметок всегда требуют токен; изменение и удаление
// защищаются только при включенных флагах GuardEdit и GuardDelete.
func SetupRouter(
	app *fiber.App,
	cfg *config.HTTPConfig,
	authService api.AuthUseCase,
	noteService api.NoteUseCase,
	tokenSvc svc.TokenService,
) {
	authHandler := auth.NewHandler(authService)
	noteHandler := notes.NewHandler(noteService)
	guard := middleware.NewAuthMiddleware(tokenSvc)

	// Middleware для всех запросов.
	app.Use(cors.New())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Auth routes (публичные).
	authRoutes := app.Group("/auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/users", authHandler.ListUsers)

	// Notes routes.
	apiRoutes := app.Group("/api")
	apiRoutes.Get("/notes/:user", noteHandler.ListNotes, guard)
	apiRoutes.Post("/note/:user", noteHandler.AddNote, guard)

	if cfg.GuardEdit {
		apiRoutes.Put("/note/:user", noteHandler.EditNote, guard)
	} else {
		apiRoutes.Put("/note/:user", noteHandler.EditNote)
	}

	if cfg.GuardDelete {
		apiRoutes.Delete("/note/:user", noteHandler.DeleteNote, guard)
	} else {
		apiRoutes.Delete("/note/:user", noteHandler.DeleteNote)
	}

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route not found",
		})
	})
}
