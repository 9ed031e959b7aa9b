// Package http собирает HTTP API сервиса заметок.
package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"gonotes/internal/notes/adapters/http/auth"
	"gonotes/internal/notes/adapters/http/health"
	"gonotes/internal/notes/adapters/http/httperr"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/adapters/http/notes"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Metrics объединяет учет запросов, операций и экспорт метрик.
type Metrics interface {
	middleware.RequestObserver
	notes.OperationRecorder
	Handler() http.Handler
}

// Deps содержит зависимости HTTP API.
type Deps struct {
	Logger       *logger.Logger
	Auth         api.AuthUseCase
	Users        api.UserUseCase
	Notes        api.NoteUseCase
	Metrics      Metrics
	Pingers      map[string]health.Pinger
	AllowOrigins []string
}

// ServerConfig содержит параметры fiber.App.
type ServerConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// NewApp создает fiber.App с единым обработчиком ошибок.
func NewApp(cfg ServerConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "gonotes",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: httperr.ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Deps) {
	authHandler := auth.NewHandler(deps.Auth)
	notesHandler := notes.NewHandler(deps.Notes, deps.Metrics)
	healthHandler := health.NewHandler(deps.Pingers)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowOrigins,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:     []string{fiber.HeaderAuthorization, fiber.HeaderContentType},
		AllowCredentials: true,
	}))
	app.Use(middleware.NewRequestContextMiddleware(deps.Logger))
	if deps.Metrics != nil {
		app.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", healthHandler.Check)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	requireUser := middleware.NewAuthMiddleware(deps.Users)

	// Маршруты без завершающего слеша тоже совпадают: StrictRouting выключен.
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/me", authHandler.Me, requireUser)

	notesRoutes := app.Group("/notes", requireUser)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:id", notesHandler.GetNote)
	notesRoutes.Put("/:id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:id", notesHandler.DeleteNote)

	app.Use(httperr.NotFound)
}
