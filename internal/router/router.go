package router

import (
	"quizly/internal/config"
	"quizly/internal/handler"
	"quizly/internal/middleware"
	"quizly/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewRouter)

// NewRouter builds the Fiber application with every route and middleware.
func NewRouter(
	cfg *config.Config,
	metric *telemetry.Metric,
	validationMiddleware *middleware.ValidationMiddleware,
	quizHandler *handler.QuizHandler,
	healthHandler *handler.HealthHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "quizly",
		ErrorHandler:          middleware.ErrorHandler(),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(metric))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		AllowHeaders:  "*",
		ExposeHeaders: middleware.RequestIDHeader,
	}))
	app.Use(recover.New())

	app.Get("/health", healthHandler.Check)

	if metric.Enabled() {
		app.Get("/metrics", adaptor.HTTPHandler(metric.Handler()))
	}
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	api := app.Group("/api/v1")
	api.Post("/quiz/generate", validationMiddleware.ValidateGenerateQuizRequest(), quizHandler.GenerateQuiz)

	return app
}
