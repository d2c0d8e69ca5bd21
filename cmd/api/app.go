package main

import (
	"context"
	"runtime"
	"strconv"

	"quizly/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	conf   *config.Config
	logger *zap.Logger
	Router *fiber.App
}

func newApp(conf *config.Config, logger *zap.Logger, router *fiber.App) *App {
	return &App{
		conf:   conf,
		logger: logger,
		Router: router,
	}
}

// Run starts listening in the background. The returned channel receives the
// listener error if the server stops on its own.
func (a *App) Run() <-chan error {
	addr := ":" + strconv.Itoa(a.conf.Server.Port)
	a.logger.Info("Starting server",
		zap.String("addr", addr),
		zap.String("env", a.conf.Env),
		zap.String("model", a.conf.LLM.ModelName),
		zap.Bool("cache_enabled", a.conf.CacheEnabled()),
		zap.String("go_version", runtime.Version()),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := a.Router.Listen(addr); err != nil {
			errCh <- err
		}
	}()
	return errCh
}

func (a *App) Stop(ctx context.Context) error {
	return a.Router.ShutdownWithContext(ctx)
}
