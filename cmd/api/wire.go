//go:build wireinject
// +build wireinject

package main

import (
	"quizly/internal/adapter/llm"
	"quizly/internal/adapter/quizgen"
	"quizly/internal/cache"
	"quizly/internal/command"
	"quizly/internal/config"
	"quizly/internal/handler"
	"quizly/internal/middleware"
	"quizly/internal/router"
	"quizly/internal/service"
	"quizly/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var generationSet = wire.NewSet(
	wire.FieldsOf(new(*config.Config), "LLM"),
	llm.ProviderSet,
	quizgen.ProviderSet,
	cache.ProviderSet,
	telemetry.ProviderSet,
	service.ProviderSet,
)

// wireApp init application.
func wireApp(*config.Config, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			generationSet,
			middleware.ProviderSet,
			handler.ProviderSet,
			router.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init CLI commands.
func wireCommand(*config.Config, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(generationSet, command.ProviderSet))
}
