// @title Quizly API
// @version 1.0
// @description Generates multiple-choice quizzes from text using a hosted language model.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizly/internal/command"
	"quizly/internal/config"
	"quizly/internal/logger"

	_ "quizly/cmd/api/docs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	envPath string
	conf    *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "quizly",
		Short:         "Quiz generation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&envPath, "env", "e", "", "Environment file, e.g. --env .env")

	command.Register(rootCmd, func() (*command.Command, func(), error) {
		return wireCommand(conf, logger.Get())
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Get().Error("quizly exited with error", zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() error {
	cfg, err := config.LoadConfig(envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	conf = cfg
	return nil
}

func serve() error {
	appLogger := logger.Get()
	defer logger.Sync()

	app, cleanup, err := wireApp(conf, appLogger)
	if err != nil {
		appLogger.Error("Failed to build application", zap.Error(err))
		return err
	}
	defer cleanup()

	errCh := app.Run()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		appLogger.Error("Server stopped unexpectedly", zap.Error(err))
		return err
	case sig := <-quit:
		appLogger.Info("Shutting down server...", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	appLogger.Info("Server exited gracefully")
	return nil
}
