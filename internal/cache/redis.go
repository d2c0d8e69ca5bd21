package cache

import (
	"context"
	"fmt"
	"time"

	"quizly/internal/adapter"
	"quizly/internal/config"
	"quizly/internal/domain"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewQuizCache)

const pingTimeout = 3 * time.Second

// NewRedisClient creates a Redis client and pings the server to ensure connectivity.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis address is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}
	return client, nil
}

// NewQuizCache returns a nil cache when caching is disabled. An unreachable
// Redis is logged and also yields a nil cache so generation keeps working.
func NewQuizCache(cfg *config.Config, logger *zap.Logger) (domain.QuizCache, func(), error) {
	noop := func() {}
	if !cfg.CacheEnabled() {
		logger.Info("Generation cache disabled")
		return nil, noop, nil
	}

	client, err := NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Warn("Generation cache unavailable, continuing without it", zap.Error(err))
		return nil, noop, nil
	}
	logger.Info("Generation cache enabled",
		zap.String("address", cfg.Redis.Address),
		zap.Duration("ttl", cfg.Cache.TTL),
	)

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error("Failed to close Redis client", zap.Error(err))
		}
	}
	return adapter.NewRedisQuizCache(client), cleanup, nil
}
