package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizly/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisQuizCache implements domain.QuizCache on a Redis client. Quizzes are
// stored as their JSON encoding.
type RedisQuizCache struct {
	client *redis.Client
}

// NewRedisQuizCache expects a connected *redis.Client.
func NewRedisQuizCache(client *redis.Client) *RedisQuizCache {
	return &RedisQuizCache{client: client}
}

// Get translates redis.Nil to domain.ErrCacheMiss.
func (r *RedisQuizCache) Get(ctx context.Context, key string) (*domain.Quiz, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var quiz domain.Quiz
	if err := json.Unmarshal(payload, &quiz); err != nil {
		return nil, fmt.Errorf("decode cached quiz %s: %w", key, err)
	}
	if quiz.Questions == nil {
		quiz.Questions = []domain.Question{}
	}
	return &quiz, nil
}

func (r *RedisQuizCache) Set(ctx context.Context, key string, quiz *domain.Quiz, expiration time.Duration) error {
	if quiz == nil {
		return fmt.Errorf("refusing to cache nil quiz under %s", key)
	}
	payload, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("encode quiz %s: %w", key, err)
	}
	return r.client.Set(ctx, key, string(payload), expiration).Err()
}

func (r *RedisQuizCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var _ domain.QuizCache = (*RedisQuizCache)(nil)
