package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizly/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cachedQuizJSON = `{"questions":[{"question":"Q1","options":["a","b"],"correct_answer":"a"}]}`

func TestRedisQuizCache_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisQuizCache(db)
	ctx := context.Background()
	key := "quizly:quiz:model:1:abc"

	t.Run("Hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(cachedQuizJSON)
		quiz, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.Len(t, quiz.Questions, 1)
		assert.Equal(t, "a", quiz.Questions[0].CorrectAnswer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		quiz, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Nil(t, quiz)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection reset by peer")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("not json")
		_, err := cache.Get(ctx, key)
		assert.ErrorContains(t, err, "decode cached quiz")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisQuizCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisQuizCache(db)
	ctx := context.Background()
	key := "quizly:quiz:model:1:abc"
	quiz := &domain.Quiz{Questions: []domain.Question{{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: "a"}}}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSet(key, cachedQuizJSON, time.Hour).SetVal("OK")
		assert.NoError(t, cache.Set(ctx, key, quiz, time.Hour))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("OOM command not allowed")
		mock.ExpectSet(key, cachedQuizJSON, time.Hour).SetErr(redisErr)
		assert.ErrorIs(t, cache.Set(ctx, key, quiz, time.Hour), redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NilQuiz", func(t *testing.T) {
		assert.Error(t, cache.Set(ctx, key, nil, time.Hour))
	})
}

func TestRedisQuizCache_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisQuizCache(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, cache.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("dial tcp: connection refused"))
	assert.Error(t, cache.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
