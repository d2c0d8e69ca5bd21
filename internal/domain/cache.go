package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// QuizCache stores generated quizzes by generation key.
type QuizCache interface {
	// Get returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (*Quiz, error)

	// Set overwrites any existing entry. An expiration of 0 keeps the entry
	// until evicted.
	Set(ctx context.Context, key string, quiz *Quiz, expiration time.Duration) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}
