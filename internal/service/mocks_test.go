package service

import (
	"context"
	"time"

	"quizly/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateQuiz(ctx context.Context, content string, numQuestions int) (*domain.Quiz, error) {
	args := m.Called(ctx, content, numQuestions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

// --- MockQuizCache ---
type MockQuizCache struct {
	mock.Mock
}

func (m *MockQuizCache) Get(ctx context.Context, key string) (*domain.Quiz, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizCache) Set(ctx context.Context, key string, quiz *domain.Quiz, expiration time.Duration) error {
	args := m.Called(ctx, key, quiz, expiration)
	return args.Error(0)
}

func (m *MockQuizCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
