package service

import (
	"context"
	"errors"
	"time"

	"quizly/internal/cache"
	"quizly/internal/config"
	"quizly/internal/domain"
	"quizly/internal/dto"
	"quizly/internal/logger"
	"quizly/internal/telemetry"

	"github.com/google/wire"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ProviderSet = wire.NewSet(NewQuizService)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, content string, numQuestions int) (*dto.QuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	generator domain.QuizGenerator
	cache     domain.QuizCache
	cfg       *config.Config
	metric    *telemetry.Metric
	trace     *telemetry.Trace
	inflight  singleflight.Group
}

// NewQuizService creates a new instance of quizService. cache may be nil, in
// which case every request goes upstream.
func NewQuizService(
	generator domain.QuizGenerator,
	cache domain.QuizCache,
	cfg *config.Config,
	metric *telemetry.Metric,
	trace *telemetry.Trace,
) QuizService {
	return &quizService{
		generator: generator,
		cache:     cache,
		cfg:       cfg,
		metric:    metric,
		trace:     trace,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, content string, numQuestions int) (resp *dto.QuizResponse, err error) {
	ctx, span := s.trace.StartSpan(ctx, "QuizService.GenerateQuiz",
		trace.WithAttributes(
			attribute.String("llm.model", s.cfg.LLM.ModelName),
			attribute.Int("quiz.num_questions", numQuestions),
			attribute.Int("quiz.content_length", len(content)),
		),
	)
	defer func() { s.trace.EndSpan(span, err) }()

	if s.cache == nil {
		quiz, err := s.generate(ctx, content, numQuestions)
		if err != nil {
			return nil, err
		}
		return dto.NewQuizResponse(quiz), nil
	}

	key := cache.GenerationKey(s.cfg.LLM.ModelName, numQuestions, content)
	if quiz := s.lookup(ctx, key); quiz != nil {
		span.SetAttributes(attribute.Bool("quiz.cache_hit", true))
		return dto.NewQuizResponse(quiz), nil
	}

	v, err, shared := s.inflight.Do(key, func() (interface{}, error) {
		quiz, err := s.generate(ctx, content, numQuestions)
		if err != nil {
			return nil, err
		}
		s.store(ctx, key, quiz)
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("QuizService: Joined in-flight generation", zap.String("key", key))
	}
	return dto.NewQuizResponse(v.(*domain.Quiz)), nil
}

func (s *quizService) generate(ctx context.Context, content string, numQuestions int) (*domain.Quiz, error) {
	start := time.Now()
	quiz, err := s.generator.GenerateQuiz(ctx, content, numQuestions)
	s.metric.ObserveGeneration(time.Since(start), err)
	if err != nil {
		var domainErr *domain.DomainError
		if !errors.As(err, &domainErr) {
			err = domain.NewInternalError("Failed to generate quiz", err)
		}
		logger.Get().Error("QuizService: Quiz generation failed",
			zap.Error(err),
			zap.String("code", string(domain.CodeOf(err))),
		)
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) lookup(ctx context.Context, key string) *domain.Quiz {
	quiz, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.metric.ObserveCacheLookup("hit")
		logger.Get().Debug("QuizService: Cache hit", zap.String("key", key))
		return quiz
	case errors.Is(err, domain.ErrCacheMiss):
		s.metric.ObserveCacheLookup("miss")
	default:
		s.metric.ObserveCacheLookup("error")
		logger.Get().Warn("QuizService: Cache lookup failed, generating instead",
			zap.Error(err), zap.String("key", key))
	}
	return nil
}

func (s *quizService) store(ctx context.Context, key string, quiz *domain.Quiz) {
	if err := s.cache.Set(ctx, key, quiz, s.cfg.Cache.TTL); err != nil {
		logger.Get().Warn("QuizService: Failed to cache generated quiz",
			zap.Error(err), zap.String("key", key))
	}
}
