package quizgen

import (
	"context"
	"fmt"

	"quizly/internal/config"
	"quizly/internal/domain"

	"github.com/google/wire"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(
	NewHuggingFaceQuizGenerator,
	wire.Bind(new(domain.QuizGenerator), new(*HuggingFaceQuizGenerator)),
)

const (
	maxNewTokens = 1024
	temperature  = 0.7
)

// HuggingFaceQuizGenerator implements domain.QuizGenerator on top of a
// langchaingo model. It holds no per-request state and is safe for concurrent use.
type HuggingFaceQuizGenerator struct {
	llm    llms.Model
	cfg    config.LLMConfig
	logger *zap.Logger
}

// NewHuggingFaceQuizGenerator creates the generator shared by all requests.
func NewHuggingFaceQuizGenerator(llm llms.Model, cfg config.LLMConfig, logger *zap.Logger) (*HuggingFaceQuizGenerator, error) {
	if llm == nil {
		return nil, fmt.Errorf("LLM client cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Initializing HuggingFaceQuizGenerator", zap.String("model", cfg.ModelName))
	return &HuggingFaceQuizGenerator{
		llm:    llm,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// GenerateQuiz makes exactly one upstream call. Transport failures, unparsable
// replies and replies of the wrong shape come back as distinct DomainError codes.
func (g *HuggingFaceQuizGenerator) GenerateQuiz(ctx context.Context, content string, numQuestions int) (*domain.Quiz, error) {
	prompt := BuildPrompt(content, numQuestions)
	g.logger.Debug("Sending quiz generation prompt",
		zap.String("model", g.cfg.ModelName),
		zap.Int("num_questions", numQuestions),
		zap.Int("content_length", len(content)),
	)

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithMaxTokens(maxNewTokens),
		llms.WithTemperature(temperature),
	)
	if err != nil {
		g.logger.Error("LLM call failed", zap.Error(err), zap.String("model", g.cfg.ModelName))
		return nil, domain.NewLLMTransportError(err)
	}
	g.logger.Debug("Raw LLM response received", zap.String("raw_response", raw))

	quiz, err := ParseQuiz(raw)
	if err != nil {
		g.logger.Error("Failed to parse LLM response",
			zap.Error(err),
			zap.String("code", string(domain.CodeOf(err))),
			zap.String("raw_response", raw),
		)
		return nil, err
	}

	if numQuestions > 0 && len(quiz.Questions) != numQuestions {
		g.logger.Warn("LLM returned a different number of questions than requested",
			zap.Int("num_requested", numQuestions),
			zap.Int("num_returned", len(quiz.Questions)),
		)
	}
	g.logger.Info("Quiz generated", zap.Int("num_questions", len(quiz.Questions)))
	return quiz, nil
}

var _ domain.QuizGenerator = (*HuggingFaceQuizGenerator)(nil)
