package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"quizly/internal/service"

	"go.uber.org/zap"
)

// GenerateHandler runs one generation outside the HTTP server.
type GenerateHandler struct {
	service service.QuizService
	logger  *zap.Logger
}

func NewGenerateHandler(service service.QuizService, logger *zap.Logger) *GenerateHandler {
	return &GenerateHandler{service: service, logger: logger}
}

// Generate reads content from file, or from stdin when file is "-", and
// writes the quiz as indented JSON to out.
func (h *GenerateHandler) Generate(ctx context.Context, file string, numQuestions int, stdin io.Reader, out io.Writer) error {
	content, err := readContent(file, stdin)
	if err != nil {
		return err
	}

	h.logger.Debug("Generating quiz from CLI",
		zap.String("file", file),
		zap.Int("num_questions", numQuestions),
		zap.Int("content_length", len(content)),
	)
	quiz, err := h.service.GenerateQuiz(ctx, content, numQuestions)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(quiz)
}

func readContent(file string, stdin io.Reader) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}
