package handler

import (
	"quizly/internal/domain"
	"quizly/internal/dto"
	"quizly/internal/logger"
	"quizly/internal/middleware"
	"quizly/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet collects the HTTP handlers.
var ProviderSet = wire.NewSet(NewQuizHandler, NewHealthHandler)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a multiple-choice quiz
// @Description Sends the content to the configured language model and returns the quiz it produces
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Content and number of questions"
// @Success 200 {object} dto.QuizResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/v1/quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.GenerateQuizRequestKey).(*dto.GenerateQuizRequest)
	if !ok || req == nil {
		return domain.NewInternalError("generate quiz request was not validated", nil)
	}

	numQuestions := req.QuestionCount()
	resp, err := h.service.GenerateQuiz(c.UserContext(), *req.Content, numQuestions)
	if err != nil {
		logger.Get().Error("Failed to generate quiz",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Int("num_questions", numQuestions),
		)
		return err // Rendered by ErrorHandler
	}

	return c.JSON(resp)
}
