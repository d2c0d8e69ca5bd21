package dto

import "quizly/internal/domain"

// DefaultNumQuestions is used when a request omits num_questions.
const DefaultNumQuestions = 5

// GenerateQuizRequest is the body of POST /api/v1/quiz/generate
// @Description Content to build a quiz from
type GenerateQuizRequest struct {
	Content      *string `json:"content" validate:"required" example:"Photosynthesis converts light into energy."`
	NumQuestions *int    `json:"num_questions,omitempty" example:"5"`
}

// QuestionCount returns the requested count, or DefaultNumQuestions when omitted.
func (r *GenerateQuizRequest) QuestionCount() int {
	if r.NumQuestions == nil {
		return DefaultNumQuestions
	}
	return *r.NumQuestions
}

// QuizQuestion represents a generated question in the API response
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuizResponse represents a generated quiz in the API response
// @Description Generated multiple-choice quiz
type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

// NewQuizResponse copies a domain quiz into its wire shape. Questions is never
// nil so an empty quiz serializes as [].
func NewQuizResponse(quiz *domain.Quiz) *QuizResponse {
	resp := &QuizResponse{Questions: []QuizQuestion{}}
	if quiz == nil {
		return resp
	}
	for _, q := range quiz.Questions {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		resp.Questions = append(resp.Questions, QuizQuestion{
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return resp
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
