package domain

import "context"

// QuizGenerator turns free-form content into a multiple-choice quiz.
type QuizGenerator interface {
	// GenerateQuiz asks the model for numQuestions questions about content.
	// Neither argument is guarded; both are passed to the prompt verbatim.
	GenerateQuiz(ctx context.Context, content string, numQuestions int) (*Quiz, error)
}
