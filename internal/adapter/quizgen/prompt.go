package quizgen

import "fmt"

const promptTemplate = `Generate a multiple choice quiz with %d questions based on this content:
%s

Return ONLY a JSON object with this exact structure:
{
    "questions": [
        {
            "question": "question text",
            "options": ["option1", "option2", "option3", "option4"],
            "correct_answer": "correct option"
        }
    ]
}
`

// BuildPrompt interpolates the count and the raw content into the fixed
// template. Content is neither escaped nor truncated.
func BuildPrompt(content string, numQuestions int) string {
	return fmt.Sprintf(promptTemplate, numQuestions, content)
}
