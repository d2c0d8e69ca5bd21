package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"quizly/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

// quizSchema is the shape the model is asked to produce. Extra properties are
// tolerated and dropped when decoding; the options count is not enforced.
const quizSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "options", "correct_answer"],
        "properties": {
          "question": {"type": "string"},
          "options": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string"}
          },
          "correct_answer": {"type": "string"}
        }
      }
    }
  }
}`

var compiledQuizSchema = mustCompileSchema(quizSchema)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid quiz schema: %v", err))
	}
	return compiled
}

// ParseQuiz decodes a raw model reply. The reply is first parsed into a
// generic tree (LLM_PARSE_ERROR on failure), checked against quizSchema and
// the correct_answer membership rule (LLM_SCHEMA_ERROR), and only then decoded
// into a typed Quiz.
func ParseQuiz(raw string) (*domain.Quiz, error) {
	var tree interface{}
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		return nil, domain.NewLLMParseError(err)
	}

	result, err := compiledQuizSchema.Validate(gojsonschema.NewGoLoader(tree))
	if err != nil {
		return nil, domain.NewLLMSchemaError(err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, domain.NewLLMSchemaError(fmt.Errorf("reply does not match quiz schema: %s", strings.Join(msgs, "; ")))
	}

	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, domain.NewLLMSchemaError(err)
	}
	if quiz.Questions == nil {
		quiz.Questions = []domain.Question{}
	}

	for i, q := range quiz.Questions {
		if !q.HasCorrectOption() {
			return nil, domain.NewLLMSchemaError(fmt.Errorf("question %d: correct_answer %q is not one of the options", i+1, q.CorrectAnswer))
		}
	}
	return &quiz, nil
}
