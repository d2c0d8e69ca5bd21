package middleware

import (
	"encoding/json"
	"errors"

	"quizly/internal/domain"
	"quizly/internal/dto"
	"quizly/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewValidationMiddleware, validation.NewValidator)

// GenerateQuizRequestKey stores the decoded *dto.GenerateQuizRequest in fiber.Ctx locals.
const GenerateQuizRequestKey = "validated_generate_quiz_request"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidateGenerateQuizRequest decodes the JSON body regardless of Content-Type.
// A body that does not decode, lacks content or sends num_questions as null is
// rejected before the handler runs. An omitted num_questions defaults later.
func (vm *ValidationMiddleware) ValidateGenerateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerateQuizRequest
		if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
			return decodeErrors(err)
		}

		if req.NumQuestions == nil && isExplicitNull(c, "num_questions") {
			return domain.ValidationErrors{domain.NewInvalidFormatError("num_questions", nil)}
		}

		if errs := vm.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}

		c.Locals(GenerateQuizRequestKey, &req)
		return c.Next()
	}
}

func decodeErrors(err error) domain.ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.ValidationErrors{domain.NewInvalidFormatError(typeErr.Field, typeErr.Value)}
	}
	return domain.ValidationErrors{domain.NewInvalidBodyError("malformed JSON body: " + err.Error())}
}

// isExplicitNull reports whether the body carries key with a JSON null value.
func isExplicitNull(c *fiber.Ctx, key string) bool {
	var fields map[string]json.RawMessage
	if err := c.App().Config().JSONDecoder(c.Body(), &fields); err != nil {
		return false
	}
	raw, ok := fields[key]
	return ok && string(raw) == "null"
}
