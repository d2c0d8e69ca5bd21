package validation

import (
	"errors"
	"reflect"
	"strings"

	"quizly/internal/domain"
	"quizly/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateGenerateQuizRequest checks field presence only. Empty content and
// non-positive counts are accepted and left to the model.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	if req == nil {
		return domain.ValidationErrors{domain.NewInvalidBodyError("request body is required")}
	}
	return v.toValidationErrors(v.validate.Struct(req))
}

func (v *Validator) toValidationErrors(err error) domain.ValidationErrors {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewInvalidBodyError(err.Error())}
	}

	var errs domain.ValidationErrors
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			errs = append(errs, domain.NewMissingFieldError(fe.Field()))
		default:
			errs = append(errs, domain.NewInvalidFormatError(fe.Field(), fe.Value()))
		}
	}
	return errs
}
