package middleware

import (
	"errors"
	"net/http"

	"quizly/internal/domain"
	"quizly/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code" example:"LLM_TRANSPORT_ERROR"`
	Detail  string                 `json:"detail" example:"Failed to generate quiz: unexpected status code: 503"`
	Status  int                    `json:"status" example:"500"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code   string                   `json:"code" example:"VALIDATION_ERROR"`
	Detail string                   `json:"detail" example:"Request validation failed"`
	Status int                      `json:"status" example:"422"`
	Errors []domain.ValidationError `json:"errors"`
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get().With(zap.String("request_id", RequestIDFrom(c)))

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
				zap.Error(validationErrs),
			)
			return c.Status(http.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
				Code:   string(domain.CodeValidation),
				Detail: "Request validation failed",
				Status: http.StatusUnprocessableEntity,
				Errors: validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			logger.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Cause),
			)

			response := ErrorResponse{
				Code:   string(domainErr.Code),
				Detail: domainErr.Error(),
				Status: statusCode,
			}
			if len(domainErr.Context) > 0 {
				response.Details = domainErr.Context
			}
			return c.Status(statusCode).JSON(response)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:   "HTTP_ERROR",
				Detail: fiberErr.Message,
				Status: fiberErr.Code,
			})
		}

		logger.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:   string(domain.CodeInternal),
			Detail: err.Error(),
			Status: http.StatusInternalServerError,
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes. Every
// generation failure is a 500.
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat:
		return http.StatusUnprocessableEntity
	case domain.CodeLLMTransport, domain.CodeLLMParse, domain.CodeLLMSchema:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
