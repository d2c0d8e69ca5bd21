package middleware

import (
	"time"

	"quizly/internal/logger"
	"quizly/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UnmatchedRoute labels requests that no route handled.
const UnmatchedRoute = "unmatched"

// RequestLogger logs every finished request and records it in metric. Errors
// from the chain are rendered here so the logged status is the one sent.
func RequestLogger(metric *telemetry.Metric) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		if status == fiber.StatusNotFound {
			route = UnmatchedRoute
		}

		fields := []zap.Field{
			zap.String("request_id", RequestIDFrom(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
			zap.String("ip", c.IP()),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Get().Error("Request failed", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Get().Warn("Request rejected", fields...)
		default:
			logger.Get().Info("Request completed", fields...)
		}

		metric.ObserveHTTPRequest(c.Method(), route, status, elapsed)
		return nil
	}
}
