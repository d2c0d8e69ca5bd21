package handler

import (
	"quizly/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness. It has no dependencies so it answers even
// when the inference endpoint is down.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check godoc
// @Summary Health check
// @Description Reports that the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "healthy"})
}
