package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"quizly/internal/config"
	"quizly/internal/domain"
	"quizly/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_RecordsRenderedStatus(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telemetry.MetricsEnabled = true
	metric := telemetry.NewMetric(cfg)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestID(), RequestLogger(metric))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error {
		return domain.NewLLMTransportError(errors.New("timeout"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	assert.Equal(t, 1.0, testutil.ToFloat64(metric.HTTPRequestsTotal.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metric.HTTPRequestsTotal.WithLabelValues("GET", "/fail", "500")))
}

func TestRequestLogger_UnmatchedRoute(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telemetry.MetricsEnabled = true
	metric := telemetry.NewMetric(cfg)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger(metric))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(metric.HTTPRequestsTotal.WithLabelValues("GET", UnmatchedRoute, "404")))
	assert.Zero(t, testutil.ToFloat64(metric.HTTPRequestsTotal.WithLabelValues("GET", "/", "404")))
}

func TestRequestLogger_DisabledMetric(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger(telemetry.NewMetric(&config.Config{})))
	app.Get("/", func(c *fiber.Ctx) error { return fiber.ErrTeapot })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
