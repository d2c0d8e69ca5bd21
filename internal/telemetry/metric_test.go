package telemetry

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizly/internal/config"
	"quizly/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Telemetry.ServiceName = "quizly"
	cfg.Telemetry.MetricsEnabled = true
	return cfg
}

func TestNewMetric_Disabled(t *testing.T) {
	m := NewMetric(&config.Config{})
	assert.False(t, m.Enabled())

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/health", 200, time.Millisecond)
		m.ObserveGeneration(time.Second, nil)
		m.ObserveCacheLookup("hit")
	})

	var nilMetric *Metric
	assert.False(t, nilMetric.Enabled())
	assert.NotPanics(t, func() { nilMetric.ObserveGeneration(time.Second, nil) })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetric_ObserveGeneration(t *testing.T) {
	m := NewMetric(enabledConfig())
	require.True(t, m.Enabled())

	m.ObserveGeneration(2*time.Second, nil)
	m.ObserveGeneration(time.Second, domain.NewLLMTransportError(errors.New("timeout")))
	m.ObserveGeneration(time.Second, domain.NewLLMParseError(errors.New("bad json")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("transport_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("parse_error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("schema_error")))
}

func TestMetric_Handler(t *testing.T) {
	m := NewMetric(enabledConfig())
	m.ObserveHTTPRequest("POST", "/api/v1/quiz/generate", 200, 150*time.Millisecond)
	m.ObserveCacheLookup("miss")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `quizly_http_requests_total{method="POST",route="/api/v1/quiz/generate",status="200"} 1`)
	assert.Contains(t, string(body), `quizly_quiz_cache_lookups_total{result="miss"} 1`)
}

func TestNewMetric_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetric(enabledConfig())
		NewMetric(enabledConfig())
	})
}

func TestGenerationOutcome(t *testing.T) {
	assert.Equal(t, "success", GenerationOutcome(nil))
	assert.Equal(t, "schema_error", GenerationOutcome(domain.NewLLMSchemaError(errors.New("x"))))
	assert.Equal(t, "internal_error", GenerationOutcome(errors.New("x")))
}
