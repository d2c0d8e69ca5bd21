package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"quizly/internal/config"
	"quizly/internal/domain"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ProviderSet = wire.NewSet(NewMetric, NewTrace)

// Metric holds the service collectors. A disabled Metric has nil collectors
// and every method on it is a no-op.
type Metric struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GenerationsTotal    *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	CacheLookupsTotal   *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetric registers collectors on a private registry so that several
// instances can coexist in one process.
func NewMetric(cfg *config.Config) *Metric {
	if cfg == nil || !cfg.Telemetry.MetricsEnabled {
		return &Metric{}
	}

	prefix := metricPrefix(cfg.Telemetry.ServiceName)
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metric{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "http_requests_total",
				Help: "Total received HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "http_request_duration_seconds",
				Help:    "HTTP request duration (seconds)",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GenerationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "quiz_generations_total",
				Help: "Quiz generations by outcome",
			},
			[]string{"outcome"},
		),
		GenerationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "quiz_generation_duration_seconds",
				Help:    "Time spent waiting on the inference endpoint (seconds)",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
		),
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "quiz_cache_lookups_total",
				Help: "Generation cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

func metricPrefix(serviceName string) string {
	if serviceName == "" {
		return ""
	}
	return serviceName + "_"
}

// Enabled reports whether collectors were registered.
func (m *Metric) Enabled() bool {
	return m != nil && m.registry != nil
}

// Handler serves the registry in the Prometheus text format.
func (m *Metric) Handler() http.Handler {
	if !m.Enabled() {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest records one finished request.
func (m *Metric) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if !m.Enabled() {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveGeneration records one upstream generation. The outcome label is
// "success" or the lower-cased error code.
func (m *Metric) ObserveGeneration(elapsed time.Duration, err error) {
	if !m.Enabled() {
		return
	}
	m.GenerationsTotal.WithLabelValues(GenerationOutcome(err)).Inc()
	m.GenerationDuration.Observe(elapsed.Seconds())
}

// ObserveCacheLookup records a cache hit, miss or error.
func (m *Metric) ObserveCacheLookup(result string) {
	if !m.Enabled() {
		return
	}
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

// GenerationOutcome maps an error to its outcome label.
func GenerationOutcome(err error) string {
	switch domain.CodeOf(err) {
	case "":
		return "success"
	case domain.CodeLLMTransport:
		return "transport_error"
	case domain.CodeLLMParse:
		return "parse_error"
	case domain.CodeLLMSchema:
		return "schema_error"
	default:
		return "internal_error"
	}
}
