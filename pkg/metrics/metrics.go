package metrics

import (
	"strconv"
	"time"

	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Content metrics
	ContentGenerations *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	ViewCommits        *prometheus.CounterVec
	ProviderUp         prometheus.Gauge

	// Business metrics
	ExportsCreated    *prometheus.CounterVec
	CheckoutsStarted  *prometheus.CounterVec
	SubscriptionsSold *prometheus.CounterVec
}

// New registers all metrics with the default registry. Call it once per process.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers all metrics with reg
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000},
			},
			[]string{"method", "path"},
		),

		// Content metrics
		ContentGenerations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_generations_total",
				Help: "Total number of diet plans and workouts produced",
			},
			[]string{"category", "source"}, // source: catalog, generated, fallback
		),
		GenerationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "content_generation_duration_seconds",
				Help:    "Time spent producing one diet plan or workout",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"category"},
		),
		ViewCommits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "view_generations_total",
				Help: "Finished view generations by outcome",
			},
			[]string{"view", "outcome"}, // committed, stale
		),
		ProviderUp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "content_provider_up",
			Help: "1 if the last probe of the content model succeeded",
		}),

		// Business metrics
		ExportsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_created_total",
				Help: "Total number of workbook exports",
			},
			[]string{"view"},
		),
		CheckoutsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkouts_started_total",
				Help: "Total number of checkout sessions created",
			},
			[]string{"tier"},
		),
		SubscriptionsSold: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscriptions_sold_total",
				Help: "Total number of subscriptions sold",
			},
			[]string{"tier"}, // pro, elite
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			// Route pattern, so /views/:view stays one series
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, status).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// ObserveGeneration records one finished content generation
func (m *Metrics) ObserveGeneration(category string, source models.ContentSource, duration time.Duration) {
	m.ContentGenerations.WithLabelValues(category, string(source)).Inc()
	m.GenerationDuration.WithLabelValues(category).Observe(duration.Seconds())
}

// ObserveViewCommit records whether a view result was kept or dropped as stale
func (m *Metrics) ObserveViewCommit(view string, committed bool) {
	outcome := "stale"
	if committed {
		outcome = "committed"
	}
	m.ViewCommits.WithLabelValues(view, outcome).Inc()
}

// SetProviderUp updates the provider health gauge
func (m *Metrics) SetProviderUp(up bool) {
	if up {
		m.ProviderUp.Set(1)
		return
	}
	m.ProviderUp.Set(0)
}

// RecordExportCreated increments exports created counter
func (m *Metrics) RecordExportCreated(view string) {
	m.ExportsCreated.WithLabelValues(view).Inc()
}

// RecordCheckoutStarted increments checkouts started counter
func (m *Metrics) RecordCheckoutStarted(tier string) {
	m.CheckoutsStarted.WithLabelValues(tier).Inc()
}

// RecordSubscriptionSold increments subscriptions sold counter
func (m *Metrics) RecordSubscriptionSold(tier string) {
	m.SubscriptionsSold.WithLabelValues(tier).Inc()
}
