package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func TestObserveGeneration(t *testing.T) {
	m := newTestMetrics()

	m.ObserveGeneration("diet", models.SourceGenerated, 1500*time.Millisecond)
	m.ObserveGeneration("diet", models.SourceFallback, 10*time.Millisecond)
	m.ObserveGeneration("diet", models.SourceFallback, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContentGenerations.WithLabelValues("diet", "generated")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ContentGenerations.WithLabelValues("diet", "fallback")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.GenerationDuration))
}

func TestObserveViewCommit(t *testing.T) {
	m := newTestMetrics()

	m.ObserveViewCommit("workout", true)
	m.ObserveViewCommit("workout", false)
	m.ObserveViewCommit("workout", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ViewCommits.WithLabelValues("workout", "committed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ViewCommits.WithLabelValues("workout", "stale")))
}

func TestSetProviderUp(t *testing.T) {
	m := newTestMetrics()

	m.SetProviderUp(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderUp))
	m.SetProviderUp(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ProviderUp))
}

func TestBusinessCounters(t *testing.T) {
	m := newTestMetrics()

	m.RecordExportCreated("diet")
	m.RecordCheckoutStarted("pro")
	m.RecordSubscriptionSold("elite")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsCreated.WithLabelValues("diet")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckoutsStarted.WithLabelValues("pro")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubscriptionsSold.WithLabelValues("elite")))
}

func TestMiddleware(t *testing.T) {
	m := newTestMetrics()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/views/:view", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for _, view := range []string{"diet", "workout"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/views/"+view, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Both requests share the route pattern label
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/views/:view", "200")))
}
