package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/holyfit/holyfit-api/pkg/api/middleware"
	"github.com/holyfit/holyfit-api/pkg/auth"
	"github.com/holyfit/holyfit-api/pkg/billing"
	"github.com/holyfit/holyfit-api/pkg/cache"
	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/holyfit/holyfit-api/pkg/dashboard"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/holyfit/holyfit-api/pkg/views"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const (
	testSecret        = "test-secret-key-minimum-32-characters-long"
	testWebhookSecret = "whsec_test_secret"
)

type countingRecorder struct {
	exports   []string
	checkouts []string
}

func (r *countingRecorder) RecordExportCreated(view string) { r.exports = append(r.exports, view) }
func (r *countingRecorder) RecordCheckoutStarted(tier string) {
	r.checkouts = append(r.checkouts, tier)
}

// testServer wires every handler against an in-memory Redis and the catalog provider
type testServer struct {
	e        *echo.Echo
	mr       *miniredis.Miniredis
	views    *views.Service
	billing  *billing.Service
	recorder *countingRecorder
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = client.Close() })

	log := logger.Nop()
	provider := content.NewProvider(content.Config{DefaultLanguage: content.Korean}, nil, nil, log)
	viewService := views.NewService(views.NewStore(client, time.Hour), provider, 5*time.Second, nil, log)
	billingService := billing.NewService(&billing.StripeConfig{WebhookSecret: testWebhookSecret}, billing.NewRedisTierStore(client), log)
	recorder := &countingRecorder{}

	contentHandler := NewContentHandler(provider, 5*time.Second)
	viewHandler := NewViewHandler(viewService, content.Korean, recorder)
	billingHandler := NewBillingHandler(billingService, recorder)
	dashboardHandler := NewDashboardHandler(dashboard.NewService(billingService))
	sessionHandler := NewSessionHandler(testSecret, 1)
	healthHandler := NewHealthHandler(client, provider, billingService, nil)

	e := echo.New()
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/version", healthHandler.Version)
	v1.GET("/ping", healthHandler.Ping)
	v1.GET("/options", contentHandler.GetOptions)
	v1.GET("/diet-plans", contentHandler.GetDietPlan)
	v1.GET("/workouts", contentHandler.GetWorkout)
	v1.GET("/subscriptions/tiers", billingHandler.GetTiers)
	v1.POST("/sessions", sessionHandler.CreateSession)
	v1.POST("/webhook/stripe", billingHandler.StripeWebhook)

	session := v1.Group("", middleware.RequireSession(testSecret))
	session.GET("/dashboard", dashboardHandler.GetDashboard)
	session.GET("/subscriptions/current", billingHandler.GetCurrentTier)
	session.POST("/billing/checkout", billingHandler.CreateCheckout)
	session.POST("/views/:view/generate", viewHandler.Generate)
	session.GET("/views/:view", viewHandler.GetState)
	session.GET("/views/:view/export", viewHandler.Export)
	session.DELETE("/views", viewHandler.Reset)

	return &testServer{e: e, mr: mr, views: viewService, billing: billingService, recorder: recorder}
}

// session issues a token for a fresh session
func (s *testServer) session(t *testing.T) (token, id string) {
	t.Helper()
	sess, err := auth.NewSession(testSecret, 1)
	require.NoError(t, err)
	return sess.Token, sess.ID
}

// do performs a request; body is sent as JSON when non-empty
func (s *testServer) do(method, target, token, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
