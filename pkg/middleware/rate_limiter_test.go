package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	// 120 requests per minute (2 per second) with burst of 1
	rl := NewRateLimiter(120, 1, nil)

	limiter := rl.GetLimiter("192.168.1.1")

	assert.True(t, limiter.Allow(), "First request should be allowed")
	assert.False(t, limiter.Allow(), "Second request should be blocked")

	// 0.5 seconds per token
	time.Sleep(600 * time.Millisecond)

	assert.True(t, limiter.Allow(), "Third request should be allowed after waiting")
}

func TestRateLimiter_DifferentKeys(t *testing.T) {
	rl := NewRateLimiter(2, 1, nil)

	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	assert.True(t, limiter1.Allow())
	assert.True(t, limiter2.Allow())

	assert.False(t, limiter1.Allow())
	assert.False(t, limiter2.Allow())
}

func serve(rl *RateLimiter, remoteAddr, sessionID string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/views/diet/generate", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sessionID != "" {
		c.Set("session_id", sessionID)
	}

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})
	_ = handler(c)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, 1, RealIPKey)

	rec := serve(rl, "192.168.1.1:12345", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(rl, "192.168.1.1:12346", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")

	rec = serve(rl, "192.168.1.2:12345", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_PerSession(t *testing.T) {
	rl := NewRateLimiter(2, 1, SessionOrIPKey)

	// Same address, different sessions
	assert.Equal(t, http.StatusOK, serve(rl, "10.0.0.1:1000", "session-a").Code)
	assert.Equal(t, http.StatusOK, serve(rl, "10.0.0.1:1000", "session-b").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(rl, "10.0.0.1:1000", "session-a").Code)

	// Anonymous requests from that address have their own bucket
	assert.Equal(t, http.StatusOK, serve(rl, "10.0.0.1:1000", "").Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(60, 5, nil)
	rl.GetLimiter("a")
	rl.GetLimiter("b")
	assert.Equal(t, 2, rl.Len())

	rl.Cleanup(time.Hour)
	assert.Equal(t, 2, rl.Len())

	time.Sleep(10 * time.Millisecond)
	rl.Cleanup(time.Millisecond)
	assert.Equal(t, 0, rl.Len())
}

func TestRateLimiter_RunCleanupStops(t *testing.T) {
	rl := NewRateLimiter(60, 5, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.RunCleanup(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunCleanup did not return after cancel")
	}
}
