package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"postcraft/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceContext_SetsTraceHeaders(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	var loggedTraceID any
	r := gin.New()
	r.Use(Trace("postcraft-test"), TraceContext())
	r.GET("/x", func(c *gin.Context) {
		loggedTraceID = c.Request.Context().Value(logger.TraceIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	traceID := w.Header().Get(TraceIDHeader)
	assert.Len(t, traceID, 32)
	assert.Equal(t, traceID, loggedTraceID)
}

func TestTrace_SkipsProbePaths(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	r := gin.New()
	r.Use(RequestID(), Trace("postcraft-test", "/health"), TraceContext())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, w.Header().Get(TraceIDHeader))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, w.Header().Get(TraceIDHeader), 32)
}

type staticLimiter struct {
	allowed bool
	err     error
}

func (s staticLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return s.allowed, s.err
}

func TestRateLimit(t *testing.T) {
	build := func(cfg RateLimitConfig, limiter RateLimiter) *gin.Engine {
		r := gin.New()
		r.GET("/x", RateLimit(cfg, limiter, func(clientID, endpoint string) string { return clientID + endpoint }), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}
	get := func(r *gin.Engine) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	enabled := RateLimitConfig{Enabled: true}
	assert.Equal(t, http.StatusOK, get(build(enabled, staticLimiter{allowed: true})))
	assert.Equal(t, http.StatusTooManyRequests, get(build(enabled, staticLimiter{allowed: false})))
	assert.Equal(t, http.StatusOK, get(build(enabled, staticLimiter{err: errors.New("down")})))
	assert.Equal(t, http.StatusOK, get(build(RateLimitConfig{Enabled: false}, staticLimiter{allowed: false})))
	assert.Equal(t, http.StatusOK, get(build(enabled, nil)))
}

func TestAllowAll(t *testing.T) {
	assert.True(t, allowAll(nil))
	assert.True(t, allowAll([]string{"https://a.example", "*"}))
	assert.False(t, allowAll([]string{"https://a.example"}))
}

func TestCORS_SpecificOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS(CORSConfig{AllowedOrigins: []string{"https://app.example.com"}}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
