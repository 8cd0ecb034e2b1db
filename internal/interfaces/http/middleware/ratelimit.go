package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "postcraft/pkg/errors"
	"postcraft/pkg/logger"
	"postcraft/pkg/metrics"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// Enabled 是否启用限流
	Enabled bool
	// Limit 窗口内允许的请求数
	Limit int
	// Window 窗口长度
	Window time.Duration
	// KeyFunc 根据请求生成限流主体，默认取客户端 IP
	KeyFunc func(c *gin.Context) string
}

// RateLimiter 限流器接口
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit 限流中间件；限流器故障时放行
func RateLimit(cfg RateLimitConfig, limiter RateLimiter, buildKey func(clientID, endpoint string) string) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	if cfg.Limit <= 0 {
		cfg.Limit = 20
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		path := c.FullPath()
		key := buildKey(cfg.KeyFunc(c), path)

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg.Limit, cfg.Window)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(path).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":     http.StatusTooManyRequests,
				"message":  apperrors.ErrTooManyRequests.Message,
				"trace_id": c.GetString("trace_id"),
			})
			return
		}

		c.Next()
	}
}
