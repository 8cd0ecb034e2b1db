package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"

	"postcraft/pkg/logger"
	"postcraft/pkg/tracer"
)

// TraceIDHeader 响应中回传的追踪 ID 头
const TraceIDHeader = "X-Trace-ID"

// Trace OpenTelemetry 追踪中间件，skipPaths 中的路径（探针、指标）不产生 span
func Trace(serviceName string, skipPaths ...string) gin.HandlerFunc {
	if len(skipPaths) == 0 {
		return otelgin.Middleware(serviceName)
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return otelgin.Middleware(serviceName, otelgin.WithFilter(func(r *http.Request) bool {
		_, ok := skip[r.URL.Path]
		return !ok
	}))
}

// TraceContext 将 trace_id/span_id 写入日志上下文与响应头，并把请求 ID 标到 span 上
func TraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		traceID := tracer.TraceID(ctx)
		if traceID == "" {
			c.Next()
			return
		}
		spanID := tracer.SpanID(ctx)

		c.Set("trace_id", traceID)
		c.Set("span_id", spanID)
		if rid := c.GetString("request_id"); rid != "" {
			tracer.SpanFromContext(ctx).SetAttributes(attribute.String("http.request_id", rid))
		}

		ctx = logger.WithContext(ctx, logger.TraceIDKey, traceID)
		ctx = logger.WithContext(ctx, logger.SpanIDKey, spanID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, traceID)

		c.Next()
	}
}
