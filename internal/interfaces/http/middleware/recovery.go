// Package middleware 提供 HTTP 中间件：恢复、请求 ID、CORS、追踪、指标与限流
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "postcraft/pkg/errors"
	"postcraft/pkg/logger"
)

// Recovery Panic 恢复中间件
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", err),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":       http.StatusInternalServerError,
					"message":    apperrors.ErrInternalError.Message,
					"error_code": apperrors.CodeInternalError,
					"trace_id":   c.GetString("trace_id"),
				})
			}
		}()

		c.Next()
	}
}
