package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"postcraft/internal/domain/repository"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	version string
	// checks 就绪检查依赖；Redis 未启用时为空
	checks map[string]repository.HealthChecker
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(version string, checks map[string]repository.HealthChecker) *HealthHandler {
	return &HealthHandler{
		version: version,
		checks:  checks,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready 就绪检查接口
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} readinessResponse
// @Failure 503 {object} readinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := readinessResponse{
		Status: "ok",
		Checks: make(map[string]*readinessCheck, len(h.checks)),
	}
	for name, checker := range h.checks {
		check := &readinessCheck{Status: "ok"}
		start := time.Now()
		err := checker.HealthCheck(ctx)
		check.LatencyMs = time.Since(start).Milliseconds()
		if err != nil {
			check.Status = "error"
			check.Error = err.Error()
			resp.Status = "not_ready"
		}
		resp.Checks[name] = check
	}

	if resp.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
