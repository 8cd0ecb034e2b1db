package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"postcraft/internal/domain/entity"
	"postcraft/internal/domain/repository"
	"postcraft/internal/interfaces/http/dto"
	apperrors "postcraft/pkg/errors"
	"postcraft/pkg/logger"
	"postcraft/pkg/metrics"
)

// maxWorkspaceEntryBytes 单个条目上限
const maxWorkspaceEntryBytes = 1 << 20

// WorkspaceHandler 工作区（对话、草稿、选项、资料）读写
type WorkspaceHandler struct {
	repo repository.WorkspaceRepository
}

// NewWorkspaceHandler 创建工作区处理器
func NewWorkspaceHandler(repo repository.WorkspaceRepository) *WorkspaceHandler {
	return &WorkspaceHandler{repo: repo}
}

// GetEntry 读取条目
// @Summary 读取工作区条目
// @Tags Workspaces
// @Produce json
// @Param wid path string true "工作区 ID"
// @Param key path string true "条目：messages/profile/opts/draft"
// @Success 200 {object} dto.Response[dto.WorkspaceEntryResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/workspaces/{wid}/{key} [get]
func (h *WorkspaceHandler) GetEntry(c *gin.Context) {
	wid, key, ok := h.parsePath(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	val, err := h.repo.Get(ctx, wid, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.WorkspaceOpsTotal.WithLabelValues("get", string(key), "miss").Inc()
			dto.AppError(c, apperrors.ErrNotFound.WithDetail("workspace entry not found"))
			return
		}
		metrics.WorkspaceOpsTotal.WithLabelValues("get", string(key), "error").Inc()
		logger.Error(ctx, "failed to read workspace entry", err, "key", key)
		dto.AppError(c, apperrors.ErrCache.WithError(err))
		return
	}

	metrics.WorkspaceOpsTotal.WithLabelValues("get", string(key), "success").Inc()
	dto.Success(c, &dto.WorkspaceEntryResponse{
		WorkspaceID: wid,
		Key:         string(key),
		Value:       json.RawMessage(val),
	})
}

// PutEntry 覆盖写入条目，body 为任意合法 JSON
// @Summary 写入工作区条目
// @Tags Workspaces
// @Accept json
// @Param wid path string true "工作区 ID"
// @Param key path string true "条目：messages/profile/opts/draft"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/workspaces/{wid}/{key} [put]
func (h *WorkspaceHandler) PutEntry(c *gin.Context) {
	wid, key, ok := h.parsePath(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWorkspaceEntryBytes+1))
	if err != nil {
		dto.AppError(c, apperrors.InvalidRequest("failed to read body: %v", err))
		return
	}
	if len(body) > maxWorkspaceEntryBytes {
		dto.AppError(c, apperrors.InvalidRequest("entry exceeds %d bytes", maxWorkspaceEntryBytes))
		return
	}
	if !json.Valid(body) {
		dto.AppError(c, apperrors.InvalidRequest("body must be valid JSON"))
		return
	}

	if err := h.repo.Put(ctx, wid, key, body); err != nil {
		metrics.WorkspaceOpsTotal.WithLabelValues("put", string(key), "error").Inc()
		logger.Error(ctx, "failed to write workspace entry", err, "key", key)
		dto.AppError(c, apperrors.ErrCache.WithError(err))
		return
	}
	metrics.WorkspaceOpsTotal.WithLabelValues("put", string(key), "success").Inc()
	dto.NoContent(c)
}

// DeleteEntry 删除单个条目
// @Summary 删除工作区条目
// @Tags Workspaces
// @Param wid path string true "工作区 ID"
// @Param key path string true "条目"
// @Success 204
// @Router /v1/workspaces/{wid}/{key} [delete]
func (h *WorkspaceHandler) DeleteEntry(c *gin.Context) {
	wid, key, ok := h.parsePath(c)
	if !ok {
		return
	}
	h.delete(c, wid, "delete", key)
}

// Reset 清空对话与草稿，保留选项与资料
// @Summary 重置工作区
// @Tags Workspaces
// @Param wid path string true "工作区 ID"
// @Success 204
// @Router /v1/workspaces/{wid} [delete]
func (h *WorkspaceHandler) Reset(c *gin.Context) {
	wid, ok := workspaceID(c)
	if !ok {
		return
	}
	h.delete(c, wid, "reset", entity.ResetKeys...)
}

func (h *WorkspaceHandler) delete(c *gin.Context, wid, op string, keys ...entity.WorkspaceKey) {
	ctx := c.Request.Context()
	label := op
	if len(keys) == 1 {
		label = string(keys[0])
	}
	if err := h.repo.Delete(ctx, wid, keys...); err != nil {
		metrics.WorkspaceOpsTotal.WithLabelValues(op, label, "error").Inc()
		logger.Error(ctx, "failed to delete workspace entries", err, "op", op)
		dto.AppError(c, apperrors.ErrCache.WithError(err))
		return
	}
	metrics.WorkspaceOpsTotal.WithLabelValues(op, label, "success").Inc()
	dto.NoContent(c)
}

func (h *WorkspaceHandler) parsePath(c *gin.Context) (string, entity.WorkspaceKey, bool) {
	wid, ok := workspaceID(c)
	if !ok {
		return "", "", false
	}
	key, err := entity.ParseWorkspaceKey(c.Param("key"))
	if err != nil {
		dto.AppError(c, apperrors.InvalidRequest("%v", err))
		return "", "", false
	}
	return wid, key, true
}

func workspaceID(c *gin.Context) (string, bool) {
	wid := strings.TrimSpace(c.Param("wid"))
	if wid == "" || len(wid) > 64 || strings.ContainsAny(wid, ":/ ") {
		dto.AppError(c, apperrors.InvalidRequest("invalid workspace id"))
		return "", false
	}
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), logger.WorkspaceIDKey, wid))
	return wid, true
}

