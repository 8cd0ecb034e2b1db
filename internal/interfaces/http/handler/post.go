// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"postcraft/internal/domain/entity"
	"postcraft/internal/interfaces/http/dto"
	apperrors "postcraft/pkg/errors"
)

// PostGenerator 生成服务的最小依赖
type PostGenerator interface {
	Generate(ctx context.Context, conv *entity.Conversation, opts entity.GenerationOptions, profile *entity.ProfileContext) (*entity.GeneratedPost, error)
}

// PostHandler 帖子生成处理器
type PostHandler struct {
	generator PostGenerator
}

// NewPostHandler 创建帖子生成处理器
func NewPostHandler(generator PostGenerator) *PostHandler {
	return &PostHandler{generator: generator}
}

// GeneratePost 生成帖子
// @Summary 生成帖子
// @Description 根据对话、风格选项与可选资料生成帖子正文、话题标签与改进建议
// @Tags Posts
// @Accept json
// @Produce json
// @Param body body dto.GeneratePostRequest true "生成请求"
// @Success 200 {object} dto.GeneratedPostResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/posts/generate [post]
func (h *PostHandler) GeneratePost(c *gin.Context) {
	var req dto.GeneratePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AppError(c, apperrors.InvalidRequest("invalid request body: %v", err))
		return
	}

	conv, opts, profile, err := req.ToDomain()
	if err != nil {
		dto.AppError(c, err)
		return
	}

	post, err := h.generator.Generate(c.Request.Context(), conv, opts, profile)
	if err != nil {
		dto.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGeneratedPostResponse(post))
}
