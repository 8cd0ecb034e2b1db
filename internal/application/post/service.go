// Package post 实现帖子生成流水线：提示词构建、模型调用、回复解析与兜底。
package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"postcraft/internal/domain/entity"
	llmctx "postcraft/internal/domain/service"
	apperrors "postcraft/pkg/errors"
	"postcraft/pkg/logger"
	"postcraft/pkg/metrics"
	"postcraft/pkg/tracer"
)

// WorkflowName 用于 LLM 指标与追踪标签
const WorkflowName = "post_generate"

// Service 编排提示词构建、模型调用与解析。无状态，可并发使用。
type Service struct {
	invoker ModelInvoker
	newID   func() string
	now     func() time.Time
}

// Option 服务可选项
type Option func(*Service)

// WithIDGenerator 替换结果 ID 生成器
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock 替换时钟（测试用）
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService 创建生成服务
func NewService(invoker ModelInvoker, opts ...Option) *Service {
	s := &Service{
		invoker: invoker,
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate 执行一次生成。模型调用失败时返回 ErrGenerationFailed（包裹原始错误），不返回部分结果。
// 恰好一次外部调用，不重试；超时由调用方通过 ctx 施加。
func (s *Service) Generate(ctx context.Context, conv *entity.Conversation, opts entity.GenerationOptions, profile *entity.ProfileContext) (*entity.GeneratedPost, error) {
	if s == nil || s.invoker == nil {
		return nil, apperrors.ErrInternalError.WithDetail("model invoker not configured")
	}

	ctx, span := tracer.Start(ctx, "post.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("post.tone", string(opts.Tone)),
		attribute.String("post.goal", string(opts.Goal)),
		attribute.String("post.length", string(opts.Length)),
		attribute.Int("post.conversation_len", conv.Len()),
	)

	start := s.now()
	system := BuildSystemPrompt(opts, profile)
	user := BuildUserPrompt(conv, opts)

	raw, err := s.invoker.Complete(llmctx.WithWorkflow(ctx, WorkflowName), system, user)
	metrics.PostGenerationDuration.WithLabelValues(string(opts.Length)).Observe(s.now().Sub(start).Seconds())
	if err != nil {
		metrics.PostGenerationTotal.WithLabelValues(string(opts.Tone), string(opts.Goal), "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "post generation failed", err,
			"tone", opts.Tone,
			"goal", opts.Goal,
		)
		return nil, apperrors.ErrGenerationFailed.WithError(err).WithDetail(FailureNotice)
	}

	parsed := Parse(raw)
	hashtags := parsed.Hashtags
	fallback := len(hashtags) == 0
	if fallback {
		hashtags = FallbackHashtags(opts.MinifyHashtags)
		metrics.HashtagFallbackTotal.WithLabelValues(hashtagMode(opts.MinifyHashtags)).Inc()
	}

	result := &entity.GeneratedPost{
		ID:          s.newID(),
		Text:        parsed.Body,
		Hashtags:    hashtags,
		Suggestions: Suggestions(),
	}

	metrics.PostGenerationTotal.WithLabelValues(string(opts.Tone), string(opts.Goal), "success").Inc()
	metrics.PostWordCount.WithLabelValues(string(opts.Length)).Observe(float64(len(strings.Fields(result.Text))))
	span.SetAttributes(
		attribute.String("post.id", result.ID),
		attribute.Int("post.hashtag_count", len(result.Hashtags)),
		attribute.Bool("post.hashtag_fallback", fallback),
		attribute.Bool("post.empty_completion", raw == ""),
	)
	logger.Info(ctx, "post generated",
		"post_id", result.ID,
		"hashtags", len(result.Hashtags),
		"hashtag_fallback", fallback,
		"empty_completion", raw == "",
	)
	return result, nil
}

func hashtagMode(minify bool) string {
	if minify {
		return "minimal"
	}
	return "descriptive"
}
