package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	einocallbacks "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"postcraft/internal/config"
	llmctx "postcraft/internal/domain/service"
)

// NewChatModel 基于 Eino 的 OpenAI 兼容适配器创建 ChatModel。
// 配置原样透传，不做校验。
func NewChatModel(ctx context.Context, cfg *config.LLMConfig) (model.BaseChatModel, error) {
	mc := &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: ptrFloat32(float32(cfg.Temperature)),
		TopP:        ptrFloat32(float32(cfg.TopP)),
		Timeout:     cfg.Timeout,
	}
	if cfg.MaxTokens > 0 {
		mc.MaxTokens = &cfg.MaxTokens
	}
	chatModel, err := openai.NewChatModel(ctx, mc)
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", cfg.Provider, err)
	}
	return chatModel, nil
}

// ChatInvoker 把（系统指令，用户指令）作为两条有序消息发给 ChatModel
type ChatInvoker struct {
	model    model.BaseChatModel
	provider string
	opts     []model.Option
}

// NewChatInvoker 创建调用器
func NewChatInvoker(m model.BaseChatModel, cfg *config.LLMConfig) *ChatInvoker {
	return &ChatInvoker{
		model:    m,
		provider: cfg.Provider,
		opts: []model.Option{
			model.WithTemperature(float32(cfg.Temperature)),
			model.WithTopP(float32(cfg.TopP)),
		},
	}
}

// Complete 返回首个候选的文本内容。
// 无候选、无内容时返回空串；其余错误原样上抛，不在此重试。
func (c *ChatInvoker) Complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.model == nil {
		return "", fmt.Errorf("chat model not configured")
	}

	ctx = llmctx.WithProvider(ctx, c.provider)
	ctx = einocallbacks.InitCallbacks(ctx, &einocallbacks.RunInfo{
		Name:      llmctx.WorkflowFromContext(ctx),
		Type:      c.provider,
		Component: components.ComponentOfChatModel,
	})

	msgs := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}
	out, err := c.model.Generate(ctx, msgs, c.opts...)
	if err != nil {
		if IsEmptyChoicesError(err) {
			return "", nil
		}
		return "", err
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}

// emptyChoicesMessage eino-ext openai 适配器在响应没有 choices 时的错误文本
const emptyChoicesMessage = "received empty choices"

// IsEmptyChoicesError 适配器在响应没有 choices 时返回错误，这里视为空补全
func IsEmptyChoicesError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), emptyChoicesMessage)
}

func ptrFloat32(f float32) *float32 {
	return &f
}
