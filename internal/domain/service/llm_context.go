// Package service 存放跨层共享的调用上下文约定
package service

import (
	"context"
	"strings"
)

type llmCtxKey string

const (
	llmCtxKeyWorkflow llmCtxKey = "llm_workflow"
	llmCtxKeyProvider llmCtxKey = "llm_provider"

	unknownLabel = "unknown"
)

// WithWorkflow 标记本次 LLM 调用所属的工作流，用于指标与追踪标签
func WithWorkflow(ctx context.Context, workflow string) context.Context {
	return withLabel(ctx, llmCtxKeyWorkflow, workflow)
}

// WithProvider 标记本次 LLM 调用的提供商
func WithProvider(ctx context.Context, provider string) context.Context {
	return withLabel(ctx, llmCtxKeyProvider, provider)
}

// WorkflowFromContext 读取工作流标签，缺失时为 "unknown"
func WorkflowFromContext(ctx context.Context) string {
	return labelFrom(ctx, llmCtxKeyWorkflow)
}

// ProviderFromContext 读取提供商标签，缺失时为 "unknown"
func ProviderFromContext(ctx context.Context) string {
	return labelFrom(ctx, llmCtxKeyProvider)
}

func withLabel(ctx context.Context, key llmCtxKey, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	v := strings.TrimSpace(value)
	if v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func labelFrom(ctx context.Context, key llmCtxKey) string {
	if ctx == nil {
		return unknownLabel
	}
	s, ok := ctx.Value(key).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return unknownLabel
	}
	return s
}
