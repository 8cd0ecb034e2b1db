package post

import "context"

// ModelInvoker 发送（系统指令，用户指令）并返回首个补全的文本。
// 无候选或无内容时返回空串且 err 为 nil；传输或端点错误原样返回，由 Service 归类为生成失败。
type ModelInvoker interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ModelInvokerFunc 函数适配器
type ModelInvokerFunc func(ctx context.Context, system, user string) (string, error)

// Complete 实现 ModelInvoker
func (f ModelInvokerFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}
