// Package eino 把 Eino ChatModel 回调接入 Prometheus 指标与 OpenTelemetry 追踪
package eino

import (
	"sync"

	einocallbacks "github.com/cloudwego/eino/callbacks"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"
)

var initOnce sync.Once

// Init 注册 Eino 全局 callbacks（进程级一次）。
func Init() {
	initOnce.Do(func() {
		einocallbacks.AppendGlobalHandlers(NewHandler())
	})
}

// NewHandler 返回只处理 ChatModel 组件的回调处理器
func NewHandler() einocallbacks.Handler {
	return cbtemplate.NewHandlerHelper().
		ChatModel(newChatModelCallbackHandler()).
		Handler()
}
