//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"postcraft/internal/application/post"
	"postcraft/internal/config"
	"postcraft/internal/interfaces/http/handler"
	"postcraft/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		StoreSet,
		LLMSet,
		RouterSet,
	)
	return nil, nil, nil
}

// StoreSet 工作区存储与限流提供者集合
var StoreSet = wire.NewSet(
	ProvideRedisClient,
	ProvideWorkspaceRepository,
	ProvideRateLimiter,
)

// LLMSet 模型与生成服务提供者集合
var LLMSet = wire.NewSet(
	ProvideChatModel,
	ProvideModelInvoker,
	ProvidePostService,
	wire.Bind(new(handler.PostGenerator), new(*post.Service)),
)

// RouterSet 处理器与路由提供者集合
var RouterSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewPostHandler,
	handler.NewWorkspaceHandler,
	wire.Struct(new(router.Handlers), "*"),
	ProvideRouter,
)
