package wire

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"postcraft/internal/application/post"
	"postcraft/internal/config"
	"postcraft/internal/domain/repository"
	"postcraft/internal/infrastructure/llm"
	"postcraft/internal/infrastructure/persistence/memory"
	"postcraft/internal/infrastructure/persistence/redis"
	"postcraft/internal/interfaces/http/handler"
	"postcraft/internal/interfaces/http/middleware"
	"postcraft/internal/interfaces/http/router"
	"postcraft/pkg/logger"
)

// ProvideRedisClient 提供 Redis 客户端；未启用时返回 nil
func ProvideRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Cache.Redis.Enabled {
		logger.Info(ctx, "redis disabled, using in-memory workspace store")
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(ctx, &cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error(context.Background(), "failed to close redis client", err)
		}
	}
	return client, cleanup, nil
}

// ProvideWorkspaceRepository 提供工作区存储
func ProvideWorkspaceRepository(cfg *config.Config, client *redis.Client) repository.WorkspaceRepository {
	if client == nil {
		return memory.NewWorkspaceStore(cfg.Workspace.TTL, cfg.Workspace.MaxEntries)
	}
	return redis.NewWorkspaceStore(client, cfg.Workspace.KeyPrefix, cfg.Workspace.TTL)
}

// ProvideRateLimiter 提供限流器；无 Redis 时不限流
func ProvideRateLimiter(client *redis.Client) middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return redis.NewRateLimiter(client)
}

// ProvideChatModel 提供 OpenAI 兼容的聊天模型
func ProvideChatModel(ctx context.Context, cfg *config.Config) (model.BaseChatModel, error) {
	m, err := llm.NewChatModel(ctx, &cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return m, nil
}

// ProvideModelInvoker 提供生成服务使用的模型调用端口
func ProvideModelInvoker(m model.BaseChatModel, cfg *config.Config) post.ModelInvoker {
	return llm.NewChatInvoker(m, &cfg.LLM)
}

// ProvidePostService 提供帖子生成服务
func ProvidePostService(invoker post.ModelInvoker) *post.Service {
	return post.NewService(invoker)
}

// ProvideHealthHandler 提供健康检查处理器
func ProvideHealthHandler(cfg *config.Config, client *redis.Client) *handler.HealthHandler {
	checks := map[string]repository.HealthChecker{}
	if client != nil {
		checks["redis"] = client
	}
	return handler.NewHealthHandler(cfg.App.Version, checks)
}

// ProvideRouter 提供路由器
func ProvideRouter(cfg *config.Config, handlers router.Handlers, limiter middleware.RateLimiter) *router.Router {
	return router.New(cfg, handlers, limiter, redis.BuildRateLimitKey)
}
