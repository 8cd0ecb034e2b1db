// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"errors"

	"postcraft/internal/domain/entity"
)

// ErrNotFound 条目不存在
var ErrNotFound = errors.New("workspace entry not found")

// WorkspaceRepository 调用方持有的简单键值存储，保存对话、草稿、选项与资料的 JSON。
// 生成流水线本身不读写它。
type WorkspaceRepository interface {
	// Get 读取条目，不存在时返回 ErrNotFound
	Get(ctx context.Context, workspaceID string, key entity.WorkspaceKey) ([]byte, error)
	// Put 覆盖写入条目
	Put(ctx context.Context, workspaceID string, key entity.WorkspaceKey, value []byte) error
	// Delete 删除若干条目，不存在的条目忽略
	Delete(ctx context.Context, workspaceID string, keys ...entity.WorkspaceKey) error
}

// HealthChecker 可选的依赖健康检查
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
