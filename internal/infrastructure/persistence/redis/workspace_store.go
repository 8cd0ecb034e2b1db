package redis

import (
	"context"
	"fmt"
	"time"

	"postcraft/internal/domain/entity"
	"postcraft/internal/domain/repository"
)

// WorkspaceStore 以 <prefix>:<workspace>:<key> 保存工作区条目
type WorkspaceStore struct {
	client *Client
	prefix string
	ttl    time.Duration
}

var _ repository.WorkspaceRepository = (*WorkspaceStore)(nil)

// NewWorkspaceStore 创建工作区存储；ttl<=0 表示不过期
func NewWorkspaceStore(client *Client, prefix string, ttl time.Duration) *WorkspaceStore {
	if prefix == "" {
		prefix = "lp"
	}
	return &WorkspaceStore{client: client, prefix: prefix, ttl: ttl}
}

// Get 读取条目
func (s *WorkspaceStore) Get(ctx context.Context, workspaceID string, key entity.WorkspaceKey) ([]byte, error) {
	val, err := s.client.get(ctx, s.key(workspaceID, key))
	if err != nil {
		if IsNil(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get workspace %s/%s: %w", workspaceID, key, err)
	}
	return val, nil
}

// Put 覆盖写入条目并刷新过期时间
func (s *WorkspaceStore) Put(ctx context.Context, workspaceID string, key entity.WorkspaceKey, value []byte) error {
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.set(ctx, s.key(workspaceID, key), value, ttl); err != nil {
		return fmt.Errorf("put workspace %s/%s: %w", workspaceID, key, err)
	}
	return nil
}

// Delete 删除条目
func (s *WorkspaceStore) Delete(ctx context.Context, workspaceID string, keys ...entity.WorkspaceKey) error {
	if len(keys) == 0 {
		return nil
	}
	redisKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		redisKeys = append(redisKeys, s.key(workspaceID, k))
	}
	if err := s.client.del(ctx, redisKeys...); err != nil {
		return fmt.Errorf("delete workspace %s: %w", workspaceID, err)
	}
	return nil
}

func (s *WorkspaceStore) key(workspaceID string, key entity.WorkspaceKey) string {
	return BuildWorkspaceKey(s.prefix, workspaceID, key)
}

// BuildWorkspaceKey 构建工作区条目的 Redis 键
func BuildWorkspaceKey(prefix, workspaceID string, key entity.WorkspaceKey) string {
	return fmt.Sprintf("%s:%s:%s", prefix, workspaceID, key)
}
