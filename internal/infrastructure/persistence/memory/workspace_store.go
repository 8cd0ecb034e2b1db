// Package memory 提供进程内的工作区存储，Redis 未启用时使用
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"postcraft/internal/domain/entity"
	"postcraft/internal/domain/repository"
)

// DefaultMaxEntries 未配置上限时的条目数
const DefaultMaxEntries = 1024

type entryKey struct {
	workspace string
	key       entity.WorkspaceKey
}

// WorkspaceStore 进程内键值存储，重启即丢失。
// 条目写入后 ttl 到期失效，总数超过 maxEntries 时淘汰最久未使用的条目。
type WorkspaceStore struct {
	entries *expirable.LRU[entryKey, []byte]
}

var _ repository.WorkspaceRepository = (*WorkspaceStore)(nil)

// NewWorkspaceStore 创建进程内存储；ttl<=0 表示不过期，maxEntries<=0 取 DefaultMaxEntries
func NewWorkspaceStore(ttl time.Duration, maxEntries int) *WorkspaceStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &WorkspaceStore{entries: expirable.NewLRU[entryKey, []byte](maxEntries, nil, ttl)}
}

// Get 读取条目副本
func (s *WorkspaceStore) Get(_ context.Context, workspaceID string, key entity.WorkspaceKey) ([]byte, error) {
	v, ok := s.entries.Get(entryKey{workspaceID, key})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put 覆盖写入并刷新过期时间
func (s *WorkspaceStore) Put(_ context.Context, workspaceID string, key entity.WorkspaceKey, value []byte) error {
	s.entries.Add(entryKey{workspaceID, key}, append([]byte(nil), value...))
	return nil
}

// Delete 删除条目
func (s *WorkspaceStore) Delete(_ context.Context, workspaceID string, keys ...entity.WorkspaceKey) error {
	for _, k := range keys {
		s.entries.Remove(entryKey{workspaceID, k})
	}
	return nil
}

// Len 当前条目数（含尚未清理的过期条目）
func (s *WorkspaceStore) Len() int {
	return s.entries.Len()
}
