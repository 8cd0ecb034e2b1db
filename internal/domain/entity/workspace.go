package entity

import "fmt"

// WorkspaceKey 工作区中保存的条目，对应前端本地存储的 lp.* 键
type WorkspaceKey string

const (
	WorkspaceKeyMessages WorkspaceKey = "messages"
	WorkspaceKeyProfile  WorkspaceKey = "profile"
	WorkspaceKeyOptions  WorkspaceKey = "opts"
	WorkspaceKeyDraft    WorkspaceKey = "draft"
)

// ResetKeys 重置工作区时清空的条目：对话与草稿，选项和资料保留
var ResetKeys = []WorkspaceKey{WorkspaceKeyMessages, WorkspaceKeyDraft}

// ParseWorkspaceKey 校验条目名
func ParseWorkspaceKey(s string) (WorkspaceKey, error) {
	switch k := WorkspaceKey(s); k {
	case WorkspaceKeyMessages, WorkspaceKeyProfile, WorkspaceKeyOptions, WorkspaceKeyDraft:
		return k, nil
	default:
		return "", fmt.Errorf("unknown workspace key %q", s)
	}
}
