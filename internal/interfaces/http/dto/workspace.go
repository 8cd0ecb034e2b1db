package dto

import "encoding/json"

// WorkspaceEntryResponse 工作区条目
type WorkspaceEntryResponse struct {
	WorkspaceID string          `json:"workspace_id"`
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
}
