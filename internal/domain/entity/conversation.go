// Package entity 定义领域实体
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChatMessage 对话消息，创建后不可变
type ChatMessage struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// chatMessageJSON 与 HTTP 边界一致的编码：createdAt 为毫秒时间戳
type chatMessageJSON struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// MarshalJSON 按 {id, role, content, createdAt(ms)} 编码，零时间编码为 0
func (m ChatMessage) MarshalJSON() ([]byte, error) {
	out := chatMessageJSON{ID: m.ID, Role: m.Role, Content: m.Content}
	if !m.CreatedAt.IsZero() {
		out.CreatedAt = m.CreatedAt.UnixMilli()
	}
	return json.Marshal(out)
}

// UnmarshalJSON 解析 MarshalJSON 的输出，createdAt<=0 视为未设置
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	var in chatMessageJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*m = ChatMessage{ID: in.ID, Role: in.Role, Content: in.Content}
	if in.CreatedAt > 0 {
		m.CreatedAt = time.UnixMilli(in.CreatedAt)
	}
	return nil
}

// NewChatMessage 创建消息并分配 ID
func NewChatMessage(role Role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Conversation 只追加的有序消息序列。
// lastUser 记录最近一条 user 消息的下标加一（0 表示没有），追加时维护，避免每次生成都反向扫描。
// 零值即为空对话。
type Conversation struct {
	messages []ChatMessage
	lastUser int
}

// NewConversation 由已有消息构建对话（复制切片，调用方后续修改不影响对话）
func NewConversation(messages []ChatMessage) *Conversation {
	c := &Conversation{
		messages: make([]ChatMessage, 0, len(messages)),
	}
	for _, m := range messages {
		c.Append(m)
	}
	return c
}

// Append 追加一条消息
func (c *Conversation) Append(m ChatMessage) {
	c.messages = append(c.messages, m)
	if m.Role == RoleUser {
		c.lastUser = len(c.messages)
	}
}

// Len 返回消息数量
func (c *Conversation) Len() int {
	if c == nil {
		return 0
	}
	return len(c.messages)
}

// Messages 返回消息副本
func (c *Conversation) Messages() []ChatMessage {
	if c == nil {
		return nil
	}
	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// LastUserMessage 返回最近一条 user 消息
func (c *Conversation) LastUserMessage() (ChatMessage, bool) {
	if c == nil || c.lastUser == 0 {
		return ChatMessage{}, false
	}
	return c.messages[c.lastUser-1], true
}

// Topic 返回最近一条 user 消息的内容；不存在时为空字符串
func (c *Conversation) Topic() string {
	m, ok := c.LastUserMessage()
	if !ok {
		return ""
	}
	return m.Content
}
