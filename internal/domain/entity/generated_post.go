package entity

import (
	"strings"
	"time"
)

// GeneratedPost 一次生成的结构化结果，返回后归调用方所有
type GeneratedPost struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Hashtags    []string `json:"hashtags"`
	Suggestions []string `json:"suggestions"`
}

// DraftText 返回可直接复制发布的草稿：正文、空行、空格分隔的话题标签
func (p *GeneratedPost) DraftText() string {
	if p == nil {
		return ""
	}
	if len(p.Hashtags) == 0 {
		return p.Text
	}
	return p.Text + "\n\n" + strings.Join(p.Hashtags, " ")
}

// AssistantMessage 把结果包装成追加到对话中的 assistant 消息
func (p *GeneratedPost) AssistantMessage(now time.Time) ChatMessage {
	m := NewChatMessage(RoleAssistant, p.DraftText())
	m.CreatedAt = now
	return m
}
