// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"fmt"
	"strings"
	"time"

	"postcraft/internal/domain/entity"
	apperrors "postcraft/pkg/errors"
)

// ChatMessageDTO 对话消息，createdAt 为毫秒时间戳
type ChatMessageDTO struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// GenerationOptionsDTO 风格选项
type GenerationOptionsDTO struct {
	Tone              string `json:"tone"`
	Goal              string `json:"goal"`
	Audience          string `json:"audience"`
	IncludeEmojis     bool   `json:"includeEmojis"`
	MinifyHashtags    bool   `json:"minifyHashtags"`
	Length            string `json:"length"`
	UseProfileContext bool   `json:"useProfileContext"`
}

// ProfileContextDTO 用户资料
type ProfileContextDTO struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline,omitempty"`
	Title    string   `json:"title,omitempty"`
	Company  string   `json:"company,omitempty"`
	Industry string   `json:"industry,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	URL      string   `json:"url,omitempty"`
}

// GeneratePostRequest 生成请求
type GeneratePostRequest struct {
	Messages []ChatMessageDTO     `json:"messages"`
	Opts     *GenerationOptionsDTO `json:"opts" binding:"required"`
	Profile  *ProfileContextDTO    `json:"profile,omitempty"`
}

// GeneratedPostResponse 生成结果
type GeneratedPostResponse struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Hashtags    []string `json:"hashtags"`
	Suggestions []string `json:"suggestions"`
}

// ToDomain 校验并转换为领域对象，失败时返回 InvalidRequest
func (r *GeneratePostRequest) ToDomain() (*entity.Conversation, entity.GenerationOptions, *entity.ProfileContext, error) {
	if r == nil || r.Opts == nil {
		return nil, entity.GenerationOptions{}, nil, apperrors.InvalidRequest("opts is required")
	}

	msgs := make([]entity.ChatMessage, 0, len(r.Messages))
	for i, m := range r.Messages {
		msg, err := m.ToDomain()
		if err != nil {
			return nil, entity.GenerationOptions{}, nil, apperrors.InvalidRequest("messages[%d]: %v", i, err)
		}
		msgs = append(msgs, msg)
	}

	opts, err := r.Opts.ToDomain()
	if err != nil {
		return nil, entity.GenerationOptions{}, nil, apperrors.InvalidRequest("opts: %v", err)
	}

	var profile *entity.ProfileContext
	if r.Profile != nil {
		if strings.TrimSpace(r.Profile.Name) == "" {
			return nil, entity.GenerationOptions{}, nil, apperrors.InvalidRequest("profile.name is required when profile is supplied")
		}
		profile = r.Profile.ToDomain()
	}

	return entity.NewConversation(msgs), opts, profile, nil
}

// ToDomain 转换消息
func (m ChatMessageDTO) ToDomain() (entity.ChatMessage, error) {
	role := entity.Role(strings.TrimSpace(m.Role))
	if !role.IsValid() {
		return entity.ChatMessage{}, fmt.Errorf("unknown role %q", m.Role)
	}
	msg := entity.ChatMessage{
		ID:      m.ID,
		Role:    role,
		Content: m.Content,
	}
	if m.CreatedAt > 0 {
		msg.CreatedAt = time.UnixMilli(m.CreatedAt)
	}
	return msg, nil
}

// ToDomain 转换选项，空枚举字段取默认值
func (o *GenerationOptionsDTO) ToDomain() (entity.GenerationOptions, error) {
	return entity.GenerationOptions{
		Tone:              entity.Tone(o.Tone),
		Goal:              entity.Goal(o.Goal),
		Audience:          o.Audience,
		IncludeEmojis:     o.IncludeEmojis,
		MinifyHashtags:    o.MinifyHashtags,
		Length:            entity.Length(o.Length),
		UseProfileContext: o.UseProfileContext,
	}.Normalize()
}

// ToDomain 转换资料
func (p *ProfileContextDTO) ToDomain() *entity.ProfileContext {
	return &entity.ProfileContext{
		Name:     p.Name,
		Headline: p.Headline,
		Title:    p.Title,
		Company:  p.Company,
		Industry: p.Industry,
		Summary:  p.Summary,
		Skills:   append([]string(nil), p.Skills...),
		URL:      p.URL,
	}
}

// NewGeneratedPostResponse 由领域结果构建响应
func NewGeneratedPostResponse(p *entity.GeneratedPost) *GeneratedPostResponse {
	return &GeneratedPostResponse{
		ID:          p.ID,
		Text:        p.Text,
		Hashtags:    p.Hashtags,
		Suggestions: p.Suggestions,
	}
}
