package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_LastUserMessage(t *testing.T) {
	conv := NewConversation([]ChatMessage{
		NewChatMessage(RoleSystem, "sys"),
		NewChatMessage(RoleUser, "first"),
		NewChatMessage(RoleAssistant, "reply"),
	})
	assert.Equal(t, "first", conv.Topic())

	conv.Append(NewChatMessage(RoleUser, "second"))
	conv.Append(NewChatMessage(RoleAssistant, "reply 2"))
	assert.Equal(t, "second", conv.Topic())
	assert.Equal(t, 5, conv.Len())

	m, ok := conv.LastUserMessage()
	require.True(t, ok)
	assert.Equal(t, RoleUser, m.Role)
}

func TestConversation_NoUserMessage(t *testing.T) {
	var zero Conversation
	assert.Equal(t, "", zero.Topic())
	zero.Append(NewChatMessage(RoleAssistant, "hello"))
	assert.Equal(t, "", zero.Topic())

	var nilConv *Conversation
	assert.Equal(t, "", nilConv.Topic())
	assert.Equal(t, 0, nilConv.Len())
	assert.Nil(t, nilConv.Messages())
}

func TestConversation_CopiesInput(t *testing.T) {
	in := []ChatMessage{NewChatMessage(RoleUser, "original")}
	conv := NewConversation(in)
	in[0].Content = "changed"
	assert.Equal(t, "original", conv.Topic())

	out := conv.Messages()
	out[0].Content = "changed"
	assert.Equal(t, "original", conv.Topic())
}

func TestNewChatMessage(t *testing.T) {
	a := NewChatMessage(RoleUser, "x")
	b := NewChatMessage(RoleUser, "x")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAssistant.IsValid())
	assert.True(t, RoleSystem.IsValid())
	assert.False(t, Role("tool").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestGeneratedPost_DraftText(t *testing.T) {
	p := &GeneratedPost{Text: "Body.", Hashtags: []string{"#a", "#b"}}
	assert.Equal(t, "Body.\n\n#a #b", p.DraftText())

	p.Hashtags = nil
	assert.Equal(t, "Body.", p.DraftText())

	var nilPost *GeneratedPost
	assert.Equal(t, "", nilPost.DraftText())
}

func TestGeneratedPost_AssistantMessage(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &GeneratedPost{Text: "Body.", Hashtags: []string{"#a"}}

	m := p.AssistantMessage(now)
	assert.Equal(t, RoleAssistant, m.Role)
	assert.Equal(t, "Body.\n\n#a", m.Content)
	assert.Equal(t, now, m.CreatedAt)
	assert.NotEmpty(t, m.ID)
}

func TestChatMessage_JSONUsesEpochMillis(t *testing.T) {
	m := ChatMessage{ID: "m1", Role: RoleUser, Content: "hi", CreatedAt: time.UnixMilli(1714560000000)}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m1","role":"user","content":"hi","createdAt":1714560000000}`, string(data))

	var back ChatMessage
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m2","role":"assistant","content":"ok","createdAt":1714560000123}`), &back))
	assert.Equal(t, RoleAssistant, back.Role)
	assert.Equal(t, int64(1714560000123), back.CreatedAt.UnixMilli())

	data, err = json.Marshal(ChatMessage{ID: "m3", Role: RoleSystem})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"createdAt":0`)
}
