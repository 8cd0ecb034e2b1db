package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/config"
	llmctx "postcraft/internal/domain/service"
)

type fakeChatModel struct {
	gotMsgs     []*schema.Message
	gotOpts     *model.Options
	gotProvider string
	gotWorkflow string
	out         *schema.Message
	err         error
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.gotMsgs = input
	f.gotOpts = model.GetCommonOptions(&model.Options{}, opts...)
	f.gotProvider = llmctx.ProviderFromContext(ctx)
	f.gotWorkflow = llmctx.WorkflowFromContext(ctx)
	return f.out, f.err
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		Provider:    "fireworks",
		APIKey:      "k",
		BaseURL:     config.DefaultBaseURL,
		Model:       config.DefaultModel,
		Temperature: 0.7,
		TopP:        0.9,
	}
}

func TestChatInvoker_Complete(t *testing.T) {
	fake := &fakeChatModel{out: schema.AssistantMessage("Body.\n\n#ai", nil)}
	inv := NewChatInvoker(fake, testLLMConfig())

	ctx := llmctx.WithWorkflow(context.Background(), "post_generate")
	got, err := inv.Complete(ctx, "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "Body.\n\n#ai", got)

	require.Len(t, fake.gotMsgs, 2)
	assert.Equal(t, schema.System, fake.gotMsgs[0].Role)
	assert.Equal(t, "system text", fake.gotMsgs[0].Content)
	assert.Equal(t, schema.User, fake.gotMsgs[1].Role)
	assert.Equal(t, "user text", fake.gotMsgs[1].Content)

	require.NotNil(t, fake.gotOpts.Temperature)
	require.NotNil(t, fake.gotOpts.TopP)
	assert.InDelta(t, 0.7, *fake.gotOpts.Temperature, 1e-6)
	assert.InDelta(t, 0.9, *fake.gotOpts.TopP, 1e-6)

	assert.Equal(t, "fireworks", fake.gotProvider)
	assert.Equal(t, "post_generate", fake.gotWorkflow)
}

func TestChatInvoker_EmptyCompletion(t *testing.T) {
	inv := NewChatInvoker(&fakeChatModel{}, testLLMConfig())
	got, err := inv.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	inv = NewChatInvoker(&fakeChatModel{err: errors.New("received empty choices from OpenAI API response")}, testLLMConfig())
	got, err = inv.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestChatInvoker_TransportError(t *testing.T) {
	cause := errors.New("status code: 401, message: invalid api key")
	inv := NewChatInvoker(&fakeChatModel{err: cause}, testLLMConfig())

	_, err := inv.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, cause)

	cause = errors.New("gateway returned no choices: connection reset by peer")
	inv = NewChatInvoker(&fakeChatModel{err: cause}, testLLMConfig())
	_, err = inv.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, cause)
}

func TestChatInvoker_NotConfigured(t *testing.T) {
	var inv *ChatInvoker
	_, err := inv.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestIsEmptyChoicesError(t *testing.T) {
	assert.False(t, IsEmptyChoicesError(nil))
	assert.True(t, IsEmptyChoicesError(errors.New("received empty choices from ChatCompletion API")))
	assert.True(t, IsEmptyChoicesError(fmt.Errorf("generate: %w", errors.New("received empty choices from ChatCompletion API"))))
	assert.False(t, IsEmptyChoicesError(errors.New("proxy: upstream returned no choices before connection reset")))
	assert.False(t, IsEmptyChoicesError(errors.New("context deadline exceeded")))
}

func TestNewChatModel(t *testing.T) {
	m, err := NewChatModel(context.Background(), testLLMConfig())
	require.NoError(t, err)
	assert.NotNil(t, m)
}
