package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-discovery/internal/core/ai/provider"
	"recipe-discovery/internal/infrastructure/config"
	"recipe-discovery/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider 測試用供應商
type fakeProvider struct {
	name     string
	response string
	err      error
	calls    int
	lastMsgs []provider.Message
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Complete(ctx context.Context, messages []provider.Message, opts provider.Options) (string, error) {
	f.calls++
	f.lastMsgs = messages
	return f.response, f.err
}

func TestCompleteWithoutProviders(t *testing.T) {
	g := NewWithProviders(time.Second)
	assert.False(t, g.Configured())

	_, err := g.CompletePrompt(context.Background(), "hi", provider.Options{})
	assert.ErrorIs(t, err, common.ErrProviderUnavailable)
}

func TestCompleteUsesFirstProvider(t *testing.T) {
	first := &fakeProvider{name: "groq", response: "from groq"}
	second := &fakeProvider{name: "openai", response: "from openai"}
	g := NewWithProviders(time.Second, first, second)
	require.True(t, g.Configured())

	got, err := g.CompletePrompt(context.Background(), "hi", provider.Options{})
	require.NoError(t, err)
	assert.Equal(t, "from groq", got)

	// 單一請求只呼叫一個供應商，不做失敗重試
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)
}

func TestCompleteWrapsProviderFailure(t *testing.T) {
	first := &fakeProvider{name: "groq", err: errors.New("status 500")}
	second := &fakeProvider{name: "openai", response: "from openai"}
	g := NewWithProviders(time.Second, first, second)

	_, err := g.CompletePrompt(context.Background(), "hi", provider.Options{})
	assert.ErrorIs(t, err, common.ErrProviderError)
	assert.Contains(t, err.Error(), "status 500")
	// 失敗不會改用次位供應商
	assert.Zero(t, second.calls)
}

func TestCompletePromptWrapsUserMessage(t *testing.T) {
	p := &fakeProvider{name: "groq", response: "ok"}
	g := NewWithProviders(time.Second, p)

	_, err := g.CompletePrompt(context.Background(), "suggest a soup", provider.Options{})
	require.NoError(t, err)

	require.Len(t, p.lastMsgs, 1)
	assert.Equal(t, provider.RoleUser, p.lastMsgs[0].Role)
	assert.Equal(t, "suggest a soup", p.lastMsgs[0].Content)
}

func TestNewProviderPriority(t *testing.T) {
	cfg := &config.Config{}
	cfg.Groq.Timeout = time.Minute
	cfg.OpenAI.Timeout = time.Minute

	// 未配置任何金鑰
	assert.False(t, New(cfg).Configured())

	// 只配置 OpenAI
	cfg.OpenAI.APIKey = "sk-test"
	g := New(cfg)
	require.True(t, g.Configured())
	assert.Equal(t, "openai", g.providers[0].Name())

	// 兩者皆配置時 Groq 優先
	cfg.Groq.APIKey = "gsk-test"
	g = New(cfg)
	require.Len(t, g.providers, 2)
	assert.Equal(t, "groq", g.providers[0].Name())
}
