package gateway

import (
	"context"
	"fmt"
	"time"

	"recipe-discovery/internal/core/ai/provider"
	"recipe-discovery/internal/infrastructure/config"
	"recipe-discovery/internal/pkg/common"

	"go.uber.org/zap"
)

// 預設的供應商逾時，設定缺失時的保底值
const defaultTimeout = 60 * time.Second

// Gateway 完成服務閘道
// 依固定優先序選擇第一個已配置的供應商，單一請求只呼叫一個供應商
type Gateway struct {
	providers []provider.Provider
	timeout   time.Duration
}

// New 依設定創建閘道，優先序為 Groq、OpenAI
func New(cfg *config.Config) *Gateway {
	var providers []provider.Provider
	timeout := defaultTimeout

	if cfg.Groq.Configured() {
		providers = append(providers, provider.NewGroq(cfg.Groq))
		timeout = cfg.Groq.Timeout
	}
	if cfg.OpenAI.Configured() {
		providers = append(providers, provider.NewOpenAI(cfg.OpenAI))
		if len(providers) == 1 {
			timeout = cfg.OpenAI.Timeout
		}
	}

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	common.LogInfo("Completion gateway initialized",
		zap.Strings("providers", names),
		zap.Duration("timeout", timeout),
	)

	return &Gateway{
		providers: providers,
		timeout:   timeout,
	}
}

// NewWithProviders 以指定供應商創建閘道（測試用）
func NewWithProviders(timeout time.Duration, providers ...provider.Provider) *Gateway {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{
		providers: providers,
		timeout:   timeout,
	}
}

// Configured 是否有任何已配置的供應商
func (g *Gateway) Configured() bool {
	return len(g.providers) > 0
}

// Complete 發送對話消息並回傳原始完成文字
// 上游呼叫一律帶逾時，避免卡住的請求無限期阻塞呼叫方
func (g *Gateway) Complete(ctx context.Context, messages []provider.Message, opts provider.Options) (string, error) {
	if len(g.providers) == 0 {
		return "", common.ErrProviderUnavailable
	}

	p := g.providers[0]

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	content, err := p.Complete(ctx, messages, opts)
	common.LogAICall(p.Name(), time.Since(start), err, "")

	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrProviderError, err)
	}
	return content, nil
}

// CompletePrompt 以單一使用者提示發送完成請求
func (g *Gateway) CompletePrompt(ctx context.Context, prompt string, opts provider.Options) (string, error) {
	return g.Complete(ctx, []provider.Message{
		{Role: provider.RoleUser, Content: prompt},
	}, opts)
}
