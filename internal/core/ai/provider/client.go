package provider

import (
	"context"
	"fmt"
	"net/http"

	"recipe-discovery/internal/infrastructure/config"
	"recipe-discovery/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// chatClient OpenAI 相容的 chat completions 客戶端
// Groq 與 OpenAI 共用同一協議，僅 base URL 與模型不同
type chatClient struct {
	name   string
	model  string
	client *resty.Client
}

// newChatClient 創建 chat completions 客戶端
func newChatClient(name, baseURL string, cfg config.ProviderConfig) *chatClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey))

	return &chatClient{
		name:   name,
		model:  cfg.Model,
		client: client,
	}
}

// NewGroq 創建 Groq 供應商
func NewGroq(cfg config.ProviderConfig) Provider {
	return newChatClient("groq", "https://api.groq.com/openai/v1", cfg)
}

// NewOpenAI 創建 OpenAI 供應商
func NewOpenAI(cfg config.ProviderConfig) Provider {
	return newChatClient("openai", "https://api.openai.com/v1", cfg)
}

// Name 回傳供應商名稱
func (c *chatClient) Name() string {
	return c.name
}

// Complete 發送完成請求並回傳原始完成文字
func (c *chatClient) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	// 構建請求
	req := map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"temperature": opts.Temperature,
		"max_tokens":  opts.MaxTokens,
	}

	common.LogInfo("Sending completion request",
		zap.String("provider", c.name),
		zap.String("model", c.model),
		zap.Int("messages", len(messages)),
		zap.Int("max_tokens", opts.MaxTokens),
	)

	// 發送請求
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send request to %s: %w", c.name, err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Provider returned error status",
			zap.String("provider", c.name),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("response", resp.String()),
		)
		return "", fmt.Errorf("%s API returned status %d: %s", c.name, resp.StatusCode(), resp.String())
	}

	// 解析回應
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse %s response: %w", c.name, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in %s response", c.name)
	}

	return result.Choices[0].Message.Content, nil
}
