package provider

import (
	"context"
)

// 消息角色
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message 對話消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options 單次完成請求的取樣參數
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Provider 文字完成供應商介面
// 回傳未經修改的原始完成文字
type Provider interface {
	Name() string
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}
