package chat

import (
	"context"
	"fmt"

	"recipe-discovery/internal/core/ai/gateway"
	"recipe-discovery/internal/core/ai/provider"
	"recipe-discovery/internal/core/preference"
	"recipe-discovery/internal/core/prompt"
	"recipe-discovery/internal/pkg/common"

	"go.uber.org/zap"
)

// 聊天流程的取樣參數
const (
	chatTemperature = 0.7
	chatMaxTokens   = 1024
)

// 模型回傳空內容時的替代回應
const emptyCompletionResponse = "I apologize, but I couldn't generate a response. Please try again."

// Turn 對話中的一輪
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer 完成服務介面，由閘道實現
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, messages []provider.Message, opts provider.Options) (string, error)
}

// Service 聊天助手服務
// 無供應商時改用罐頭回應表，不回傳錯誤
type Service struct {
	completer Completer
}

// NewService 創建聊天服務
func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// Send 處理一輪聊天
// 系統提示帶入偏好限制敘述，對話紀錄完整前置於最新一輪之前
func (s *Service) Send(ctx context.Context, message string, history []Turn, prefs preference.UserPreferences) (string, error) {
	if message == "" {
		return "", common.NewValidationError("message is required")
	}

	// 無供應商時走罐頭回應，僅聊天路徑有此降級
	if !s.completer.Configured() {
		common.LogInfo("無已配置供應商，使用罐頭回應")
		return gateway.CannedResponse(message), nil
	}

	messages := make([]provider.Message, 0, len(history)+2)
	messages = append(messages, provider.Message{
		Role:    provider.RoleSystem,
		Content: prompt.ChatSystemPrompt(prefs),
	})
	for _, turn := range history {
		messages = append(messages, provider.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, provider.Message{
		Role:    provider.RoleUser,
		Content: message,
	})

	content, err := s.completer.Complete(ctx, messages, provider.Options{
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if content == "" {
		content = emptyCompletionResponse
	}

	common.LogInfo("聊天回應完成",
		zap.Int("history_turns", len(history)),
		zap.Int("response_length", len(content)),
	)
	return content, nil
}
