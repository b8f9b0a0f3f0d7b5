package recipe

import (
	"context"
	"errors"
	"fmt"

	"recipe-discovery/internal/core/ai/cache"
	"recipe-discovery/internal/core/ai/provider"
	"recipe-discovery/internal/core/preference"
	"recipe-discovery/internal/core/prompt"
	"recipe-discovery/internal/pkg/common"

	"go.uber.org/zap"
)

// 生成流程的取樣參數
const (
	generationTemperature = 0.7
	generationMaxTokens   = 1024
	detailMaxTokens       = 2048
	suggestionCount       = 3
)

// Completer 完成服務介面，由閘道實現
type Completer interface {
	CompletePrompt(ctx context.Context, prompt string, opts provider.Options) (string, error)
}

// Service 食譜服務
// 生成與細節流程：驗證 → 組裝提示 → 呼叫閘道 → 解析驗證
type Service struct {
	completer    Completer
	cacheManager *cache.Manager
}

// NewService 創建食譜服務
func NewService(completer Completer, cacheManager *cache.Manager) *Service {
	return &Service{
		completer:    completer,
		cacheManager: cacheManager,
	}
}

// Generate 依食材與偏好生成食譜摘要候選
// 空食材列表直接回傳驗證錯誤，不發出任何請求
func (s *Service) Generate(ctx context.Context, ingredients []string, prefs preference.UserPreferences) ([]Summary, error) {
	if len(ingredients) == 0 {
		return nil, common.NewValidationError("at least one ingredient is required")
	}

	p := prompt.GenerationPrompt(ingredients, prefs, suggestionCount)

	raw, err := s.complete(ctx, p, provider.Options{
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	recipes, err := ParseRecipes(raw)
	if err != nil {
		common.LogError("食譜摘要驗證失敗",
			zap.Error(err),
			zap.String("raw_response", raw),
		)
		return nil, err
	}

	common.LogInfo("食譜生成完成",
		zap.Int("count", len(recipes)),
		zap.Int("ingredients", len(ingredients)),
	)
	return recipes, nil
}

// Details 依食譜標題與食材取得食譜細節
func (s *Service) Details(ctx context.Context, title string, ingredients []string, prefs preference.UserPreferences) (*Detail, error) {
	if title == "" {
		return nil, common.NewValidationError("recipe name is required")
	}

	p := prompt.DetailPrompt(title, ingredients, prefs)

	raw, err := s.complete(ctx, p, provider.Options{
		Temperature: generationTemperature,
		MaxTokens:   detailMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	detail, err := ParseDetail(raw)
	if err != nil {
		common.LogError("食譜細節驗證失敗",
			zap.Error(err),
			zap.String("raw_response", raw),
		)
		return nil, err
	}

	common.LogInfo("食譜細節取得完成", zap.String("title", title))
	return detail, nil
}

// complete 帶快取的完成呼叫，快取原始完成文字
func (s *Service) complete(ctx context.Context, p string, opts provider.Options) (string, error) {
	if cached, err := s.cacheManager.Get(p); err == nil {
		return cached, nil
	} else if !errors.Is(err, common.ErrCacheDisabled) {
		common.LogWarn("快取讀取失敗", zap.Error(err))
	}

	raw, err := s.completer.CompletePrompt(ctx, p, opts)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	if err := s.cacheManager.Set(p, raw); err != nil {
		common.LogWarn("快取寫入失敗", zap.Error(err))
	}
	return raw, nil
}
