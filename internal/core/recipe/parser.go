package recipe

import (
	"fmt"

	"recipe-discovery/internal/pkg/common"

	"go.uber.org/zap"
)

// looseSummary 寬鬆版摘要，用指標偵測欄位缺席
type looseSummary struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CookTime    *string `json:"cookTime"`
	Difficulty  *string `json:"difficulty"`
	Servings    *string `json:"servings"`
}

// ParseRecipes 從原始完成文字解析食譜摘要列表
// 流程：去空白 → 去圍欄 → JSON 解析 → 逐欄位驗證
// 驗證採全有或全無，任一食譜失敗即整批拒絕，保留上游順序
func ParseRecipes(raw string) ([]Summary, error) {
	content := common.StripCodeFence(raw)

	var loose []looseSummary
	if err := parseLenient(content, &loose); err != nil {
		common.LogError("完成文字解析失敗",
			zap.Error(err),
			zap.Int("raw_length", len(raw)),
		)
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	recipes := make([]Summary, 0, len(loose))
	for i, ls := range loose {
		s, err := validateSummary(i, ls)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, s)
	}

	return recipes, nil
}

// parseLenient 解析完成文字中的 JSON
// 模型偶爾輸出未加引號的鍵，首次解析失敗時補引號重試一次
func parseLenient(content string, v interface{}) error {
	err := common.ParseJSON(content, v)
	if err == nil {
		return nil
	}
	if retryErr := common.ParseJSON(common.QuoteJSONKeys(content), v); retryErr == nil {
		return nil
	}
	return err
}

// validateSummary 逐欄位驗證單一食譜摘要
func validateSummary(index int, ls looseSummary) (Summary, error) {
	field := func(name string) string {
		return fmt.Sprintf("recipes[%d].%s", index, name)
	}

	checks := []struct {
		name  string
		value *string
	}{
		{"title", ls.Title},
		{"description", ls.Description},
		{"cookTime", ls.CookTime},
		{"difficulty", ls.Difficulty},
		{"servings", ls.Servings},
	}
	for _, c := range checks {
		if c.value == nil || *c.value == "" {
			return Summary{}, common.NewSchemaError(field(c.name), "missing or empty")
		}
	}

	if !validDifficulties[*ls.Difficulty] {
		return Summary{}, common.NewSchemaError(field("difficulty"),
			fmt.Sprintf("must be one of Easy, Medium, Hard; got %q", *ls.Difficulty))
	}

	return Summary{
		Title:       *ls.Title,
		Description: *ls.Description,
		CookTime:    *ls.CookTime,
		Difficulty:  *ls.Difficulty,
		Servings:    *ls.Servings,
	}, nil
}

// ParseDetail 從原始完成文字解析單一食譜細節
func ParseDetail(raw string) (*Detail, error) {
	content := common.StripCodeFence(raw)

	var detail Detail
	if err := parseLenient(content, &detail); err != nil {
		common.LogError("完成文字解析失敗",
			zap.Error(err),
			zap.Int("raw_length", len(raw)),
		)
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	if len(detail.Ingredients) == 0 {
		return nil, common.NewSchemaError("ingredients", "missing or empty")
	}
	for i, ing := range detail.Ingredients {
		if ing.Item == "" {
			return nil, common.NewSchemaError(fmt.Sprintf("ingredients[%d].item", i), "missing or empty")
		}
	}

	if len(detail.Instructions) == 0 {
		return nil, common.NewSchemaError("instructions", "missing or empty")
	}
	for i, step := range detail.Instructions {
		if step.Instruction == "" {
			return nil, common.NewSchemaError(fmt.Sprintf("instructions[%d].instruction", i), "missing or empty")
		}
	}

	return &detail, nil
}
