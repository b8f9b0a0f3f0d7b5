package recipe

// Summary 食譜摘要，由生成流程產生
// Title 為查找或建立收藏時的主要鍵
type Summary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CookTime    string `json:"cookTime"`
	Difficulty  string `json:"difficulty"`
	Servings    string `json:"servings"`
}

// 合法的難度標籤
var validDifficulties = map[string]bool{
	"Easy":   true,
	"Medium": true,
	"Hard":   true,
}

// IngredientLine 食譜細節中的食材行
type IngredientLine struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

// InstructionStep 食譜細節中的步驟
type InstructionStep struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
}

// Nutrition 營養資訊，各欄位為自由文字描述
type Nutrition struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// Detail 食譜細節，依食譜標題延遲請求，未收藏時不持久化
type Detail struct {
	Ingredients  []IngredientLine  `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	Tips         []string          `json:"tips"`
	Nutrition    Nutrition         `json:"nutrition"`
}
