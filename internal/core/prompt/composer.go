package prompt

import (
	"fmt"
	"strings"

	"recipe-discovery/internal/core/preference"
)

// ConstraintText 將偏好記錄轉換為自然語言限制敘述
// 子句順序固定且每句自成一體，任何子句缺席都不影響其餘子句
// 全部偏好為空時回傳空字串
func ConstraintText(prefs preference.UserPreferences) string {
	var clauses []string

	// 主要飲食限制（non_vegetarian 不產生子句）
	switch prefs.DietaryRestriction {
	case preference.Vegetarian:
		clauses = append(clauses, "IMPORTANT: All recipes MUST be vegetarian (no meat, poultry, or seafood).")
	case preference.Vegan:
		clauses = append(clauses, "IMPORTANT: All recipes MUST be vegan (no animal products including meat, dairy, eggs, honey).")
	}

	// 過敏限制
	if len(prefs.AllergyRestrictions) > 0 {
		allergies := make([]string, 0, len(prefs.AllergyRestrictions))
		for _, a := range prefs.AllergyRestrictions {
			allergies = append(allergies, strings.ReplaceAll(string(a), "_", " "))
		}
		clauses = append(clauses, fmt.Sprintf("Must be %s.", strings.Join(allergies, ", ")))
	}

	// 口味偏好
	if len(prefs.TastePreferences) > 0 {
		tastes := make([]string, 0, len(prefs.TastePreferences))
		for _, t := range prefs.TastePreferences {
			tastes = append(tastes, string(t))
		}
		clauses = append(clauses, fmt.Sprintf("Preferred flavors: %s.", strings.Join(tastes, ", ")))
	}

	// 烹飪時間（long 視為無限制，不產生子句）
	switch prefs.CookingTime {
	case preference.Quick:
		clauses = append(clauses, "Prefer recipes that take 15-30 minutes.")
	case preference.Medium:
		clauses = append(clauses, "Prefer recipes that take 30-60 minutes.")
	}

	// 難度等級
	if prefs.DifficultyLevel != "" {
		clauses = append(clauses, fmt.Sprintf("Difficulty should match %s skill level.", prefs.DifficultyLevel))
	}

	// 菜系偏好
	if len(prefs.CuisinePreferences) > 0 {
		cuisines := make([]string, 0, len(prefs.CuisinePreferences))
		for _, c := range prefs.CuisinePreferences {
			cuisines = append(cuisines, string(c))
		}
		clauses = append(clauses, fmt.Sprintf("Preferred cuisines: %s.", strings.Join(cuisines, ", ")))
	}

	return strings.Join(clauses, " ")
}

// GenerationPrompt 組裝食譜生成提示
// 要求模型回傳 JSON 陣列，欄位為 title/description/cookTime/difficulty/servings
func GenerationPrompt(ingredients []string, prefs preference.UserPreferences, count int) string {
	return fmt.Sprintf(`Generate %d unique and delicious recipe suggestions based on these ingredients: %s.

%s

For each recipe, provide:
1. Recipe title
2. Brief description (1 sentence)
3. Estimated cook time (e.g., "30 minutes")
4. Difficulty level (Easy, Medium, or Hard)
5. Number of servings

Format your response as a JSON array with objects containing: title, description, cookTime, difficulty, servings.
Only return valid JSON, no markdown formatting or additional text.

Example format:
[
  {
    "title": "Recipe Name",
    "description": "Brief description",
    "cookTime": "30 minutes",
    "difficulty": "Medium",
    "servings": "4"
  }
]`, count, strings.Join(ingredients, ", "), ConstraintText(prefs))
}

// DetailPrompt 組裝食譜細節提示
// 要求模型回傳單一 JSON 物件，含 ingredients/instructions/tips/nutrition
func DetailPrompt(title string, ingredients []string, prefs preference.UserPreferences) string {
	ingredientText := "general ingredients"
	if len(ingredients) > 0 {
		ingredientText = strings.Join(ingredients, ", ")
	}

	p := fmt.Sprintf(`Provide detailed cooking instructions and information for the recipe %q using these ingredients: %s.

%s

Provide the response in the following JSON format (and ONLY JSON, no markdown or additional text):
{
  "ingredients": [
    {
      "item": "ingredient name",
      "amount": "quantity and unit"
    }
  ],
  "instructions": [
    {
      "step": 1,
      "instruction": "detailed step"
    }
  ],
  "tips": [
    "helpful cooking tip"
  ],
  "nutrition": {
    "calories": "approximate calories per serving",
    "protein": "grams",
    "carbs": "grams",
    "fat": "grams"
  }
}

Make sure to include at least 6-8 ingredients, 6-8 detailed cooking steps, 3-4 helpful tips, and accurate nutrition information.`,
		title, ingredientText, ConstraintText(prefs))
	return p
}

// baseChatPrompt 聊天助手的固定系統指令
const baseChatPrompt = `You are a helpful Recipe Assistant AI. You specialize in:
- Recipe suggestions and recommendations
- Cooking techniques and methods
- Ingredient substitutions
- Dietary preferences (vegetarian, vegan, gluten-free, etc.)
- Cooking tips and tricks
- Meal planning
- Kitchen equipment advice
- Food safety and storage

Provide helpful, accurate, and friendly responses about recipes and cooking. Keep responses concise but informative. Use bullet points when listing multiple items.`

// ChatSystemPrompt 組裝聊天系統提示，並附上偏好限制敘述
func ChatSystemPrompt(prefs preference.UserPreferences) string {
	constraint := ConstraintText(prefs)
	if constraint == "" {
		return baseChatPrompt
	}
	return baseChatPrompt + "\n\n" + constraint
}
