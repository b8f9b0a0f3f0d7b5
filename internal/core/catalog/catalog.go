package catalog

import (
	"recipe-discovery/internal/core/preference"
)

// Entry 食材目錄條目，靜態唯讀參考資料
type Entry struct {
	Name                  string `json:"name"`
	ContainsMeatOrSeafood bool   `json:"containsMeatOrSeafood"`
	ContainsDairy         bool   `json:"containsDairy"`
	ContainsGluten        bool   `json:"containsGluten"`
	ContainsNuts          bool   `json:"containsNuts"`
}

// All 完整食材目錄
var All = []Entry{
	{Name: "Tomato"},
	{Name: "Garlic"},
	{Name: "Onion"},
	{Name: "Bell Pepper"},
	{Name: "Chicken", ContainsMeatOrSeafood: true},
	{Name: "Beef", ContainsMeatOrSeafood: true},
	{Name: "Pasta", ContainsGluten: true},
	{Name: "Rice"},
	{Name: "Bread", ContainsGluten: true},
	{Name: "Eggs"},
	{Name: "Milk", ContainsDairy: true},
	{Name: "Cheese", ContainsDairy: true},
	{Name: "Basil"},
	{Name: "Olive Oil"},
	{Name: "Salt"},
	{Name: "Pepper"},
	{Name: "Lemon"},
	{Name: "Ginger"},
	{Name: "Carrot"},
	{Name: "Broccoli"},
	{Name: "Spinach"},
	{Name: "Mushroom"},
	{Name: "Potato"},
	{Name: "Bacon", ContainsMeatOrSeafood: true},
	{Name: "Fish", ContainsMeatOrSeafood: true},
	{Name: "Tofu"},
	{Name: "Chickpeas"},
	{Name: "Lentils"},
	{Name: "Quinoa"},
	{Name: "Almonds", ContainsNuts: true},
	{Name: "Peanuts", ContainsNuts: true},
	{Name: "Butter", ContainsDairy: true},
	{Name: "Yogurt", ContainsDairy: true},
	{Name: "Honey"},
}

// exclusionRule 排除規則，任一規則命中即排除該條目
type exclusionRule func(e Entry, prefs preference.UserPreferences) bool

// exclusionRules 依序評估的排除規則鏈
// 規則順序固定：主模式 → vegan 加強 → 過敏限制
var exclusionRules = []exclusionRule{
	// vegetarian 或 vegan 排除肉類與海鮮
	func(e Entry, prefs preference.UserPreferences) bool {
		return prefs.ExcludesMeat() && e.ContainsMeatOrSeafood
	},
	// vegan 額外排除蛋、蜂蜜與乳製品
	func(e Entry, prefs preference.UserPreferences) bool {
		return prefs.ExcludesAnimalProducts() &&
			(e.Name == "Eggs" || e.Name == "Honey" || e.ContainsDairy)
	},
	// gluten_free 排除含麩質條目
	func(e Entry, prefs preference.UserPreferences) bool {
		return prefs.HasAllergy(preference.GlutenFree) && e.ContainsGluten
	},
	// dairy_free 排除含乳製品條目
	func(e Entry, prefs preference.UserPreferences) bool {
		return prefs.HasAllergy(preference.DairyFree) && e.ContainsDairy
	},
	// nut_free 排除含堅果條目
	func(e Entry, prefs preference.UserPreferences) bool {
		return prefs.HasAllergy(preference.NutFree) && e.ContainsNuts
	},
}

// Filter 依偏好過濾食材目錄
// 純函數，保留輸入順序，逐條目依規則鏈提前退出
func Filter(entries []Entry, prefs preference.UserPreferences) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		excluded := false
		for _, rule := range exclusionRules {
			if rule(e, prefs) {
				excluded = true
				break
			}
		}
		if !excluded {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Names 取出條目名稱列表
func Names(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
