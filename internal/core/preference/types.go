package preference

// DietaryRestriction 飲食限制
// vegetarian / non_vegetarian / vegan 為互斥的主要模式
// gluten_free / dairy_free / nut_free 為獨立的過敏限制
type DietaryRestriction string

const (
	Vegetarian    DietaryRestriction = "vegetarian"
	NonVegetarian DietaryRestriction = "non_vegetarian"
	Vegan         DietaryRestriction = "vegan"
	GlutenFree    DietaryRestriction = "gluten_free"
	DairyFree     DietaryRestriction = "dairy_free"
	NutFree       DietaryRestriction = "nut_free"
)

// TastePreference 口味偏好
type TastePreference string

const (
	Spicy  TastePreference = "spicy"
	Sweet  TastePreference = "sweet"
	Mild   TastePreference = "mild"
	Savory TastePreference = "savory"
	Tangy  TastePreference = "tangy"
	Sour   TastePreference = "sour"
	Bitter TastePreference = "bitter"
)

// CookingTime 烹飪時間
type CookingTime string

const (
	Quick  CookingTime = "quick"
	Medium CookingTime = "medium"
	Long   CookingTime = "long"
)

// DifficultyLevel 難度等級
type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

// CuisineType 菜系類型
type CuisineType string

const (
	Italian       CuisineType = "italian"
	Chinese       CuisineType = "chinese"
	Indian        CuisineType = "indian"
	Mexican       CuisineType = "mexican"
	Thai          CuisineType = "thai"
	Japanese      CuisineType = "japanese"
	Mediterranean CuisineType = "mediterranean"
	American      CuisineType = "american"
	French        CuisineType = "french"
	Korean        CuisineType = "korean"
)

// DietaryRestrictionLabels 飲食限制顯示標籤
var DietaryRestrictionLabels = map[DietaryRestriction]string{
	Vegetarian:    "Vegetarian",
	NonVegetarian: "Non-Vegetarian",
	Vegan:         "Vegan",
	GlutenFree:    "Gluten-Free",
	DairyFree:     "Dairy-Free",
	NutFree:       "Nut-Free",
}

// TastePreferenceLabels 口味偏好顯示標籤
var TastePreferenceLabels = map[TastePreference]string{
	Spicy:  "Spicy",
	Sweet:  "Sweet",
	Mild:   "Mild",
	Savory: "Savory",
	Tangy:  "Tangy",
	Sour:   "Sour",
	Bitter: "Bitter",
}

// CookingTimeLabels 烹飪時間顯示標籤
var CookingTimeLabels = map[CookingTime]string{
	Quick:  "Quick (15-30 min)",
	Medium: "Medium (30-60 min)",
	Long:   "Long (60+ min)",
}

// DifficultyLevelLabels 難度等級顯示標籤
var DifficultyLevelLabels = map[DifficultyLevel]string{
	Beginner:     "Beginner",
	Intermediate: "Intermediate",
	Advanced:     "Advanced",
}

// CuisineTypeLabels 菜系類型顯示標籤
var CuisineTypeLabels = map[CuisineType]string{
	Italian:       "Italian",
	Chinese:       "Chinese",
	Indian:        "Indian",
	Mexican:       "Mexican",
	Thai:          "Thai",
	Japanese:      "Japanese",
	Mediterranean: "Mediterranean",
	American:      "American",
	French:        "French",
	Korean:        "Korean",
}

// UserPreferences 使用者偏好記錄
// 每個裝置一份，飲食主模式中 vegan 嚴格強於 vegetarian
type UserPreferences struct {
	DietaryRestriction  DietaryRestriction   `json:"dietaryRestriction"`
	AllergyRestrictions []DietaryRestriction `json:"allergyRestrictions"`
	TastePreferences    []TastePreference    `json:"tastePreferences"`
	CookingTime         CookingTime          `json:"cookingTime"`
	DifficultyLevel     DifficultyLevel      `json:"difficultyLevel"`
	CuisinePreferences  []CuisineType        `json:"cuisinePreferences"`
}

// Default 預設偏好記錄
func Default() UserPreferences {
	return UserPreferences{
		DietaryRestriction:  NonVegetarian,
		AllergyRestrictions: []DietaryRestriction{},
		TastePreferences:    []TastePreference{},
		CookingTime:         Medium,
		DifficultyLevel:     Intermediate,
		CuisinePreferences:  []CuisineType{},
	}
}

// primaryModes 主要飲食模式
var primaryModes = map[DietaryRestriction]bool{
	Vegetarian:    true,
	NonVegetarian: true,
	Vegan:         true,
}

// allergyModes 合法的過敏限制值
var allergyModes = map[DietaryRestriction]bool{
	GlutenFree: true,
	DairyFree:  true,
	NutFree:    true,
}

// Valid 檢查偏好記錄的所有欄位是否為合法枚舉值
func (p UserPreferences) Valid() bool {
	if !primaryModes[p.DietaryRestriction] {
		return false
	}
	for _, a := range p.AllergyRestrictions {
		if !allergyModes[a] {
			return false
		}
	}
	for _, t := range p.TastePreferences {
		if _, ok := TastePreferenceLabels[t]; !ok {
			return false
		}
	}
	if _, ok := CookingTimeLabels[p.CookingTime]; !ok {
		return false
	}
	if _, ok := DifficultyLevelLabels[p.DifficultyLevel]; !ok {
		return false
	}
	for _, c := range p.CuisinePreferences {
		if _, ok := CuisineTypeLabels[c]; !ok {
			return false
		}
	}
	return true
}

// HasAllergy 檢查是否包含指定過敏限制
func (p UserPreferences) HasAllergy(r DietaryRestriction) bool {
	for _, a := range p.AllergyRestrictions {
		if a == r {
			return true
		}
	}
	return false
}

// ExcludesMeat 是否排除肉類與海鮮（vegetarian 與 vegan 皆排除）
func (p UserPreferences) ExcludesMeat() bool {
	return p.DietaryRestriction == Vegetarian || p.DietaryRestriction == Vegan
}

// ExcludesAnimalProducts 是否排除所有動物性食材（僅 vegan）
func (p UserPreferences) ExcludesAnimalProducts() bool {
	return p.DietaryRestriction == Vegan
}
