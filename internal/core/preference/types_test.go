package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	prefs := Default()

	assert.Equal(t, NonVegetarian, prefs.DietaryRestriction)
	assert.Empty(t, prefs.AllergyRestrictions)
	assert.Empty(t, prefs.TastePreferences)
	assert.Equal(t, Medium, prefs.CookingTime)
	assert.Equal(t, Intermediate, prefs.DifficultyLevel)
	assert.Empty(t, prefs.CuisinePreferences)
	assert.True(t, prefs.Valid())
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		prefs UserPreferences
		valid bool
	}{
		{"預設值", Default(), true},
		{
			"完整合法記錄",
			UserPreferences{
				DietaryRestriction:  Vegan,
				AllergyRestrictions: []DietaryRestriction{GlutenFree, NutFree},
				TastePreferences:    []TastePreference{Spicy, Savory},
				CookingTime:         Quick,
				DifficultyLevel:     Advanced,
				CuisinePreferences:  []CuisineType{Thai, Korean},
			},
			true,
		},
		{"空的主模式", UserPreferences{CookingTime: Medium, DifficultyLevel: Beginner}, false},
		{
			"非法主模式",
			UserPreferences{DietaryRestriction: "pescatarian", CookingTime: Medium, DifficultyLevel: Beginner},
			false,
		},
		{
			"主模式混入過敏欄位",
			UserPreferences{DietaryRestriction: GlutenFree, CookingTime: Medium, DifficultyLevel: Beginner},
			false,
		},
		{
			"非法過敏限制",
			UserPreferences{
				DietaryRestriction:  Vegetarian,
				AllergyRestrictions: []DietaryRestriction{Vegan},
				CookingTime:         Medium,
				DifficultyLevel:     Beginner,
			},
			false,
		},
		{
			"非法烹飪時間",
			UserPreferences{DietaryRestriction: NonVegetarian, CookingTime: "instant", DifficultyLevel: Beginner},
			false,
		},
		{
			"非法菜系",
			UserPreferences{
				DietaryRestriction: NonVegetarian,
				CookingTime:        Medium,
				DifficultyLevel:    Beginner,
				CuisinePreferences: []CuisineType{"martian"},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.prefs.Valid())
		})
	}
}

func TestDietaryHelpers(t *testing.T) {
	vegan := UserPreferences{DietaryRestriction: Vegan}
	vegetarian := UserPreferences{DietaryRestriction: Vegetarian}
	omnivore := UserPreferences{DietaryRestriction: NonVegetarian}

	assert.True(t, vegan.ExcludesMeat())
	assert.True(t, vegetarian.ExcludesMeat())
	assert.False(t, omnivore.ExcludesMeat())

	// vegan 嚴格強於 vegetarian
	assert.True(t, vegan.ExcludesAnimalProducts())
	assert.False(t, vegetarian.ExcludesAnimalProducts())

	prefs := UserPreferences{AllergyRestrictions: []DietaryRestriction{DairyFree}}
	assert.True(t, prefs.HasAllergy(DairyFree))
	assert.False(t, prefs.HasAllergy(NutFree))
}

func TestLabels(t *testing.T) {
	assert.Len(t, DietaryRestrictionLabels, 6)
	assert.Len(t, TastePreferenceLabels, 7)
	assert.Len(t, CookingTimeLabels, 3)
	assert.Len(t, DifficultyLevelLabels, 3)
	assert.Len(t, CuisineTypeLabels, 10)

	assert.Equal(t, "Non-Vegetarian", DietaryRestrictionLabels[NonVegetarian])
	assert.Equal(t, "Quick (15-30 min)", CookingTimeLabels[Quick])
}
