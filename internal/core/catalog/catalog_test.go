package catalog

import (
	"testing"

	"recipe-discovery/internal/core/preference"

	"github.com/stretchr/testify/assert"
)

func TestFilterDefaultKeepsEverything(t *testing.T) {
	filtered := Filter(All, preference.Default())
	assert.Len(t, filtered, len(All))
}

func TestFilterVegetarian(t *testing.T) {
	prefs := preference.Default()
	prefs.DietaryRestriction = preference.Vegetarian

	names := Names(Filter(All, prefs))

	assert.NotContains(t, names, "Chicken")
	assert.NotContains(t, names, "Beef")
	assert.NotContains(t, names, "Bacon")
	assert.NotContains(t, names, "Fish")
	// 蛋與乳製品對 vegetarian 合法
	assert.Contains(t, names, "Eggs")
	assert.Contains(t, names, "Milk")
	assert.Contains(t, names, "Cheese")
	assert.Contains(t, names, "Honey")
}

func TestFilterVegan(t *testing.T) {
	prefs := preference.Default()
	prefs.DietaryRestriction = preference.Vegan

	names := Names(Filter(All, prefs))

	// vegan 涵蓋 vegetarian 的所有排除
	for _, excluded := range []string{"Chicken", "Beef", "Bacon", "Fish", "Eggs", "Honey", "Milk", "Cheese", "Butter", "Yogurt"} {
		assert.NotContains(t, names, excluded)
	}
	assert.Contains(t, names, "Tofu")
	assert.Contains(t, names, "Chickpeas")
}

func TestFilterVeganIsStrictlyStrongerThanVegetarian(t *testing.T) {
	vegetarian := preference.Default()
	vegetarian.DietaryRestriction = preference.Vegetarian
	vegan := preference.Default()
	vegan.DietaryRestriction = preference.Vegan

	vegetarianNames := Names(Filter(All, vegetarian))
	veganSet := make(map[string]bool)
	for _, n := range Names(Filter(All, vegan)) {
		veganSet[n] = true
	}

	// vegan 結果必為 vegetarian 結果的子集
	for name := range veganSet {
		assert.Contains(t, vegetarianNames, name)
	}
	assert.Less(t, len(veganSet), len(vegetarianNames))
}

func TestFilterAllergies(t *testing.T) {
	tests := []struct {
		name     string
		allergy  preference.DietaryRestriction
		excluded []string
	}{
		{"gluten_free", preference.GlutenFree, []string{"Pasta", "Bread"}},
		{"dairy_free", preference.DairyFree, []string{"Milk", "Cheese", "Butter", "Yogurt"}},
		{"nut_free", preference.NutFree, []string{"Almonds", "Peanuts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := preference.Default()
			prefs.AllergyRestrictions = []preference.DietaryRestriction{tt.allergy}

			names := Names(Filter(All, prefs))
			for _, e := range tt.excluded {
				assert.NotContains(t, names, e)
			}
			assert.Len(t, names, len(All)-len(tt.excluded))
		})
	}
}

func TestFilterCombinedRestrictions(t *testing.T) {
	prefs := preference.Default()
	prefs.DietaryRestriction = preference.Vegetarian
	prefs.AllergyRestrictions = []preference.DietaryRestriction{
		preference.GlutenFree,
		preference.DairyFree,
	}

	names := Names(Filter(All, prefs))

	for _, excluded := range []string{"Chicken", "Pasta", "Bread", "Milk", "Cheese", "Butter", "Yogurt"} {
		assert.NotContains(t, names, excluded)
	}
	assert.Contains(t, names, "Eggs")
	assert.Contains(t, names, "Rice")
}

func TestFilterPreservesOrder(t *testing.T) {
	prefs := preference.Default()
	prefs.DietaryRestriction = preference.Vegan

	filtered := Filter(All, prefs)

	// 通過的條目保留目錄原序
	last := -1
	pos := make(map[string]int, len(All))
	for i, e := range All {
		pos[e.Name] = i
	}
	for _, e := range filtered {
		assert.Greater(t, pos[e.Name], last)
		last = pos[e.Name]
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	prefs := preference.Default()
	prefs.DietaryRestriction = preference.Vegan

	before := len(All)
	_ = Filter(All, prefs)
	assert.Len(t, All, before)
}
