package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

// RecipeData represents the structure of a recipe as returned by the LLM
type RecipeData struct {
	RecipeName   string   `json:"recipe_name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     int      `json:"calories"`
	PrepTime     string   `json:"prep_time"`
	Difficulty   string   `json:"difficulty"`
}

// MenuItemAnalysis is the per-item part of a menu analysis
type MenuItemAnalysis struct {
	Item       string `json:"item"`
	EcoRating  string `json:"eco_rating"`
	Suggestion string `json:"suggestion"`
}

// MenuAnalysisData represents the structure of a menu analysis as returned by the LLM
type MenuAnalysisData struct {
	EcoAnalysis       string             `json:"eco_analysis"`
	Recommendations   []string           `json:"recommendations"`
	OverallEcoScore   string             `json:"overall_eco_score"`
	MenuItemsAnalysis []MenuItemAnalysis `json:"menu_items_analysis"`
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// stripCodeFences removes markdown code block markers the model sometimes
// wraps its JSON in.
func stripCodeFences(reply string) string {
	cleaned := codeFenceRe.ReplaceAllString(reply, "$1")
	return strings.TrimSpace(cleaned)
}

// ParseRecipeReply decodes the model's raw reply into a RecipeData. The model
// gives no guarantee of valid JSON, so on decode failure a fixed fallback
// recipe built from the input ingredients is substituted instead of surfacing
// an error. The second return value reports whether the fallback was used.
func ParseRecipeReply(reply string, inputIngredients []string) (RecipeData, bool) {
	// Decoding through a pointer makes a literal null reply come back nil
	// instead of a zero-valued recipe.
	var data *RecipeData
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &data); err == nil && data != nil {
		return *data, false
	}

	fallback := RecipeData{
		RecipeName:   "Leftover " + strings.Join(inputIngredients, ", ") + " Recipe",
		Ingredients:  append(append([]string{}, inputIngredients...), "salt", "pepper", "olive oil"),
		Instructions: []string{"Combine all ingredients", "Cook until done", "Season to taste"},
		Calories:     400,
		PrepTime:     "30 minutes",
		Difficulty:   "Easy",
	}
	return fallback, true
}

// ParseMenuReply decodes the model's raw reply into a MenuAnalysisData, with
// the same silent-fallback contract as ParseRecipeReply: a fixed analysis
// rating every input item yellow.
func ParseMenuReply(reply string, menuItems []string) (MenuAnalysisData, bool) {
	var data *MenuAnalysisData
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &data); err == nil && data != nil {
		return *data, false
	}

	items := make([]MenuItemAnalysis, 0, len(menuItems))
	for _, item := range menuItems {
		items = append(items, MenuItemAnalysis{
			Item:       item,
			EcoRating:  ScoreYellow,
			Suggestion: "Consider making this more sustainable",
		})
	}

	fallback := MenuAnalysisData{
		EcoAnalysis: "Menu analysis completed. Consider adding more plant-based options and local ingredients.",
		Recommendations: []string{
			"Add more plant-based options",
			"Source ingredients locally",
			"Reduce food waste through better planning",
			"Use sustainable packaging",
		},
		OverallEcoScore:   ScoreYellow,
		MenuItemsAnalysis: items,
	}
	return fallback, true
}
