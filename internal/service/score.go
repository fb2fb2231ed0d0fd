package service

import (
	"hash/fnv"
	"strings"
)

// Score values shared by the eco and health ratings.
const (
	ScoreGreen  = "green"
	ScoreYellow = "yellow"
	ScoreRed    = "red"
)

var (
	ecoKeywords       = []string{"organic", "local", "seasonal", "plant-based", "sustainable"}
	processedKeywords = []string{"processed", "packaged", "frozen", "canned"}

	healthyKeywords   = []string{"vegetables", "fruits", "whole grain", "lean protein", "nuts", "seeds"}
	unhealthyKeywords = []string{"sugar", "sodium", "saturated fat", "processed"}
)

var ecoTips = []string{
	"Use all parts of vegetables to reduce waste",
	"Choose local and seasonal ingredients when possible",
	"Compost food scraps instead of throwing them away",
	"Store leftovers properly to extend their shelf life",
	"Plan meals to use ingredients before they spoil",
}

// countKeywordMatches counts (ingredient, keyword) pairs where the keyword is
// a case-insensitive substring of the ingredient. An ingredient matching two
// keywords contributes two, one keyword in two ingredients also contributes
// two. The scores depend on this cross-product counting.
func countKeywordMatches(ingredients []string, keywords []string) int {
	count := 0
	for _, ingredient := range ingredients {
		lower := strings.ToLower(ingredient)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
	}
	return count
}

// EcoScore rates a recipe green, yellow or red from its ingredient list and
// calorie count. The branches overlap, so they must be evaluated in this
// order: an equal keyword count with high calories is still yellow.
func EcoScore(ingredients []string, calories int) string {
	ecoCount := countKeywordMatches(ingredients, ecoKeywords)
	processedCount := countKeywordMatches(ingredients, processedKeywords)

	if ecoCount > processedCount && calories < 600 {
		return ScoreGreen
	}
	if ecoCount == processedCount || (600 <= calories && calories <= 800) {
		return ScoreYellow
	}
	return ScoreRed
}

// HealthScore mirrors EcoScore with its own keyword sets and the 500/700
// calorie thresholds.
func HealthScore(calories int, ingredients []string) string {
	healthyCount := countKeywordMatches(ingredients, healthyKeywords)
	unhealthyCount := countKeywordMatches(ingredients, unhealthyKeywords)

	if healthyCount > unhealthyCount && calories < 500 {
		return ScoreGreen
	}
	if healthyCount == unhealthyCount || (500 <= calories && calories <= 700) {
		return ScoreYellow
	}
	return ScoreRed
}

// EcoTip picks one of the fixed tips for a recipe name. FNV-1a keeps the
// pick stable across process restarts, so the same name always gets the
// same tip.
func EcoTip(recipeName string) string {
	h := fnv.New32a()
	h.Write([]byte(recipeName))
	return ecoTips[h.Sum32()%uint32(len(ecoTips))]
}
