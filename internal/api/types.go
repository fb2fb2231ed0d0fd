package api

import "github.com/ecomeal/backend/internal/service"

// IngredientRequest is the body of POST /generate-recipe
type IngredientRequest struct {
	Ingredients        []string `json:"ingredients" binding:"required,min=1"`
	DietaryPreferences string   `json:"dietary_preferences"`
}

// MenuRequest is the body of POST /restaurant-analysis
type MenuRequest struct {
	MenuItems      []string `json:"menu_items" binding:"required,min=1"`
	RestaurantName string   `json:"restaurant_name"`
}

// RecipeResponse is the full recipe returned to the caller
type RecipeResponse struct {
	RecipeName   string   `json:"recipe_name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     int      `json:"calories"`
	EcoTip       string   `json:"eco_tip"`
	EcoScore     string   `json:"eco_score"`
	HealthScore  string   `json:"health_score"`
	PrepTime     string   `json:"prep_time"`
	Difficulty   string   `json:"difficulty"`
}

// MenuAnalysisResponse is the full menu analysis returned to the caller
type MenuAnalysisResponse struct {
	RestaurantName    string                     `json:"restaurant_name"`
	EcoAnalysis       string                     `json:"eco_analysis"`
	Recommendations   []string                   `json:"recommendations"`
	OverallEcoScore   string                     `json:"overall_eco_score"`
	MenuItemsAnalysis []service.MenuItemAnalysis `json:"menu_items_analysis"`
}
