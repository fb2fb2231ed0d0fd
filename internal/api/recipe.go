package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ecomeal/backend/internal/service"
	"github.com/ecomeal/backend/internal/store"
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	llm    service.LLMServiceInterface
	store  store.Store
	logger zerolog.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(llm service.LLMServiceInterface, st store.Store, logger zerolog.Logger) *RecipeHandler {
	return &RecipeHandler{
		llm:    llm,
		store:  st,
		logger: logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-recipe", h.Generate)
	router.GET("/history/recipes", h.History)
}

// Generate builds a recipe from leftover ingredients: prompt the model,
// normalize its reply, compute the eco and health scores, pick an eco tip and
// append one log record. Normalization never fails; only the model call can.
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.llm.GenerateRecipe(c.Request.Context(), req.Ingredients, req.DietaryPreferences)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipe: " + err.Error()})
		return
	}

	data, fellBack := service.ParseRecipeReply(reply, req.Ingredients)
	if fellBack {
		h.logger.Warn().Str("reply", reply).Msg("model reply was not valid JSON, using fallback recipe")
	}

	resp := RecipeResponse{
		RecipeName:   data.RecipeName,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		Calories:     data.Calories,
		EcoTip:       service.EcoTip(data.RecipeName),
		EcoScore:     service.EcoScore(data.Ingredients, data.Calories),
		HealthScore:  service.HealthScore(data.Calories, data.Ingredients),
		PrepTime:     data.PrepTime,
		Difficulty:   data.Difficulty,
	}

	// Log durability is best-effort, the response is already decided.
	if err := h.store.AppendRecipe(store.RecipeRecord{
		InputIngredients:   strings.Join(req.Ingredients, ", "),
		DietaryPreferences: req.DietaryPreferences,
		RecipeName:         resp.RecipeName,
		Calories:           resp.Calories,
		EcoScore:           resp.EcoScore,
		HealthScore:        resp.HealthScore,
		PrepTime:           resp.PrepTime,
		Difficulty:         resp.Difficulty,
	}); err != nil {
		h.logger.Warn().Err(err).Msg("failed to append recipe record")
	}

	c.JSON(http.StatusOK, resp)
}

// History returns the most recent recipe generation records, newest first.
func (h *RecipeHandler) History(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	records, err := h.store.RecentRecipes(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read recipe history: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": toRecipeHistory(records)})
}

type recipeHistoryEntry struct {
	RecordID           string `json:"record_id"`
	Timestamp          string `json:"timestamp"`
	InputIngredients   string `json:"input_ingredients"`
	DietaryPreferences string `json:"dietary_preferences"`
	RecipeName         string `json:"recipe_name"`
	Calories           int    `json:"calories"`
	EcoScore           string `json:"eco_score"`
	HealthScore        string `json:"health_score"`
	PrepTime           string `json:"prep_time"`
	Difficulty         string `json:"difficulty"`
}

func toRecipeHistory(records []store.RecipeRecord) []recipeHistoryEntry {
	entries := make([]recipeHistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, recipeHistoryEntry{
			RecordID:           r.RecordID,
			Timestamp:          r.Timestamp,
			InputIngredients:   r.InputIngredients,
			DietaryPreferences: r.DietaryPreferences,
			RecipeName:         r.RecipeName,
			Calories:           r.Calories,
			EcoScore:           r.EcoScore,
			HealthScore:        r.HealthScore,
			PrepTime:           r.PrepTime,
			Difficulty:         r.Difficulty,
		})
	}
	return entries
}

const defaultHistoryLimit = 20

func parseLimit(raw string) int {
	if raw == "" {
		return defaultHistoryLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}
	return limit
}
