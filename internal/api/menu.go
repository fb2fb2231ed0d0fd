package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ecomeal/backend/internal/service"
	"github.com/ecomeal/backend/internal/store"
)

// MenuHandler handles restaurant menu analysis requests
type MenuHandler struct {
	llm    service.LLMServiceInterface
	store  store.Store
	logger zerolog.Logger
}

// NewMenuHandler creates a new MenuHandler instance
func NewMenuHandler(llm service.LLMServiceInterface, st store.Store, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		llm:    llm,
		store:  st,
		logger: logger,
	}
}

// RegisterRoutes registers the menu analysis routes
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/restaurant-analysis", h.Analyze)
	router.GET("/history/analyses", h.History)
}

// Analyze rates a restaurant menu for eco-friendliness. The model (or the
// fallback) is the sole source of the ratings here, no local scoring is done.
func (h *MenuHandler) Analyze(c *gin.Context) {
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurantName := req.RestaurantName
	if restaurantName == "" {
		restaurantName = "Restaurant"
	}

	reply, err := h.llm.AnalyzeMenu(c.Request.Context(), req.MenuItems)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze menu: " + err.Error()})
		return
	}

	data, fellBack := service.ParseMenuReply(reply, req.MenuItems)
	if fellBack {
		h.logger.Warn().Str("reply", reply).Msg("model reply was not valid JSON, using fallback analysis")
	}

	resp := MenuAnalysisResponse{
		RestaurantName:    restaurantName,
		EcoAnalysis:       data.EcoAnalysis,
		Recommendations:   data.Recommendations,
		OverallEcoScore:   data.OverallEcoScore,
		MenuItemsAnalysis: data.MenuItemsAnalysis,
	}

	if err := h.store.AppendMenuAnalysis(store.MenuAnalysisRecord{
		RestaurantName:       restaurantName,
		MenuItems:            strings.Join(req.MenuItems, ", "),
		OverallEcoScore:      resp.OverallEcoScore,
		RecommendationsCount: len(resp.Recommendations),
	}); err != nil {
		h.logger.Warn().Err(err).Msg("failed to append menu analysis record")
	}

	c.JSON(http.StatusOK, resp)
}

// History returns the most recent menu analysis records, newest first.
func (h *MenuHandler) History(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	records, err := h.store.RecentMenuAnalyses(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read analysis history: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": toMenuHistory(records)})
}

type menuHistoryEntry struct {
	RecordID             string `json:"record_id"`
	Timestamp            string `json:"timestamp"`
	RestaurantName       string `json:"restaurant_name"`
	MenuItems            string `json:"menu_items"`
	OverallEcoScore      string `json:"overall_eco_score"`
	RecommendationsCount int    `json:"recommendations_count"`
}

func toMenuHistory(records []store.MenuAnalysisRecord) []menuHistoryEntry {
	entries := make([]menuHistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, menuHistoryEntry{
			RecordID:             r.RecordID,
			Timestamp:            r.Timestamp,
			RestaurantName:       r.RestaurantName,
			MenuItems:            r.MenuItems,
			OverallEcoScore:      r.OverallEcoScore,
			RecommendationsCount: r.RecommendationsCount,
		})
	}
	return entries
}
