package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ecomeal/backend/internal/service"
	"github.com/ecomeal/backend/internal/store"
)

// Root is the liveness endpoint at /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "EcoMeal AI Backend is running!",
		"status":  "healthy",
	})
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, llm service.LLMServiceInterface, st store.Store, logger zerolog.Logger) {
	router.GET("/", Root)
	router.GET("/health", HealthCheck)

	recipeHandler := NewRecipeHandler(llm, st, logger)
	menuHandler := NewMenuHandler(llm, st, logger)

	root := router.Group("")
	recipeHandler.RegisterRoutes(root)
	menuHandler.RegisterRoutes(root)
}
