package service

import "context"

// LLMServiceInterface defines the model-invocation capability handlers depend
// on, so tests can substitute a deterministic double for the live API.
type LLMServiceInterface interface {
	GenerateRecipe(ctx context.Context, ingredients []string, dietaryPreferences string) (string, error)
	AnalyzeMenu(ctx context.Context, menuItems []string) (string, error)
}
