package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecomeal/backend/config"
)

// LLMService talks to the Gemini API through its OpenAI-compatible chat
// completions endpoint. It returns the raw text of the model's reply; the
// normalization into structured data happens in ParseRecipeReply and
// ParseMenuReply so that callers can always get a usable result.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a new LLMService instance. A missing API key is not
// an error here: every call will fail with a clear message instead of the
// service silently producing garbage.
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.GeminiAPIKey,
		apiURL: cfg.GeminiAPIURL,
		model:  cfg.GeminiModel,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat completions endpoint
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

const recipeSystemPrompt = `You are a professional chef focused on sustainable cooking. Please provide your response in JSON format with the following structure:
{
    "recipe_name": "Creative recipe name",
    "ingredients": ["list", "of", "ingredients", "needed"],
    "instructions": ["step", "by", "step", "instructions"],
    "calories": 400,
    "prep_time": "X minutes",
    "difficulty": "Easy/Medium/Hard"
}

Note: the calories field must be an integer, not a string.
Do not add explanations outside the JSON response.`

const menuSystemPrompt = `You are a sustainability consultant for restaurants. Please provide your response in JSON format with the following structure:
{
    "eco_analysis": "Overall analysis of the menu's environmental impact",
    "recommendations": ["list", "of", "eco-friendly", "recommendations"],
    "overall_eco_score": "green/yellow/red",
    "menu_items_analysis": [
        {"item": "menu item name", "eco_rating": "green/yellow/red", "suggestion": "improvement suggestion"}
    ]
}

Include one menu_items_analysis entry per menu item.
Do not add explanations outside the JSON response.`

// GenerateRecipe asks the model for a recipe built from leftover ingredients
// and returns the raw reply text.
func (s *LLMService) GenerateRecipe(ctx context.Context, ingredients []string, dietaryPreferences string) (string, error) {
	prompt := fmt.Sprintf("Create a delicious recipe using these leftover ingredients: %s", strings.Join(ingredients, ", "))
	if dietaryPreferences != "" {
		prompt += fmt.Sprintf(" (Dietary preferences: %s)", dietaryPreferences)
	}
	prompt += "\n\nMake it eco-friendly and sustainable. Focus on reducing food waste and using all ingredients efficiently."

	return s.chatCompletion(ctx, recipeSystemPrompt, prompt)
}

// AnalyzeMenu asks the model for an eco-friendliness analysis of a restaurant
// menu and returns the raw reply text.
func (s *LLMService) AnalyzeMenu(ctx context.Context, menuItems []string) (string, error) {
	prompt := fmt.Sprintf("Analyze this restaurant menu for eco-friendliness and sustainability: %s", strings.Join(menuItems, ", "))
	prompt += "\n\nFocus on:\n- Local and seasonal ingredients\n- Plant-based options\n- Sustainable protein sources\n- Food waste reduction\n- Packaging and preparation methods"

	return s.chatCompletion(ctx, menuSystemPrompt, prompt)
}

// chatCompletion sends one system+user exchange and extracts the reply text.
func (s *LLMService) chatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
