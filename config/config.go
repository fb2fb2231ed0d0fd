package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Gemini configuration. The API is spoken to through its
	// OpenAI-compatible chat completions endpoint.
	GeminiAPIKey string
	GeminiAPIURL string
	GeminiModel  string

	// Log store configuration
	DataDir string

	// CORS configuration
	AllowedOrigins []string
}

const defaultGeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"

// LoadConfig creates a new Config instance with values from environment
// variables. A local config.env file is loaded first when present so the
// service can run outside of a container without exporting anything.
func LoadConfig() (*Config, error) {
	// Missing file is fine, environment variables win either way.
	_ = godotenv.Load("config.env")

	cfg := &Config{
		ServerHost:   getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiAPIURL: getEnv("GEMINI_API_URL", defaultGeminiAPIURL),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-pro"),
		DataDir:      getEnv("DATA_DIR", "data"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", cfg.ServerPort, err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable or the fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
