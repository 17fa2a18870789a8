// Package config resolves the runtime configuration from environment
// variables (a .env file is loaded by the entrypoints via godotenv). Missing
// keys never abort startup: the pipeline degrades to the keyless news feed
// and the extractive answer fallback.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	NewsAPIKey      string
	FinnhubAPIKey   string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	LLMProvider     string // "openai", "anthropic", or "" for auto
	OllamaHost      string
	EmbedModel      string
	RedisURL        string
	FrontendURL     string
	TopK            int
	FetchLimit      int
	NewsDays        int
}

func Load() *Config {
	return &Config{
		NewsAPIKey:      os.Getenv("NEWSAPI_KEY"),
		FinnhubAPIKey:   os.Getenv("FINNHUB_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		LLMProvider:     os.Getenv("LLM_PROVIDER"),
		OllamaHost:      os.Getenv("OLLAMA_HOST"),
		EmbedModel:      os.Getenv("EMBED_MODEL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		TopK:            envInt("TOP_K", 5),
		FetchLimit:      envInt("FETCH_LIMIT", 50),
		NewsDays:        envInt("NEWS_DAYS", 7),
	}
}

func envInt(name string, defaultValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return defaultValue
	}
	return parsed
}
