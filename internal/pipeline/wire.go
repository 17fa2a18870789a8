package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/db"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/cache"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/config"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/embed"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/llm"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/news"
)

// FromConfig wires a Pipeline out of whatever the environment provides.
// NewsAPI and FinnHub join the source chain only when their keys are set;
// the Google News feed is always the last resort. The answerer degrades to
// the extractive fallback when no LLM key is configured.
// The embedder is returned alongside the pipeline so callers can warm it up
// eagerly or use it as a health probe.
func FromConfig(cfg *config.Config) (*Pipeline, *embed.OllamaEmbedder, error) {
	var sources []news.Source
	if cfg.NewsAPIKey != "" {
		sources = append(sources, news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsDays))
	}
	if cfg.FinnhubAPIKey != "" {
		sources = append(sources, news.NewFinnhubClient(cfg.FinnhubAPIKey))
	}
	sources = append(sources, news.NewGoogleNewsClient())

	source := news.NewFallbackSource(sources...)

	embedder, err := embed.NewOllamaEmbedder(cfg.EmbedModel, cfg.OllamaHost)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring embedder: %w", err)
	}

	answerer := answererFor(cfg)

	var articles cache.Store
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(); err != nil {
			slog.Warn("redis unavailable, using in-memory article cache", "error", err)
			articles = cache.NewMemory(cache.DefaultTTL)
		} else {
			articles = cache.NewRedis(cache.DefaultTTL)
		}
	} else {
		articles = cache.NewMemory(cache.DefaultTTL)
	}

	slog.Info("pipeline configured",
		"sources", source.Name(),
		"embed_model", embedder.ModelName(),
		"answer_model", answerer.ModelName(),
		"top_k", cfg.TopK,
	)

	return New(source, embedder, answerer, articles, cfg.TopK, cfg.FetchLimit), embedder, nil
}

func answererFor(cfg *config.Config) llm.AnswerClient {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey != "" {
			return llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		}
	case "anthropic":
		if cfg.AnthropicAPIKey != "" {
			return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		}
	default:
		if cfg.OpenAIAPIKey != "" {
			return llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		}
		if cfg.AnthropicAPIKey != "" {
			return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		}
	}

	slog.Warn("no LLM key configured, answers fall back to lead sentences")
	return llm.NewExtractiveClient()
}

// SourceName reports the configured source chain, for status endpoints.
func (p *Pipeline) SourceName() string {
	return p.source.Name()
}

// Models reports the embedding and answer models in use.
func (p *Pipeline) Models() (embedModel, answerModel string) {
	return p.embedder.ModelName(), p.answerer.ModelName()
}
