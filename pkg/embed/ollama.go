package embed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	ollama "github.com/ollama/ollama/api"
)

const DefaultModel = "nomic-embed-text"

// OllamaEmbedder generates embeddings with a locally served Ollama model.
// The model is loaded into memory by the server on first use; Warm performs
// that load exactly once per process, and every Embed call goes through it.
type OllamaEmbedder struct {
	client *ollama.Client
	model  string

	mu     sync.Mutex
	warmed bool
	dim    int
}

func NewOllamaEmbedder(model, baseURL string) (*OllamaEmbedder, error) {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base URL: %w", err)
	}

	hc := &http.Client{Timeout: 120 * time.Second}

	return &OllamaEmbedder{
		client: ollama.NewClient(parsedURL, hc),
		model:  model,
	}, nil
}

// Warm loads the model once. Safe for repeated and concurrent calls; after
// the first success it is a no-op, and a failed load is retried on the next
// call rather than poisoning the process.
func (e *OllamaEmbedder) Warm(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.warmed {
		return nil
	}

	vec, err := e.embed(ctx, "warm up")
	if err != nil {
		return fmt.Errorf("loading embedding model %s: %w", e.model, err)
	}

	e.dim = len(vec)
	e.warmed = true
	return nil
}

func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := e.Warm(ctx); err != nil {
		return nil, err
	}
	return e.embed(ctx, truncateInput(text))
}

func (e *OllamaEmbedder) embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Embed(ctx, &ollama.EmbedRequest{
		Model: e.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("ollama embed: no embeddings returned")
	}

	return resp.Embeddings[0], nil
}

// Dimension reports the vector length observed during warm-up, 0 before it.
func (e *OllamaEmbedder) Dimension() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dim
}

func (e *OllamaEmbedder) ModelName() string {
	return e.model
}
