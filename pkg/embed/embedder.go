package embed

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// maxInputRunes bounds the text sent to the embedding model. Input is
// head-kept: everything past the limit is dropped from the tail, so the
// headline and lede of a long article are what contribute to its vector.
const maxInputRunes = 2048

// Embedder maps text to a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
	ModelName() string
}

// Batch embeds multiple texts concurrently with bounded parallelism.
// Returns nil (not an error) for empty input. The result preserves input
// order: vector i belongs to text i.
func Batch(ctx context.Context, e Embedder, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([][]float32, len(texts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4) // Bound concurrency to avoid overwhelming the model server.

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			vec, err := e.Embed(gCtx, text)
			if err != nil {
				return fmt.Errorf("embedding text %d: %w", i, err)
			}
			results[i] = vec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func truncateInput(text string) string {
	runes := []rune(text)
	if len(runes) <= maxInputRunes {
		return text
	}
	return string(runes[:maxInputRunes])
}
