package news

import (
	"context"
	"log/slog"
	"strings"
)

// FallbackSource tries each configured source in order and returns the first
// non-empty result. A source failing or coming back empty is logged and the
// next one is tried; the caller only sees an error when every source has
// been exhausted.
type FallbackSource struct {
	sources []Source
}

func NewFallbackSource(sources ...Source) *FallbackSource {
	return &FallbackSource{sources: sources}
}

func (f *FallbackSource) Name() string {
	names := make([]string, len(f.sources))
	for i, s := range f.sources {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

func (f *FallbackSource) FetchTopic(ctx context.Context, topic string, limit int) ([]Article, error) {
	var lastErr error

	for _, src := range f.sources {
		articles, err := src.FetchTopic(ctx, topic, limit)
		if err != nil {
			slog.Warn("news source failed, trying next", "source", src.Name(), "error", err)
			lastErr = &FetchError{Source: src.Name(), Err: err}
			continue
		}
		if len(articles) == 0 {
			slog.Info("news source returned no articles, trying next", "source", src.Name(), "topic", topic)
			continue
		}
		return articles, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}
