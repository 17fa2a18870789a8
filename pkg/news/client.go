package news

import (
	"context"
	"fmt"
	"time"
)

type Article struct {
	ExternalID  string
	Headline    string
	Detail      string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
}

// Source fetches recent articles matching a topic. Implementations return
// articles in the provider's own order (newest first where the provider
// supports it); ranking relies on that order for tie-breaking.
type Source interface {
	FetchTopic(ctx context.Context, topic string, limit int) ([]Article, error)
	Name() string
}

// FetchError wraps a provider failure with the source it came from.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
