package llm

import (
	"context"
	"fmt"
	"time"
)

type ArticleInput struct {
	Headline    string
	Detail      string
	Publisher   string
	PublishedAt time.Time
}

type AnswerResult struct {
	Text      string
	ModelUsed string
}

// AnswerClient answers a question grounded in the supplied articles.
type AnswerClient interface {
	Answer(ctx context.Context, question string, articles []ArticleInput) (*AnswerResult, error)
	ModelName() string
}

// SummarizationError wraps a hosted-model failure (transport, auth, quota,
// or an empty completion).
type SummarizationError struct {
	Provider string
	Err      error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization via %s: %v", e.Provider, e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}
