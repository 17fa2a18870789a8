package llm

import (
	"context"
	"fmt"
	"strings"
)

const extractiveSentences = 3

// ExtractiveClient is the no-key fallback: it returns the lead sentences of
// the top-ranked articles instead of calling a hosted model. It never
// produces a SummarizationError for non-empty input.
type ExtractiveClient struct{}

func NewExtractiveClient() *ExtractiveClient {
	return &ExtractiveClient{}
}

func (c *ExtractiveClient) ModelName() string {
	return "extractive"
}

func (c *ExtractiveClient) Answer(ctx context.Context, question string, articles []ArticleInput) (*AnswerResult, error) {
	if len(articles) == 0 {
		return nil, &SummarizationError{Provider: c.ModelName(), Err: fmt.Errorf("no articles to summarize")}
	}

	var parts []string
	for _, a := range articles {
		text := a.Detail
		if text == "" {
			text = a.Headline
		}
		parts = append(parts, text)
	}

	text := leadSentences(strings.Join(parts, " "), extractiveSentences)

	return &AnswerResult{Text: text, ModelUsed: c.ModelName()}, nil
}

func leadSentences(text string, n int) string {
	sentences := strings.SplitAfter(text, ". ")
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	out := strings.TrimSpace(strings.Join(sentences, ""))
	if out != "" && !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}
