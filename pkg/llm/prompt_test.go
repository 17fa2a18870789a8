package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestBuildContext_NumbersArticles(t *testing.T) {
	articles := []ArticleInput{
		{Headline: "First", Detail: "first detail"},
		{Headline: "Second", Detail: "second detail"},
	}

	ctx := buildContext(articles, contextBudget)

	assert.Equal(t, true, strings.Contains(ctx, "1. Headline: First"))
	assert.Equal(t, true, strings.Contains(ctx, "2. Headline: Second"))
	assert.Equal(t, true, strings.Contains(ctx, "Summary: second detail"))
}

func TestBuildContext_DropsWholeArticlesPastBudget(t *testing.T) {
	articles := []ArticleInput{
		{Headline: "fits", Detail: strings.Repeat("a", 50)},
		{Headline: "dropped", Detail: strings.Repeat("b", 200)},
		{Headline: "also dropped", Detail: "short"},
	}

	ctx := buildContext(articles, 100)

	assert.Equal(t, true, strings.Contains(ctx, "fits"))
	assert.Equal(t, false, strings.Contains(ctx, "dropped"))
	// The second article is dropped whole, not cut mid-sentence.
	assert.Equal(t, false, strings.Contains(ctx, "bbb"))
}

func TestBuildContext_FirstArticleAlwaysIncluded(t *testing.T) {
	articles := []ArticleInput{
		{Headline: "huge", Detail: strings.Repeat("x", 500)},
	}

	ctx := buildContext(articles, 100)

	assert.Equal(t, true, len(ctx) > 0)
	assert.Equal(t, true, len([]rune(ctx)) <= 100)
}

func TestBuildContext_Empty(t *testing.T) {
	assert.Equal(t, "", buildContext(nil, contextBudget))
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := buildUserPrompt("What happened?", []ArticleInput{{Headline: "H", Detail: "D"}})

	assert.Equal(t, true, strings.HasPrefix(prompt, "Question: What happened?"))
	assert.Equal(t, true, strings.Contains(prompt, "1. Headline: H"))
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, "answer text", cleanResponse("```\nanswer text\n```"))
	assert.Equal(t, "plain", cleanResponse("  plain  "))
}
