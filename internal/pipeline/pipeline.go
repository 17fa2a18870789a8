// Package pipeline runs the linear ask flow: fetch articles for a topic,
// embed them together with the question, rank by cosine similarity, and
// answer the question over the top-ranked articles.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/cache"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/model"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/embed"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/llm"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/news"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/rank"
)

// ErrNoArticles means every configured news source came back empty for the
// topic. Recoverable: the user can re-ask with a different topic.
var ErrNoArticles = errors.New("no articles found for topic")

type Pipeline struct {
	source   news.Source
	embedder embed.Embedder
	answerer llm.AnswerClient
	articles cache.Store
	topK     int
	limit    int
}

func New(source news.Source, embedder embed.Embedder, answerer llm.AnswerClient, articles cache.Store, topK, fetchLimit int) *Pipeline {
	if topK < 1 {
		topK = 5
	}
	if fetchLimit < 1 {
		fetchLimit = 50
	}
	return &Pipeline{
		source:   source,
		embedder: embedder,
		answerer: answerer,
		articles: articles,
		topK:     topK,
		limit:    fetchLimit,
	}
}

// Ask runs the full fetch, rank and answer flow for one question. topK <= 0
// uses the configured default. The call is synchronous and holds no state
// between invocations beyond the short-lived article cache.
func (p *Pipeline) Ask(ctx context.Context, topic, question string, topK int) (*model.Answer, error) {
	if topK <= 0 {
		topK = p.topK
	}

	articles, err := p.fetch(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	ranked, err := p.rankArticles(ctx, question, articles, topK)
	if err != nil {
		return nil, err
	}

	inputs := make([]llm.ArticleInput, len(ranked))
	for i, r := range ranked {
		inputs[i] = llm.ArticleInput{
			Headline:    r.Article.Headline,
			Detail:      r.Article.Detail,
			Publisher:   r.Article.Publisher,
			PublishedAt: r.Article.PublishedAt,
		}
	}

	result, err := p.answerer.Answer(ctx, question, inputs)
	if err != nil {
		return nil, err
	}

	answer := &model.Answer{
		Text:      result.Text,
		ModelUsed: result.ModelUsed,
		Articles:  make([]model.RankedArticle, len(ranked)),
		Fetched:   len(articles),
	}
	for i, r := range ranked {
		answer.Articles[i] = model.RankedArticle{Article: r.Article, Score: r.Score}
	}

	return answer, nil
}

func (p *Pipeline) fetch(ctx context.Context, topic string) ([]news.Article, error) {
	if cached, ok := p.articles.Get(topic); ok {
		slog.Info("article cache hit", "topic", topic, "count", len(cached))
		return cached, nil
	}

	articles, err := p.source.FetchTopic(ctx, topic, p.limit)
	if err != nil {
		var fetchErr *news.FetchError
		if errors.As(err, &fetchErr) {
			return nil, err
		}
		return nil, &news.FetchError{Source: p.source.Name(), Err: err}
	}

	if len(articles) > 0 {
		p.articles.Put(topic, articles)
	}
	return articles, nil
}

func (p *Pipeline) rankArticles(ctx context.Context, question string, articles []news.Article, topK int) ([]rank.Result, error) {
	texts := make([]string, 0, len(articles)+1)
	texts = append(texts, question)
	for _, a := range articles {
		texts = append(texts, embedText(a))
	}

	vectors, err := embed.Batch(ctx, p.embedder, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding articles: %w", err)
	}

	candidates := make([]rank.Candidate, len(articles))
	for i, a := range articles {
		candidates[i] = rank.Candidate{Article: a, Vector: vectors[i+1]}
	}

	return rank.Rank(vectors[0], candidates, topK), nil
}

// embedText is what a ranked article is embedded as: headline plus detail,
// the same text the original fetch order presents.
func embedText(a news.Article) string {
	if a.Detail == "" {
		return a.Headline
	}
	return a.Headline + ". " + a.Detail
}
