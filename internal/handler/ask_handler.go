package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/model"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/pipeline"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/llm"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/news"

	"github.com/gin-gonic/gin"
)

const maxTopK = 20

// Asker runs the ask pipeline; satisfied by *pipeline.Pipeline.
type Asker interface {
	Ask(ctx context.Context, topic, question string, topK int) (*model.Answer, error)
}

// Pinger checks that the embedding model can be reached; satisfied by
// *embed.OllamaEmbedder.
type Pinger interface {
	Warm(ctx context.Context) error
}

// Status describes the configured pipeline for the /sources endpoint.
type Status struct {
	Sources     string
	EmbedModel  string
	AnswerModel string
}

type AskHandler struct {
	asker  Asker
	pinger Pinger
	status Status
}

func NewAskHandler(asker Asker, pinger Pinger, status Status) *AskHandler {
	return &AskHandler{asker: asker, pinger: pinger, status: status}
}

func (h *AskHandler) PostAsk(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	req.Question = strings.TrimSpace(req.Question)
	if req.Topic == "" || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both topic and question are required"})
		return
	}

	if req.TopK > maxTopK {
		slog.Warn("top_k exceeds max, clamping", "top_k", req.TopK, "max", maxTopK)
		req.TopK = maxTopK
	}

	answer, err := h.asker.Ask(c.Request.Context(), req.Topic, req.Question, req.TopK)
	if err != nil {
		h.writeAskError(c, req.Topic, err)
		return
	}

	articles := make([]RankedArticleResponse, len(answer.Articles))
	for i, r := range answer.Articles {
		articles[i] = RankedArticleResponse{
			Headline:    r.Article.Headline,
			Detail:      r.Article.Detail,
			Publisher:   r.Article.Publisher,
			URL:         r.Article.URL,
			Source:      r.Article.Source,
			PublishedAt: formatPublishedAt(r.Article.PublishedAt),
			Score:       r.Score,
		}
	}

	c.JSON(http.StatusOK, AskResponse{
		Answer:   answer.Text,
		Model:    answer.ModelUsed,
		Fetched:  answer.Fetched,
		Articles: articles,
	})
}

func (h *AskHandler) writeAskError(c *gin.Context, topic string, err error) {
	var fetchErr *news.FetchError
	var sumErr *llm.SummarizationError

	switch {
	case errors.Is(err, pipeline.ErrNoArticles):
		c.JSON(http.StatusNotFound, gin.H{"error": "No articles found, try a different topic"})
	case errors.As(err, &fetchErr):
		slog.Error("news fetch failed", "topic", topic, "source", fetchErr.Source, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "News sources are unavailable"})
	case errors.As(err, &sumErr):
		slog.Error("summarization failed", "topic", topic, "provider", sumErr.Provider, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Answer generation failed"})
	default:
		slog.Error("ask pipeline failed", "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func (h *AskHandler) GetSources(c *gin.Context) {
	c.JSON(http.StatusOK, SourcesResponse{
		Sources:     h.status.Sources,
		EmbedModel:  h.status.EmbedModel,
		AnswerModel: h.status.AnswerModel,
	})
}

func (h *AskHandler) GetHealth(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Warm(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"embedder": "unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"embedder": "ready",
	})
}

func formatPublishedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
