package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/db"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/config"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/pipeline"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagTopic    string
	flagQuestion string
	flagTopK     int
)

var rootCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a question about recent news on a topic",
	Long:  "ask fetches recent articles for a topic, ranks them against your question by embedding similarity, and answers with an LLM (or lead sentences when no key is configured).",
	RunE:  runAsk,
}

func init() {
	rootCmd.Flags().StringVar(&flagTopic, "topic", "", "news topic to search (required)")
	rootCmd.Flags().StringVar(&flagQuestion, "question", "", "question to answer over the fetched articles (required)")
	rootCmd.Flags().IntVar(&flagTopK, "top-k", 0, "how many articles to rank into the answer (default from TOP_K env, 5)")
	rootCmd.MarkFlagRequired("topic")
	rootCmd.MarkFlagRequired("question")
}

func runAsk(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := config.Load()

	p, embedder, err := pipeline.FromConfig(cfg)
	if err != nil {
		return err
	}
	defer db.CloseRedis()

	ctx := context.Background()

	if err := embedder.Warm(ctx); err != nil {
		return fmt.Errorf("embedding model unavailable (is ollama running?): %w", err)
	}

	answer, err := p.Ask(ctx, flagTopic, flagQuestion, flagTopK)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoArticles) {
			return fmt.Errorf("no articles found for %q, try a different topic", flagTopic)
		}
		return err
	}

	fmt.Printf("Answer (%s):\n%s\n\n", answer.ModelUsed, answer.Text)
	fmt.Printf("Top %d of %d articles:\n", len(answer.Articles), answer.Fetched)
	for i, r := range answer.Articles {
		fmt.Printf("%d. [%.3f] %s", i+1, r.Score, r.Article.Headline)
		if r.Article.Publisher != "" {
			fmt.Printf(" (%s)", r.Article.Publisher)
		}
		fmt.Println()
		if r.Article.URL != "" {
			fmt.Printf("   %s\n", r.Article.URL)
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
