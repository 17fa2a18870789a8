package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/db"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/config"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/handler"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/internal/pipeline"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	p, embedder, err := pipeline.FromConfig(cfg)
	if err != nil {
		log.Fatalf("error building pipeline: %v", err)
	}
	defer db.CloseRedis()

	embedModel, answerModel := p.Models()
	askHandler := handler.NewAskHandler(p, embedder, handler.Status{
		Sources:     p.SourceName(),
		EmbedModel:  embedModel,
		AnswerModel: answerModel,
	})

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/ask", askHandler.PostAsk)
	r.GET("/sources", askHandler.GetSources)
	r.GET("/health", askHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
