package model

import "github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/news"

// RankedArticle is an article with its similarity score to the question.
type RankedArticle struct {
	Article news.Article
	Score   float64
}

// Answer is the result of one question over one topic's articles. It lives
// for the duration of the interaction and is never persisted.
type Answer struct {
	Text      string
	ModelUsed string
	Articles  []RankedArticle
	Fetched   int
}
