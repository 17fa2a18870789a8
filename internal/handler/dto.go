package handler

type AskRequest struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

type AskResponse struct {
	Answer   string                  `json:"answer"`
	Model    string                  `json:"model"`
	Fetched  int                     `json:"fetched"`
	Articles []RankedArticleResponse `json:"articles"`
}

type RankedArticleResponse struct {
	Headline    string  `json:"headline"`
	Detail      string  `json:"detail"`
	Publisher   string  `json:"publisher"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	PublishedAt string  `json:"published_at"`
	Score       float64 `json:"score"`
}

type SourcesResponse struct {
	Sources     string `json:"sources"`
	EmbedModel  string `json:"embed_model"`
	AnswerModel string `json:"answer_model"`
}
