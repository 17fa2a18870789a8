package news

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// NewsAPIClient fetches topic news from the NewsAPI.org "everything" endpoint.
// The free tier is limited to 100 requests per day; that quota is an
// operational constraint of the provider, not enforced here.
type NewsAPIClient struct {
	apiKey     string
	days       int
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string, days int) *NewsAPIClient {
	if days <= 0 {
		days = 7
	}
	return &NewsAPIClient{
		apiKey:     apiKey,
		days:       days,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) FetchTopic(ctx context.Context, topic string, limit int) ([]Article, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -c.days)

	params := url.Values{}
	params.Set("q", topic)
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", limit))
	params.Set("apiKey", c.apiKey)

	reqURL := "https://newsapi.org/v2/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi error %s: %s", raw.Code, raw.Message)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		if item.Title == "" {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			ExternalID:  generateExternalID(item.URL),
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.URL,
			Publisher:   item.Source.Name,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

func generateExternalID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)[:16]
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source      newsAPISource `json:"source"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
