package news

import (
	"context"
	"strconv"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubClient fetches general market news from FinnHub. FinnHub has no
// topic search, so articles are filtered client-side on the topic; it is
// only useful for finance-flavored topics and must be opted into with a key.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "FinnHub"
}

func (c *FinnhubClient) FetchTopic(ctx context.Context, topic string, limit int) ([]Article, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var articles []Article

	for _, item := range res {
		if limit > 0 && len(articles) >= limit {
			break
		}

		a := Article{
			Source: c.Name(),
		}

		if item.Id != nil {
			a.ExternalID = strconv.FormatInt(*item.Id, 10)
		}

		if item.Headline != nil {
			a.Headline = *item.Headline
		}

		if item.Summary != nil {
			a.Detail = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		if item.Source != nil {
			a.Publisher = *item.Source
		}

		if !matchesTopic(a, topic) {
			continue
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func matchesTopic(a Article, topic string) bool {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return true
	}
	haystack := strings.ToLower(a.Headline + " " + a.Detail)
	for _, word := range strings.Fields(topic) {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}
