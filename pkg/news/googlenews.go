package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"
)

const maxDetailRunes = 300

// GoogleNewsClient fetches articles from the Google News RSS search feed.
// It needs no API key and serves as the fallback when NewsAPI is not
// configured or unavailable.
type GoogleNewsClient struct {
	parser  *gofeed.Parser
	baseURL string
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		parser:  gofeed.NewParser(),
		baseURL: "https://news.google.com/rss/search",
	}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNewsRSS"
}

func (c *GoogleNewsClient) FetchTopic(ctx context.Context, topic string, limit int) ([]Article, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", c.baseURL, url.QueryEscape(topic))

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("google news rss: %w", err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}
		if limit > 0 && len(articles) >= limit {
			break
		}

		a := Article{
			ExternalID: generateExternalID(item.Link),
			Headline:   item.Title,
			Detail:     truncate(stripHTML(item.Description), maxDetailRunes),
			URL:        item.Link,
			Publisher:  "Google News",
			Source:     c.Name(),
		}

		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
