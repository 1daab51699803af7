package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

// GoogleNews searches the Google News RSS feed for a query. Results carry
// raw titles; source extraction and relevance scoring happen downstream.
type GoogleNews struct {
	parser   *gofeed.Parser
	baseURL  string
	perQuery int
	locale   url.Values
}

func NewGoogleNews(timeout time.Duration) *GoogleNews {
	parser := gofeed.NewParser()
	parser.Client = newHTTPClient(timeout)

	locale := url.Values{}
	locale.Set("hl", "es-419")
	locale.Set("gl", "AR")
	locale.Set("ceid", "AR:es-419")

	return &GoogleNews{
		parser:   parser,
		baseURL:  "https://news.google.com/rss/search",
		perQuery: 5,
		locale:   locale,
	}
}

func (g *GoogleNews) Name() string {
	return "google-news"
}

func (g *GoogleNews) Search(ctx context.Context, query string) ([]entity.NewsItem, error) {
	params := url.Values{}
	params.Set("q", query)
	for key, values := range g.locale {
		params.Set(key, values[0])
	}

	feed, err := g.parser.ParseURLWithContext(g.baseURL+"?"+params.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("google news %q: %w", query, err)
	}

	limit := g.perQuery
	if len(feed.Items) < limit {
		limit = len(feed.Items)
	}

	items := make([]entity.NewsItem, 0, limit)
	for _, item := range feed.Items[:limit] {
		published := time.Time{}
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		items = append(items, entity.NewsItem{
			Title:     item.Title,
			Link:      item.Link,
			Published: published,
			Snippet:   item.Description,
			Query:     query,
		})
	}
	return items, nil
}
