package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
	"github.com/flighttrack/goflighttrack/internal/tracker/news"
)

const newsCacheKey = "news:all"

type NewsOutput struct {
	News       []entity.NewsItem
	Cached     bool
	LastUpdate time.Time
	Keywords   []string
}

// News returns the ranked strike-news batch, refreshed at most once per news
// TTL. The RSS source is unmetered, so the daily quota does not gate it.
func (u *Usecase) News(ctx context.Context) (*NewsOutput, error) {
	if cached, age, ok := u.newsCache.Get(newsCacheKey); ok && age < u.newsTTL && len(cached) > 0 {
		return &NewsOutput{
			News:       cached,
			Cached:     true,
			LastUpdate: u.now().Add(-age),
			Keywords:   u.newsKeywords,
		}, nil
	}

	keywords := u.newsKeywords
	if limit := u.newsQueryLimit; limit > 0 && limit < len(keywords) {
		keywords = keywords[:limit]
	}

	slog.Info("fetching news", "queries", len(keywords))

	// One fetch per keyword; results keep keyword order so dedup stays
	// deterministic across refreshes.
	byKeyword := make([][]entity.NewsItem, len(keywords))
	var wg sync.WaitGroup
	for i, keyword := range keywords {
		wg.Add(1)
		go func(i int, keyword string) {
			defer wg.Done()
			items, err := u.news.Search(ctx, keyword)
			if err != nil {
				slog.Warn("news search failed", "query", keyword, "error", err)
				return
			}
			byKeyword[i] = items
		}(i, keyword)
	}
	wg.Wait()

	raw := make([]entity.NewsItem, 0)
	for _, items := range byKeyword {
		raw = append(raw, items...)
	}

	ranked := news.Process(raw, u.now())
	u.newsCache.Put(newsCacheKey, ranked)

	return &NewsOutput{
		News:       ranked,
		Cached:     false,
		LastUpdate: u.now(),
		Keywords:   u.newsKeywords,
	}, nil
}

// SearchNews runs one ad hoc query, bypassing the standard keyword list and
// the news cache. Titles are cleaned but the batch is not deduplicated.
// Feed failures degrade to an empty result, same as the batch path.
func (u *Usecase) SearchNews(ctx context.Context, query string) ([]entity.NewsItem, error) {
	items, err := u.news.Search(ctx, query)
	if err != nil {
		slog.Warn("news search failed", "query", query, "error", err)
		return []entity.NewsItem{}, nil
	}
	for i := range items {
		items[i].Source = news.ExtractSource(items[i].Title)
		items[i].Title = news.CleanTitle(items[i].Title)
	}
	return items, nil
}
