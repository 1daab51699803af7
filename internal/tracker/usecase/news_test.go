package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

type stubSearcher struct {
	byQuery map[string][]entity.NewsItem
	err     error
	calls   atomic.Int64
}

func (s *stubSearcher) Name() string { return "stub-news" }

func (s *stubSearcher) Search(ctx context.Context, query string) ([]entity.NewsItem, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.byQuery[query], nil
}

func newsItem(title string, publishedAgo time.Duration) entity.NewsItem {
	return entity.NewsItem{
		Title:     title,
		Link:      "https://example.com",
		Published: time.Now().Add(-publishedAgo),
	}
}

func TestNewsFetchesThenServesFromCache(t *testing.T) {
	searcher := &stubSearcher{byQuery: map[string][]entity.NewsItem{
		"paro ATE": {newsItem("Paro de ATE en aeropuertos - Clarín", time.Hour)},
	}}
	u := newTestUsecase(Dependency{News: searcher, NewsKeywords: []string{"paro ATE"}})

	first, err := u.News(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	require.Len(t, first.News, 1)
	assert.Equal(t, "Paro de ATE en aeropuertos", first.News[0].Title)
	assert.Equal(t, "Clarín", first.News[0].Source)

	second, err := u.News(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, int64(1), searcher.calls.Load(), "second call must hit the cache")
}

func TestNewsDeduplicatesAcrossKeywords(t *testing.T) {
	shared := "Cancelan vuelos por huelga en Ezeiza - Clarín"
	searcher := &stubSearcher{byQuery: map[string][]entity.NewsItem{
		"paro ATE":  {newsItem(shared, time.Hour)},
		"paro APLA": {newsItem(shared, time.Hour), newsItem("Demoras en Aeroparque por asambleas - Infobae", 2*time.Hour)},
	}}
	u := newTestUsecase(Dependency{News: searcher, NewsKeywords: []string{"paro ATE", "paro APLA"}})

	output, err := u.News(context.Background())
	require.NoError(t, err)
	require.Len(t, output.News, 2)
	assert.Equal(t, int64(2), searcher.calls.Load())
}

func TestNewsQueryLimitCapsFanout(t *testing.T) {
	searcher := &stubSearcher{byQuery: map[string][]entity.NewsItem{}}
	keywords := []string{"a", "b", "c", "d", "e", "f"}
	u := newTestUsecase(Dependency{News: searcher, NewsKeywords: keywords, NewsQueryLimit: 4})

	output, err := u.News(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), searcher.calls.Load())
	// The full keyword list is still reported.
	assert.Equal(t, keywords, output.Keywords)
}

func TestNewsSwallowsSearchErrors(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("feed down")}
	u := newTestUsecase(Dependency{News: searcher, NewsKeywords: []string{"paro ATE"}})

	output, err := u.News(context.Background())
	require.NoError(t, err)
	assert.Empty(t, output.News)
}

func TestSearchNewsCleansTitlesWithoutDedup(t *testing.T) {
	searcher := &stubSearcher{byQuery: map[string][]entity.NewsItem{
		"ezeiza": {
			newsItem("Paro sorpresivo en Ezeiza - Clarín", time.Hour),
			newsItem("Paro sorpresivo en Ezeiza - La Nación", time.Hour),
		},
	}}
	u := newTestUsecase(Dependency{News: searcher})

	items, err := u.SearchNews(context.Background(), "ezeiza")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Paro sorpresivo en Ezeiza", items[0].Title)
	assert.Equal(t, "Clarín", items[0].Source)
	assert.Equal(t, "La Nación", items[1].Source)
}

func TestSearchNewsFeedFailureReturnsEmptyResult(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("feed down")}
	u := newTestUsecase(Dependency{News: searcher})

	items, err := u.SearchNews(context.Background(), "ezeiza")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
