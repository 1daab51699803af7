package news

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

// Google News titles carry the outlet as a trailing " - <source>" suffix.
var sourceSuffix = regexp.MustCompile(` - ([^-]+)$`)

const (
	maxItems      = 10
	minTitleChars = 10
)

var (
	highKeywords    = []string{"paro", "huelga", "cancelacion", "cancelan", "suspenden"}
	mediumKeywords  = []string{"demora", "afecta", "vuelos", "aeropuerto", "aerolineas"}
	contextKeywords = []string{"ate", "apla", "ezeiza", "aeroparque", "argentina"}
)

// ExtractSource returns the outlet name from a raw feed title,
// or "Desconocido" when the suffix is missing.
func ExtractSource(title string) string {
	m := sourceSuffix.FindStringSubmatch(title)
	if m == nil {
		return "Desconocido"
	}
	return strings.TrimSpace(m[1])
}

// CleanTitle strips the trailing source suffix from a raw feed title.
func CleanTitle(title string) string {
	return strings.TrimSpace(sourceSuffix.ReplaceAllString(title, ""))
}

// Relevance scores a cleaned title: 10 per high keyword, 5 per medium,
// 3 per context, plus a recency bonus. Matching is case-insensitive
// substring; each keyword contributes at most once.
func Relevance(cleanedTitle string, published time.Time, now time.Time) int {
	title := strings.ToLower(cleanedTitle)
	score := 0
	for _, w := range highKeywords {
		if strings.Contains(title, w) {
			score += 10
		}
	}
	for _, w := range mediumKeywords {
		if strings.Contains(title, w) {
			score += 5
		}
	}
	for _, w := range contextKeywords {
		if strings.Contains(title, w) {
			score += 3
		}
	}
	return score + recencyBonus(published, now)
}

// recencyBonus rewards fresh items. A zero publish time means the feed date
// did not parse; such items get no bonus rather than failing.
func recencyBonus(published time.Time, now time.Time) int {
	if published.IsZero() {
		return 0
	}
	age := now.Sub(published)
	switch {
	case age < 6*time.Hour:
		return 15
	case age < 24*time.Hour:
		return 10
	case age < 48*time.Hour:
		return 5
	default:
		return 0
	}
}

// Process cleans, deduplicates, scores and orders a batch of raw feed items.
// Dedup key is the cleaned title; the first occurrence in upstream order
// wins, and titles of minTitleChars or fewer characters are dropped.
// Output is sorted by relevance descending, newest first on ties, and
// truncated to maxItems.
func Process(raw []entity.NewsItem, now time.Time) []entity.NewsItem {
	seen := make(map[string]struct{}, len(raw))
	items := make([]entity.NewsItem, 0, len(raw))

	for _, item := range raw {
		cleaned := CleanTitle(item.Title)
		if len([]rune(cleaned)) <= minTitleChars {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}

		item.Source = ExtractSource(item.Title)
		item.Title = cleaned
		item.Relevance = Relevance(cleaned, item.Published, now)
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Relevance != items[j].Relevance {
			return items[i].Relevance > items[j].Relevance
		}
		return items[i].Published.After(items[j].Published)
	})

	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}
