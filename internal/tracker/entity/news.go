package entity

import "time"

// NewsItem is one news entry. Before ranking, Title holds the raw feed title
// and Source/Relevance are unset; the rank package fills them in.
type NewsItem struct {
	Title     string
	Link      string
	Published time.Time
	Source    string
	Snippet   string
	Query     string
	Relevance int
}
