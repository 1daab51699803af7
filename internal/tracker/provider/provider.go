package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

// FlightProvider is one upstream flight-data source. Implementations return
// (nil, nil) when they hold no data for the query; errors are reserved for
// transport, status and decoding failures. Callers try providers in priority
// order and treat any error as "no data from this provider".
type FlightProvider interface {
	Name() string
	// Metered reports whether successful calls count against the daily quota.
	Metered() bool
	FetchFlight(ctx context.Context, flightNumber string) (*entity.Flight, error)
	FetchRoute(ctx context.Context, depIATA, arrIATA string) ([]entity.Flight, error)
}

// NewsSearcher finds news items for a single query string. Returned items
// carry raw feed titles; ranking happens downstream.
type NewsSearcher interface {
	Name() string
	Search(ctx context.Context, query string) ([]entity.NewsItem, error)
}

const defaultTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
