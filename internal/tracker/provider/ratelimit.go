package provider

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

type rateLimitedProvider struct {
	provider FlightProvider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider spaces calls to the wrapped provider so bursts of
// concurrent fetches cannot hammer an upstream within one poll cycle.
func NewRateLimitedProvider(p FlightProvider, rps float64, burst int) FlightProvider {
	return &rateLimitedProvider{
		provider: p,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *rateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *rateLimitedProvider) Metered() bool {
	return r.provider.Metered()
}

func (r *rateLimitedProvider) FetchFlight(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.FetchFlight(ctx, flightNumber)
}

func (r *rateLimitedProvider) FetchRoute(ctx context.Context, depIATA, arrIATA string) ([]entity.Flight, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.FetchRoute(ctx, depIATA, arrIATA)
}
