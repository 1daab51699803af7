package usecase

import (
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/quota"
)

type CacheStats struct {
	Duration   string
	Flights    int
	Routes     int
	HasNews    bool
	LastUpdate *time.Time
}

type StatsOutput struct {
	Quota     quota.Snapshot
	Cache     CacheStats
	Providers map[string]bool
}

type HealthOutput struct {
	Status    string
	Timestamp time.Time
	Providers map[string]bool
}

func (u *Usecase) Stats() *StatsOutput {
	return &StatsOutput{
		Quota: u.quota.Snapshot(),
		Cache: CacheStats{
			Duration:   u.apiStatus().CacheDuration,
			Flights:    u.flightCache.Len(),
			Routes:     u.routeCache.Len(),
			HasNews:    u.newsCache.Len() > 0,
			LastUpdate: u.lastUpdateAt(),
		},
		Providers: u.providerStatus,
	}
}

func (u *Usecase) Health() *HealthOutput {
	return &HealthOutput{
		Status:    "healthy",
		Timestamp: u.now(),
		Providers: u.providerStatus,
	}
}
