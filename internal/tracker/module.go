package tracker

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/flighttrack/goflighttrack/internal/pkg/pkgconfig"
	"github.com/flighttrack/goflighttrack/internal/pkg/pkgrouter"
	"github.com/flighttrack/goflighttrack/internal/tracker/cache"
	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
	"github.com/flighttrack/goflighttrack/internal/tracker/inbound"
	"github.com/flighttrack/goflighttrack/internal/tracker/provider"
	"github.com/flighttrack/goflighttrack/internal/tracker/quota"
	"github.com/flighttrack/goflighttrack/internal/tracker/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	timeout := 10 * time.Second
	if seconds := dep.Config.GetInt("modules.flight-tracker.provider.timeout_seconds"); seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	// Keys come from the environment; a missing key just disables that
	// provider instead of failing startup.
	airlabsKey := os.Getenv("AIRLABS_KEY")
	aviationKey := os.Getenv("AVIATIONSTACK_KEY")

	providers := make([]provider.FlightProvider, 0, 2)
	if airlabsKey != "" {
		providers = append(providers, provider.NewAirLabs(airlabsKey, timeout))
	}
	if aviationKey != "" {
		providers = append(providers, provider.NewAviationStack(aviationKey, provider.AviationStackOptions{
			Timeout:     timeout,
			AirlineIATA: dep.Config.GetString("modules.flight-tracker.provider.airline_iata"),
			TargetDate:  dep.Config.GetString("modules.flight-tracker.provider.target_date"),
		}))
	}
	if len(providers) == 0 {
		slog.Warn("no provider keys configured, flights will use demo data")
	}

	if rps := dep.Config.GetInt("modules.flight-tracker.provider.rate_limit_rps"); rps > 0 {
		for i := range providers {
			providers[i] = provider.NewRateLimitedProvider(providers[i], float64(rps), 1)
		}
	}

	dailyLimit := 4
	if limit := dep.Config.GetInt("modules.flight-tracker.quota.daily_limit"); limit > 0 {
		dailyLimit = limit
	}

	flightTTL := 30 * time.Minute
	if minutes := dep.Config.GetInt("modules.flight-tracker.cache.flight_ttl_minutes"); minutes > 0 {
		flightTTL = time.Duration(minutes) * time.Minute
	}
	newsTTL := 5 * time.Minute
	if minutes := dep.Config.GetInt("modules.flight-tracker.cache.news_ttl_minutes"); minutes > 0 {
		newsTTL = time.Duration(minutes) * time.Minute
	}

	uc := usecase.New(usecase.Dependency{
		Providers:      providers,
		Fallback:       provider.NewDemo(),
		News:           provider.NewGoogleNews(timeout),
		FlightCache:    cache.New(cloneFlight),
		RouteCache:     cache.New(cloneFlights),
		NewsCache:      cache.New(cloneNewsItems),
		Quota:          quota.New(dailyLimit),
		FlightTTL:      flightTTL,
		NewsTTL:        newsTTL,
		TrackedFlights: dep.Config.GetStringSlice("modules.flight-tracker.flights"),
		Routes:         parseRoutes(dep.Config.GetStringSlice("modules.flight-tracker.routes")),
		NewsKeywords:   dep.Config.GetStringSlice("modules.flight-tracker.news_keywords"),
		NewsQueryLimit: dep.Config.GetInt("modules.flight-tracker.news_query_limit"),
		ProviderStatus: map[string]bool{
			"airlabs":       airlabsKey != "",
			"aviationstack": aviationKey != "",
		},
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// parseRoutes reads "DEP:ARR" pairs from configuration.
func parseRoutes(specs []string) []usecase.Route {
	routes := make([]usecase.Route, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			slog.Warn("skipping malformed route", "route", spec)
			continue
		}
		dep := strings.ToUpper(strings.TrimSpace(parts[0]))
		arr := strings.ToUpper(strings.TrimSpace(parts[1]))
		routes = append(routes, usecase.Route{
			Departure: dep,
			Arrival:   arr,
			Name:      dep + " → " + arr,
		})
	}
	return routes
}

func cloneFlight(f *entity.Flight) *entity.Flight {
	if f == nil {
		return nil
	}
	clone := *f
	if f.Live != nil {
		live := *f.Live
		clone.Live = &live
	}
	return &clone
}

func cloneFlights(flights []entity.Flight) []entity.Flight {
	cloned := make([]entity.Flight, len(flights))
	copy(cloned, flights)
	for i := range cloned {
		if cloned[i].Live != nil {
			live := *cloned[i].Live
			cloned[i].Live = &live
		}
	}
	return cloned
}

func cloneNewsItems(items []entity.NewsItem) []entity.NewsItem {
	cloned := make([]entity.NewsItem, len(items))
	copy(cloned, items)
	return cloned
}
