package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/flighttrack/goflighttrack/internal/pkg/pkgerror"
	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

// TrackedFlight is a flight record plus how it was obtained.
type TrackedFlight struct {
	entity.Flight
	FromCache       bool
	CacheAgeSeconds int
	LimitReached    bool
}

type APIStatus struct {
	CallsToday     int
	MaxDaily       int
	RemainingToday int
	CacheDuration  string
	CanRefresh     bool
}

type FlightsOutput struct {
	Flights    []TrackedFlight
	Routes     []Route
	LastUpdate *time.Time
	API        APIStatus
}

// Flights resolves every tracked flight number and monitored route
// concurrently and merges the results. force skips the freshness check and
// is rejected outright when the quota is spent.
func (u *Usecase) Flights(ctx context.Context, force bool) (*FlightsOutput, error) {
	if force && !u.quota.CanCall() {
		return nil, pkgerror.NewBusiness("límite diario de API alcanzado", pkgerror.CodeRateLimited).
			WithDetails(map[string]any{"remainingToday": 0})
	}

	var wg sync.WaitGroup

	tracked := make([]TrackedFlight, len(u.trackedFlights))
	found := make([]bool, len(u.trackedFlights))
	for i, number := range u.trackedFlights {
		wg.Add(1)
		go func(i int, number string) {
			defer wg.Done()
			tracked[i], found[i] = u.flightInfo(ctx, number, force)
		}(i, number)
	}

	byRoute := make([][]TrackedFlight, len(u.routes))
	for i, route := range u.routes {
		wg.Add(1)
		go func(i int, route Route) {
			defer wg.Done()
			byRoute[i] = u.routeFlights(ctx, route, force)
		}(i, route)
	}

	wg.Wait()

	flights := make([]TrackedFlight, 0, len(tracked))
	for i, f := range tracked {
		if found[i] {
			flights = append(flights, f)
		}
	}

	routeFlights := make([]TrackedFlight, 0)
	for _, group := range byRoute {
		routeFlights = append(routeFlights, group...)
	}
	sortByScheduledDeparture(routeFlights)
	flights = append(flights, routeFlights...)

	return &FlightsOutput{
		Flights:    flights,
		Routes:     u.routes,
		LastUpdate: u.lastUpdateAt(),
		API:        u.apiStatus(),
	}, nil
}

// FlightByNumber resolves a single flight through the same cache, quota and
// fallback ladder as the dashboard view.
func (u *Usecase) FlightByNumber(ctx context.Context, flightNumber string) (*TrackedFlight, error) {
	flight, ok := u.flightInfo(ctx, strings.ToUpper(strings.TrimSpace(flightNumber)), false)
	if !ok {
		return nil, pkgerror.NewBusiness("vuelo no encontrado", pkgerror.CodeNotFound)
	}
	return &flight, nil
}

// flightInfo implements the per-flight state machine: fresh cache, then
// quota-gated stale/fallback, then live fetch across the provider chain.
func (u *Usecase) flightInfo(ctx context.Context, flightNumber string, force bool) (TrackedFlight, bool) {
	if !force {
		if cached, age, ok := u.flightCache.Get(flightNumber); ok && age < u.flightTTL {
			return TrackedFlight{Flight: *cached, FromCache: true, CacheAgeSeconds: int(age.Seconds())}, true
		}
	}

	if !u.quota.CanCall() && !force {
		if cached, age, ok := u.flightCache.Get(flightNumber); ok {
			slog.Warn("daily quota reached, serving stale flight", "flight", flightNumber, "age_seconds", int(age.Seconds()))
			return TrackedFlight{Flight: *cached, FromCache: true, CacheAgeSeconds: int(age.Seconds()), LimitReached: true}, true
		}
		flight, ok := u.fallbackFlight(ctx, flightNumber)
		flight.LimitReached = true
		return flight, ok
	}

	for _, p := range u.providers {
		flight, err := p.FetchFlight(ctx, flightNumber)
		if err != nil {
			slog.Warn("provider flight fetch failed", "provider", p.Name(), "flight", flightNumber, "error", err)
			continue
		}
		if flight == nil {
			continue
		}
		if p.Metered() {
			u.quota.RegisterCall()
		}
		u.flightCache.Put(flightNumber, flight)
		u.touchLastUpdate()
		slog.Info("cached flight", "flight", flightNumber, "source", flight.Source)
		return TrackedFlight{Flight: *flight}, true
	}

	return u.fallbackFlight(ctx, flightNumber)
}

// routeFlights runs the state machine for one monitored route. Routes have
// no synthetic fallback; the degenerate answer is an empty list.
func (u *Usecase) routeFlights(ctx context.Context, route Route, force bool) []TrackedFlight {
	key := routeKey(route)

	if !force {
		if cached, age, ok := u.routeCache.Get(key); ok && age < u.flightTTL {
			return wrapCached(cached, int(age.Seconds()), false)
		}
	}

	if !u.quota.CanCall() && !force {
		if cached, age, ok := u.routeCache.Get(key); ok {
			return wrapCached(cached, int(age.Seconds()), true)
		}
		return nil
	}

	for _, p := range u.providers {
		flights, err := p.FetchRoute(ctx, route.Departure, route.Arrival)
		if err != nil {
			slog.Warn("provider route fetch failed", "provider", p.Name(), "route", key, "error", err)
			continue
		}
		if len(flights) == 0 {
			continue
		}
		if p.Metered() {
			u.quota.RegisterCall()
		}
		u.routeCache.Put(key, flights)
		u.touchLastUpdate()

		wrapped := make([]TrackedFlight, 0, len(flights))
		for _, f := range flights {
			wrapped = append(wrapped, TrackedFlight{Flight: f})
		}
		return wrapped
	}

	return nil
}

func (u *Usecase) fallbackFlight(ctx context.Context, flightNumber string) (TrackedFlight, bool) {
	if u.fallback == nil {
		return TrackedFlight{}, false
	}
	flight, err := u.fallback.FetchFlight(ctx, flightNumber)
	if err != nil || flight == nil {
		return TrackedFlight{}, false
	}
	return TrackedFlight{Flight: *flight}, true
}

func (u *Usecase) apiStatus() APIStatus {
	snap := u.quota.Snapshot()
	return APIStatus{
		CallsToday:     snap.CallsToday,
		MaxDaily:       snap.DailyLimit,
		RemainingToday: snap.RemainingToday,
		CacheDuration:  fmt.Sprintf("%d minutos", int(u.flightTTL.Minutes())),
		CanRefresh:     u.quota.CanCall(),
	}
}

func routeKey(route Route) string {
	return "route:" + strings.ToUpper(route.Departure) + "-" + strings.ToUpper(route.Arrival)
}

func wrapCached(flights []entity.Flight, ageSeconds int, limitReached bool) []TrackedFlight {
	wrapped := make([]TrackedFlight, 0, len(flights))
	for _, f := range flights {
		wrapped = append(wrapped, TrackedFlight{
			Flight:          f,
			FromCache:       true,
			CacheAgeSeconds: ageSeconds,
			LimitReached:    limitReached,
		})
	}
	return wrapped
}

func sortByScheduledDeparture(flights []TrackedFlight) {
	sort.SliceStable(flights, func(i, j int) bool {
		return scheduledOrZero(flights[i]).Before(scheduledOrZero(flights[j]))
	})
}

func scheduledOrZero(f TrackedFlight) time.Time {
	if f.Departure.Scheduled == nil {
		return time.Time{}
	}
	return *f.Departure.Scheduled
}
