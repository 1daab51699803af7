package usecase

import (
	"sync"
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/cache"
	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
	"github.com/flighttrack/goflighttrack/internal/tracker/provider"
	"github.com/flighttrack/goflighttrack/internal/tracker/quota"
)

// Route is one monitored city pair.
type Route struct {
	Departure string
	Arrival   string
	Name      string
}

type Dependency struct {
	// Providers are tried in priority order: free tier first, metered last.
	Providers []provider.FlightProvider
	// Fallback serves synthetic flights when nothing live or cached exists.
	Fallback       provider.FlightProvider
	News           provider.NewsSearcher
	FlightCache    *cache.Store[*entity.Flight]
	RouteCache     *cache.Store[[]entity.Flight]
	NewsCache      *cache.Store[[]entity.NewsItem]
	Quota          *quota.Tracker
	FlightTTL      time.Duration
	NewsTTL        time.Duration
	TrackedFlights []string
	Routes         []Route
	NewsKeywords   []string
	NewsQueryLimit int
	ProviderStatus map[string]bool
}

type Usecase struct {
	providers      []provider.FlightProvider
	fallback       provider.FlightProvider
	news           provider.NewsSearcher
	flightCache    *cache.Store[*entity.Flight]
	routeCache     *cache.Store[[]entity.Flight]
	newsCache      *cache.Store[[]entity.NewsItem]
	quota          *quota.Tracker
	flightTTL      time.Duration
	newsTTL        time.Duration
	trackedFlights []string
	routes         []Route
	newsKeywords   []string
	newsQueryLimit int
	providerStatus map[string]bool

	mu         sync.Mutex
	lastUpdate *time.Time

	now func() time.Time
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		providers:      dep.Providers,
		fallback:       dep.Fallback,
		news:           dep.News,
		flightCache:    dep.FlightCache,
		routeCache:     dep.RouteCache,
		newsCache:      dep.NewsCache,
		quota:          dep.Quota,
		flightTTL:      dep.FlightTTL,
		newsTTL:        dep.NewsTTL,
		trackedFlights: dep.TrackedFlights,
		routes:         dep.Routes,
		newsKeywords:   dep.NewsKeywords,
		newsQueryLimit: dep.NewsQueryLimit,
		providerStatus: dep.ProviderStatus,
		now:            time.Now,
	}
}

// touchLastUpdate marks the moment fresh upstream data arrived. Cached and
// demo responses deliberately do not move it.
func (u *Usecase) touchLastUpdate() {
	now := u.now()
	u.mu.Lock()
	u.lastUpdate = &now
	u.mu.Unlock()
}

func (u *Usecase) lastUpdateAt() *time.Time {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.lastUpdate == nil {
		return nil
	}
	value := *u.lastUpdate
	return &value
}
