package inbound

import (
	"context"

	"github.com/flighttrack/goflighttrack/internal/pkg/pkgrouter"
	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
	"github.com/flighttrack/goflighttrack/internal/tracker/usecase"
)

type uc interface {
	Flights(ctx context.Context, force bool) (*usecase.FlightsOutput, error)
	FlightByNumber(ctx context.Context, flightNumber string) (*usecase.TrackedFlight, error)
	News(ctx context.Context) (*usecase.NewsOutput, error)
	SearchNews(ctx context.Context, query string) ([]entity.NewsItem, error)
	Stats() *usecase.StatsOutput
	Health() *usecase.HealthOutput
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/flights", end.Flights)
	r.GET("/api/flight/{flightNumber}", end.FlightByNumber)
	r.GET("/api/news", end.News)
	r.GET("/api/news/search", end.SearchNews)
	r.GET("/api/stats", end.Stats)
	r.GET("/api/health", end.Health)
}
