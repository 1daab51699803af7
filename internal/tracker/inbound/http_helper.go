package inbound

import (
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
	"github.com/flighttrack/goflighttrack/internal/tracker/usecase"
)

func mapFlightsResponse(output *usecase.FlightsOutput) FlightsResponse {
	flights := make([]FlightResponse, 0, len(output.Flights))
	for _, f := range output.Flights {
		flights = append(flights, mapTrackedFlight(f))
	}

	routes := make([]RouteResponse, 0, len(output.Routes))
	for _, r := range output.Routes {
		routes = append(routes, RouteResponse{Departure: r.Departure, Arrival: r.Arrival, Name: r.Name})
	}

	return FlightsResponse{
		Flights:    flights,
		Routes:     routes,
		LastUpdate: formatOptionalTime(output.LastUpdate),
		APIStatus: APIStatusResponse{
			CallsToday:     output.API.CallsToday,
			MaxDaily:       output.API.MaxDaily,
			RemainingToday: output.API.RemainingToday,
			CacheDuration:  output.API.CacheDuration,
			CanRefresh:     output.API.CanRefresh,
		},
	}
}

func mapTrackedFlight(f usecase.TrackedFlight) FlightResponse {
	resp := FlightResponse{
		FlightNumber: f.FlightNumber,
		Airline:      f.Airline,
		Status:       f.Status,
		FlightDate:   f.FlightDate,
		Departure:    mapFlightPoint(f.Departure),
		Arrival:      mapFlightPoint(f.Arrival),
		Aircraft:     f.Aircraft,
		Source:       f.Source,
		Route:        f.Route,
		FromCache:    f.FromCache,
		CacheAge:     f.CacheAgeSeconds,
		LimitReached: f.LimitReached,
	}
	if f.Live != nil {
		resp.Live = &LiveResponse{
			Latitude:  f.Live.Latitude,
			Longitude: f.Live.Longitude,
			Altitude:  f.Live.Altitude,
			Speed:     f.Live.Speed,
			Heading:   f.Live.Heading,
		}
	}
	return resp
}

func mapFlightPoint(p entity.FlightPoint) FlightPointResponse {
	return FlightPointResponse{
		Airport:   p.Airport,
		City:      p.City,
		Scheduled: formatOptionalTime(p.Scheduled),
		Estimated: formatOptionalTime(p.Estimated),
		Actual:    formatOptionalTime(p.Actual),
		Delay:     p.DelayMinutes,
		Terminal:  p.Terminal,
		Gate:      p.Gate,
	}
}

func mapNewsResponse(output *usecase.NewsOutput) NewsResponse {
	return NewsResponse{
		News:       mapNewsItems(output.News),
		Cached:     output.Cached,
		LastUpdate: output.LastUpdate.Format(time.RFC3339),
		Keywords:   output.Keywords,
	}
}

func mapNewsItems(items []entity.NewsItem) []NewsItemResponse {
	resp := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		pubDate := ""
		if !item.Published.IsZero() {
			pubDate = item.Published.Format(time.RFC3339)
		}
		resp = append(resp, NewsItemResponse{
			Title:     item.Title,
			Link:      item.Link,
			PubDate:   pubDate,
			Source:    item.Source,
			Snippet:   item.Snippet,
			Query:     item.Query,
			Relevance: item.Relevance,
		})
	}
	return resp
}

func mapStatsResponse(stats *usecase.StatsOutput) StatsResponse {
	history := make([]CallRecordResponse, 0, len(stats.Quota.History))
	for _, record := range stats.Quota.History {
		history = append(history, CallRecordResponse{
			Timestamp: record.Timestamp.Format(time.RFC3339),
			Remaining: record.Remaining,
		})
	}

	return StatsResponse{
		APIStats: APIStatsResponse{
			TotalCalls:  stats.Quota.TotalCalls,
			LastReset:   stats.Quota.LastReset.Format(time.RFC3339),
			CallHistory: history,
		},
		Today: TodayResponse{
			Calls:     stats.Quota.CallsToday,
			Remaining: stats.Quota.RemainingToday,
			Limit:     stats.Quota.DailyLimit,
		},
		Cache: CacheStatsResponse{
			Duration:   stats.Cache.Duration,
			Flights:    stats.Cache.Flights,
			Routes:     stats.Cache.Routes,
			News:       stats.Cache.HasNews,
			LastUpdate: formatOptionalTime(stats.Cache.LastUpdate),
		},
		Config: ConfigResponse{
			Providers:        configuredMap(stats.Providers),
			MonthlyLimit:     100,
			RecommendedDaily: stats.Quota.DailyLimit,
		},
	}
}

func mapHealthResponse(health *usecase.HealthOutput) HealthResponse {
	return HealthResponse{
		Status:    health.Status,
		Timestamp: health.Timestamp.Format(time.RFC3339),
		APIs:      configuredMap(health.Providers),
	}
}

func configuredMap(providers map[string]bool) map[string]string {
	status := make(map[string]string, len(providers))
	for name, configured := range providers {
		if configured {
			status[name] = "configured"
		} else {
			status[name] = "not configured"
		}
	}
	return status
}

func formatOptionalTime(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(time.RFC3339)
	return &formatted
}
