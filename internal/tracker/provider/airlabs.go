package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

// AirLabs is the free-tier provider, tried first so the metered one is only
// hit when AirLabs has nothing.
type AirLabs struct {
	key     string
	baseURL string
	client  *http.Client
}

func NewAirLabs(key string, timeout time.Duration) *AirLabs {
	return &AirLabs{
		key:     key,
		baseURL: "https://airlabs.co/api/v9",
		client:  newHTTPClient(timeout),
	}
}

func (a *AirLabs) Name() string {
	return "airlabs"
}

func (a *AirLabs) Metered() bool {
	return false
}

func (a *AirLabs) FetchFlight(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	query := url.Values{}
	query.Set("api_key", a.key)
	query.Set("flight_iata", flightNumber)

	endpoint := a.baseURL + "/flight?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("airlabs request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airlabs fetch %s: %w", flightNumber, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airlabs fetch %s: status %d", flightNumber, resp.StatusCode)
	}

	var payload struct {
		Response *struct {
			Status       string  `json:"status"`
			DepIATA      string  `json:"dep_iata"`
			DepCity      string  `json:"dep_city"`
			DepTime      string  `json:"dep_time"`
			DepEstimated string  `json:"dep_estimated"`
			DepActual    string  `json:"dep_actual"`
			DepTerminal  string  `json:"dep_terminal"`
			DepGate      string  `json:"dep_gate"`
			ArrIATA      string  `json:"arr_iata"`
			ArrCity      string  `json:"arr_city"`
			ArrTime      string  `json:"arr_time"`
			ArrEstimated string  `json:"arr_estimated"`
			ArrActual    string  `json:"arr_actual"`
			ArrTerminal  string  `json:"arr_terminal"`
			ArrGate      string  `json:"arr_gate"`
			AircraftICAO string  `json:"aircraft_icao"`
			Lat          float64 `json:"lat"`
			Lng          float64 `json:"lng"`
			Alt          float64 `json:"alt"`
			Speed        float64 `json:"speed"`
			Dir          float64 `json:"dir"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("airlabs decode %s: %w", flightNumber, err)
	}
	if payload.Response == nil {
		return nil, nil
	}

	f := payload.Response
	flight := &entity.Flight{
		FlightNumber: flightNumber,
		Airline:      "Aerolíneas Argentinas",
		Status:       entity.MapStatus(f.Status),
		Departure: entity.FlightPoint{
			Airport:   orNA(f.DepIATA),
			City:      orNA(f.DepCity),
			Scheduled: parseTimestamp(f.DepTime),
			Estimated: firstTimestamp(f.DepEstimated, f.DepTime),
			Actual:    parseTimestamp(f.DepActual),
			Terminal:  orDash(f.DepTerminal),
			Gate:      orDash(f.DepGate),
		},
		Arrival: entity.FlightPoint{
			Airport:   orNA(f.ArrIATA),
			City:      orNA(f.ArrCity),
			Scheduled: parseTimestamp(f.ArrTime),
			Estimated: firstTimestamp(f.ArrEstimated, f.ArrTime),
			Actual:    parseTimestamp(f.ArrActual),
			Terminal:  orDash(f.ArrTerminal),
			Gate:      orDash(f.ArrGate),
		},
		Aircraft: orNA(f.AircraftICAO),
		Source:   a.Name(),
	}
	if f.Lat != 0 || f.Lng != 0 {
		flight.Live = &entity.LivePosition{
			Latitude:  f.Lat,
			Longitude: f.Lng,
			Altitude:  f.Alt,
			Speed:     f.Speed,
			Heading:   f.Dir,
		}
	}
	return flight, nil
}

// FetchRoute is not available on the AirLabs free plan; the metered provider
// handles route queries.
func (a *AirLabs) FetchRoute(ctx context.Context, depIATA, arrIATA string) ([]entity.Flight, error) {
	return nil, nil
}
