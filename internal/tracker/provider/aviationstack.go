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

// AviationStack is the metered provider: every successful call here burns
// one unit of the daily quota, so it sits behind AirLabs in the chain.
type AviationStack struct {
	key         string
	baseURL     string
	client      *http.Client
	airlineIATA string
	targetDate  string
	now         func() time.Time
}

type AviationStackOptions struct {
	Timeout     time.Duration
	AirlineIATA string
	TargetDate  string
}

func NewAviationStack(key string, opts AviationStackOptions) *AviationStack {
	return &AviationStack{
		key:         key,
		baseURL:     "http://api.aviationstack.com/v1",
		client:      newHTTPClient(opts.Timeout),
		airlineIATA: opts.AirlineIATA,
		targetDate:  opts.TargetDate,
		now:         time.Now,
	}
}

func (a *AviationStack) Name() string {
	return "aviationstack"
}

func (a *AviationStack) Metered() bool {
	return true
}

type asFlightPayload struct {
	FlightDate   string `json:"flight_date"`
	FlightStatus string `json:"flight_status"`
	Flight       struct {
		IATA string `json:"iata"`
	} `json:"flight"`
	Airline struct {
		Name string `json:"name"`
	} `json:"airline"`
	Departure asPointPayload `json:"departure"`
	Arrival   asPointPayload `json:"arrival"`
	Aircraft  *struct {
		IATA         string `json:"iata"`
		ICAO         string `json:"icao"`
		Registration string `json:"registration"`
	} `json:"aircraft"`
	Live *struct {
		Latitude        float64 `json:"latitude"`
		Longitude       float64 `json:"longitude"`
		Altitude        float64 `json:"altitude"`
		SpeedHorizontal float64 `json:"speed_horizontal"`
		Direction       float64 `json:"direction"`
	} `json:"live"`
}

type asPointPayload struct {
	IATA      string `json:"iata"`
	Airport   string `json:"airport"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
	Actual    string `json:"actual"`
	Delay     *int   `json:"delay"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
}

func (a *AviationStack) FetchFlight(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	query := url.Values{}
	query.Set("access_key", a.key)
	query.Set("flight_iata", flightNumber)

	flights, err := a.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, nil
	}

	flight := a.mapFlight(flights[0])
	if flight.FlightNumber == "" {
		flight.FlightNumber = flightNumber
	}
	return &flight, nil
}

func (a *AviationStack) FetchRoute(ctx context.Context, depIATA, arrIATA string) ([]entity.Flight, error) {
	query := url.Values{}
	query.Set("access_key", a.key)
	query.Set("dep_iata", depIATA)
	query.Set("arr_iata", arrIATA)
	if a.airlineIATA != "" {
		query.Set("airline_iata", a.airlineIATA)
	}
	query.Set("limit", "50")

	raw, err := a.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	interesting := a.interestingDates()
	route := fmt.Sprintf("%s → %s", depIATA, arrIATA)

	flights := make([]entity.Flight, 0, len(raw))
	for _, f := range raw {
		if _, ok := interesting[f.FlightDate]; !ok {
			continue
		}
		flight := a.mapFlight(f)
		flight.Route = route
		if flight.Departure.Airport == "N/A" {
			flight.Departure.Airport = depIATA
		}
		if flight.Arrival.Airport == "N/A" {
			flight.Arrival.Airport = arrIATA
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

func (a *AviationStack) fetch(ctx context.Context, query url.Values) ([]asFlightPayload, error) {
	endpoint := a.baseURL + "/flights?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("aviationstack request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aviationstack fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aviationstack fetch: status %d", resp.StatusCode)
	}

	var payload struct {
		Data []asFlightPayload `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("aviationstack decode: %w", err)
	}
	return payload.Data, nil
}

func (a *AviationStack) mapFlight(f asFlightPayload) entity.Flight {
	flight := entity.Flight{
		FlightNumber: f.Flight.IATA,
		Airline:      orNA(f.Airline.Name, "Aerolíneas Argentinas"),
		Status:       entity.MapStatus(f.FlightStatus),
		FlightDate:   f.FlightDate,
		Departure:    mapPoint(f.Departure),
		Arrival:      mapPoint(f.Arrival),
		Aircraft:     "N/A",
		Source:       a.Name(),
	}
	if f.Aircraft != nil {
		flight.Aircraft = orNA(f.Aircraft.IATA, f.Aircraft.ICAO, f.Aircraft.Registration)
	}
	if f.Live != nil {
		flight.Live = &entity.LivePosition{
			Latitude:  f.Live.Latitude,
			Longitude: f.Live.Longitude,
			Altitude:  f.Live.Altitude,
			Speed:     f.Live.SpeedHorizontal,
			Heading:   f.Live.Direction,
		}
	}
	return flight
}

func mapPoint(p asPointPayload) entity.FlightPoint {
	return entity.FlightPoint{
		Airport:      orNA(p.IATA),
		City:         orNA(p.Airport),
		Scheduled:    parseTimestamp(p.Scheduled),
		Estimated:    firstTimestamp(p.Estimated, p.Scheduled),
		Actual:       parseTimestamp(p.Actual),
		DelayMinutes: p.Delay,
		Terminal:     orDash(p.Terminal),
		Gate:         orDash(p.Gate),
	}
}

// interestingDates limits route results to today, tomorrow and the one
// target date being watched.
func (a *AviationStack) interestingDates() map[string]struct{} {
	now := a.now()
	dates := make(map[string]struct{}, 3)
	dates[now.Format("2006-01-02")] = struct{}{}
	dates[now.Add(24*time.Hour).Format("2006-01-02")] = struct{}{}
	if a.targetDate != "" {
		dates[a.targetDate] = struct{}{}
	}
	return dates
}
