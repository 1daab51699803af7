package provider

import (
	"context"
	"time"

	"github.com/flighttrack/goflighttrack/internal/tracker/entity"
)

// Demo serves deterministic placeholder flights so the dashboard keeps
// rendering when no key is configured and the cache is empty. It never
// counts against the quota.
type Demo struct {
	now func() time.Time
}

func NewDemo() *Demo {
	return &Demo{now: time.Now}
}

func (d *Demo) Name() string {
	return "demo"
}

func (d *Demo) Metered() bool {
	return false
}

func (d *Demo) FetchFlight(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	now := d.now()
	switch flightNumber {
	case "AR1685":
		departed := now.Add(-2 * time.Hour)
		actual := now.Add(-114 * time.Minute)
		arrives := now.Add(6 * time.Hour)
		estimated := now.Add(348 * time.Minute)
		return &entity.Flight{
			FlightNumber: "AR1685",
			Airline:      "Aerolíneas Argentinas",
			Status:       "En vuelo",
			Departure: entity.FlightPoint{
				Airport:   "EZE",
				City:      "Buenos Aires - Ezeiza",
				Scheduled: &departed,
				Estimated: &departed,
				Actual:    &actual,
				Terminal:  "A",
				Gate:      "12",
			},
			Arrival: entity.FlightPoint{
				Airport:   "MIA",
				City:      "Miami International",
				Scheduled: &arrives,
				Estimated: &estimated,
				Terminal:  "N",
				Gate:      "42",
			},
			Aircraft: "Boeing 737-800",
			Live: &entity.LivePosition{
				Latitude:  -15.5,
				Longitude: -47.8,
				Altitude:  35000,
				Speed:     890,
				Heading:   340,
			},
			Source: d.Name(),
		}, nil
	case "AR1484":
		departs := now.Add(3 * time.Hour)
		arrives := now.Add(270 * time.Minute)
		return &entity.Flight{
			FlightNumber: "AR1484",
			Airline:      "Aerolíneas Argentinas",
			Status:       "Programado",
			Departure: entity.FlightPoint{
				Airport:   "AEP",
				City:      "Buenos Aires - Aeroparque",
				Scheduled: &departs,
				Estimated: &departs,
				Terminal:  "A",
				Gate:      "5",
			},
			Arrival: entity.FlightPoint{
				Airport:   "COR",
				City:      "Córdoba - Pajas Blancas",
				Scheduled: &arrives,
				Estimated: &arrives,
				Terminal:  "-",
				Gate:      "-",
			},
			Aircraft: "Embraer E190",
			Source:   d.Name(),
		}, nil
	}
	return nil, nil
}

func (d *Demo) FetchRoute(ctx context.Context, depIATA, arrIATA string) ([]entity.Flight, error) {
	return nil, nil
}
