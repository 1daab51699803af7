package entity

import (
	"strings"
	"time"
)

type FlightPoint struct {
	Airport      string
	City         string
	Scheduled    *time.Time
	Estimated    *time.Time
	Actual       *time.Time
	DelayMinutes *int
	Terminal     string
	Gate         string
}

type LivePosition struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
	Speed     float64
	Heading   float64
}

type Flight struct {
	FlightNumber string
	Airline      string
	Status       string
	FlightDate   string
	Departure    FlightPoint
	Arrival      FlightPoint
	Aircraft     string
	Live         *LivePosition
	Source       string
	Route        string
}

// statusVocabulary maps upstream flight states to the display vocabulary.
var statusVocabulary = map[string]string{
	"scheduled": "Programado",
	"active":    "En vuelo",
	"en-route":  "En vuelo",
	"landed":    "Aterrizó",
	"arrived":   "Llegó",
	"cancelled": "Cancelado",
	"diverted":  "Desviado",
	"delayed":   "Demorado",
	"boarding":  "Embarcando",
	"departed":  "Despegó",
}

const StatusUnknown = "Desconocido"

// MapStatus translates an upstream status through the fixed vocabulary.
// Unmapped non-empty statuses pass through raw; empty becomes StatusUnknown.
func MapStatus(raw string) string {
	if mapped, ok := statusVocabulary[strings.ToLower(raw)]; ok {
		return mapped
	}
	if raw == "" {
		return StatusUnknown
	}
	return raw
}
