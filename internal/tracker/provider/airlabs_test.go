package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAirLabs(t *testing.T, handler http.HandlerFunc) *AirLabs {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewAirLabs("test-key", 5*time.Second)
	a.baseURL = srv.URL
	return a
}

func TestAirLabsFetchFlight(t *testing.T) {
	a := newTestAirLabs(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "AR1685", r.URL.Query().Get("flight_iata"))
		w.Write([]byte(`{"response":{
			"status":"en-route",
			"dep_iata":"EZE","dep_city":"Buenos Aires","dep_time":"2026-01-30 10:00",
			"dep_terminal":"A","dep_gate":"9",
			"arr_iata":"MIA","arr_city":"Miami","arr_time":"2026-01-30 18:30",
			"aircraft_icao":"B738",
			"lat":-15.5,"lng":-47.8,"alt":35000,"speed":890,"dir":340
		}}`))
	})

	flight, err := a.FetchFlight(context.Background(), "AR1685")
	require.NoError(t, err)
	require.NotNil(t, flight)
	assert.Equal(t, "AR1685", flight.FlightNumber)
	assert.Equal(t, "En vuelo", flight.Status)
	assert.Equal(t, "airlabs", flight.Source)
	assert.Equal(t, "EZE", flight.Departure.Airport)
	require.NotNil(t, flight.Departure.Scheduled)
	// Estimated falls back to the scheduled time when absent.
	require.NotNil(t, flight.Departure.Estimated)
	assert.Equal(t, *flight.Departure.Scheduled, *flight.Departure.Estimated)
	assert.Equal(t, "B738", flight.Aircraft)
	require.NotNil(t, flight.Live)
	assert.Equal(t, -47.8, flight.Live.Longitude)
}

func TestAirLabsFetchFlightNoResponse(t *testing.T) {
	a := newTestAirLabs(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":null}`))
	})

	flight, err := a.FetchFlight(context.Background(), "AR9999")
	require.NoError(t, err)
	assert.Nil(t, flight)
}

func TestAirLabsFetchFlightNoLivePosition(t *testing.T) {
	a := newTestAirLabs(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"status":"scheduled","dep_iata":"AEP","arr_iata":"COR"}}`))
	})

	flight, err := a.FetchFlight(context.Background(), "AR1484")
	require.NoError(t, err)
	require.NotNil(t, flight)
	assert.Equal(t, "Programado", flight.Status)
	assert.Nil(t, flight.Live)
}

func TestAirLabsFetchRouteUnsupported(t *testing.T) {
	a := NewAirLabs("k", time.Second)

	flights, err := a.FetchRoute(context.Background(), "BRC", "AEP")
	require.NoError(t, err)
	assert.Nil(t, flights)
}
