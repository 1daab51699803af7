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

func newTestAviationStack(t *testing.T, handler http.HandlerFunc) *AviationStack {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewAviationStack("test-key", AviationStackOptions{
		AirlineIATA: "AR",
		TargetDate:  "2026-02-02",
	})
	a.baseURL = srv.URL
	a.now = func() time.Time { return time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC) }
	return a
}

func TestAviationStackFetchFlight(t *testing.T) {
	a := newTestAviationStack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "AR1685", r.URL.Query().Get("flight_iata"))
		w.Write([]byte(`{"data":[{
			"flight_date":"2026-01-30",
			"flight_status":"active",
			"flight":{"iata":"AR1685"},
			"airline":{"name":"Aerolíneas Argentinas"},
			"departure":{"iata":"EZE","airport":"Ezeiza","scheduled":"2026-01-30T10:00:00+00:00","delay":12,"terminal":"A","gate":"9"},
			"arrival":{"iata":"MIA","airport":"Miami"},
			"aircraft":{"iata":"B738"},
			"live":{"latitude":-15.5,"longitude":-47.8,"altitude":35000,"speed_horizontal":890,"direction":340}
		}]}`))
	})

	flight, err := a.FetchFlight(context.Background(), "AR1685")
	require.NoError(t, err)
	require.NotNil(t, flight)
	assert.Equal(t, "AR1685", flight.FlightNumber)
	assert.Equal(t, "En vuelo", flight.Status)
	assert.Equal(t, "aviationstack", flight.Source)
	assert.Equal(t, "EZE", flight.Departure.Airport)
	assert.Equal(t, "Ezeiza", flight.Departure.City)
	require.NotNil(t, flight.Departure.Scheduled)
	require.NotNil(t, flight.Departure.DelayMinutes)
	assert.Equal(t, 12, *flight.Departure.DelayMinutes)
	assert.Equal(t, "A", flight.Departure.Terminal)
	assert.Equal(t, "B738", flight.Aircraft)
	require.NotNil(t, flight.Live)
	assert.Equal(t, -15.5, flight.Live.Latitude)
	assert.Equal(t, 890.0, flight.Live.Speed)
}

func TestAviationStackFetchFlightEmptyData(t *testing.T) {
	a := newTestAviationStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	flight, err := a.FetchFlight(context.Background(), "AR9999")
	require.NoError(t, err)
	assert.Nil(t, flight)
}

func TestAviationStackFetchFlightUpstreamError(t *testing.T) {
	a := newTestAviationStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := a.FetchFlight(context.Background(), "AR1685")
	assert.Error(t, err)
}

func TestAviationStackFetchRouteFiltersDates(t *testing.T) {
	a := newTestAviationStack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BRC", r.URL.Query().Get("dep_iata"))
		assert.Equal(t, "AEP", r.URL.Query().Get("arr_iata"))
		assert.Equal(t, "AR", r.URL.Query().Get("airline_iata"))
		w.Write([]byte(`{"data":[
			{"flight_date":"2026-01-30","flight":{"iata":"AR1500"},"departure":{},"arrival":{}},
			{"flight_date":"2026-01-31","flight":{"iata":"AR1502"},"departure":{},"arrival":{}},
			{"flight_date":"2026-02-02","flight":{"iata":"AR1504"},"departure":{},"arrival":{}},
			{"flight_date":"2026-02-10","flight":{"iata":"AR1506"},"departure":{},"arrival":{}}
		]}`))
	})

	flights, err := a.FetchRoute(context.Background(), "BRC", "AEP")
	require.NoError(t, err)
	// Today, tomorrow and the target date survive; 2026-02-10 is dropped.
	require.Len(t, flights, 3)
	assert.Equal(t, "AR1500", flights[0].FlightNumber)
	assert.Equal(t, "AR1504", flights[2].FlightNumber)
	assert.Equal(t, "BRC → AEP", flights[0].Route)
	// Empty payload points fall back to the route IATA codes.
	assert.Equal(t, "BRC", flights[0].Departure.Airport)
	assert.Equal(t, "AEP", flights[0].Arrival.Airport)
}

func TestAviationStackMapFlightDefaults(t *testing.T) {
	a := NewAviationStack("k", AviationStackOptions{})

	flight := a.mapFlight(asFlightPayload{})
	assert.Equal(t, "Aerolíneas Argentinas", flight.Airline)
	assert.Equal(t, "Desconocido", flight.Status)
	assert.Equal(t, "N/A", flight.Aircraft)
	assert.Equal(t, "N/A", flight.Departure.Airport)
	assert.Equal(t, "-", flight.Departure.Terminal)
	assert.Nil(t, flight.Departure.Scheduled)
	assert.Nil(t, flight.Live)
}
