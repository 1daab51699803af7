package inbound

import (
	"context"
	"net/http"
	"strings"

	"github.com/flighttrack/goflighttrack/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Flights(ctx context.Context, r *http.Request) (any, error) {
	force := r.URL.Query().Get("refresh") == "true"

	output, err := h.uc.Flights(ctx, force)
	if err != nil {
		return nil, err
	}
	return mapFlightsResponse(output), nil
}

func (h *HTTPEndpoint) FlightByNumber(ctx context.Context, r *http.Request) (any, error) {
	flightNumber := strings.TrimSpace(r.PathValue("flightNumber"))
	if flightNumber == "" {
		return nil, pkgerror.NewBusiness("se requiere número de vuelo", pkgerror.CodeInvalidInput)
	}

	flight, err := h.uc.FlightByNumber(ctx, flightNumber)
	if err != nil {
		return nil, err
	}
	return mapTrackedFlight(*flight), nil
}

func (h *HTTPEndpoint) News(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.News(ctx)
	if err != nil {
		return nil, err
	}
	return mapNewsResponse(output), nil
}

func (h *HTTPEndpoint) SearchNews(ctx context.Context, r *http.Request) (any, error) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		return nil, pkgerror.NewBusiness("se requiere parámetro q", pkgerror.CodeInvalidInput)
	}

	items, err := h.uc.SearchNews(ctx, query)
	if err != nil {
		return nil, err
	}
	return NewsSearchResponse{News: mapNewsItems(items), Query: query}, nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, r *http.Request) (any, error) {
	return mapStatsResponse(h.uc.Stats()), nil
}

func (h *HTTPEndpoint) Health(ctx context.Context, r *http.Request) (any, error) {
	return mapHealthResponse(h.uc.Health()), nil
}
