package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flighttrack/goflighttrack/internal/pkg/pkgerror"
	"github.com/flighttrack/goflighttrack/internal/pkg/pkguid"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// Handler is the shape every endpoint implements. The returned value is
// rendered as JSON; a returned error is mapped through pkgerror codes.
type Handler func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux *http.ServeMux
	uid pkguid.StringID
}

func NewRouter(uid pkguid.StringID) *Router {
	return &Router{mux: http.NewServeMux(), uid: uid}
}

func (ro *Router) GET(pattern string, h Handler) {
	ro.mux.HandleFunc("GET "+pattern, ro.wrap(h))
}

func (ro *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ro.mux.ServeHTTP(w, r)
}

func (ro *Router) wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestIDKey, ro.uid.Generate())

		resp, err := h(ctx, r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, resp)
	}
}

// RequestID returns the id attached to ctx by the router, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func statusOf(code pkgerror.Code) int {
	switch code {
	case pkgerror.CodeInvalidInput:
		return http.StatusBadRequest
	case pkgerror.CodeNotFound:
		return http.StatusNotFound
	case pkgerror.CodeRateLimited:
		return http.StatusTooManyRequests
	case pkgerror.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := pkgerror.CodeOf(err)
	status := statusOf(code)

	body := map[string]any{"error": err.Error()}
	var be *pkgerror.BusinessError
	if errors.As(err, &be) {
		for k, v := range be.Details {
			body[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "request_id", RequestID(ctx), "error", err)
	}
	writeJSON(ctx, w, status, body)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "request_id", RequestID(ctx), "error", err)
	}
}
