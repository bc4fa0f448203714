package gateway

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/joao-fontenele/shopflow/internal/httpx"
)

type Handler struct {
	router   *Router
	requests metric.Int64Counter
	logger   *slog.Logger
}

func NewHandler(router *Router, logger *slog.Logger) (*Handler, error) {
	requests, err := otel.Meter("gateway").Int64Counter("gateway.requests",
		metric.WithDescription("Requests handled by the gateway by target service and status."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &Handler{
		router:   router,
		requests: requests,
		logger:   logger,
	}, nil
}

// Mount serves every method under /api/ with h. chi answers methods missing
// from its method map (PURGE, LINK, ...) from the not-allowed handler before
// any route runs, so that handler passes /api/ requests back to h.
func (h *Handler) Mount(r chi.Router) {
	r.Handle("/api/*", h)
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			h.ServeHTTP(w, req)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(data) > 0 {
			body = data
		}
	}

	// Forward the path as the client sent it; the decoded form turns %2F into
	// a separator and %3F into a query.
	path := r.URL.EscapedPath()
	resp, err := h.router.Route(r.Context(), r.Method, path, r.URL.RawQuery, body, r.Header.Get("Content-Type"))

	service := "none"
	if route, ok := h.router.Match(path); ok {
		service = route.Service
	}
	h.requests.Add(r.Context(), 1, metric.WithAttributes(
		attribute.String("service", service),
		attribute.Int("status", resp.StatusCode),
	))

	switch {
	case errors.Is(err, ErrNoRoute):
		httpx.WriteError(w, h.logger, http.StatusNotFound, "no route")
		return
	case errors.Is(err, ErrUnsupportedMethod):
		h.logger.WarnContext(r.Context(), "unsupported method", "method", r.Method, "path", path)
	case err != nil:
		h.logger.ErrorContext(r.Context(), "failed to forward request", "error", err, "method", r.Method, "path", path, "service", service)
	default:
		h.logger.InfoContext(r.Context(), "request proxied", "method", r.Method, "path", path, "service", service, "status", resp.StatusCode)
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		if _, err := w.Write(resp.Body); err != nil {
			h.logger.Error("failed to write response body", "error", err)
		}
	}
}
