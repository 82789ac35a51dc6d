package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"market-holidays/internal/logger"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// statusRecorder captures the response code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID reuses an incoming X-Request-ID or mints a ULID, and stores
// it in the request context.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = logger.NewRequestID(time.Now())
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

func (s *Server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The websocket upgrade needs the raw writer (http.Hijacker).
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		attrs := append([]any{
			"method", r.Method,
			"path", r.URL.Path,
			"code", rec.code,
			"took", time.Since(start),
		}, logger.LogAttrs(r.Context())...)
		slog.Debug("[http] request", attrs...)
	})
}

// route applies CORS, the GET/OPTIONS method gate and per-route metrics.
// The admin route accepts POST instead of GET.
func (s *Server) route(name string, h http.HandlerFunc) http.Handler {
	allowed := http.MethodGet
	if name == "admin_export" {
		allowed = http.MethodPost
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.setCORS(w, allowed)
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		switch r.Method {
		case http.MethodOptions:
			rec.WriteHeader(http.StatusNoContent)
		case allowed:
			h(rec, r)
		default:
			w.Header().Set("Allow", allowed+", "+http.MethodOptions)
			writeError(rec, http.StatusMethodNotAllowed, "method not allowed")
		}

		if s.metrics != nil {
			s.metrics.HTTPRequests.WithLabelValues(name, strconv.Itoa(rec.code)).Inc()
		}
	})
}

// setCORS sets CORS headers for REST endpoints.
func (s *Server) setCORS(w http.ResponseWriter, method string) {
	w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
	w.Header().Set("Access-Control-Allow-Methods", method+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader+", "+TOTPHeader)
}
