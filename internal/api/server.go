package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"market-holidays/internal/export"
	"market-holidays/internal/holidays"
	"market-holidays/internal/metrics"
	"market-holidays/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures a Server. Only Registry is required.
type Options struct {
	Registry        *holidays.Registry
	DefaultExchange model.Exchange
	Metrics         *metrics.Metrics
	Health          *metrics.HealthStatus
	Gatherer        prometheus.Gatherer // default prometheus.DefaultGatherer
	Exports         *export.Runner
	AdminTOTPSecret string // empty disables /api/admin/*
	CORSAllowOrigin string // default "*"
}

// Server holds the HTTP handlers of the holiday service.
type Server struct {
	svc        *Service
	reg        *holidays.Registry
	metrics    *metrics.Metrics
	health     *metrics.HealthStatus
	gatherer   prometheus.Gatherer
	exports    *export.Runner
	totpSecret string
	corsOrigin string
}

// NewServer builds a Server from opts.
func NewServer(opts Options) *Server {
	s := &Server{
		svc:        NewService(opts.Registry, opts.DefaultExchange, opts.Metrics),
		reg:        opts.Registry,
		metrics:    opts.Metrics,
		health:     opts.Health,
		gatherer:   opts.Gatherer,
		exports:    opts.Exports,
		totpSecret: opts.AdminTOTPSecret,
		corsOrigin: opts.CORSAllowOrigin,
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.corsOrigin == "" {
		s.corsOrigin = "*"
	}
	if s.health == nil {
		codes := make([]string, 0)
		for _, ex := range opts.Registry.Exchanges() {
			codes = append(codes, string(ex))
		}
		s.health = metrics.NewHealthStatus(codes)
	}
	if s.exports == nil {
		s.exports = export.NewRunner(opts.Metrics, s.health)
	}
	return s
}

// Service returns the query service behind the handlers.
func (s *Server) Service() *Service { return s.svc }

// Handler returns the root handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.withRequestID(s.withAccessLog(mux))
}

// RegisterRoutes registers all HTTP routes on the provided mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/exchanges", s.route("exchanges", s.handleExchanges))
	mux.Handle("/api/holidays", s.route("holidays", s.handleHolidays))
	mux.Handle("/api/holidays/check", s.route("check", s.handleCheck))
	mux.Handle("/api/holidays/next-trading-day", s.route("next", s.handleNextTradingDay))
	mux.Handle("/api/admin/export", s.route("admin_export", s.handleAdminExport))
	mux.HandleFunc("/ws", s.handleWS)
	mux.Handle("/healthz", s.health)
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}

func (s *Server) handleExchanges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Exchanges())
}

func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var year *int
	if ys := q.Get("year"); ys != "" {
		y, err := strconv.Atoi(ys)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year: "+ys)
			return
		}
		year = &y
	}

	resp, err := s.svc.Holidays(q.Get("exchange"), year)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := model.ParseDate(q.Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.svc.Check(q.Get("exchange"), d)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNextTradingDay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := model.ParseDate(q.Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.svc.NextTradingDay(q.Get("exchange"), d)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrUnknownExchange) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusUnprocessableEntity, err.Error())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
