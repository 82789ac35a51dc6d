package metrics

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the holiday service.
type Metrics struct {
	// Query path
	QueriesTotal *prometheus.CounterVec   // labels: exchange, op
	HolidayHits  *prometheus.CounterVec   // labels: exchange
	QueryDur     *prometheus.HistogramVec // labels: op

	// HTTP / WS
	HTTPRequests *prometheus.CounterVec // labels: route, code
	WSClients    prometheus.Gauge
	WSMessages   prometheus.Counter

	// Exports
	ExportsTotal *prometheus.CounterVec // labels: target, result
	ExportDur    *prometheus.HistogramVec
	RowsExported *prometheus.CounterVec // labels: target

	// Redis circuit breaker
	RedisCircuitBreakerState prometheus.Gauge // 0=closed, 1=open, 2=half-open
	RedisCircuitBreakerTrips prometheus.Counter

	// Loaded calendar size, per exchange
	CalendarEntries *prometheus.GaugeVec
}

// NewMetrics creates all metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and prometheus.NewRegistry()
// in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holidays_queries_total",
			Help: "Holiday queries served (by exchange and operation)",
		}, []string{"exchange", "op"}),
		HolidayHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holidays_check_hits_total",
			Help: "Date checks that landed on a holiday",
		}, []string{"exchange"}),
		QueryDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "holidays_query_duration_seconds",
			Help:    "In-process lookup latency",
			Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}, []string{"op"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holidays_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		WSClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "holidays_ws_clients",
			Help: "Currently connected WebSocket clients",
		}),
		WSMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holidays_ws_messages_total",
			Help: "WebSocket query frames handled",
		}),

		ExportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holidays_exports_total",
			Help: "Calendar exports by target and result",
		}, []string{"target", "result"}),
		ExportDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "holidays_export_duration_seconds",
			Help:    "Calendar export latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"target"}),
		RowsExported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holidays_rows_exported_total",
			Help: "Holiday rows written by exporters",
		}, []string{"target"}),

		RedisCircuitBreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "holidays_redis_circuit_breaker_state",
			Help: "Redis circuit breaker state (0=closed, 1=open, 2=half-open)",
		}),
		RedisCircuitBreakerTrips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holidays_redis_circuit_breaker_trips_total",
			Help: "Times the Redis circuit breaker tripped open",
		}),

		CalendarEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "holidays_calendar_entries",
			Help: "Holidays loaded per exchange",
		}, []string{"exchange"}),
	}

	reg.MustRegister(
		m.QueriesTotal,
		m.HolidayHits,
		m.QueryDur,
		m.HTTPRequests,
		m.WSClients,
		m.WSMessages,
		m.ExportsTotal,
		m.ExportDur,
		m.RowsExported,
		m.RedisCircuitBreakerState,
		m.RedisCircuitBreakerTrips,
		m.CalendarEntries,
	)

	return m
}

// ObserveQuery records one lookup. A nil *Metrics is a no-op so library
// callers don't need to wire Prometheus.
func (m *Metrics) ObserveQuery(exchange, op string, start time.Time) {
	if m == nil {
		return
	}
	if exchange == "" {
		exchange = "none"
	}
	m.QueriesTotal.WithLabelValues(exchange, op).Inc()
	m.QueryDur.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// ObserveHit counts a date check that found a holiday.
func (m *Metrics) ObserveHit(exchange string) {
	if m == nil {
		return
	}
	m.HolidayHits.WithLabelValues(exchange).Inc()
}

// ObserveExport records one exporter run.
func (m *Metrics) ObserveExport(target string, rows int, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ExportsTotal.WithLabelValues(target, result).Inc()
	m.ExportDur.WithLabelValues(target).Observe(time.Since(start).Seconds())
	if err == nil {
		m.RowsExported.WithLabelValues(target).Add(float64(rows))
	}
}

// HealthStatus represents the service health. Calendars are compiled in, so
// the service is always able to answer queries; optional export targets can
// only degrade it.
type HealthStatus struct {
	mu sync.RWMutex

	Exchanges      []string  `json:"exchanges"`
	RedisEnabled   bool      `json:"redis_enabled"`
	RedisConnected bool      `json:"redis_connected"`
	SQLiteEnabled  bool      `json:"sqlite_enabled"`
	SQLiteOK       bool      `json:"sqlite_ok"`
	LastExportAt   time.Time `json:"last_export_at"`
	LastExportErr  string    `json:"last_export_error,omitempty"`

	RedisLatencyMs  float64   `json:"redis_latency_ms"`
	SQLiteLatencyMs float64   `json:"sqlite_latency_ms"`
	LastCheckAt     time.Time `json:"last_check_at"`
	StartedAt       time.Time `json:"started_at"`
}

// NewHealthStatus returns a default health status.
func NewHealthStatus(exchanges []string) *HealthStatus {
	return &HealthStatus{
		Exchanges: exchanges,
		StartedAt: time.Now(),
	}
}

func (h *HealthStatus) SetRedisEnabled(v bool) {
	h.mu.Lock()
	h.RedisEnabled = v
	h.mu.Unlock()
}

func (h *HealthStatus) SetSQLiteEnabled(v bool) {
	h.mu.Lock()
	h.SQLiteEnabled = v
	h.mu.Unlock()
}

// RecordExport stores the outcome of the latest export run.
func (h *HealthStatus) RecordExport(at time.Time, err error) {
	h.mu.Lock()
	h.LastExportAt = at
	h.LastExportErr = ""
	if err != nil {
		h.LastExportErr = err.Error()
	}
	h.mu.Unlock()
}

// CheckRedis pings Redis and records latency + connectivity.
func (h *HealthStatus) CheckRedis(ctx context.Context, rdb *goredis.Client) {
	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start)

	h.mu.Lock()
	h.RedisConnected = err == nil
	h.RedisLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// CheckSQLite pings the database and records latency + health.
func (h *HealthStatus) CheckSQLite(ctx context.Context, db *sql.DB) {
	start := time.Now()
	err := db.PingContext(ctx)
	latency := time.Since(start)

	h.mu.Lock()
	h.SQLiteOK = err == nil
	h.SQLiteLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// Status returns "healthy" or "degraded". Degraded means an enabled export
// target is unreachable; queries are unaffected.
func (h *HealthStatus) Status() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.statusLocked()
}

func (h *HealthStatus) statusLocked() string {
	if (h.RedisEnabled && !h.RedisConnected) || (h.SQLiteEnabled && !h.SQLiteOK) || h.LastExportErr != "" {
		return "degraded"
	}
	return "healthy"
}

// ServeHTTP handles the /healthz endpoint.
func (h *HealthStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	lastExport := ""
	if !h.LastExportAt.IsZero() {
		lastExport = h.LastExportAt.Format(time.RFC3339)
	}

	status := struct {
		Status          string   `json:"status"`
		Uptime          string   `json:"uptime"`
		Exchanges       []string `json:"exchanges"`
		RedisEnabled    bool     `json:"redis_enabled"`
		RedisConnected  bool     `json:"redis_connected"`
		RedisLatencyMs  float64  `json:"redis_latency_ms"`
		SQLiteEnabled   bool     `json:"sqlite_enabled"`
		SQLiteOK        bool     `json:"sqlite_ok"`
		SQLiteLatencyMs float64  `json:"sqlite_latency_ms"`
		LastExportAt    string   `json:"last_export_at,omitempty"`
		LastExportErr   string   `json:"last_export_error,omitempty"`
	}{
		Status:          h.statusLocked(),
		Uptime:          time.Since(h.StartedAt).Round(time.Second).String(),
		Exchanges:       h.Exchanges,
		RedisEnabled:    h.RedisEnabled,
		RedisConnected:  h.RedisConnected,
		RedisLatencyMs:  h.RedisLatencyMs,
		SQLiteEnabled:   h.SQLiteEnabled,
		SQLiteOK:        h.SQLiteOK,
		SQLiteLatencyMs: h.SQLiteLatencyMs,
		LastExportAt:    lastExport,
		LastExportErr:   h.LastExportErr,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
