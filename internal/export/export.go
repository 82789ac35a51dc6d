// Package export pushes the compiled-in holiday calendars to external stores
// (Redis, SQLite) so that other services can read them without linking this
// module.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"market-holidays/internal/holidays"
	"market-holidays/internal/metrics"
	"market-holidays/internal/notification"
)

// Exporter writes a full registry snapshot to one target.
type Exporter interface {
	Name() string
	Export(ctx context.Context, reg *holidays.Registry) (int, error)
}

// Result is the outcome of one exporter run.
type Result struct {
	Target   string        `json:"target"`
	Rows     int           `json:"rows"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`
}

// Runner runs the exporters returned by its source on every Run.
type Runner struct {
	source    func() []Exporter
	metrics   *metrics.Metrics
	health    *metrics.HealthStatus
	notifier  notification.Notifier
}

// NewRunner builds a runner. m and health may be nil.
func NewRunner(m *metrics.Metrics, health *metrics.HealthStatus, exporters ...Exporter) *Runner {
	return NewRunnerFunc(m, health, func() []Exporter { return exporters })
}

// NewRunnerFunc builds a runner whose exporter set is read from source at
// each call, so targets opened later are picked up.
func NewRunnerFunc(m *metrics.Metrics, health *metrics.HealthStatus, source func() []Exporter) *Runner {
	return &Runner{source: source, metrics: m, health: health}
}

// WithNotifier sends an alert through n whenever a run has failures.
func (r *Runner) WithNotifier(n notification.Notifier) *Runner {
	r.notifier = n
	return r
}

// Enabled reports whether any exporter is configured.
func (r *Runner) Enabled() bool { return len(r.source()) > 0 }

// Targets lists exporter names in run order.
func (r *Runner) Targets() []string {
	exporters := r.source()
	names := make([]string, len(exporters))
	for i, e := range exporters {
		names[i] = e.Name()
	}
	return names
}

// Run executes every exporter in order. A failing exporter does not stop the
// others; all failures are joined into the returned error.
func (r *Runner) Run(ctx context.Context, reg *holidays.Registry) ([]Result, error) {
	exporters := r.source()
	results := make([]Result, 0, len(exporters))
	var errs []error

	for _, e := range exporters {
		start := time.Now()
		rows, err := e.Export(ctx, reg)
		r.metrics.ObserveExport(e.Name(), rows, start, err)

		res := Result{Target: e.Name(), Rows: rows, Duration: time.Since(start)}
		if err != nil {
			res.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
			slog.Error("[export] failed", "target", e.Name(), "error", err)
		} else {
			slog.Info("[export] done", "target", e.Name(), "rows", rows, "took", res.Duration)
		}
		results = append(results, res)
	}

	err := errors.Join(errs...)
	if r.health != nil {
		r.health.RecordExport(time.Now(), err)
	}
	if err != nil && r.notifier != nil {
		alert := notification.Alert{
			Level:   notification.AlertCritical,
			Title:   fmt.Sprintf("holiday export failed (%d/%d targets)", len(errs), len(exporters)),
			Message: err.Error(),
		}
		if nerr := r.notifier.Send(ctx, alert); nerr != nil {
			slog.Warn("[export] alert not delivered", "error", nerr)
		}
	}
	return results, err
}
