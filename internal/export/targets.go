package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"market-holidays/config"
	"market-holidays/internal/holidays"
	"market-holidays/internal/metrics"
	"market-holidays/internal/notification"
	redisstore "market-holidays/internal/store/redis"
	sqlitestore "market-holidays/internal/store/sqlite"
)

// Targets holds the export targets enabled in configuration. A target that
// fails to open stays pending and is retried by Reopen.
type Targets struct {
	cfg    *config.Config
	m      *metrics.Metrics
	health *metrics.HealthStatus

	mu     sync.RWMutex
	redis  *redisstore.Writer
	sqlite *sqlitestore.Writer
}

// OpenTargets opens every export target enabled in cfg. A target that fails
// to open is logged, marked unhealthy and left pending; the returned error
// joins those failures so one-shot callers can exit non-zero.
func OpenTargets(cfg *config.Config, m *metrics.Metrics, health *metrics.HealthStatus) (*Targets, error) {
	t := &Targets{cfg: cfg, m: m, health: health}
	if health != nil {
		health.SetSQLiteEnabled(cfg.SQLiteEnabled())
		health.SetRedisEnabled(cfg.RedisEnabled())
	}
	_, err := t.Reopen()
	return t, err
}

// Reopen tries to open every enabled target that is not open yet and
// returns the names of those it opened.
func (t *Targets) Reopen() ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var opened []string
	var errs []error

	if t.cfg.SQLiteEnabled() && t.sqlite == nil {
		w, err := sqlitestore.New(sqlitestore.WriterConfig{DBPath: t.cfg.SQLitePath})
		if err != nil {
			slog.Warn("[export] sqlite unavailable", "path", t.cfg.SQLitePath, "error", err)
			errs = append(errs, fmt.Errorf("sqlite: %w", err))
		} else {
			if t.health != nil {
				t.health.CheckSQLite(context.Background(), w.DB())
			}
			t.sqlite = w
			opened = append(opened, w.Name())
		}
	}

	if t.cfg.RedisEnabled() && t.redis == nil {
		w, err := redisstore.New(redisstore.WriterConfig{
			Addr:     t.cfg.RedisAddr,
			Password: t.cfg.RedisPassword,
			DB:       t.cfg.RedisDB,
		})
		if err != nil {
			slog.Warn("[export] redis unavailable", "addr", t.cfg.RedisAddr, "error", err)
			errs = append(errs, fmt.Errorf("redis: %w", err))
		} else {
			if t.m != nil {
				m := t.m
				w.Breaker().OnStateChange = func(from, to redisstore.State) {
					m.RedisCircuitBreakerState.Set(float64(to))
					if to == redisstore.StateOpen {
						m.RedisCircuitBreakerTrips.Inc()
					}
					slog.Warn("[redis] circuit breaker", "from", from.String(), "to", to.String())
				}
			}
			if t.health != nil {
				t.health.CheckRedis(context.Background(), w.Client())
			}
			t.redis = w
			opened = append(opened, w.Name())
		}
	}

	return opened, errors.Join(errs...)
}

// Pending reports whether an enabled target is still not open.
func (t *Targets) Pending() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return (t.cfg.SQLiteEnabled() && t.sqlite == nil) || (t.cfg.RedisEnabled() && t.redis == nil)
}

// Redis returns the Redis writer, or nil when it is disabled or not open.
func (t *Targets) Redis() *redisstore.Writer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.redis
}

// SQLite returns the SQLite writer, or nil when it is disabled or not open.
func (t *Targets) SQLite() *sqlitestore.Writer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sqlite
}

// Exporters returns the open targets in run order.
func (t *Targets) Exporters() []Exporter {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []Exporter
	if t.sqlite != nil {
		out = append(out, t.sqlite)
	}
	if t.redis != nil {
		out = append(out, t.redis)
	}
	return out
}

// Watch probes open targets and retries pending ones every interval until
// ctx is done. onReopen runs after any target comes up late, typically to
// export into it.
func (t *Targets) Watch(ctx context.Context, interval time.Duration, onReopen func(opened []string)) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if t.Pending() {
					if opened, _ := t.Reopen(); len(opened) > 0 {
						slog.Info("[export] targets reopened", "targets", opened)
						if onReopen != nil {
							onReopen(opened)
						}
					}
				}
				t.probe(ctx)
			}
		}
	}()
}

func (t *Targets) probe(ctx context.Context) {
	if t.health == nil {
		return
	}
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if w := t.Redis(); w != nil {
		t.health.CheckRedis(probeCtx, w.Client())
	}
	if w := t.SQLite(); w != nil {
		t.health.CheckSQLite(probeCtx, w.DB())
	}
}

// Verify reads the open targets back and compares them with reg.
func (t *Targets) Verify(ctx context.Context, reg *holidays.Registry) error {
	var errs []error
	if w := t.Redis(); w != nil {
		errs = append(errs, w.Reader().Verify(ctx, reg))
	}
	if t.SQLite() != nil {
		errs = append(errs, verifySQLite(ctx, t.cfg.SQLitePath, reg))
	}
	return errors.Join(errs...)
}

func verifySQLite(ctx context.Context, path string, reg *holidays.Registry) error {
	r, err := sqlitestore.NewReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	counts, err := r.Count(ctx)
	if err != nil {
		return err
	}
	for _, ex := range reg.Exchanges() {
		cal, _ := reg.Calendar(ex)
		if counts[ex] != cal.Len() {
			return fmt.Errorf("sqlite verify: %s has %d rows, want %d", ex, counts[ex], cal.Len())
		}
	}
	return nil
}

// Close closes every open target.
func (t *Targets) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var errs []error
	if t.sqlite != nil {
		errs = append(errs, t.sqlite.Close())
	}
	if t.redis != nil {
		errs = append(errs, t.redis.Close())
	}
	return errors.Join(errs...)
}

// Notifier returns the alert channel configured in cfg: a webhook when
// NOTIFY_WEBHOOK_URL is set, otherwise the log.
func Notifier(cfg *config.Config, service string) notification.Notifier {
	if cfg.NotifyWebhookURL != "" {
		return notification.NewWebhookNotifier(cfg.NotifyWebhookURL, service)
	}
	return notification.NewLogNotifier()
}
