package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-holidays/config"
	"market-holidays/internal/api"
	"market-holidays/internal/export"
	"market-holidays/internal/holidays"
	"market-holidays/internal/logger"
	"market-holidays/internal/metrics"
	"market-holidays/internal/model"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()
	logger.Init("holidayd", logger.ParseLevel(cfg.LogLevel))
	slog.Info("[holidayd] starting...")

	var defaultExchange model.Exchange
	if cfg.DefaultExchange != "" {
		ex, err := model.ParseExchange(cfg.DefaultExchange)
		if err != nil {
			slog.Error("[holidayd] invalid DEFAULT_EXCHANGE", "value", cfg.DefaultExchange, "error", err)
			os.Exit(1)
		}
		defaultExchange = ex
	}

	reg := holidays.DefaultRegistry()

	// ---- Metrics & health ----
	prom := metrics.NewMetrics(prometheus.DefaultRegisterer)
	codes := make([]string, 0)
	for _, ex := range reg.Exchanges() {
		cal, _ := reg.Calendar(ex)
		prom.CalendarEntries.WithLabelValues(string(ex)).Set(float64(cal.Len()))
		codes = append(codes, string(ex))
	}
	health := metrics.NewHealthStatus(codes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- Export targets (optional) ----
	targets, err := export.OpenTargets(cfg, prom, health)
	if err != nil {
		slog.Warn("[holidayd] continuing without some export targets", "error", err)
	}
	defer targets.Close()

	runner := export.NewRunnerFunc(prom, health, targets.Exporters).WithNotifier(export.Notifier(cfg, "holidayd"))
	if runner.Enabled() {
		exportCtx, exportCancel := context.WithTimeout(ctx, 30*time.Second)
		if _, err := runner.Run(exportCtx, reg); err != nil {
			slog.Warn("[holidayd] startup export failed", "error", err)
		}
		exportCancel()
	}

	// Probe open targets and retry any that failed to open; a late target
	// gets a full export as soon as it comes up.
	if cfg.RedisEnabled() || cfg.SQLiteEnabled() {
		targets.Watch(ctx, 10*time.Second, func(opened []string) {
			exportCtx, exportCancel := context.WithTimeout(ctx, 30*time.Second)
			defer exportCancel()
			if _, err := runner.Run(exportCtx, reg); err != nil {
				slog.Warn("[holidayd] export after reopen failed", "targets", opened, "error", err)
			}
		})
	}

	if cfg.AdminEnabled() {
		slog.Info("[holidayd] admin api enabled", "targets", runner.Targets())
	}

	// ---- HTTP ----
	server := api.NewServer(api.Options{
		Registry:        reg,
		DefaultExchange: defaultExchange,
		Metrics:         prom,
		Health:          health,
		Gatherer:        prometheus.DefaultGatherer,
		Exports:         runner,
		AdminTOTPSecret: cfg.AdminTOTPSecret,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
	})
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("[holidayd] serving", "addr", cfg.ListenAddr, "exchanges", codes, "default_exchange", string(defaultExchange))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[holidayd] server error", "error", err)
			os.Exit(1)
		}
	}()

	<-sigCh
	slog.Info("[holidayd] shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("[holidayd] shutdown", "error", err)
	}
	slog.Info("[holidayd] stopped")
}
