package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"market-holidays/config"
	"market-holidays/internal/export"
	"market-holidays/internal/holidays"
	"market-holidays/internal/logger"
)

func main() {
	sqlitePath := flag.String("sqlite", "", "SQLite file to write (overrides SQLITE_PATH)")
	redisAddr := flag.String("redis", "", "Redis address to write (overrides REDIS_ADDR)")
	timeout := flag.Duration("timeout", 30*time.Second, "overall export timeout")
	verify := flag.Bool("verify", true, "read every target back after exporting")
	flag.Parse()

	cfg := config.Load()
	logger.Init("holidayexport", logger.ParseLevel(cfg.LogLevel))

	if *sqlitePath != "" {
		cfg.SQLitePath = *sqlitePath
	}
	if *redisAddr != "" {
		cfg.RedisAddr = *redisAddr
	}
	if !cfg.SQLiteEnabled() && !cfg.RedisEnabled() {
		fmt.Fprintln(os.Stderr, "holidayexport: no target; set -sqlite/-redis or SQLITE_PATH/REDIS_ADDR")
		os.Exit(2)
	}

	os.Exit(run(cfg, *timeout, *verify))
}

func run(cfg *config.Config, timeout time.Duration, verify bool) int {
	targets, openErr := export.OpenTargets(cfg, nil, nil)
	defer targets.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reg := holidays.DefaultRegistry()
	runner := export.NewRunner(nil, nil, targets.Exporters()...).WithNotifier(export.Notifier(cfg, "holidayexport"))
	results, runErr := runner.Run(ctx, reg)
	for _, r := range results {
		status := "ok"
		if r.Error != "" {
			status = r.Error
		}
		fmt.Printf("%-8s %4d rows  %-10s %s\n", r.Target, r.Rows, r.Duration.Round(time.Millisecond), status)
	}

	if openErr != nil || runErr != nil {
		slog.Error("[holidayexport] export incomplete", "open_error", openErr, "run_error", runErr)
		return 1
	}

	if verify {
		if err := targets.Verify(ctx, reg); err != nil {
			slog.Error("[holidayexport] verification failed", "error", err)
			return 1
		}
		fmt.Println("verified", runner.Targets())
	}
	return 0
}
