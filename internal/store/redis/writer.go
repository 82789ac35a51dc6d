package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"market-holidays/internal/holidays"
	"market-holidays/internal/model"

	goredis "github.com/go-redis/redis/v8"
)

const (
	defaultKeyPrefix = "holidays"
	maxWatchRetries  = 3
	// UpdatesChannel receives the exchange code after each exchange export.
	UpdatesChannel = "pub:holidays:updated"
)

// WriterConfig configures the Redis writer.
type WriterConfig struct {
	Addr      string // Redis address, e.g. "localhost:6379"
	Password  string
	DB        int
	KeyPrefix string // default "holidays"

	// Breaker settings; zero values use 3 failures / 30s.
	MaxFailures  int
	ResetTimeout time.Duration
}

// Writer publishes holiday calendars into Redis so that services without
// this module can answer holiday checks with a single HEXISTS.
//
// Layout per exchange EX:
//
//	HASH {prefix}:EX         date -> description
//	ZSET {prefix}:EX:YYYY    member date, score yyyymmdd
//	SET  {prefix}:exchanges  exchange codes
type Writer struct {
	mu      sync.Mutex // one Export at a time per process
	client  *goredis.Client
	breaker *CircuitBreaker
	keys    Keys
}

// New creates a Writer and pings the server.
func New(cfg WriterConfig) (*Writer, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	slog.Info("[redis] connected", "addr", cfg.Addr, "db", cfg.DB)
	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client without pinging it.
func NewWithClient(client *goredis.Client, cfg WriterConfig) *Writer {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 3
	}
	reset := cfg.ResetTimeout
	if reset == 0 {
		reset = 30 * time.Second
	}
	return &Writer{
		client:  client,
		breaker: NewCircuitBreaker(maxFailures, reset),
		keys:    NewKeys(cfg.KeyPrefix),
	}
}

// Client returns the underlying Redis client for health checks.
func (w *Writer) Client() *goredis.Client { return w.client }

// Breaker returns the circuit breaker guarding exports.
func (w *Writer) Breaker() *CircuitBreaker { return w.breaker }

// Name identifies this exporter in logs and metrics.
func (w *Writer) Name() string { return "redis" }

// Reader returns a Reader over the keys this writer exports.
func (w *Writer) Reader() *Reader {
	return &Reader{client: w.client, keys: w.keys}
}

// Close closes the Redis client.
func (w *Writer) Close() error { return w.client.Close() }

// Export replaces every exchange's keys with the registry contents. Each
// exchange is written in one MULTI/EXEC so readers never see a half-written
// calendar. Returns the number of holidays written.
func (w *Writer) Export(ctx context.Context, reg *holidays.Registry) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := 0
	for _, ex := range reg.Exchanges() {
		cal, _ := reg.Calendar(ex)
		err := w.breaker.Execute(func() error {
			return w.writeCalendar(ctx, cal)
		})
		if err != nil {
			return total, fmt.Errorf("redis export %s: %w", ex, err)
		}
		total += cal.Len()

		if err := w.client.Publish(ctx, UpdatesChannel, string(ex)).Err(); err != nil {
			slog.Warn("[redis] publish failed", "channel", UpdatesChannel, "exchange", ex, "error", err)
		}
	}
	return total, nil
}

// writeCalendar swaps one exchange's keys inside WATCH/MULTI/EXEC on the
// years set, so a concurrent export from another process cannot leave year
// keys behind.
func (w *Writer) writeCalendar(ctx context.Context, cal *holidays.Calendar) error {
	ex := cal.Exchange()
	yearsKey := w.keys.Years(ex)
	all := cal.All()

	fields := make(map[string]interface{}, len(all))
	for _, h := range all {
		fields[h.Date.String()] = h.Description
	}

	txf := func(tx *goredis.Tx) error {
		stale, err := tx.SMembers(ctx, yearsKey).Result()
		if err != nil && err != goredis.Nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			for _, y := range stale {
				pipe.Del(ctx, w.keys.Exchange(ex)+":"+y)
			}
			pipe.Del(ctx, w.keys.Exchange(ex), yearsKey)

			if len(fields) > 0 {
				pipe.HSet(ctx, w.keys.Exchange(ex), fields)
			}
			for _, year := range cal.Years() {
				entries := cal.InYear(year)
				members := make([]*goredis.Z, len(entries))
				for i, h := range entries {
					members[i] = &goredis.Z{Score: float64(h.Date.Ordinal()), Member: h.Date.String()}
				}
				pipe.ZAdd(ctx, w.keys.Year(ex, year), members...)
				pipe.SAdd(ctx, yearsKey, strconv.Itoa(year))
			}
			pipe.SAdd(ctx, w.keys.Exchanges(), string(ex))
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := w.client.Watch(ctx, txf, yearsKey)
		if err != goredis.TxFailedErr {
			return err
		}
		slog.Debug("[redis] export raced another writer, retrying", "exchange", ex, "attempt", i+1)
	}
	return goredis.TxFailedErr
}

// Keys builds the Redis key names for one prefix.
type Keys struct {
	prefix string
}

// NewKeys returns key builders for prefix ("holidays" if empty).
func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return Keys{prefix: prefix}
}

// Exchange is the date->description hash of ex.
func (k Keys) Exchange(ex model.Exchange) string {
	return k.prefix + ":" + string(ex)
}

// Year is the sorted set of ex's holiday dates in year.
func (k Keys) Year(ex model.Exchange, year int) string {
	return k.Exchange(ex) + ":" + strconv.Itoa(year)
}

// Years is the set of years exported for ex.
func (k Keys) Years(ex model.Exchange) string {
	return k.Exchange(ex) + ":years"
}

// Exchanges is the set of exported exchange codes.
func (k Keys) Exchanges() string {
	return k.prefix + ":exchanges"
}
