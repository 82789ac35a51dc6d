package redis

import (
	"context"
	"fmt"

	"market-holidays/internal/holidays"
	"market-holidays/internal/model"

	goredis "github.com/go-redis/redis/v8"
)

// Reader answers holiday queries from the keys a Writer exported.
type Reader struct {
	client *goredis.Client
	keys   Keys
}

// NewReader wraps client. prefix must match the writer's KeyPrefix.
func NewReader(client *goredis.Client, prefix string) *Reader {
	return &Reader{client: client, keys: NewKeys(prefix)}
}

// IsHoliday checks the exported hash for d.
func (r *Reader) IsHoliday(ctx context.Context, ex model.Exchange, d model.Date) (bool, error) {
	ok, err := r.client.HExists(ctx, r.keys.Exchange(ex), d.String()).Result()
	if err != nil {
		return false, fmt.Errorf("redis hexists: %w", err)
	}
	return ok, nil
}

// HolidaysByYear reads one year back, ascending by date. Missing keys give
// an empty slice.
func (r *Reader) HolidaysByYear(ctx context.Context, ex model.Exchange, year int) ([]model.Holiday, error) {
	dates, err := r.client.ZRange(ctx, r.keys.Year(ex, year), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zrange: %w", err)
	}
	out := make([]model.Holiday, 0, len(dates))
	if len(dates) == 0 {
		return out, nil
	}

	descs, err := r.client.HMGet(ctx, r.keys.Exchange(ex), dates...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hmget: %w", err)
	}
	for i, ds := range dates {
		d, err := model.ParseDate(ds)
		if err != nil {
			return nil, fmt.Errorf("redis member %q: %w", ds, err)
		}
		desc, _ := descs[i].(string)
		out = append(out, model.Holiday{Date: d, Description: desc})
	}
	return out, nil
}

// Exchanges lists the exchange codes that have been exported.
func (r *Reader) Exchanges(ctx context.Context) ([]string, error) {
	codes, err := r.client.SMembers(ctx, r.keys.Exchanges()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}
	return codes, nil
}

// Verify reads every exported year back and compares it with reg. It
// returns the first mismatch found.
func (r *Reader) Verify(ctx context.Context, reg *holidays.Registry) error {
	codes, err := r.Exchanges(ctx)
	if err != nil {
		return err
	}
	exported := make(map[string]bool, len(codes))
	for _, c := range codes {
		exported[c] = true
	}

	for _, ex := range reg.Exchanges() {
		if !exported[string(ex)] {
			return fmt.Errorf("redis verify: %s not exported", ex)
		}
		cal, _ := reg.Calendar(ex)
		for _, year := range cal.Years() {
			want := cal.InYear(year)
			got, err := r.HolidaysByYear(ctx, ex, year)
			if err != nil {
				return err
			}
			if len(got) != len(want) {
				return fmt.Errorf("redis verify: %s %d has %d holidays, want %d", ex, year, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					return fmt.Errorf("redis verify: %s %d entry %d is %s %q, want %s %q",
						ex, year, i, got[i].Date, got[i].Description, want[i].Date, want[i].Description)
				}
			}
		}
	}
	return nil
}
