package holidays

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"market-holidays/internal/model"
)

// h builds one literal table row.
func h(year, month, day int, description string) model.Holiday {
	return model.Holiday{
		Date:        model.NewDate(year, time.Month(month), day),
		Description: description,
	}
}

// Datasets returns the compiled-in holiday tables keyed by exchange.
func Datasets() map[model.Exchange][]model.Holiday {
	return map[model.Exchange][]model.Holiday{
		model.NYSE: nyseHolidays,
		model.CME:  cmeHolidays,
		model.B3:   b3Holidays,
		model.SSE:  sseHolidays,
		model.JPX:  jpxHolidays,
	}
}

// Registry maps exchange codes to their calendars.
type Registry struct {
	calendars map[model.Exchange]*Calendar
	order     []model.Exchange
}

// NewRegistry builds one Calendar per dataset. Exchanges are ordered the
// way model.Exchanges lists them, unknown codes last.
func NewRegistry(datasets map[model.Exchange][]model.Holiday) (*Registry, error) {
	r := &Registry{calendars: make(map[model.Exchange]*Calendar, len(datasets))}
	for ex, entries := range datasets {
		cal, err := NewCalendar(ex, entries)
		if err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		r.calendars[ex] = cal
	}
	for _, ex := range model.Exchanges() {
		if _, ok := r.calendars[ex]; ok {
			r.order = append(r.order, ex)
		}
	}
	var extra []model.Exchange
	for ex := range r.calendars {
		if !containsExchange(r.order, ex) {
			extra = append(extra, ex)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	r.order = append(r.order, extra...)
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the registry built from the compiled-in tables.
// It is built on first use and shared afterwards.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(Datasets())
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Calendar returns the calendar for ex.
func (r *Registry) Calendar(ex model.Exchange) (*Calendar, bool) {
	c, ok := r.calendars[ex]
	return c, ok
}

// Exchanges returns the exchanges held by the registry.
func (r *Registry) Exchanges() []model.Exchange {
	out := make([]model.Exchange, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns a facade bound to ex, or an unbound facade when ex is empty.
// An exchange the registry does not hold is an error.
func (r *Registry) Lookup(ex model.Exchange) (*Lookup, error) {
	if ex == "" {
		return NewLookup(nil), nil
	}
	c, ok := r.calendars[ex]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownExchange, string(ex))
	}
	return NewLookup(c), nil
}

func containsExchange(list []model.Exchange, ex model.Exchange) bool {
	for _, e := range list {
		if e == ex {
			return true
		}
	}
	return false
}
