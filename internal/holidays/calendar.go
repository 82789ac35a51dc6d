// Package holidays holds the fixed market-holiday calendars for the supported
// exchanges and the lookup facade used to query them.
//
// Every calendar is built once from a literal table and never mutated
// afterwards, so all read methods are safe for concurrent use without locks.
package holidays

import (
	"errors"
	"fmt"
	"sort"

	"market-holidays/internal/model"
)

// ErrDuplicateDate is returned when a table lists the same date twice.
var ErrDuplicateDate = errors.New("duplicate holiday date")

// Calendar is one exchange's holiday set with two indexes: holidays grouped
// by year (each group sorted by date) and a flat date set for O(1) checks.
type Calendar struct {
	exchange model.Exchange
	byYear   map[int][]model.Holiday
	dates    map[model.Date]string
	years    []int
	total    int
}

// NewCalendar indexes entries in a single pass. Insertion order does not
// matter; each year's group is sorted once at the end.
func NewCalendar(ex model.Exchange, entries []model.Holiday) (*Calendar, error) {
	c := &Calendar{
		exchange: ex,
		byYear:   make(map[int][]model.Holiday),
		dates:    make(map[model.Date]string, len(entries)),
	}

	for _, e := range entries {
		if _, dup := c.dates[e.Date]; dup {
			return nil, fmt.Errorf("%s %s: %w", ex, e.Date, ErrDuplicateDate)
		}
		c.dates[e.Date] = e.Description
		c.byYear[e.Date.Year] = append(c.byYear[e.Date.Year], e)
	}

	for y, list := range c.byYear {
		sortByDate(list)
		c.years = append(c.years, y)
	}
	sort.Ints(c.years)
	c.total = len(entries)

	return c, nil
}

// MustCalendar is like NewCalendar but panics on error. Only meant for the
// compiled-in tables.
func MustCalendar(ex model.Exchange, entries []model.Holiday) *Calendar {
	c, err := NewCalendar(ex, entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Exchange returns the exchange this calendar belongs to.
func (c *Calendar) Exchange() model.Exchange { return c.exchange }

// Len returns the number of holidays across all years.
func (c *Calendar) Len() int { return c.total }

// Years returns the years that have at least one holiday, ascending.
func (c *Calendar) Years() []int {
	out := make([]int, len(c.years))
	copy(out, c.years)
	return out
}

// All returns every holiday, ascending by date.
func (c *Calendar) All() []model.Holiday {
	out := make([]model.Holiday, 0, c.total)
	for _, y := range c.years {
		out = append(out, c.byYear[y]...)
	}
	return out
}

// InYear returns the holidays of year ascending by date. Years with no
// entries (including years outside the table) yield an empty slice.
func (c *Calendar) InYear(year int) []model.Holiday {
	list := c.byYear[year]
	out := make([]model.Holiday, len(list))
	copy(out, list)
	return out
}

// IsHoliday reports whether d is a holiday on this exchange.
func (c *Calendar) IsHoliday(d model.Date) bool {
	_, ok := c.dates[d]
	return ok
}

// Describe returns the description recorded for d, if d is a holiday.
func (c *Calendar) Describe(d model.Date) (string, bool) {
	desc, ok := c.dates[d]
	return desc, ok
}

func sortByDate(list []model.Holiday) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Date.Before(list[j].Date)
	})
}
