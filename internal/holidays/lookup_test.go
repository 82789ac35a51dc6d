package holidays

import (
	"reflect"
	"sync"
	"testing"

	"market-holidays/internal/model"
)

func nyseLookup(t *testing.T) *Lookup {
	t.Helper()
	cal, ok := DefaultRegistry().Calendar(model.NYSE)
	if !ok {
		t.Fatal("NYSE calendar missing")
	}
	return NewLookup(cal)
}

func TestLookup_Delegates(t *testing.T) {
	l := nyseLookup(t)

	if !l.IsDateHoliday(d(2020, 1, 1)) {
		t.Error("2020-01-01 should be a NYSE holiday")
	}
	if l.IsDateHoliday(d(2020, 12, 26)) {
		t.Error("2020-12-26 should not be a NYSE holiday")
	}
	if n := len(l.HolidaysByYear(2020)); n != 10 {
		t.Errorf("2020: got %d, want 10", n)
	}
	if n := len(l.HolidaysByYear(2022)); n != 11 {
		t.Errorf("2022: got %d, want 11", n)
	}
	if n := len(l.HolidaysByYear(2019)); n != 0 {
		t.Errorf("2019: got %d, want 0", n)
	}
	if n := len(l.Holidays()); n != 75 {
		t.Errorf("all: got %d, want 75", n)
	}
	if desc, ok := l.Description(d(2022, 6, 20)); !ok || desc != "Juneteenth National Independence Day" {
		t.Errorf("Description = %q,%v", desc, ok)
	}
}

func TestLookup_Unbound(t *testing.T) {
	for name, l := range map[string]*Lookup{
		"no calendar": NewLookup(nil),
		"nil lookup":  nil,
	} {
		t.Run(name, func(t *testing.T) {
			if got := l.Holidays(); got == nil || len(got) != 0 {
				t.Errorf("Holidays() = %v, want empty", got)
			}
			if got := l.HolidaysByYear(2020); got == nil || len(got) != 0 {
				t.Errorf("HolidaysByYear(2020) = %v, want empty", got)
			}
			if l.IsDateHoliday(d(2020, 1, 1)) {
				t.Error("IsDateHoliday should be false without an exchange")
			}
			if l.Bound() {
				t.Error("Bound() should be false")
			}
			if _, ok := l.Exchange(); ok {
				t.Error("Exchange() should report no exchange")
			}
			if _, ok := l.Description(d(2020, 1, 1)); ok {
				t.Error("Description should report nothing")
			}
			// Weekday rule still applies.
			if !l.IsTradingDay(d(2020, 1, 1)) {
				t.Error("2020-01-01 is a Wednesday; unbound lookup should call it a trading day")
			}
		})
	}
}

func TestLookup_Idempotent(t *testing.T) {
	l := nyseLookup(t)
	a, b := l.Holidays(), l.Holidays()
	if !reflect.DeepEqual(a, b) {
		t.Error("Holidays() not idempotent")
	}
	y1, y2 := l.HolidaysByYear(2024), l.HolidaysByYear(2024)
	if !reflect.DeepEqual(y1, y2) {
		t.Error("HolidaysByYear() not idempotent")
	}
	for i := 0; i < 3; i++ {
		if !l.IsDateHoliday(d(2024, 12, 25)) {
			t.Fatal("IsDateHoliday changed between calls")
		}
	}
}

func TestLookup_TradingDays(t *testing.T) {
	l := nyseLookup(t)

	tests := []struct {
		name string
		date model.Date
		want bool
	}{
		{"holiday weekday", d(2020, 1, 1), false},
		{"plain weekday", d(2020, 1, 2), true},
		{"saturday", d(2020, 1, 4), false},
		{"sunday", d(2020, 1, 5), false},
	}
	for _, tc := range tests {
		if got := l.IsTradingDay(tc.date); got != tc.want {
			t.Errorf("%s: IsTradingDay(%s) = %v, want %v", tc.name, tc.date, got, tc.want)
		}
	}

	next := []struct {
		from, want model.Date
	}{
		{d(2020, 12, 24), d(2020, 12, 28)}, // Christmas Fri + weekend
		{d(2020, 12, 30), d(2021, 1, 4)},   // Dec 31 + Jan 1 + weekend
		{d(2020, 1, 6), d(2020, 1, 7)},
	}
	for _, tc := range next {
		got, ok := l.NextTradingDay(tc.from)
		if !ok || got != tc.want {
			t.Errorf("NextTradingDay(%s) = %s,%v, want %s", tc.from, got, ok, tc.want)
		}
	}
}

func TestLookup_ConcurrentReaders(t *testing.T) {
	l := nyseLookup(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.HolidaysByYear(year)
				_ = l.IsDateHoliday(d(year, 1, 1))
				_ = l.Holidays()
			}
		}(2020 + i%7)
	}
	wg.Wait()
}
