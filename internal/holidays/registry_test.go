package holidays

import (
	"errors"
	"testing"

	"market-holidays/internal/model"
)

func TestRegistry_Exchanges(t *testing.T) {
	got := DefaultRegistry().Exchanges()
	want := model.Exchanges()
	if len(got) != len(want) {
		t.Fatalf("got %d exchanges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("exchange[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRegistry_DefaultIsShared(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry should return the same instance")
	}
}

func TestRegistry_ExtraExchangesSortedLast(t *testing.T) {
	reg, err := NewRegistry(map[model.Exchange][]model.Holiday{
		"ZZZ":      {h(2020, 1, 1, "z")},
		model.NYSE: nyseHolidays,
		"AAA":      {h(2020, 1, 1, "a")},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := reg.Exchanges()
	want := []model.Exchange{model.NYSE, "AAA", "ZZZ"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestRegistry_DuplicateFails(t *testing.T) {
	_, err := NewRegistry(map[model.Exchange][]model.Holiday{
		"BAD": {h(2020, 1, 1, "a"), h(2020, 1, 1, "b")},
	})
	if !errors.Is(err, ErrDuplicateDate) {
		t.Fatalf("expected ErrDuplicateDate, got %v", err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := DefaultRegistry()

	l, err := reg.Lookup(model.SSE)
	if err != nil {
		t.Fatalf("Lookup(SSE): %v", err)
	}
	if ex, ok := l.Exchange(); !ok || ex != model.SSE {
		t.Errorf("Exchange() = %s,%v", ex, ok)
	}

	l, err = reg.Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\"): %v", err)
	}
	if l.Bound() {
		t.Error("empty exchange should give an unbound lookup")
	}

	if _, err := reg.Lookup("LSE"); !errors.Is(err, model.ErrUnknownExchange) {
		t.Errorf("expected ErrUnknownExchange, got %v", err)
	}
}
