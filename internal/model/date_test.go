package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-01-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != (Date{Year: 2020, Month: time.January, Day: 1}) {
		t.Errorf("got %+v", d)
	}

	for _, bad := range []string{"", "2020-13-01", "2020-02-30", "01/01/2020", "2020-1-1"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestDateOf_UsesLocalWallClock(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2020-01-01 02:00 JST is still 2019-12-31 in UTC.
	ts := time.Date(2020, 1, 1, 2, 0, 0, 0, tokyo)
	if got := DateOf(ts); got != NewDate(2020, time.January, 1) {
		t.Errorf("DateOf = %s, want 2020-01-01", got)
	}
	if got := DateOf(ts.UTC()); got != NewDate(2019, time.December, 31) {
		t.Errorf("DateOf(UTC) = %s, want 2019-12-31", got)
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2020, time.December, 31)
	b := NewDate(2021, time.January, 1)
	if !a.Before(b) || a.After(b) {
		t.Error("2020-12-31 should be before 2021-01-01")
	}
	if a.Compare(a) != 0 {
		t.Error("date should compare equal to itself")
	}
	if NewDate(2020, time.March, 2).Compare(NewDate(2020, time.February, 29)) != 1 {
		t.Error("month should dominate day")
	}
	if a.Ordinal() >= b.Ordinal() {
		t.Error("Ordinal should be monotonic")
	}
}

func TestDate_AddDaysAndWeekday(t *testing.T) {
	d := NewDate(2020, time.February, 28)
	if got := d.AddDays(1); got != NewDate(2020, time.February, 29) {
		t.Errorf("leap day: got %s", got)
	}
	if got := d.AddDays(2); got != NewDate(2020, time.March, 1) {
		t.Errorf("got %s", got)
	}
	if got := NewDate(2021, time.January, 1).AddDays(-1); got != NewDate(2020, time.December, 31) {
		t.Errorf("got %s", got)
	}
	if wd := NewDate(2020, time.January, 4).Weekday(); wd != time.Saturday {
		t.Errorf("2020-01-04 weekday = %s", wd)
	}
	if !NewDate(2020, time.January, 5).IsWeekend() || NewDate(2020, time.January, 6).IsWeekend() {
		t.Error("IsWeekend wrong")
	}
}

func TestDate_JSON(t *testing.T) {
	h := Holiday{Date: NewDate(2022, time.June, 20), Description: "Juneteenth"}
	b, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"date":"2022-06-20","description":"Juneteenth"}` {
		t.Errorf("got %s", b)
	}

	var back Holiday
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != h {
		t.Errorf("got %+v, want %+v", back, h)
	}

	if err := json.Unmarshal([]byte(`{"date":"2022-06-31"}`), &back); err == nil {
		t.Error("expected error for invalid date")
	}
}
