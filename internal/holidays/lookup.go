package holidays

import "market-holidays/internal/model"

// maxTradingDayScan bounds NextTradingDay. No exchange in the tables closes
// for anywhere near this many consecutive days.
const maxTradingDayScan = 30

// Lookup is the query facade over at most one exchange calendar. A Lookup
// with no calendar (including a nil *Lookup) answers every query with an
// empty list or false instead of failing.
type Lookup struct {
	cal *Calendar
}

// NewLookup binds a facade to cal. cal may be nil.
func NewLookup(cal *Calendar) *Lookup {
	return &Lookup{cal: cal}
}

// Bound reports whether an exchange is configured.
func (l *Lookup) Bound() bool {
	return l != nil && l.cal != nil
}

// Exchange returns the configured exchange, if any.
func (l *Lookup) Exchange() (model.Exchange, bool) {
	if !l.Bound() {
		return "", false
	}
	return l.cal.Exchange(), true
}

// Holidays returns every holiday of the configured exchange, ascending.
func (l *Lookup) Holidays() []model.Holiday {
	if !l.Bound() {
		return []model.Holiday{}
	}
	return l.cal.All()
}

// HolidaysByYear returns the configured exchange's holidays in year.
func (l *Lookup) HolidaysByYear(year int) []model.Holiday {
	if !l.Bound() {
		return []model.Holiday{}
	}
	return l.cal.InYear(year)
}

// IsDateHoliday reports whether d is a holiday on the configured exchange.
func (l *Lookup) IsDateHoliday(d model.Date) bool {
	if !l.Bound() {
		return false
	}
	return l.cal.IsHoliday(d)
}

// Description returns the holiday description for d, if d is a holiday.
func (l *Lookup) Description(d model.Date) (string, bool) {
	if !l.Bound() {
		return "", false
	}
	return l.cal.Describe(d)
}

// IsTradingDay returns true if d is Mon-Fri and not a holiday. Without an
// exchange only the weekday test applies.
func (l *Lookup) IsTradingDay(d model.Date) bool {
	return !d.IsWeekend() && !l.IsDateHoliday(d)
}

// NextTradingDay returns the first trading day strictly after d. The second
// result is false if none was found within maxTradingDayScan days.
func (l *Lookup) NextTradingDay(d model.Date) (model.Date, bool) {
	next := d.AddDays(1)
	for i := 0; i < maxTradingDayScan; i++ {
		if l.IsTradingDay(next) {
			return next, true
		}
		next = next.AddDays(1)
	}
	return model.Date{}, false
}
