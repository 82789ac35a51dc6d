// Package api serves holiday queries over HTTP and WebSocket.
package api

import (
	"fmt"
	"time"

	"market-holidays/internal/holidays"
	"market-holidays/internal/metrics"
	"market-holidays/internal/model"
)

// Service resolves exchange codes to lookups and runs the queries shared by
// the REST and WebSocket surfaces.
type Service struct {
	reg     *holidays.Registry
	def     model.Exchange
	metrics *metrics.Metrics
}

// NewService builds a Service. def is used when a request names no
// exchange; if def is also empty such requests get the unbound lookup.
func NewService(reg *holidays.Registry, def model.Exchange, m *metrics.Metrics) *Service {
	return &Service{reg: reg, def: def, metrics: m}
}

// Resolve maps a request's exchange parameter to a lookup.
func (s *Service) Resolve(code string) (*holidays.Lookup, error) {
	if code == "" {
		return s.reg.Lookup(s.def)
	}
	ex, err := model.ParseExchange(code)
	if err != nil {
		return nil, err
	}
	return s.reg.Lookup(ex)
}

// Check answers "is d a holiday" for the given exchange.
func (s *Service) Check(code string, d model.Date) (CheckResponse, error) {
	start := time.Now()
	l, err := s.Resolve(code)
	if err != nil {
		return CheckResponse{}, err
	}
	resp := CheckResponse{
		Exchange:   exchangeCode(l),
		Date:       d,
		Holiday:    l.IsDateHoliday(d),
		TradingDay: l.IsTradingDay(d),
	}
	if desc, ok := l.Description(d); ok {
		resp.Description = desc
	}
	s.metrics.ObserveQuery(resp.Exchange, "check", start)
	if resp.Holiday {
		s.metrics.ObserveHit(resp.Exchange)
	}
	return resp, nil
}

// Holidays lists one year, or every year when year is nil.
func (s *Service) Holidays(code string, year *int) (HolidaysResponse, error) {
	start := time.Now()
	l, err := s.Resolve(code)
	if err != nil {
		return HolidaysResponse{}, err
	}
	resp := HolidaysResponse{Exchange: exchangeCode(l), Year: year}
	op := "all"
	if year != nil {
		op = "year"
		resp.Holidays = l.HolidaysByYear(*year)
	} else {
		resp.Holidays = l.Holidays()
	}
	resp.Count = len(resp.Holidays)
	s.metrics.ObserveQuery(resp.Exchange, op, start)
	return resp, nil
}

// NextTradingDay finds the first trading day after d.
func (s *Service) NextTradingDay(code string, d model.Date) (NextTradingDayResponse, error) {
	start := time.Now()
	l, err := s.Resolve(code)
	if err != nil {
		return NextTradingDayResponse{}, err
	}
	next, ok := l.NextTradingDay(d)
	if !ok {
		return NextTradingDayResponse{}, fmt.Errorf("no trading day within range after %s", d)
	}
	s.metrics.ObserveQuery(exchangeCode(l), "next", start)
	return NextTradingDayResponse{Exchange: exchangeCode(l), From: d, Next: next}, nil
}

// Exchanges describes every registered calendar.
func (s *Service) Exchanges() []ExchangeInfo {
	out := make([]ExchangeInfo, 0)
	for _, ex := range s.reg.Exchanges() {
		cal, _ := s.reg.Calendar(ex)
		out = append(out, ExchangeInfo{
			Code:  string(ex),
			Name:  ex.Name(),
			Years: cal.Years(),
			Count: cal.Len(),
		})
	}
	return out
}

func exchangeCode(l *holidays.Lookup) string {
	ex, _ := l.Exchange()
	return string(ex)
}
