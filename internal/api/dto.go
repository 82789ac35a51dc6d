package api

import "market-holidays/internal/model"

// ExchangeInfo is one entry of GET /api/exchanges.
type ExchangeInfo struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Years []int  `json:"years"`
	Count int    `json:"count"`
}

// HolidaysResponse is returned by GET /api/holidays.
type HolidaysResponse struct {
	Exchange string          `json:"exchange"`
	Year     *int            `json:"year,omitempty"`
	Count    int             `json:"count"`
	Holidays []model.Holiday `json:"holidays"`
}

// CheckResponse is returned by GET /api/holidays/check.
type CheckResponse struct {
	Exchange    string     `json:"exchange"`
	Date        model.Date `json:"date"`
	Holiday     bool       `json:"holiday"`
	TradingDay  bool       `json:"trading_day"`
	Description string     `json:"description,omitempty"`
}

// NextTradingDayResponse is returned by GET /api/holidays/next-trading-day.
type NextTradingDayResponse struct {
	Exchange string     `json:"exchange"`
	From     model.Date `json:"from"`
	Next     model.Date `json:"next"`
}

type errorResponse struct {
	Error string `json:"error"`
}
