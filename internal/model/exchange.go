package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownExchange is returned for exchange codes with no calendar.
var ErrUnknownExchange = errors.New("unknown exchange")

// Exchange identifies a stock exchange by its short code.
type Exchange string

const (
	NYSE Exchange = "NYSE" // New York Stock Exchange
	CME  Exchange = "CME"  // Chicago Mercantile Exchange
	B3   Exchange = "B3"   // B3 (Sao Paulo), formerly BM&F-BOVESPA
	SSE  Exchange = "SSE"  // Shanghai Stock Exchange
	JPX  Exchange = "JPX"  // Japan Exchange Group (Tokyo Stock Exchange)
)

var exchangeNames = map[Exchange]string{
	NYSE: "New York Stock Exchange",
	CME:  "Chicago Mercantile Exchange",
	B3:   "B3 - Brasil Bolsa Balcao (Sao Paulo)",
	SSE:  "Shanghai Stock Exchange",
	JPX:  "Japan Exchange Group - Tokyo Stock Exchange",
}

// Exchanges returns every known exchange in a fixed display order.
func Exchanges() []Exchange {
	return []Exchange{NYSE, CME, B3, SSE, JPX}
}

// ParseExchange resolves a case-insensitive exchange code.
func ParseExchange(s string) (Exchange, error) {
	ex := Exchange(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := exchangeNames[ex]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownExchange, s)
	}
	return ex, nil
}

// Name returns the exchange's display name, or the code if unknown.
func (e Exchange) Name() string {
	if n, ok := exchangeNames[e]; ok {
		return n
	}
	return string(e)
}

func (e Exchange) String() string { return string(e) }
