package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"market-holidays/config"
	"market-holidays/internal/api"
	"market-holidays/internal/holidays"
	"market-holidays/internal/model"
)

func main() {
	cfg := config.Load()
	os.Exit(run(os.Args[1:], cfg.DefaultExchange, os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, defaultExchange string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("holidays", flag.ContinueOnError)
	fs.SetOutput(stderr)
	exchange := fs.String("exchange", defaultExchange, "exchange code: NYSE, CME, B3, SSE or JPX")
	year := fs.Int("year", 0, "list holidays for this year only")
	date := fs.String("date", "", "check a single date (YYYY-MM-DD)")
	next := fs.Bool("next", false, "with -date, print the next trading day after it")
	asJSON := fs.Bool("json", false, "print JSON instead of text")
	list := fs.Bool("exchanges", false, "list supported exchanges")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *next && *date == "" {
		fmt.Fprintln(stderr, "holidays: -next requires -date")
		return 2
	}

	svc := api.NewService(holidays.DefaultRegistry(), "", nil)
	out := output{w: stdout, json: *asJSON}

	if *list {
		return out.exchanges(svc.Exchanges())
	}

	if *date != "" {
		d, err := model.ParseDate(*date)
		if err != nil {
			fmt.Fprintln(stderr, "holidays:", err)
			return 2
		}
		if *next {
			resp, err := svc.NextTradingDay(*exchange, d)
			if err != nil {
				return fail(stderr, err)
			}
			return out.next(resp)
		}
		resp, err := svc.Check(*exchange, d)
		if err != nil {
			return fail(stderr, err)
		}
		return out.check(resp)
	}

	var yp *int
	if *year != 0 {
		yp = year
	}
	resp, err := svc.Holidays(*exchange, yp)
	if err != nil {
		return fail(stderr, err)
	}
	return out.holidays(resp)
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, "holidays:", err)
	if errors.Is(err, model.ErrUnknownExchange) {
		return 2
	}
	return 1
}

type output struct {
	w    io.Writer
	json bool
}

func (o output) encode(v any) int {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return 1
	}
	return 0
}

func (o output) exchanges(list []api.ExchangeInfo) int {
	if o.json {
		return o.encode(list)
	}
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d holidays\t%s\n", e.Code, e.Name, e.Count, yearSpan(e.Years))
	}
	tw.Flush()
	return 0
}

func (o output) holidays(resp api.HolidaysResponse) int {
	if o.json {
		return o.encode(resp)
	}
	if resp.Exchange == "" {
		fmt.Fprintln(o.w, "no exchange selected; use -exchange")
		return 0
	}
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, h := range resp.Holidays {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Date, h.Date.Weekday().String()[:3], h.Description)
	}
	tw.Flush()
	fmt.Fprintf(o.w, "%d holidays\n", resp.Count)
	return 0
}

func (o output) check(resp api.CheckResponse) int {
	if o.json {
		return o.encode(resp)
	}
	switch {
	case resp.Holiday:
		fmt.Fprintf(o.w, "%s is a %s holiday: %s\n", resp.Date, resp.Exchange, resp.Description)
	case resp.TradingDay:
		fmt.Fprintf(o.w, "%s is a trading day\n", resp.Date)
	default:
		fmt.Fprintf(o.w, "%s is a weekend\n", resp.Date)
	}
	return 0
}

func (o output) next(resp api.NextTradingDayResponse) int {
	if o.json {
		return o.encode(resp)
	}
	fmt.Fprintf(o.w, "%s\n", resp.Next)
	return 0
}

// yearSpan renders a sorted year list as "first-last", or "-" when empty.
func yearSpan(years []int) string {
	switch len(years) {
	case 0:
		return "-"
	case 1:
		return fmt.Sprint(years[0])
	}
	return fmt.Sprintf("%d-%d", years[0], years[len(years)-1])
}
