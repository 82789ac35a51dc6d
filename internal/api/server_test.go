package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market-holidays/internal/export"
	"market-holidays/internal/holidays"
	"market-holidays/internal/metrics"
	"market-holidays/internal/model"

	"github.com/pquerna/otp/totp"
	"github.com/prometheus/client_golang/prometheus"
)

const testTOTPSecret = "JBSWY3DPEHPK3PXP"

type countingExporter struct{ calls int }

func (c *countingExporter) Name() string { return "stub" }

func (c *countingExporter) Export(ctx context.Context, reg *holidays.Registry) (int, error) {
	c.calls++
	return 1, nil
}

func newTestServer(t *testing.T, mutate func(*Options)) *httptest.Server {
	t.Helper()
	promReg := prometheus.NewRegistry()
	opts := Options{
		Registry: holidays.DefaultRegistry(),
		Metrics:  metrics.NewMetrics(promReg),
		Gatherer: promReg,
	}
	if mutate != nil {
		mutate(&opts)
	}
	srv := httptest.NewServer(NewServer(opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestExchanges(t *testing.T) {
	srv := newTestServer(t, nil)

	var got []ExchangeInfo
	resp := getJSON(t, srv.URL+"/api/exchanges", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if len(got) != 5 {
		t.Fatalf("got %d exchanges, want 5", len(got))
	}
	if got[0].Code != "NYSE" || got[0].Count != 75 || len(got[0].Years) != 7 {
		t.Errorf("first exchange = %+v", got[0])
	}
}

func TestHolidays_ByYear(t *testing.T) {
	srv := newTestServer(t, nil)

	var got HolidaysResponse
	resp := getJSON(t, srv.URL+"/api/holidays?exchange=nyse&year=2020", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if got.Exchange != "NYSE" || got.Year == nil || *got.Year != 2020 {
		t.Errorf("header fields = %+v", got)
	}
	if got.Count != 10 || len(got.Holidays) != 10 {
		t.Fatalf("count = %d/%d, want 10", got.Count, len(got.Holidays))
	}
	if got.Holidays[0].Date != model.NewDate(2020, time.January, 1) {
		t.Errorf("first = %s", got.Holidays[0].Date)
	}
}

func TestHolidays_AllAndEmptyYear(t *testing.T) {
	srv := newTestServer(t, nil)

	var all HolidaysResponse
	getJSON(t, srv.URL+"/api/holidays?exchange=JPX", &all)
	if all.Count != 144 {
		t.Errorf("JPX all = %d, want 144", all.Count)
	}

	var empty HolidaysResponse
	resp := getJSON(t, srv.URL+"/api/holidays?exchange=JPX&year=2019", &empty)
	if resp.StatusCode != http.StatusOK || empty.Count != 0 || empty.Holidays == nil {
		t.Errorf("2019: status=%d resp=%+v", resp.StatusCode, empty)
	}
}

func TestHolidays_NoExchange(t *testing.T) {
	t.Run("unbound", func(t *testing.T) {
		srv := newTestServer(t, nil)
		var got HolidaysResponse
		getJSON(t, srv.URL+"/api/holidays?year=2020", &got)
		if got.Exchange != "" || got.Count != 0 {
			t.Errorf("got %+v, want empty unbound result", got)
		}

		var chk CheckResponse
		getJSON(t, srv.URL+"/api/holidays/check?date=2020-01-01", &chk)
		if chk.Holiday {
			t.Error("unbound check should be false")
		}
	})

	t.Run("default exchange", func(t *testing.T) {
		srv := newTestServer(t, func(o *Options) { o.DefaultExchange = model.B3 })
		var got HolidaysResponse
		getJSON(t, srv.URL+"/api/holidays?year=2021", &got)
		if got.Exchange != "B3" || got.Count != 15 {
			t.Errorf("got %s/%d, want B3/15", got.Exchange, got.Count)
		}
	})
}

func TestHolidays_BadInput(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{
		"/api/holidays?exchange=LSE",
		"/api/holidays?exchange=NYSE&year=twenty",
		"/api/holidays/check?exchange=NYSE&date=2020-02-30",
		"/api/holidays/check?exchange=NYSE",
		"/api/holidays/next-trading-day?exchange=NYSE&date=bad",
	} {
		var e errorResponse
		resp := getJSON(t, srv.URL+path, &e)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", path, resp.StatusCode)
		}
		if e.Error == "" {
			t.Errorf("%s: missing error message", path)
		}
	}
}

func TestCheck(t *testing.T) {
	srv := newTestServer(t, nil)

	var hol CheckResponse
	getJSON(t, srv.URL+"/api/holidays/check?exchange=NYSE&date=2020-01-01", &hol)
	if !hol.Holiday || hol.TradingDay || hol.Description != "New year" {
		t.Errorf("2020-01-01 = %+v", hol)
	}

	var not CheckResponse
	getJSON(t, srv.URL+"/api/holidays/check?exchange=NYSE&date=2020-12-26", &not)
	if not.Holiday || not.Description != "" {
		t.Errorf("2020-12-26 = %+v", not)
	}
	if not.TradingDay {
		t.Error("2020-12-26 is a Saturday, not a trading day")
	}
}

func TestNextTradingDay(t *testing.T) {
	srv := newTestServer(t, nil)

	var got NextTradingDayResponse
	getJSON(t, srv.URL+"/api/holidays/next-trading-day?exchange=NYSE&date=2020-12-24", &got)
	if got.Next != model.NewDate(2020, time.December, 28) {
		t.Errorf("next = %s, want 2020-12-28", got.Next)
	}
}

func TestMethodAndCORS(t *testing.T) {
	srv := newTestServer(t, func(o *Options) { o.CORSAllowOrigin = "https://example.test" })

	resp, err := http.Post(srv.URL+"/api/holidays", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status %d, want 405", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/holidays", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("OPTIONS status %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://example.test" {
		t.Errorf("CORS origin = %q", got)
	}
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := getJSON(t, srv.URL+"/api/exchanges", nil)
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/exchanges", nil)
	req.Header.Set(RequestIDHeader, "caller-42")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != "caller-42" {
		t.Errorf("request id = %q, want caller-42", got)
	}
}

func postExport(t *testing.T, url, code string) int {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, url+"/api/admin/export", nil)
	if code != "" {
		req.Header.Set(TOTPHeader, code)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestAdminExport(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		srv := newTestServer(t, nil)
		if code := postExport(t, srv.URL, "123456"); code != http.StatusNotFound {
			t.Errorf("status %d, want 404", code)
		}
	})

	stub := &countingExporter{}
	srv := newTestServer(t, func(o *Options) {
		o.AdminTOTPSecret = testTOTPSecret
		o.Exports = export.NewRunner(o.Metrics, nil, stub)
	})

	if code := postExport(t, srv.URL, ""); code != http.StatusUnauthorized {
		t.Errorf("missing code: status %d, want 401", code)
	}
	if code := postExport(t, srv.URL, "000000x"); code != http.StatusUnauthorized {
		t.Errorf("bad code: status %d, want 401", code)
	}
	if stub.calls != 0 {
		t.Fatal("exporter ran without a valid code")
	}

	valid, err := totp.GenerateCode(testTOTPSecret, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if code := postExport(t, srv.URL, valid); code != http.StatusOK {
		t.Errorf("valid code: status %d, want 200", code)
	}
	if stub.calls != 1 {
		t.Errorf("exporter calls = %d, want 1", stub.calls)
	}
}

func TestAdminExport_NoTargets(t *testing.T) {
	srv := newTestServer(t, func(o *Options) { o.AdminTOTPSecret = testTOTPSecret })
	valid, _ := totp.GenerateCode(testTOTPSecret, time.Now())
	if code := postExport(t, srv.URL, valid); code != http.StatusServiceUnavailable {
		t.Errorf("status %d, want 503", code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, nil)

	var health struct {
		Status string `json:"status"`
	}
	resp := getJSON(t, srv.URL+"/healthz", &health)
	if resp.StatusCode != http.StatusOK || health.Status != "healthy" {
		t.Errorf("healthz: %d %+v", resp.StatusCode, health)
	}

	getJSON(t, srv.URL+"/api/holidays/check?exchange=NYSE&date=2020-01-01", nil)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `holidays_queries_total{exchange="NYSE",op="check"} 1`) {
		t.Errorf("metrics output missing query counter:\n%s", body)
	}
}
