package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"market-holidays/internal/api"
)

func runCLI(t *testing.T, def string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, def, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		def      string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"holiday", "", []string{"-exchange", "nyse", "-date", "2020-01-01"}, 0, "is a NYSE holiday: New year"},
		{"trading day", "", []string{"-exchange", "NYSE", "-date", "2020-01-02"}, 0, "is a trading day"},
		{"weekend", "", []string{"-exchange", "NYSE", "-date", "2020-01-04"}, 0, "is a weekend"},
		{"next", "", []string{"-exchange", "NYSE", "-date", "2020-12-24", "-next"}, 0, "2020-12-28"},
		{"year listing", "", []string{"-exchange", "B3", "-year", "2024"}, 0, "13 holidays"},
		{"default exchange", "CME", []string{"-year", "2020"}, 0, "10 holidays"},
		{"unbound", "", []string{"-year", "2020"}, 0, "no exchange selected"},
		{"exchanges", "", []string{"-exchanges"}, 0, "Japan Exchange Group"},
		{"unknown exchange", "", []string{"-exchange", "LSE"}, 2, ""},
		{"bad date", "", []string{"-exchange", "NYSE", "-date", "2020-13-01"}, 2, ""},
		{"bad flag", "", []string{"-nope"}, 2, ""},
		{"next without date", "", []string{"-exchange", "NYSE", "-next"}, 2, ""},
		{"exchanges span", "", []string{"-exchanges"}, 0, "2020-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCLI(t, tt.def, tt.args...)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (out=%q)", code, tt.wantCode, out)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("output %q does not contain %q", out, tt.wantOut)
			}
		})
	}
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runCLI(t, "", "-exchange", "SSE", "-year", "2026", "-json")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var resp api.HolidaysResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if resp.Exchange != "SSE" || resp.Count != 16 {
		t.Errorf("got %s/%d, want SSE/16", resp.Exchange, resp.Count)
	}
}

func TestYearSpan(t *testing.T) {
	tests := []struct {
		years []int
		want  string
	}{
		{nil, "-"},
		{[]int{2024}, "2024"},
		{[]int{2020, 2021, 2026}, "2020-2026"},
	}
	for _, tt := range tests {
		if got := yearSpan(tt.years); got != tt.want {
			t.Errorf("yearSpan(%v) = %q, want %q", tt.years, got, tt.want)
		}
	}
}
