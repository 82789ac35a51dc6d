package api

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialWS(t *testing.T, httpURL string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(httpURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, req any) WSResponse {
	t.Helper()
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("write: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp WSResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func TestWS_Queries(t *testing.T) {
	srv := newTestServer(t, nil)
	conn := dialWS(t, srv.URL)

	resp := roundTrip(t, conn, WSRequest{ID: "1", Op: "check", Exchange: "SSE", Date: "2024-02-10"})
	if !resp.OK || resp.ID != "1" {
		t.Fatalf("check response = %+v", resp)
	}
	raw, _ := json.Marshal(resp.Result)
	var chk CheckResponse
	if err := json.Unmarshal(raw, &chk); err != nil {
		t.Fatal(err)
	}
	if !chk.Holiday || chk.Exchange != "SSE" {
		t.Errorf("check result = %+v", chk)
	}

	resp = roundTrip(t, conn, WSRequest{ID: "2", Op: "year", Exchange: "SSE", Year: 2025})
	raw, _ = json.Marshal(resp.Result)
	var year HolidaysResponse
	if err := json.Unmarshal(raw, &year); err != nil {
		t.Fatal(err)
	}
	if !resp.OK || year.Count != 16 {
		t.Errorf("year result ok=%v count=%d, want 16", resp.OK, year.Count)
	}
}

func TestWS_ErrorsKeepConnection(t *testing.T) {
	srv := newTestServer(t, nil)
	conn := dialWS(t, srv.URL)

	bad := []WSRequest{
		{ID: "a", Op: "check", Exchange: "NYSE", Date: "nope"},
		{ID: "b", Op: "year", Exchange: "LSE", Year: 2020},
		{ID: "c", Op: "teleport"},
	}
	for _, req := range bad {
		resp := roundTrip(t, conn, req)
		if resp.OK || resp.Error == "" || resp.ID != req.ID {
			t.Errorf("%s: response = %+v, want error", req.ID, resp)
		}
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	var resp WSResponse
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.OK || resp.Error != "invalid JSON" {
		t.Errorf("malformed frame response = %+v", resp)
	}

	ok := roundTrip(t, conn, WSRequest{ID: "d", Op: "exchanges"})
	if !ok.OK {
		t.Errorf("connection should still serve queries, got %+v", ok)
	}
}
