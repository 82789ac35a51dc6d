package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"market-holidays/internal/logger"
	"market-holidays/internal/model"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 30 * time.Second
	wsReadLimit  = 4096
	wsSendBuffer = 64
)

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	EnableCompression: true,
}

// WSRequest is one query frame sent by a WebSocket client.
type WSRequest struct {
	ID       string `json:"id"`
	Op       string `json:"op"` // check | year | all | next | exchanges
	Exchange string `json:"exchange"`
	Date     string `json:"date,omitempty"`
	Year     int    `json:"year,omitempty"`
}

// WSResponse answers exactly one WSRequest, echoing its ID.
type WSResponse struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// wsClient is a single WebSocket peer.
type wsClient struct {
	conn  *websocket.Conn
	send  chan []byte
	svc   *Service
	reqID string
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("[ws] upgrade error", append([]any{"error", err}, logger.LogAttrs(r.Context())...)...)
		return
	}

	c := &wsClient{
		conn:  conn,
		send:  make(chan []byte, wsSendBuffer),
		svc:   s.svc,
		reqID: logger.RequestID(r.Context()),
	}
	if s.metrics != nil {
		s.metrics.WSClients.Inc()
	}
	slog.Debug("[ws] client connected", "request_id", c.reqID)

	go c.writePump()
	c.readPump(s)
}

// readPump handles query frames until the peer goes away. Each frame gets a
// response queued on send; slow readers are disconnected rather than
// buffering without bound.
func (c *wsClient) readPump(s *Server) {
	defer func() {
		close(c.send)
		if s.metrics != nil {
			s.metrics.WSClients.Dec()
		}
		slog.Debug("[ws] client disconnected", "request_id", c.reqID)
	}()

	c.conn.SetReadLimit(wsReadLimit)
	c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if s.metrics != nil {
			s.metrics.WSMessages.Inc()
		}

		out, _ := json.Marshal(c.svc.handleWSFrame(msg))
		select {
		case c.send <- out:
		default:
			slog.Warn("[ws] send buffer full, dropping client", "request_id", c.reqID)
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleWSFrame decodes and answers one query frame. Every failure becomes
// an ok=false response; the connection stays open.
func (s *Service) handleWSFrame(msg []byte) WSResponse {
	var req WSRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return WSResponse{Error: "invalid JSON"}
	}

	result, err := s.dispatch(req)
	if err != nil {
		return WSResponse{ID: req.ID, Error: err.Error()}
	}
	return WSResponse{ID: req.ID, OK: true, Result: result}
}

func (s *Service) dispatch(req WSRequest) (any, error) {
	switch req.Op {
	case "check":
		d, err := model.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		return s.Check(req.Exchange, d)
	case "year":
		year := req.Year
		return s.Holidays(req.Exchange, &year)
	case "all":
		return s.Holidays(req.Exchange, nil)
	case "next":
		d, err := model.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		return s.NextTradingDay(req.Exchange, d)
	case "exchanges":
		return s.Exchanges(), nil
	default:
		return nil, fmt.Errorf("unknown op %q", req.Op)
	}
}
