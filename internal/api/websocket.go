package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/FocuswithJustin/DailyBread/core/bible"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message types sent to WebSocket clients.
const (
	MessagePassages = "passages"
	MessageError    = "error"
)

// WSRequest is a lookup sent by a WebSocket client.
type WSRequest struct {
	ID     string `json:"id,omitempty"` // Echoed in the response
	Query  string `json:"query"`
	Strict bool   `json:"strict,omitempty"`
}

// WSResponse answers one WSRequest.
type WSResponse struct {
	Type      string            `json:"type"`
	ID        string            `json:"id,omitempty"`
	Query     string            `json:"query,omitempty"`
	Passages  []passage.Passage `json:"passages,omitempty"`
	Error     *APIError         `json:"error,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// Client is one WebSocket connection.
type Client struct {
	hub     *Hub
	server  *Server
	conn    *websocket.Conn
	send    chan []byte
	limiter *rate.Limiter
	ctx     context.Context
	cancel  context.CancelFunc
}

// Hub tracks open WebSocket connections.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	closed  bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) add(c *Client) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	logging.WebSocketEvent("client_connected", n)
	return true
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	logging.WebSocketEvent("client_disconnected", n)
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for c := range h.clients {
		c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		c.conn.Close()
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		logging.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(s.cfg.WebSocket.MaxMessageSize)

	// The request context ends when this handler returns; keep its values only.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	c := &Client{
		hub:     s.hub,
		server:  s,
		conn:    conn,
		send:    make(chan []byte, 64),
		limiter: newMessageLimiter(s.cfg.WebSocket.MaxMessageRate),
		ctx:     ctx,
		cancel:  cancel,
	}
	if !s.hub.add(c) {
		cancel()
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump answers requests in arrival order. It is the only sender on
// c.send and closes it on exit.
func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.cancel()
		close(c.send)
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("websocket unexpected close", "error", err)
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		if !c.limiter.Allow() {
			c.queue(errorResponse("", CodeRateLimited, "Message rate limit exceeded"))
			continue
		}

		var req WSRequest
		if err := json.Unmarshal(data, &req); err != nil {
			c.queue(errorResponse("", CodeBadRequest, "Message must be a JSON object with a query"))
			continue
		}
		c.queue(c.server.answer(c.ctx, req))
	}
}

func (c *Client) queue(resp WSResponse) {
	resp.Timestamp = timestamp()
	data, err := json.Marshal(resp)
	if err != nil {
		logging.Error("failed to marshal websocket response", "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		logging.Warn("websocket send buffer full, dropping response", "id", resp.ID)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// answer resolves one WebSocket request under its own request ID.
func (s *Server) answer(ctx context.Context, req WSRequest) WSResponse {
	q, err := ValidateQuery(req.Query)
	if err != nil {
		return errorResponse(req.ID, CodeBadRequest, err.Error())
	}
	ctx = logging.WithRequestID(ctx, logging.NewRequestID())

	passages, err := s.bible.Get(ctx, bible.Text(q), bible.GetOptions{Strict: req.Strict})
	if err != nil {
		_, code := errorCode(err)
		return errorResponse(req.ID, code, err.Error())
	}
	if passages == nil {
		passages = []passage.Passage{}
	}
	return WSResponse{Type: MessagePassages, ID: req.ID, Query: q, Passages: passages}
}

func errorResponse(id, code, message string) WSResponse {
	return WSResponse{Type: MessageError, ID: id, Error: &APIError{Code: code, Message: message}}
}
