package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

type client struct {
	conn *websocket.Conn
	send chan *entity.MarkerEvent
}

// Server - fans marker events out to every connected map client.
type Server struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

func New(logger *slog.Logger) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Publish - queues the event for every client, a client with a full queue is dropped.
func (that *Server) Publish(event *entity.MarkerEvent) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for c := range that.clients {
		select {
		case c.send <- event:
		default:
			that.logger.Warn("client is too slow, dropping", "remote", c.conn.RemoteAddr().String())
			that.removeLocked(c)
		}
	}
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan *entity.MarkerEvent, sendBufferSize),
	}

	if !that.add(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	log.Debug("client connected", "remote", conn.RemoteAddr().String())

	go that.writeLoop(c)
	go that.readLoop(c)
}

// Close - disconnects every client and refuses new ones.
func (that *Server) Close(_ context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	for c := range that.clients {
		that.removeLocked(c)
	}
}

func (that *Server) ClientsCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.clients)
}

func (that *Server) add(c *client) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return false
	}

	that.clients[c] = struct{}{}

	return true
}

func (that *Server) remove(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.removeLocked(c)
}

func (that *Server) removeLocked(c *client) {
	if _, ok := that.clients[c]; !ok {
		return
	}

	delete(that.clients, c)
	close(c.send)
}

// readLoop - clients only listen, reading keeps pongs and close frames flowing.
func (that *Server) readLoop(c *client) {
	defer func() {
		that.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.Debug("unexpected close", "error", err)
			}
			return
		}
	}
}

func (that *Server) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				that.logger.Debug("failed to write event", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
