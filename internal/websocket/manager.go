// Package websocket manages dashboard browser connections and pushes
// refreshed snapshots to them.
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 8
)

// Client is one connected dashboard page. The send channel is never
// closed; teardown is signalled through done, so a concurrent Broadcast
// can never hit a closed channel.
type Client struct {
	ID   string
	conn *gws.Conn
	send chan []byte
	done chan struct{}
}

// Manager tracks connected clients and broadcasts JSON frames to them.
type Manager struct {
	logger   *zap.Logger
	upgrader gws.Upgrader

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
		upgrader: gws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard is served from the same origin; cross-origin
			// pages are fine for a local simulation.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*Client),
	}
}

// Serve upgrades the request and pumps frames until the peer goes away.
// It blocks for the lifetime of the connection.
func (m *Manager) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}

	m.mu.Lock()
	m.clients[client.ID] = client
	m.mu.Unlock()
	m.logger.Info("dashboard client connected",
		zap.String("clientID", client.ID),
		zap.String("remote", conn.RemoteAddr().String()))

	go m.writePump(client)
	m.readPump(client)
	return nil
}

// Count reports the number of connected clients.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// Broadcast marshals v and queues it to every connected client. Clients
// whose send buffer is full are dropped rather than allowed to stall
// the refresh cycle; clients already torn down are skipped.
func (m *Manager) Broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Error("marshal broadcast frame", zap.Error(err))
		return
	}

	m.mu.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	m.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		case <-c.done:
			// Disconnected between the snapshot and the send.
		default:
			m.logger.Warn("dropping slow dashboard client", zap.String("clientID", c.ID))
			m.remove(c)
		}
	}
}

// Close disconnects every client.
func (m *Manager) Close() {
	m.mu.Lock()
	clients := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	m.clients = make(map[string]*Client)
	m.mu.Unlock()

	for _, c := range clients {
		close(c.done)
	}
}

// remove drops the client from the registry. Only the caller that wins
// the map delete closes done, so concurrent removes are safe.
func (m *Manager) remove(c *Client) {
	m.mu.Lock()
	_, ok := m.clients[c.ID]
	if ok {
		delete(m.clients, c.ID)
	}
	m.mu.Unlock()

	if ok {
		close(c.done)
	}
}

func (m *Manager) readPump(c *Client) {
	defer func() {
		m.remove(c)
		c.conn.Close()
		m.logger.Info("dashboard client disconnected", zap.String("clientID", c.ID))
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The dashboard never sends application messages; reads only drive
	// pong handling and close detection.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (m *Manager) writePump(c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(gws.TextMessage, data); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(gws.CloseMessage, []byte{})
			return
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(gws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
