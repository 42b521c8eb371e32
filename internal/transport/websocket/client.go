package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// client wraps one connection with its write lock.
// The lock is CRITICAL because conn.WriteJSON is not thread-safe and the
// keep-alive pinger writes concurrently with the game replies.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn}
}

// SendJSON writes one JSON message under the per-connection write lock
func (c *client) SendJSON(msg ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(msg)
}

// Ping sends a keep-alive ping under the same write lock
func (c *client) Ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}
