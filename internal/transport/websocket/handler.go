package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
	"github.com/abdelrahman470/Connect-4-Game/internal/service/game"
)

// Handler manages WebSocket dependencies
type Handler struct {
	Sessions     *game.SessionManager
	Upgrader     websocket.Upgrader
	PingInterval time.Duration
}

// NewHandler creates a new WebSocket handler with dependencies
func NewHandler(sessions *game.SessionManager) *Handler {
	return &Handler{
		Sessions: sessions,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		PingInterval: 30 * time.Second,
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(newClient(conn))
}

// handleConnection manages the lifecycle of a single WebSocket
// connection. Each connection plays at most one game at a time. All
// writes go through the client wrapper so the pinger and the reply
// path never write to the socket at the same time.
func (h *Handler) handleConnection(c *client) {
	// Set read deadline to detect stale connections
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	// Keep-alive pinger
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(h.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := c.Ping(); err != nil {
					return
				}
			}
		}
	}()

	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	var session *game.Session

	defer func() {
		close(done)
		if session != nil {
			h.Sessions.RemoveSession(session.GameID)
		}
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.sendError(c, "Invalid message format")
			continue
		}

		switch msg.Type {
		case "start":
			if session != nil {
				h.Sessions.RemoveSession(session.GameID)
			}
			session = h.Sessions.CreateSession(msg.Difficulty)
			h.send(c, ServerMessage{
				Type:          "game_started",
				GameID:        session.GameID,
				Board:         session.Game.Board.Cells,
				CurrentPlayer: session.Game.CurrentPlayer,
				Status:        session.Game.Status,
				BotColumn:     -1,
			})

		case "move":
			if session == nil {
				h.sendError(c, "No active game, send start first")
				continue
			}
			if msg.Column == nil {
				h.sendError(c, "Move message is missing a column")
				continue
			}

			outcome, err := session.HumanMove(*msg.Column)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInvalidMove), errors.Is(err, domain.ErrColumnFull):
					// recoverable, the client just picks another column
					h.sendError(c, err.Error())
				case errors.Is(err, domain.ErrGameOver):
					h.sendError(c, "Game is already over, send start for a new one")
				default:
					log.Printf("[WS] Move failed in session %s: %v", session.GameID, err)
					h.sendError(c, "Move failed")
				}
				continue
			}

			h.send(c, ServerMessage{
				Type:          "state",
				GameID:        session.GameID,
				Board:         session.Game.Board.Cells,
				CurrentPlayer: session.Game.CurrentPlayer,
				Status:        outcome.Status,
				Winner:        outcome.Winner,
				BotColumn:     outcome.BotColumn,
			})

		default:
			h.sendError(c, "Unknown message type")
		}
	}
}

func (h *Handler) send(c *client, msg ServerMessage) {
	if err := c.SendJSON(msg); err != nil {
		log.Printf("[WS] Write error: %v", err)
	}
}

func (h *Handler) sendError(c *client, message string) {
	h.send(c, ServerMessage{Type: "error", Message: message, BotColumn: -1})
}
