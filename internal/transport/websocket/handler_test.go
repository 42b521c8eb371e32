package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"

	"github.com/abdelrahman470/Connect-4-Game/internal/config"
	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
	"github.com/abdelrahman470/Connect-4-Game/internal/service/game"
)

// newTestConn spins up the handler behind an httptest server and dials
// it. A non-zero pingInterval overrides the keep-alive period.
func newTestConn(t *testing.T, pingInterval time.Duration) *gws.Conn {
	t.Helper()

	cfg := &config.Config{
		Port:          "8080",
		Rows:          domain.DefaultRows,
		Columns:       domain.DefaultColumns,
		SearchDepth:   2,
		BotDifficulty: "hard",
	}
	h := NewHandler(game.NewSessionManager(cfg))
	if pingInterval > 0 {
		h.PingInterval = pingInterval
	}

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readServerMessage(t *testing.T, conn *gws.Conn) ServerMessage {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading server message: %v", err)
	}
	return msg
}

func countPieces(board [][]domain.PlayerID) int {
	count := 0
	for _, row := range board {
		for _, cell := range row {
			if cell != domain.Empty {
				count++
			}
		}
	}
	return count
}

func TestHandleWebSocketStartThenMove(t *testing.T) {
	conn := newTestConn(t, 0)

	if err := conn.WriteJSON(map[string]any{"type": "start", "difficulty": "hard"}); err != nil {
		t.Fatalf("sending start: %v", err)
	}

	started := readServerMessage(t, conn)
	if started.Type != "game_started" {
		t.Fatalf("reply type = %q, want game_started", started.Type)
	}
	if started.GameID == "" {
		t.Fatal("game_started carries no game_id")
	}
	if len(started.Board) != domain.DefaultRows {
		t.Fatalf("board has %d rows, want %d", len(started.Board), domain.DefaultRows)
	}
	if countPieces(started.Board) != 0 {
		t.Fatal("new game board is not empty")
	}
	if started.CurrentPlayer != domain.Player1 {
		t.Fatalf("current_player = %d, want %d", started.CurrentPlayer, domain.Player1)
	}
	if started.BotColumn != -1 {
		t.Fatalf("bot_column = %d, want -1 before any move", started.BotColumn)
	}

	if err := conn.WriteJSON(map[string]any{"type": "move", "column": 3}); err != nil {
		t.Fatalf("sending move: %v", err)
	}

	state := readServerMessage(t, conn)
	if state.Type != "state" {
		t.Fatalf("reply type = %q, want state", state.Type)
	}
	if state.GameID != started.GameID {
		t.Fatalf("state game_id = %q, want %q", state.GameID, started.GameID)
	}
	if state.Status != domain.StatusActive {
		t.Fatalf("status = %q, want %q after one exchange", state.Status, domain.StatusActive)
	}
	if state.BotColumn < 0 || state.BotColumn >= domain.DefaultColumns {
		t.Fatalf("bot replied with illegal column %d", state.BotColumn)
	}
	if got := countPieces(state.Board); got != 2 {
		t.Fatalf("board has %d pieces after one exchange, want 2", got)
	}
	if state.CurrentPlayer != domain.Player1 {
		t.Fatalf("current_player = %d after bot reply, want %d", state.CurrentPlayer, domain.Player1)
	}
}

func TestHandleWebSocketMoveBeforeStart(t *testing.T) {
	conn := newTestConn(t, 0)

	if err := conn.WriteJSON(map[string]any{"type": "move", "column": 3}); err != nil {
		t.Fatalf("sending move: %v", err)
	}

	reply := readServerMessage(t, conn)
	if reply.Type != "error" {
		t.Fatalf("reply type = %q, want error", reply.Type)
	}
	if reply.Message == "" {
		t.Fatal("error reply carries no message")
	}
}

func TestHandleWebSocketMoveWithoutColumn(t *testing.T) {
	conn := newTestConn(t, 0)

	if err := conn.WriteJSON(map[string]any{"type": "start"}); err != nil {
		t.Fatalf("sending start: %v", err)
	}
	readServerMessage(t, conn)

	// a move with no column must be rejected, not played as column 0
	if err := conn.WriteJSON(map[string]any{"type": "move"}); err != nil {
		t.Fatalf("sending move: %v", err)
	}

	reply := readServerMessage(t, conn)
	if reply.Type != "error" {
		t.Fatalf("reply type = %q, want error", reply.Type)
	}

	// the game must be untouched: the next legal move is still the first
	if err := conn.WriteJSON(map[string]any{"type": "move", "column": 0}); err != nil {
		t.Fatalf("sending move: %v", err)
	}
	state := readServerMessage(t, conn)
	if state.Type != "state" {
		t.Fatalf("reply type = %q, want state", state.Type)
	}
	if got := countPieces(state.Board); got != 2 {
		t.Fatalf("board has %d pieces, want 2 (no phantom move)", got)
	}
}

func TestHandleWebSocketRejectsOutOfRangeColumn(t *testing.T) {
	conn := newTestConn(t, 0)

	if err := conn.WriteJSON(map[string]any{"type": "start"}); err != nil {
		t.Fatalf("sending start: %v", err)
	}
	readServerMessage(t, conn)

	if err := conn.WriteJSON(map[string]any{"type": "move", "column": 42}); err != nil {
		t.Fatalf("sending move: %v", err)
	}

	if reply := readServerMessage(t, conn); reply.Type != "error" {
		t.Fatalf("reply type = %q, want error", reply.Type)
	}
}

func TestHandleWebSocketRejectsMalformedMessages(t *testing.T) {
	conn := newTestConn(t, 0)

	if err := conn.WriteMessage(gws.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("sending junk: %v", err)
	}
	if reply := readServerMessage(t, conn); reply.Type != "error" {
		t.Fatalf("junk reply type = %q, want error", reply.Type)
	}

	if err := conn.WriteJSON(map[string]any{"type": "rematch"}); err != nil {
		t.Fatalf("sending unknown type: %v", err)
	}
	if reply := readServerMessage(t, conn); reply.Type != "error" {
		t.Fatalf("unknown-type reply type = %q, want error", reply.Type)
	}
}

// The keep-alive pinger and the reply path write to the same socket
// from different goroutines; gorilla/websocket allows only one writer
// at a time, so both must go through the shared write lock. With a
// near-zero ping interval every reply races a ping, which crashes the
// handler if any write bypasses the lock.
func TestHandleWebSocketPingsDoNotRaceReplies(t *testing.T) {
	conn := newTestConn(t, time.Millisecond)

	for i := 0; i < 50; i++ {
		if err := conn.WriteJSON(map[string]any{"type": "start"}); err != nil {
			t.Fatalf("iteration %d: sending start: %v", i, err)
		}
		if reply := readServerMessage(t, conn); reply.Type != "game_started" {
			t.Fatalf("iteration %d: reply type = %q, want game_started", i, reply.Type)
		}
	}
}
