package websocket

import (
	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
)

// ClientMessage is what the browser sends: "start" to begin a game
// against the bot, "move" to drop a piece. Column is a pointer so a
// move message that omits it can be told apart from column 0.
type ClientMessage struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
	Column     *int   `json:"column,omitempty"`
}

// ServerMessage is the single envelope sent back for every event.
type ServerMessage struct {
	Type          string              `json:"type"`
	GameID        string              `json:"game_id,omitempty"`
	Board         [][]domain.PlayerID `json:"board,omitempty"`
	CurrentPlayer domain.PlayerID     `json:"current_player,omitempty"`
	Status        domain.GameStatus   `json:"status,omitempty"`
	Winner        domain.PlayerID     `json:"winner,omitempty"`
	BotColumn     int                 `json:"bot_column"`
	Message       string              `json:"message,omitempty"`
}
