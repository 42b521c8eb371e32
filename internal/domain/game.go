package domain

// Game is the authoritative game state owned by the surrounding
// application. The engine only ever works on clones of its board.
type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
}

func NewGame(rows, cols int) *Game {
	return &Game{
		Board:         NewBoard(rows, cols),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}
}

func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	if !g.Board.IsValidMove(column) {
		if column >= 0 && column < g.Board.Cols {
			return -1, ErrColumnFull
		}
		return -1, ErrInvalidMove
	}

	row, err := g.Board.Drop(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	if CheckWinAt(g.Board, row, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
