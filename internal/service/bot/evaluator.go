package bot

import (
	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
)

// Heuristic weights. These numbers define the bot's playing style and the
// tests pin them: the defensive penalty is deliberately smaller than the
// offensive three-in-a-row bonus so the bot keeps attacking instead of
// only reacting.
const (
	SCORE_FOUR_IN_ROW   = 100
	SCORE_THREE_IN_ROW  = 5
	SCORE_TWO_IN_ROW    = 2
	SCORE_OPP_THREE     = 4
	CENTER_PIECE_WEIGHT = 3
)

// ScoreWindow assigns a score to one set of four cells from the given
// player's perspective.
func ScoreWindow(window []domain.PlayerID, player domain.PlayerID) int {
	opponent := domain.Opponent(player)

	own, opp, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case player:
			own++
		case opponent:
			opp++
		default:
			empty++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += SCORE_FOUR_IN_ROW
	case own == 3 && empty == 1:
		score += SCORE_THREE_IN_ROW
	case own == 2 && empty == 2:
		score += SCORE_TWO_IN_ROW
	}

	// penalize windows the opponent is about to complete
	if opp == 3 && empty == 1 {
		score -= SCORE_OPP_THREE
	}

	return score
}

// Evaluate sums ScoreWindow over every 4-window on the board, plus a
// bonus for each of the player's pieces in the center column.
func Evaluate(b *domain.Board, player domain.PlayerID) int {
	score := 0

	// controlling the center is strategically better in connect four
	centerCol := b.Cols / 2
	for r := 0; r < b.Rows; r++ {
		if b.Cells[r][centerCol] == player {
			score += CENTER_PIECE_WEIGHT
		}
	}

	window := make([]domain.PlayerID, domain.ToWin)

	// horizontal windows
	for r := 0; r < b.Rows; r++ {
		for c := 0; c+domain.ToWin <= b.Cols; c++ {
			for i := range window {
				window[i] = b.Cells[r][c+i]
			}
			score += ScoreWindow(window, player)
		}
	}

	// vertical windows
	for c := 0; c < b.Cols; c++ {
		for r := 0; r+domain.ToWin <= b.Rows; r++ {
			for i := range window {
				window[i] = b.Cells[r+i][c]
			}
			score += ScoreWindow(window, player)
		}
	}

	// diagonal \ windows
	for r := 0; r+domain.ToWin <= b.Rows; r++ {
		for c := 0; c+domain.ToWin <= b.Cols; c++ {
			for i := range window {
				window[i] = b.Cells[r+i][c+i]
			}
			score += ScoreWindow(window, player)
		}
	}

	// diagonal / windows
	for r := domain.ToWin - 1; r < b.Rows; r++ {
		for c := 0; c+domain.ToWin <= b.Cols; c++ {
			for i := range window {
				window[i] = b.Cells[r-i][c+i]
			}
			score += ScoreWindow(window, player)
		}
	}

	return score
}
