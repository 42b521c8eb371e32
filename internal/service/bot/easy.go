package bot

import (
	"math/rand"

	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
)

// CalculateBestMoveEasy implements the easy difficulty bot
// Strategy: one-step lookahead only
// 1. Check if bot can win immediately
// 2. Check if opponent can win immediately and block
// 3. Otherwise, make a random valid move
func CalculateBestMoveEasy(b *domain.Board, botPlayer domain.PlayerID, rng *rand.Rand) int {
	validColumns := b.ValidMoves()
	if len(validColumns) == 0 {
		return -1
	}

	opponent := domain.Opponent(botPlayer)

	for _, col := range validColumns {
		testBoard, row, _ := b.Simulate(col, botPlayer)
		if domain.CheckWinAt(testBoard, row, col, botPlayer) {
			return col
		}
	}

	for _, col := range validColumns {
		testBoard, row, _ := b.Simulate(col, opponent)
		if domain.CheckWinAt(testBoard, row, col, opponent) {
			return col
		}
	}

	return validColumns[rng.Intn(len(validColumns))]
}
