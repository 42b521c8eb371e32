package bot

import (
	"math/rand"

	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
)

// CalculateBestMove selects the bot's column based on difficulty.
// "medium" runs the same minimax search at half the configured depth;
// anything other than "easy" or "medium" searches at full depth.
func CalculateBestMove(b *domain.Board, botPlayer domain.PlayerID, difficulty string, depth int, rng *rand.Rand) int {
	switch difficulty {
	case "easy":
		return CalculateBestMoveEasy(b, botPlayer, rng)
	case "medium":
		mediumDepth := depth / 2
		if mediumDepth < 1 {
			mediumDepth = 1
		}
		return FindBestMove(b, botPlayer, mediumDepth, rng).Column
	default:
		return FindBestMove(b, botPlayer, depth, rng).Column
	}
}
