package bot

import (
	"math"
	"math/rand"

	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
)

// Terminal scores dominate every achievable heuristic sum so the search
// always prefers an immediate win and avoids an immediate loss.
const (
	MINIMAX_WIN  = 100000000
	MINIMAX_LOSS = -100000000
	MINIMAX_DRAW = 0
)

// SearchResult pairs the chosen column with the score backing it.
// Column is -1 when the board has no legal columns left.
type SearchResult struct {
	Column int
	Score  int
}

// FindBestMove runs a depth-limited minimax search for the bot and
// returns the best column to play. When several columns tie on score the
// choice is uniform random among them, driven by the injected rng so
// callers (and tests) control the seed.
func FindBestMove(b *domain.Board, botPlayer domain.PlayerID, depth int, rng *rand.Rand) SearchResult {
	validColumns := b.ValidMoves()
	if len(validColumns) == 0 {
		return SearchResult{Column: -1, Score: MINIMAX_DRAW}
	}

	opponent := domain.Opponent(botPlayer)

	bestScore := math.MinInt32
	bestColumns := []int{}

	// Every root child gets a fresh full alpha-beta window: pruning below
	// the root never changes a root child's exact score, which keeps the
	// random tie-break honest.
	for _, col := range validColumns {
		child, _, err := b.Simulate(col, botPlayer)
		if err != nil {
			continue
		}

		score := minimax(child, depth-1, math.MinInt32, math.MaxInt32, opponent, botPlayer)

		switch {
		case score > bestScore:
			bestScore = score
			bestColumns = append(bestColumns[:0], col)
		case score == bestScore:
			bestColumns = append(bestColumns, col)
		}
	}

	return SearchResult{
		Column: bestColumns[rng.Intn(len(bestColumns))],
		Score:  bestScore,
	}
}

// minimax scores a position from the bot's perspective. turn is the side
// to move at this node, passed explicitly rather than inferred from
// depth parity.
func minimax(b *domain.Board, depth, alpha, beta int, turn, botPlayer domain.PlayerID) int {
	opponent := domain.Opponent(botPlayer)

	// Terminal checks come before the depth cutoff: a decided game must
	// never be scored heuristically. Adding the remaining depth makes
	// shallower wins outrank deeper ones.
	if domain.HasFour(b, botPlayer) {
		return MINIMAX_WIN + depth
	}
	if domain.HasFour(b, opponent) {
		return MINIMAX_LOSS - depth
	}

	validColumns := b.ValidMoves()
	if len(validColumns) == 0 {
		return MINIMAX_DRAW
	}

	if depth <= 0 {
		return Evaluate(b, botPlayer)
	}

	if turn == botPlayer {
		maxEval := math.MinInt32
		for _, col := range validColumns {
			child, _, err := b.Simulate(col, turn)
			if err != nil {
				continue
			}

			eval := minimax(child, depth-1, alpha, beta, opponent, botPlayer)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)

			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	// the human is assumed to play the move that is worst for the bot
	minEval := math.MaxInt32
	for _, col := range validColumns {
		child, _, err := b.Simulate(col, turn)
		if err != nil {
			continue
		}

		eval := minimax(child, depth-1, alpha, beta, botPlayer, botPlayer)
		minEval = min(minEval, eval)
		beta = min(beta, eval)

		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval
}
