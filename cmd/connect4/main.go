package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abdelrahman470/Connect-4-Game/internal/config"
	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
	"github.com/abdelrahman470/Connect-4-Game/internal/service/bot"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g := domain.NewGame(cfg.Rows, cfg.Columns)
	// randomize who starts
	if rng.Intn(2) == 1 {
		g.CurrentPlayer = domain.Player2
	}

	fmt.Println("=== CONNECT 4 ===")
	fmt.Printf("You are X, the computer is O (difficulty: %s, depth: %d)\n",
		cfg.BotDifficulty, cfg.SearchDepth)
	printBoard(g.Board)

	reader := bufio.NewReader(os.Stdin)

	for !g.IsFinished() {
		if g.CurrentPlayer == domain.Player1 {
			humanTurn(reader, g)
		} else {
			botTurn(g, cfg, rng)
		}
		printBoard(g.Board)
	}

	switch g.Winner {
	case domain.Player1:
		fmt.Println("CONGRATULATIONS! YOU WIN!")
	case domain.Player2:
		fmt.Println("GAME OVER. THE COMPUTER WINS!")
	default:
		fmt.Println("It's a draw.")
	}
}

// humanTurn keeps prompting until a legal move has been applied.
func humanTurn(reader *bufio.Reader, g *domain.Game) {
	for {
		fmt.Printf("Your turn, pick a column (0-%d): ", g.Board.Cols-1)

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nInput closed, quitting.")
			os.Exit(0)
		}

		column, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("Please enter a valid number.")
			continue
		}

		if _, err := g.MakeMove(domain.Player1, column); err != nil {
			if errors.Is(err, domain.ErrColumnFull) {
				fmt.Println("Column is full. Pick another one.")
			} else {
				fmt.Println("Invalid column number.")
			}
			continue
		}

		return
	}
}

func botTurn(g *domain.Game, cfg *config.Config, rng *rand.Rand) {
	fmt.Println("The computer is thinking...")

	column := bot.CalculateBestMove(g.Board, domain.Player2, cfg.BotDifficulty, cfg.SearchDepth, rng)
	if _, err := g.MakeMove(domain.Player2, column); err != nil {
		// the engine only plays columns it enumerated as legal
		log.Fatalf("bot picked illegal column %d: %v", column, err)
	}

	fmt.Printf("The computer plays column %d\n", column)
}

// printBoard renders the grid with row 0 at the top, which matches how
// the board stores it.
func printBoard(b *domain.Board) {
	var header strings.Builder
	header.WriteString(" ")
	for c := 0; c < b.Cols; c++ {
		fmt.Fprintf(&header, " %d", c)
	}
	fmt.Println()
	fmt.Println(header.String())
	fmt.Println(strings.Repeat("-", 2*b.Cols+2))

	for r := 0; r < b.Rows; r++ {
		var row strings.Builder
		row.WriteString("|")
		for c := 0; c < b.Cols; c++ {
			row.WriteString(" ")
			row.WriteString(symbol(b.Cells[r][c]))
		}
		row.WriteString(" |")
		fmt.Println(row.String())
	}
	fmt.Println(strings.Repeat("-", 2*b.Cols+2))
}

func symbol(p domain.PlayerID) string {
	switch p {
	case domain.Player1:
		return "X"
	case domain.Player2:
		return "O"
	default:
		return "-"
	}
}
