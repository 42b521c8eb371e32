package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abdelrahman470/Connect-4-Game/internal/config"
	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
	"github.com/abdelrahman470/Connect-4-Game/internal/service/bot"
)

// Session is a single human-vs-bot game. The human always moves through
// HumanMove and the bot answers inside the same call, so between calls
// it is always the human's turn.
type Session struct {
	GameID     string
	Game       *domain.Game
	HumanPiece domain.PlayerID
	BotPiece   domain.PlayerID
	Difficulty string
	CreatedAt  time.Time

	depth int
	rng   *rand.Rand
	mu    sync.Mutex
}

// MoveOutcome reports the result of one human move and the bot's reply.
// BotColumn is -1 when the game ended before the bot could answer.
type MoveOutcome struct {
	HumanRow  int
	BotColumn int
	BotRow    int
	Status    domain.GameStatus
	Winner    domain.PlayerID
}

// HumanMove applies the human's column and, if the game is still going,
// lets the bot reply.
func (s *Session) HumanMove(column int) (MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	humanRow, err := s.Game.MakeMove(s.HumanPiece, column)
	if err != nil {
		return MoveOutcome{}, err
	}

	outcome := MoveOutcome{
		HumanRow:  humanRow,
		BotColumn: -1,
		BotRow:    -1,
		Status:    s.Game.Status,
		Winner:    s.Game.Winner,
	}

	if s.Game.IsFinished() {
		return outcome, nil
	}

	botColumn := bot.CalculateBestMove(s.Game.Board, s.BotPiece, s.Difficulty, s.depth, s.rng)
	if botColumn < 0 {
		// an active game always has at least one legal column
		return MoveOutcome{}, domain.ErrNoValidMoves
	}

	botRow, err := s.Game.MakeMove(s.BotPiece, botColumn)
	if err != nil {
		return MoveOutcome{}, err
	}

	outcome.BotColumn = botColumn
	outcome.BotRow = botRow
	outcome.Status = s.Game.Status
	outcome.Winner = s.Game.Winner

	return outcome, nil
}

// SessionManager manages the active game sessions
type SessionManager struct {
	Sessions map[string]*Session // gameID → Session
	mu       sync.RWMutex
	cfg      *config.Config
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		Sessions: make(map[string]*Session),
		cfg:      cfg,
	}
}

func (sm *SessionManager) CreateSession(difficulty string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if difficulty == "" {
		difficulty = sm.cfg.BotDifficulty
	}

	session := &Session{
		GameID:     uuid.NewString(),
		Game:       domain.NewGame(sm.cfg.Rows, sm.cfg.Columns),
		HumanPiece: domain.Player1,
		BotPiece:   domain.Player2,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
		depth:      sm.cfg.SearchDepth,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	sm.Sessions[session.GameID] = session

	log.Printf("[SESSION] Created session %s (difficulty=%s, depth=%d)",
		session.GameID, session.Difficulty, session.depth)
	return session
}

func (sm *SessionManager) GetSession(gameID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Sessions[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Sessions[gameID]; exists {
		log.Printf("[SESSION] Removing session %s", gameID)
		delete(sm.Sessions, gameID)
	}
}
