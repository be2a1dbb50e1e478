package service

import (
	"context"
	"fmt"

	"mastermind_reach/internal/codegen"
	"mastermind_reach/internal/domain"
	"mastermind_reach/internal/game"
	"mastermind_reach/internal/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	gamesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "games_started_total",
			Help: "Games created, by difficulty",
		},
		[]string{"difficulty"},
	)
	guessesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "guesses_total",
			Help: "Accepted guess submissions",
		},
	)
	gamesWon = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_won_total",
			Help: "Games ended with the code broken",
		},
	)
)

func init() {
	prometheus.MustRegister(gamesStarted, guessesTotal, gamesWon)
}

// GameStore is the persistence contract the game service relies on.
// Save is an upsert; implementations must reject stale versions.
type GameStore interface {
	Get(ctx context.Context, id string) (*domain.Game, error)
	Save(ctx context.Context, g *domain.Game) error
	ListByPlayer(ctx context.Context, playerID string) ([]*domain.Game, error)
}

// GameService owns the single-player session lifecycle: creation with a
// generated secret, guess scoring, board and turn bookkeeping.
type GameService struct {
	store GameStore
	gen   *codegen.Generator
	locks *keyedMutex
}

func NewGameService(store GameStore, gen *codegen.Generator) *GameService {
	return &GameService{
		store: store,
		gen:   gen,
		locks: newKeyedMutex(),
	}
}

// StartGame creates and persists a new game for the player. An empty
// difficulty defaults to easy; an unknown one is rejected.
func (s *GameService) StartGame(ctx context.Context, difficulty, playerID string) (*domain.Game, error) {
	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	if playerID == "" {
		return nil, domain.NewValidationError("player id must not be empty")
	}

	cols := d.Settings().SecretLength
	g := &domain.Game{
		ID:         uuid.New().String(),
		PlayerID:   playerID,
		SecretCode: s.gen.Generate(ctx, d),
		Difficulty: d,
		Board:      game.NewBoard(cols),
		Guesses:    []string{},
		Feedbacks:  make([]*domain.Feedback, domain.BoardRows),
		Turn:       1,
	}

	if err := s.store.Save(ctx, g); err != nil {
		return nil, err
	}

	gamesStarted.WithLabelValues(string(d)).Inc()
	logger.Info("game started", "game_id", g.ID, "player_id", playerID, "difficulty", d)
	return g, nil
}

// GetGame returns the game by id.
func (s *GameService) GetGame(ctx context.Context, id string) (*domain.Game, error) {
	return s.store.Get(ctx, id)
}

// ListGamesByPlayer returns all games owned by the player.
func (s *GameService) ListGamesByPlayer(ctx context.Context, playerID string) ([]*domain.Game, error) {
	return s.store.ListByPlayer(ctx, playerID)
}

// SubmitGuess runs the guess transition against the session:
// score feedback, write the board row, flip the outcome flags, advance
// the turn, then persist once. A finished game is returned unchanged
// without touching the store. Invalid input is rejected before any
// state changes and does not consume a turn.
//
// The whole transition holds the per-session lock so concurrent
// submissions against one id cannot both claim the same turn slot.
func (s *GameService) SubmitGuess(ctx context.Context, id, guess string) (*domain.Game, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	g, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if g.GameOver {
		return g, nil
	}

	digits, err := game.ParseDigits(guess)
	if err != nil {
		return nil, err
	}
	if len(digits) != len(g.SecretCode) {
		return nil, domain.NewValidationError(
			fmt.Sprintf("guess must have %d digits, got %d", len(g.SecretCode), len(digits)))
	}

	secret, err := game.ParseDigits(g.SecretCode)
	if err != nil {
		// A stored secret that does not decode is corrupted state, not
		// caller input.
		return nil, fmt.Errorf("corrupt secret code for game %s: %w", id, err)
	}

	exact, partial := game.Evaluate(digits, secret)
	g.SetFeedback(domain.Feedback{Exact: exact, Partial: partial}, g.Turn)
	g.AddGuess(guess)
	game.WriteRow(g.Board, g.Turn, digits)

	if guess == g.SecretCode {
		g.Won = true
		g.GameOver = true
	}

	g.Turn++
	if g.Turn > domain.BoardRows && !g.Won {
		g.GameOver = true
	}

	if err := s.store.Save(ctx, g); err != nil {
		return nil, err
	}

	guessesTotal.Inc()
	if g.Won {
		gamesWon.Inc()
		logger.Info("game won", "game_id", g.ID, "turns", g.Turn-1)
	} else if g.GameOver {
		logger.Info("game lost", "game_id", g.ID)
	}

	return g, nil
}
