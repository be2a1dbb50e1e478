package service

import (
	"context"

	"mastermind_reach/internal/domain"
	"mastermind_reach/internal/logger"

	"github.com/google/uuid"
)

// MultiplayerStore is the persistence contract for multiplayer sessions.
type MultiplayerStore interface {
	Get(ctx context.Context, id string) (*domain.Multiplayer, error)
	Save(ctx context.Context, m *domain.Multiplayer) error
}

// MultiplayerService rotates turns across an ordered list of seats,
// each backed by its own single-player game.
type MultiplayerService struct {
	store MultiplayerStore
	games *GameService
	locks *keyedMutex
}

func NewMultiplayerService(store MultiplayerStore, games *GameService) *MultiplayerService {
	return &MultiplayerService{
		store: store,
		games: games,
		locks: newKeyedMutex(),
	}
}

// InitializeMultiplayerGame creates one game per seat, each with an
// independently generated secret, and persists the session with the
// first seat active.
func (s *MultiplayerService) InitializeMultiplayerGame(ctx context.Context, playerCount int, difficulty, hostID string) (*domain.Multiplayer, error) {
	if playerCount < 1 {
		return nil, domain.NewValidationError("player count must be at least 1")
	}

	gameIDs := make([]string, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		g, err := s.games.StartGame(ctx, difficulty, hostID)
		if err != nil {
			return nil, err
		}
		gameIDs = append(gameIDs, g.ID)
	}

	m := &domain.Multiplayer{
		ID:          uuid.New().String(),
		PlayerCount: playerCount,
		GameIDs:     gameIDs,
	}

	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}

	logger.Info("multiplayer game started", "multiplayer_id", m.ID, "players", playerCount)
	return m, nil
}

// GetMultiplayer returns the session by id.
func (s *MultiplayerService) GetMultiplayer(ctx context.Context, id string) (*domain.Multiplayer, error) {
	return s.store.Get(ctx, id)
}

// SendGuess delegates the guess to the active seat's game. A win ends
// the session and freezes the rotation; otherwise the next seat becomes
// active. A finished session is returned unchanged.
func (s *MultiplayerService) SendGuess(ctx context.Context, multiplayerID, guess string) (*domain.Multiplayer, error) {
	unlock := s.locks.Lock(multiplayerID)
	defer unlock()

	m, err := s.store.Get(ctx, multiplayerID)
	if err != nil {
		return nil, err
	}

	if m.GameOver {
		return m, nil
	}

	if m.CurrentPlayer < 0 || m.CurrentPlayer >= len(m.GameIDs) || m.PlayerCount != len(m.GameIDs) {
		return nil, domain.ErrSeatOutOfRange
	}

	g, err := s.games.SubmitGuess(ctx, m.GameIDs[m.CurrentPlayer], guess)
	if err != nil {
		return nil, err
	}

	if g.Won {
		m.GameOver = true
	} else {
		m.CurrentPlayer = (m.CurrentPlayer + 1) % m.PlayerCount
	}

	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}

	if m.GameOver {
		logger.Info("multiplayer game won", "multiplayer_id", m.ID, "seat", m.CurrentPlayer)
	}

	return m, nil
}
