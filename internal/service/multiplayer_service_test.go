package service

import (
	"context"
	"errors"
	"testing"

	"mastermind_reach/internal/codegen"
	"mastermind_reach/internal/domain"
)

type memMultiplayerStore struct {
	sessions map[string]*domain.Multiplayer
	saves    int
}

func newMemMultiplayerStore() *memMultiplayerStore {
	return &memMultiplayerStore{sessions: make(map[string]*domain.Multiplayer)}
}

func (s *memMultiplayerStore) Get(_ context.Context, id string) (*domain.Multiplayer, error) {
	m, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (s *memMultiplayerStore) Save(_ context.Context, m *domain.Multiplayer) error {
	s.saves++
	s.sessions[m.ID] = m
	return nil
}

func newTestMultiplayerService() (*MultiplayerService, *memMultiplayerStore, *memGameStore) {
	gameStore := newMemGameStore()
	games := NewGameService(gameStore, codegen.NewGenerator(nil))
	store := newMemMultiplayerStore()
	return NewMultiplayerService(store, games), store, gameStore
}

// seedMultiplayer plants a session with one seeded game per seat, all
// sharing the given secret.
func seedMultiplayer(store *memMultiplayerStore, gameStore *memGameStore, seats int, secret string) *domain.Multiplayer {
	m := &domain.Multiplayer{
		ID:          "m1",
		PlayerCount: seats,
	}
	for i := 0; i < seats; i++ {
		id := "seat-game-" + string(rune('0'+i))
		seedGame(gameStore, id, secret)
		m.GameIDs = append(m.GameIDs, id)
	}
	store.sessions[m.ID] = m
	return m
}

func TestInitializeMultiplayerGame(t *testing.T) {
	svc, store, gameStore := newTestMultiplayerService()

	m, err := svc.InitializeMultiplayerGame(context.Background(), 3, "medium", "host-1")
	if err != nil {
		t.Fatalf("InitializeMultiplayerGame: %v", err)
	}

	if m.PlayerCount != 3 || len(m.GameIDs) != 3 {
		t.Fatalf("seats = %d ids = %d; want 3 each", m.PlayerCount, len(m.GameIDs))
	}
	if m.CurrentPlayer != 0 || m.GameOver {
		t.Fatalf("fresh session: current=%d over=%v", m.CurrentPlayer, m.GameOver)
	}
	if store.saves != 1 {
		t.Fatalf("session saves = %d; want 1", store.saves)
	}

	secrets := make(map[string]bool)
	for _, id := range m.GameIDs {
		g, ok := gameStore.games[id]
		if !ok {
			t.Fatalf("seat game %s not persisted", id)
		}
		if g.Difficulty != domain.DifficultyMedium || len(g.SecretCode) != 6 {
			t.Fatalf("seat game %s: difficulty=%s secret=%q", id, g.Difficulty, g.SecretCode)
		}
		secrets[g.SecretCode] = true
	}
	// 3 independent draws of a 6-digit code colliding is ~1 in 10^10
	if len(secrets) == 1 && len(m.GameIDs) > 1 {
		t.Log("all seat secrets identical; suspicious but not impossible")
	}
}

func TestInitializeMultiplayerGameValidation(t *testing.T) {
	svc, store, _ := newTestMultiplayerService()

	for _, count := range []int{0, -1} {
		if _, err := svc.InitializeMultiplayerGame(context.Background(), count, "", "host-1"); !domain.IsValidation(err) {
			t.Fatalf("playerCount=%d: got %v; want validation error", count, err)
		}
	}
	if store.saves != 0 {
		t.Fatalf("saves = %d after rejected init; want 0", store.saves)
	}
}

func TestSendGuessRotation(t *testing.T) {
	svc, store, gameStore := newTestMultiplayerService()
	seedMultiplayer(store, gameStore, 3, "0123")

	wantSeats := []int{1, 2, 0, 1}
	for i, want := range wantSeats {
		m, err := svc.SendGuess(context.Background(), "m1", "7654")
		if err != nil {
			t.Fatalf("guess %d: %v", i+1, err)
		}
		if m.CurrentPlayer != want {
			t.Fatalf("after guess %d: current = %d; want %d", i+1, m.CurrentPlayer, want)
		}
		if m.GameOver {
			t.Fatalf("session over after non-winning guess %d", i+1)
		}
	}

	// each seat's own game advanced independently: seats 0 and 1 played
	// twice, seat 2 once
	if got := gameStore.games["seat-game-0"].Turn; got != 3 {
		t.Fatalf("seat 0 turn = %d; want 3", got)
	}
	if got := gameStore.games["seat-game-2"].Turn; got != 2 {
		t.Fatalf("seat 2 turn = %d; want 2", got)
	}
}

func TestSendGuessWinEndsSession(t *testing.T) {
	svc, store, gameStore := newTestMultiplayerService()
	seedMultiplayer(store, gameStore, 3, "0123")

	// seat 0 misses, seat 1 breaks the code
	if _, err := svc.SendGuess(context.Background(), "m1", "7654"); err != nil {
		t.Fatalf("miss: %v", err)
	}
	m, err := svc.SendGuess(context.Background(), "m1", "0123")
	if err != nil {
		t.Fatalf("winning guess: %v", err)
	}

	if !m.GameOver {
		t.Fatal("session should be over after a win")
	}
	if m.CurrentPlayer != 1 {
		t.Fatalf("rotation moved after win: current = %d; want 1", m.CurrentPlayer)
	}

	// frozen: further guesses change nothing and write nothing
	savesBefore := store.saves
	got, err := svc.SendGuess(context.Background(), "m1", "7654")
	if err != nil {
		t.Fatalf("post-win guess: %v", err)
	}
	if got.CurrentPlayer != 1 || !got.GameOver {
		t.Fatalf("post-win state changed: %+v", got)
	}
	if store.saves != savesBefore {
		t.Fatalf("saves = %d after no-op; want %d", store.saves, savesBefore)
	}
}

func TestSendGuessSeatOutOfRange(t *testing.T) {
	svc, store, gameStore := newTestMultiplayerService()
	m := seedMultiplayer(store, gameStore, 2, "0123")
	m.CurrentPlayer = 5

	if _, err := svc.SendGuess(context.Background(), "m1", "0123"); !errors.Is(err, domain.ErrSeatOutOfRange) {
		t.Fatalf("got %v; want ErrSeatOutOfRange", err)
	}
}

func TestSendGuessValidationDoesNotRotate(t *testing.T) {
	svc, store, gameStore := newTestMultiplayerService()
	seedMultiplayer(store, gameStore, 2, "0123")

	if _, err := svc.SendGuess(context.Background(), "m1", "not-digits"); !domain.IsValidation(err) {
		t.Fatalf("got %v; want validation error", err)
	}

	m := store.sessions["m1"]
	if m.CurrentPlayer != 0 {
		t.Fatalf("rotation advanced on rejected guess: current = %d", m.CurrentPlayer)
	}
	if store.saves != 0 {
		t.Fatalf("saves = %d after rejected guess; want 0", store.saves)
	}
}

func TestSendGuessUnknownSession(t *testing.T) {
	svc, _, _ := newTestMultiplayerService()
	if _, err := svc.SendGuess(context.Background(), "missing", "0123"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}
