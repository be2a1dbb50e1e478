package domain

import (
	"fmt"
	"time"
)

// Feedback is the score for one guess: digits matched in the right
// position (exact) and digits present elsewhere in the secret (partial).
// The pair is the authoritative record; Summary is derived for display.
type Feedback struct {
	Exact   int `json:"exact"`
	Partial int `json:"partial"`
}

// Summary renders the human-readable form persisted alongside the pair.
func (f Feedback) Summary() string {
	return fmt.Sprintf("Exact Matches: %d, Partial Matches: %d", f.Exact, f.Partial)
}

// Game is one Mastermind session: a secret code, a 10-row board that
// fills bottom-up as turns are consumed, and the per-turn feedback.
type Game struct {
	ID         string     `json:"id"`
	PlayerID   string     `json:"player_id"`
	SecretCode string     `json:"secret_code"` // one ASCII digit per position
	Difficulty Difficulty `json:"difficulty"`

	Board     [][]string  `json:"board"` // BoardRows x SecretLength, "#" = unfilled
	Guesses   []string    `json:"guesses"`
	Feedbacks []*Feedback `json:"feedbacks"` // slot i = turn i+1, nil until played

	Turn     int  `json:"turn"` // starts at 1, increments per accepted guess
	Won      bool `json:"won"`
	GameOver bool `json:"game_over"`

	// Version is managed by the store for optimistic concurrency.
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddGuess appends the raw guess string to the history.
func (g *Game) AddGuess(guess string) {
	g.Guesses = append(g.Guesses, guess)
}

// SetFeedback records the feedback for the given turn (1-based).
func (g *Game) SetFeedback(f Feedback, turn int) {
	if turn >= 1 && turn <= len(g.Feedbacks) {
		g.Feedbacks[turn-1] = &f
	}
}

// Multiplayer is an ordered rotation of games, one per seat. The session
// ends as soon as the active seat's game is won.
type Multiplayer struct {
	ID            string   `json:"id"`
	PlayerCount   int      `json:"player_count"`
	GameIDs       []string `json:"game_ids"`       // index = seat number
	CurrentPlayer int      `json:"current_player"` // 0-based, cyclic
	GameOver      bool     `json:"game_over"`

	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
