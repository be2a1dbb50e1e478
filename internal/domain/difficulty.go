package domain

import "strings"

// Difficulty - game difficulty level
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const (
	// BoardRows is the turn budget: every game allows 10 guesses
	// regardless of difficulty.
	BoardRows = 10

	// DigitMin and DigitMax bound every code and guess digit.
	DigitMin = 0
	DigitMax = 7
)

// DifficultySettings carries the per-difficulty parameters. The secret
// length doubles as the board column count and the number of digits
// expected per guess.
type DifficultySettings struct {
	SecretLength int
}

var difficultyTable = map[Difficulty]DifficultySettings{
	DifficultyEasy:   {SecretLength: 4},
	DifficultyMedium: {SecretLength: 6},
	DifficultyHard:   {SecretLength: 8},
}

// Settings returns the parameter set for the difficulty.
func (d Difficulty) Settings() DifficultySettings {
	return difficultyTable[d]
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	_, ok := difficultyTable[d]
	return ok
}

// ParseDifficulty normalizes a difficulty string. Empty input falls back
// to easy; anything else unknown is a validation error.
func ParseDifficulty(s string) (Difficulty, error) {
	if s == "" {
		return DifficultyEasy, nil
	}
	d := Difficulty(strings.ToLower(s))
	if !d.Valid() {
		return "", NewValidationError("unknown difficulty: " + s)
	}
	return d, nil
}
