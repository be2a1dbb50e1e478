package game

// Evaluate scores a guess against the secret. Both slices must have the
// same length.
//
// Pass one counts exact matches and marks those positions consumed on
// both sides. Pass two walks the remaining guess digits in order and
// credits a partial match against the first unconsumed secret position
// holding the same digit, so a digit repeated k times in the secret is
// credited at most k times across both passes.
func Evaluate(guess, secret []int) (exact, partial int) {
	guessUsed := make([]bool, len(guess))
	secretUsed := make([]bool, len(secret))

	for i := range guess {
		if guess[i] == secret[i] {
			exact++
			guessUsed[i] = true
			secretUsed[i] = true
		}
	}

	for i := range guess {
		if guessUsed[i] {
			continue
		}
		for j := range secret {
			if !secretUsed[j] && guess[i] == secret[j] {
				partial++
				secretUsed[j] = true
				break
			}
		}
	}

	return exact, partial
}
