package game

import "testing"

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name        string
		guess       []int
		secret      []int
		wantExact   int
		wantPartial int
	}{
		{"all exact", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}, 4, 0},
		{"no matches", []int{5, 5, 5, 5}, []int{1, 2, 3, 4}, 0, 0},
		{"all partial", []int{4, 3, 2, 1}, []int{1, 2, 3, 4}, 0, 4},
		{"mixed", []int{1, 2, 4, 3}, []int{1, 2, 3, 4}, 2, 2},
		{"repeated digit not double counted", []int{1, 2, 2, 2}, []int{1, 1, 2, 3}, 2, 0},
		{"secret repeats credited once per occurrence", []int{1, 1, 1, 1}, []int{1, 1, 2, 3}, 2, 0},
		{"guess repeats against single secret digit", []int{2, 2, 0, 0}, []int{2, 3, 4, 5}, 1, 0},
		{"partial claims first unconsumed only", []int{0, 1, 1, 0}, []int{1, 0, 5, 5}, 0, 2},
		{"identical repeated digits", []int{7, 7, 7, 7}, []int{7, 7, 7, 7}, 4, 0},
		{"longer codes", []int{0, 1, 2, 3, 4, 5}, []int{5, 4, 2, 3, 1, 0}, 2, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exact, partial := Evaluate(tc.guess, tc.secret)
			if exact != tc.wantExact || partial != tc.wantPartial {
				t.Fatalf("Evaluate(%v, %v) = (%d, %d); want (%d, %d)",
					tc.guess, tc.secret, exact, partial, tc.wantExact, tc.wantPartial)
			}
			if exact+partial > len(tc.guess) {
				t.Fatalf("exact+partial = %d exceeds code length %d", exact+partial, len(tc.guess))
			}
		})
	}
}

func TestEvaluateBounds(t *testing.T) {
	// every pairing of two fixed codes stays within the length bound
	codes := [][]int{
		{0, 0, 0, 0},
		{0, 1, 2, 3},
		{7, 7, 1, 1},
		{3, 3, 3, 1},
	}
	for _, guess := range codes {
		for _, secret := range codes {
			exact, partial := Evaluate(guess, secret)
			if exact+partial > len(guess) {
				t.Fatalf("Evaluate(%v, %v): exact+partial = %d > %d",
					guess, secret, exact+partial, len(guess))
			}
		}
	}
}
