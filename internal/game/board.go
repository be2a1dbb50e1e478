package game

import (
	"mastermind_reach/internal/domain"

	"github.com/samber/lo"
)

// UnfilledCell marks a board position that has not been played yet.
const UnfilledCell = "#"

// NewBoard builds the fixed 10-row board for the given column count,
// every cell set to the unfilled sentinel.
func NewBoard(cols int) [][]string {
	return lo.Times(domain.BoardRows, func(_ int) []string {
		return lo.Times(cols, func(_ int) string { return UnfilledCell })
	})
}

// WriteRow places a guess on the board for the given turn (1-based).
// Row addressing is by remaining turn budget: turn 1 writes row 9, turn
// 10 writes row 0, so the board fills from the bottom up. Turns past the
// budget never write.
func WriteRow(board [][]string, turn int, digits []int) {
	if turn < 1 || turn > domain.BoardRows {
		return
	}
	board[domain.BoardRows-turn] = lo.Map(digits, func(d int, _ int) string {
		return string(rune('0' + d))
	})
}
