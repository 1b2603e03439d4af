package main

import "errors"

// Board is one tic-tac-toe position. Cells are "", "X" or "O", indexed
// row-major from the top-left.
type Board [9]string

var winningCombinations = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// checkWin reports whether any line holds three identical non-empty
// cells.
func checkWin(b Board) bool {
	for _, combo := range winningCombinations {
		first := b[combo[0]]
		if first != "" && first == b[combo[1]] && first == b[combo[2]] {
			return true
		}
	}
	return false
}

// checkDraw reports a full board. Callers must check checkWin first: a
// full board that contains a line is a win, not a draw.
func checkDraw(b Board) bool {
	for _, cell := range b {
		if cell == "" {
			return false
		}
	}
	return true
}

func opponentSymbol(symbol string) string {
	if symbol == "X" {
		return "O"
	}
	return "X"
}

var errBadDelta = errors.New("board does not extend the previous state by one cell")

// validateMove checks that next equals prev plus exactly one new cell
// holding symbol, returning the index of that cell. The wire format
// carries the full board each move, so the single-cell delta is
// reconstructed here rather than trusting the submitted state.
func validateMove(prev, next Board, symbol string) (int, error) {
	placed := -1
	for i := range next {
		switch {
		case next[i] == prev[i]:
		case prev[i] == "" && next[i] == symbol:
			if placed != -1 {
				return -1, errBadDelta
			}
			placed = i
		default:
			return -1, errBadDelta
		}
	}
	if placed == -1 {
		return -1, errBadDelta
	}
	return placed, nil
}
