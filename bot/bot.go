// Package bot implements the local single-player opponent: a stateless
// tic-tac-toe move chooser mixing minimax search with random play. It
// has no coupling to the relay server; the bot plays "O" against a
// human "X" entirely on the caller's side.
package bot

import "math/rand"

// Board is a 9-cell tic-tac-toe position, cells "", "X" or "O".
type Board [9]string

var winningCombinations = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// randomShare is how often ChooseMove plays randomly instead of
// optimally.
const randomShare = 0.7

// Evaluate scores a position from the bot's perspective: +10 when O
// holds a line, -10 when X does, 0 otherwise.
func Evaluate(b Board) int {
	for _, combo := range winningCombinations {
		first := b[combo[0]]
		if first != "" && first == b[combo[1]] && first == b[combo[2]] {
			if first == "X" {
				return -10
			}
			return 10
		}
	}
	return 0
}

func full(b Board) bool {
	for _, cell := range b {
		if cell == "" {
			return false
		}
	}
	return true
}

// minimax returns the best reachable score for the side to move. The
// depth adjustment prefers quicker wins and slower losses.
func minimax(b Board, depth int, maximizing bool) int {
	switch score := Evaluate(b); {
	case score == 10:
		return score - depth
	case score == -10:
		return score + depth
	case full(b):
		return 0
	}

	if maximizing {
		best := -1000
		for i := range b {
			if b[i] == "" {
				b[i] = "O"
				if s := minimax(b, depth+1, false); s > best {
					best = s
				}
				b[i] = ""
			}
		}
		return best
	}
	best := 1000
	for i := range b {
		if b[i] == "" {
			b[i] = "X"
			if s := minimax(b, depth+1, true); s < best {
				best = s
			}
			b[i] = ""
		}
	}
	return best
}

// BestMove returns the optimal cell for O, or -1 when the board is
// full.
func BestMove(b Board) int {
	best, move := -1000, -1
	for i := range b {
		if b[i] == "" {
			b[i] = "O"
			if s := minimax(b, 0, false); s > best {
				best, move = s, i
			}
			b[i] = ""
		}
	}
	return move
}

// RandomMove returns a uniformly random empty cell, or -1 when none is
// left.
func RandomMove(b Board, rng *rand.Rand) int {
	empty := make([]int, 0, len(b))
	for i, cell := range b {
		if cell == "" {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return -1
	}
	return empty[rng.Intn(len(empty))]
}

// ChooseMove plays like the browser bot: random most of the time,
// optimal otherwise.
func ChooseMove(b Board, rng *rand.Rand) int {
	if rng.Float64() < randomShare {
		return RandomMove(b, rng)
	}
	return BestMove(b)
}
