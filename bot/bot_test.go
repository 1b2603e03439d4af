package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	assert.Equal(t, 0, Evaluate(Board{}))
	assert.Equal(t, 10, Evaluate(Board{"O", "O", "O", "", "", "", "", "", ""}))
	assert.Equal(t, -10, Evaluate(Board{"X", "", "", "", "X", "", "", "", "X"}))
	assert.Equal(t, 0, Evaluate(Board{"X", "O", "X", "O", "X", "O", "O", "X", "O"}))
}

func TestBestMoveTakesTheWin(t *testing.T) {
	// O completes the top row instead of anything else.
	b := Board{"O", "O", "", "X", "X", "", "", "", ""}
	assert.Equal(t, 2, BestMove(b))
}

func TestBestMoveBlocksTheLoss(t *testing.T) {
	// X threatens 0-1-2; with no win available O must block.
	b := Board{"X", "X", "", "", "O", "", "", "", ""}
	assert.Equal(t, 2, BestMove(b))
}

func TestBestMovePrefersWinningOverBlocking(t *testing.T) {
	// Both sides threaten a line; O takes its own win.
	b := Board{"X", "X", "", "O", "O", "", "", "", ""}
	assert.Equal(t, 5, BestMove(b))
}

func TestBestMoveFullBoard(t *testing.T) {
	b := Board{"X", "O", "X", "O", "X", "O", "O", "X", "O"}
	assert.Equal(t, -1, BestMove(b))
}

func TestRandomMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	b := Board{"X", "O", "X", "O", "X", "O", "O", "X", ""}
	assert.Equal(t, 8, RandomMove(b, rng), "only one cell is open")

	full := Board{"X", "O", "X", "O", "X", "O", "O", "X", "O"}
	assert.Equal(t, -1, RandomMove(full, rng))

	empty := Board{}
	for i := 0; i < 50; i++ {
		move := RandomMove(empty, rng)
		assert.GreaterOrEqual(t, move, 0)
		assert.Less(t, move, 9)
	}
}

func TestChooseMoveAlwaysPlaysAnOpenCell(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := Board{"X", "", "O", "", "X", "", "", "O", ""}

	for i := 0; i < 100; i++ {
		move := ChooseMove(b, rng)
		require.GreaterOrEqual(t, move, 0)
		require.Less(t, move, 9)
		assert.Empty(t, b[move], "bot must only play empty cells")
	}
}
