package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "empty board",
			board: Board{},
			want:  false,
		},
		{
			name:  "top row",
			board: Board{"X", "X", "X", "", "", "", "", "", ""},
			want:  true,
		},
		{
			name:  "middle row",
			board: Board{"", "", "", "O", "O", "O", "", "", ""},
			want:  true,
		},
		{
			name:  "left column",
			board: Board{"X", "", "", "X", "", "", "X", "", ""},
			want:  true,
		},
		{
			name:  "right column",
			board: Board{"", "", "O", "", "", "O", "", "", "O"},
			want:  true,
		},
		{
			name:  "main diagonal",
			board: Board{"X", "", "", "", "X", "", "", "", "X"},
			want:  true,
		},
		{
			name:  "anti diagonal",
			board: Board{"", "", "O", "", "O", "", "O", "", ""},
			want:  true,
		},
		{
			name:  "full board without a line",
			board: Board{"X", "O", "X", "O", "X", "O", "O", "X", "O"},
			want:  false,
		},
		{
			name:  "mixed line is not a win",
			board: Board{"X", "O", "X", "", "", "", "", "", ""},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkWin(tt.board))
		})
	}
}

func TestCheckDraw(t *testing.T) {
	assert.False(t, checkDraw(Board{}))
	assert.False(t, checkDraw(Board{"X", "O", "X", "O", "X", "O", "O", "X", ""}))
	assert.True(t, checkDraw(Board{"X", "O", "X", "O", "X", "O", "O", "X", "O"}))
}

// A full board containing a line must be treated as a win; checkDraw is
// only consulted after checkWin.
func TestWinTakesPrecedenceOverDraw(t *testing.T) {
	board := Board{"X", "X", "X", "O", "O", "", "", "", ""}
	assert.True(t, checkWin(board))

	fullWin := Board{"X", "X", "X", "O", "O", "X", "O", "X", "O"}
	assert.True(t, checkWin(fullWin))
	assert.True(t, checkDraw(fullWin))
}

func TestValidateMove(t *testing.T) {
	tests := []struct {
		name      string
		prev      Board
		next      Board
		symbol    string
		wantIndex int
		wantErr   bool
	}{
		{
			name:      "first move",
			prev:      Board{},
			next:      Board{"X", "", "", "", "", "", "", "", ""},
			symbol:    "X",
			wantIndex: 0,
		},
		{
			name:      "reply in center",
			prev:      Board{"X", "", "", "", "", "", "", "", ""},
			next:      Board{"X", "", "", "", "O", "", "", "", ""},
			symbol:    "O",
			wantIndex: 4,
		},
		{
			name:    "no cell changed",
			prev:    Board{"X", "", "", "", "", "", "", "", ""},
			next:    Board{"X", "", "", "", "", "", "", "", ""},
			symbol:  "O",
			wantErr: true,
		},
		{
			name:    "two cells placed at once",
			prev:    Board{},
			next:    Board{"X", "", "", "", "X", "", "", "", ""},
			symbol:  "X",
			wantErr: true,
		},
		{
			name:    "placed opponent's symbol",
			prev:    Board{},
			next:    Board{"", "", "", "", "O", "", "", "", ""},
			symbol:  "X",
			wantErr: true,
		},
		{
			name:    "overwrote an occupied cell",
			prev:    Board{"X", "", "", "", "", "", "", "", ""},
			next:    Board{"O", "", "", "", "", "", "", "", ""},
			symbol:  "O",
			wantErr: true,
		},
		{
			name:    "erased a cell",
			prev:    Board{"X", "", "", "", "O", "", "", "", ""},
			next:    Board{"X", "X", "", "", "", "", "", "", ""},
			symbol:  "X",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := validateMove(tt.prev, tt.next, tt.symbol)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestOpponentSymbol(t *testing.T) {
	assert.Equal(t, "O", opponentSymbol("X"))
	assert.Equal(t, "X", opponentSymbol("O"))
}
