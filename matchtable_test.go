package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTableSymmetry(t *testing.T) {
	table := newMatchTable()
	m, err := table.createMatch(1, 2)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "X", m.symbolOf(1))
	assert.Equal(t, "O", m.symbolOf(2))
	assert.Equal(t, "X", m.turn)
	assert.NotEmpty(t, m.id)

	// opponentOf(opponentOf(c)) == c for both sides.
	opp, err := table.opponentOf(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), opp)
	back, err := table.opponentOf(opp)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), back)
}

func TestMatchTableAlreadyMatched(t *testing.T) {
	table := newMatchTable()
	_, err := table.createMatch(1, 2)
	require.NoError(t, err)

	_, err = table.createMatch(1, 3)
	assert.ErrorIs(t, err, ErrAlreadyMatched)
	_, err = table.createMatch(3, 2)
	assert.ErrorIs(t, err, ErrAlreadyMatched)

	// The failed attempts must not leave 3 in the table.
	_, err = table.opponentOf(3)
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestMatchTableDissolve(t *testing.T) {
	table := newMatchTable()
	_, err := table.createMatch(1, 2)
	require.NoError(t, err)

	// Dissolving either side removes both directions.
	require.NoError(t, table.dissolve(2))
	_, err = table.opponentOf(1)
	assert.ErrorIs(t, err, ErrNotMatched)
	_, err = table.opponentOf(2)
	assert.ErrorIs(t, err, ErrNotMatched)
	assert.Equal(t, 0, table.len())

	assert.ErrorIs(t, table.dissolve(2), ErrNotMatched)
}

func TestMatchTableReuseAfterDissolve(t *testing.T) {
	table := newMatchTable()
	_, err := table.createMatch(1, 2)
	require.NoError(t, err)
	require.NoError(t, table.dissolve(1))

	// Former participants can be matched again with fresh opponents.
	m, err := table.createMatch(3, 1)
	require.NoError(t, err)
	assert.Equal(t, "O", m.symbolOf(1))
	opp, err := table.opponentOf(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), opp)
}
