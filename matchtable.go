package main

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrAlreadyMatched = errors.New("client already in a match")
	ErrNotMatched     = errors.New("client has no active match")
)

// match is one active game: both sides, whose turn it is, and the
// authoritative board.
type match struct {
	id    string
	x, o  uint64
	board Board
	turn  string
}

func (m *match) symbolOf(id uint64) string {
	if id == m.x {
		return "X"
	}
	return "O"
}

func (m *match) opponentOf(id uint64) uint64 {
	if id == m.x {
		return m.o
	}
	return m.x
}

// matchTable maps every matched client id to its match. Both sides of a
// match are always present together, so opponent lookups are symmetric.
type matchTable struct {
	matches map[uint64]*match
}

func newMatchTable() *matchTable {
	return &matchTable{matches: make(map[uint64]*match)}
}

// createMatch pairs a and b, a playing X and moving first.
func (t *matchTable) createMatch(a, b uint64) (*match, error) {
	if _, ok := t.matches[a]; ok {
		return nil, ErrAlreadyMatched
	}
	if _, ok := t.matches[b]; ok {
		return nil, ErrAlreadyMatched
	}
	m := &match{
		id:   uuid.NewString(),
		x:    a,
		o:    b,
		turn: "X",
	}
	t.matches[a] = m
	t.matches[b] = m
	return m, nil
}

func (t *matchTable) lookup(id uint64) (*match, error) {
	m, ok := t.matches[id]
	if !ok {
		return nil, ErrNotMatched
	}
	return m, nil
}

func (t *matchTable) opponentOf(id uint64) (uint64, error) {
	m, ok := t.matches[id]
	if !ok {
		return 0, ErrNotMatched
	}
	return m.opponentOf(id), nil
}

// dissolve removes both sides of the match containing id.
func (t *matchTable) dissolve(id uint64) error {
	m, ok := t.matches[id]
	if !ok {
		return ErrNotMatched
	}
	delete(t.matches, m.x)
	delete(t.matches, m.o)
	return nil
}

func (t *matchTable) len() int {
	return len(t.matches)
}
