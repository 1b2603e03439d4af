package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// inboundMove is a decoded move event from one client.
type inboundMove struct {
	client *Client
	symbol string
	field  Board
}

// Hub is the relay coordinator. It owns the connection registry, the
// wait queue and the match table, and processes every connect, move and
// disconnect on a single goroutine so no two events interleave.
type Hub struct {
	registry *connRegistry
	queue    *waitQueue
	matches  *matchTable
	store    LeaderboardStore

	register   chan *Client
	unregister chan *Client
	moves      chan *inboundMove
	broadcast  chan []byte

	nextID atomic.Uint64
	logger zerolog.Logger
}

func newHub(store LeaderboardStore, logger zerolog.Logger) *Hub {
	return &Hub{
		registry:   newConnRegistry(logger),
		queue:      &waitQueue{},
		matches:    newMatchTable(),
		store:      store,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		moves:      make(chan *inboundMove),
		broadcast:  make(chan []byte, 16),
		logger:     logger,
	}
}

// newClientID hands out connection ids. Ids increase monotonically and
// are never reused.
func (h *Hub) newClientID() uint64 {
	return h.nextID.Add(1)
}

func (h *Hub) run(ctx context.Context) {
	h.logger.Info().Msg("hub running")
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.handleConnect(client)
		case client := <-h.unregister:
			h.handleDisconnect(client)
		case mv := <-h.moves:
			h.handleMove(mv)
		case msg := <-h.broadcast:
			h.registry.broadcast(msg)
		}
	}
}

func (h *Hub) handleConnect(c *Client) {
	if err := h.registry.register(c.id, c); err != nil {
		h.logger.Error().Uint64("client_id", c.id).Err(err).Msg("rejecting connection")
		close(c.send)
		return
	}
	h.logger.Info().Uint64("client_id", c.id).Int("clients", h.registry.len()).Msg("client connected")

	first, second, paired := h.queue.enqueue(c.id)
	if !paired {
		return
	}
	m, err := h.matches.createMatch(first, second)
	if err != nil {
		// Unreachable while the queue and table stay in step.
		h.logger.Error().Err(err).Uint64("first", first).Uint64("second", second).Msg("pairing failed")
		return
	}
	h.logger.Info().
		Str("match_id", m.id).
		Uint64("player_x", first).
		Uint64("player_o", second).
		Msg("match created")
	h.sendJSON(first, joinMessage{Method: "join", Symbol: "X", Turn: "X"})
	h.sendJSON(second, joinMessage{Method: "join", Symbol: "O", Turn: "X"})
}

func (h *Hub) handleMove(mv *inboundMove) {
	id := mv.client.id
	m, err := h.matches.lookup(id)
	if err != nil {
		h.logger.Warn().Uint64("client_id", id).Err(err).Msg("dropping move")
		return
	}

	symbol := m.symbolOf(id)
	if mv.symbol != symbol {
		h.logger.Warn().Uint64("client_id", id).Str("symbol", mv.symbol).Msg("dropping move: symbol is not the sender's")
		return
	}
	if m.turn != symbol {
		h.logger.Warn().Uint64("client_id", id).Str("symbol", symbol).Msg("dropping move: played out of turn")
		return
	}
	if _, err := validateMove(m.board, mv.field, symbol); err != nil {
		h.logger.Warn().Uint64("client_id", id).Err(err).Msg("dropping move")
		return
	}

	m.board = mv.field
	opponent := m.opponentOf(id)

	switch {
	case checkWin(m.board):
		h.finishMatch(m, fmt.Sprintf("%s win", symbol), func(ctx context.Context) error {
			return h.store.RecordWin(ctx, playerKey(id), playerKey(opponent))
		})
	case checkDraw(m.board):
		h.finishMatch(m, "Draw", func(ctx context.Context) error {
			return h.store.RecordDraw(ctx, playerKey(id), playerKey(opponent))
		})
	default:
		m.turn = opponentSymbol(symbol)
		h.sendToMatch(m, updateMessage{Method: "update", Turn: m.turn, Field: m.board})
	}
}

func (h *Hub) handleDisconnect(c *Client) {
	registered, ok := h.registry.get(c.id)
	if !ok || registered != c {
		// Duplicate close event for an already-removed connection.
		return
	}

	if h.queue.remove(c.id) {
		h.logger.Info().Uint64("client_id", c.id).Msg("waiting client left")
	} else if m, err := h.matches.lookup(c.id); err == nil {
		opponent := m.opponentOf(c.id)
		h.sendJSON(opponent, leftMessage{Method: "left", Message: "opponent left"})
		h.matches.dissolve(c.id)
		h.logger.Info().
			Str("match_id", m.id).
			Uint64("client_id", c.id).
			Uint64("opponent", opponent).
			Msg("match abandoned")
	}

	h.registry.unregister(c.id)
	close(c.send)
	h.logger.Info().Uint64("client_id", c.id).Int("clients", h.registry.len()).Msg("client disconnected")
}

// finishMatch notifies both sides, tears the match down and hands the
// leaderboard write to a goroutine so a slow store never stalls other
// matches. The refreshed standings come back through the broadcast
// channel, keeping registry iteration on the hub goroutine.
func (h *Hub) finishMatch(m *match, message string, record func(context.Context) error) {
	h.sendToMatch(m, resultMessage{Method: "result", Message: message, Field: m.board})
	h.matches.dissolve(m.x)
	h.logger.Info().Str("match_id", m.id).Str("result", message).Msg("match finished")

	go func() {
		ctx := context.Background()
		if err := record(ctx); err != nil {
			h.logger.Error().Str("match_id", m.id).Err(err).Msg("leaderboard update failed")
			return
		}
		rows, err := h.store.TopN(ctx, leaderboardSize)
		if err != nil {
			h.logger.Error().Err(err).Msg("leaderboard fetch failed")
			return
		}
		raw, err := json.Marshal(leaderboardMessage{Method: "leaderboard", Leaderboard: rows})
		if err != nil {
			h.logger.Error().Err(err).Msg("marshalling leaderboard")
			return
		}
		h.broadcast <- raw
	}()
}

func (h *Hub) sendToMatch(m *match, msg any) {
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Msg("marshalling message")
		return
	}
	h.registry.send(m.x, raw)
	h.registry.send(m.o, raw)
}

func (h *Hub) sendJSON(id uint64, msg any) {
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Msg("marshalling message")
		return
	}
	h.registry.send(id, raw)
}

// playerKey derives the leaderboard attribution key for a connection.
func playerKey(id uint64) string {
	return fmt.Sprintf("Player %d", id)
}
