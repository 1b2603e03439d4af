package main

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	ErrDuplicateID      = errors.New("client id already registered")
	ErrUnknownRecipient = errors.New("no connection for recipient")
)

// connRegistry maps client ids to their live connections. It is owned
// by the hub loop, which serializes all access.
type connRegistry struct {
	clients map[uint64]*Client
	logger  zerolog.Logger
}

func newConnRegistry(logger zerolog.Logger) *connRegistry {
	return &connRegistry{
		clients: make(map[uint64]*Client),
		logger:  logger,
	}
}

func (r *connRegistry) register(id uint64, c *Client) error {
	if _, ok := r.clients[id]; ok {
		return ErrDuplicateID
	}
	r.clients[id] = c
	return nil
}

func (r *connRegistry) get(id uint64) (*Client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

// send delivers a serialized message to id. A vanished recipient or a
// saturated send buffer is logged and the message dropped, never fatal.
func (r *connRegistry) send(id uint64, msg []byte) {
	c, ok := r.clients[id]
	if !ok {
		r.logger.Warn().Uint64("client_id", id).Err(ErrUnknownRecipient).Msg("dropping message")
		return
	}
	select {
	case c.send <- msg:
	default:
		r.logger.Warn().Uint64("client_id", id).Msg("send buffer full, dropping message")
	}
}

// broadcast sends msg to every registered connection.
func (r *connRegistry) broadcast(msg []byte) {
	for id := range r.clients {
		r.send(id, msg)
	}
}

// unregister removes id. Idempotent.
func (r *connRegistry) unregister(id uint64) {
	delete(r.clients, id)
}

func (r *connRegistry) len() int {
	return len(r.clients)
}
