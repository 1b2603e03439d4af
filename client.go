package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one websocket connection. The hub talks to it exclusively
// through the buffered send channel; the pumps own the socket.
type Client struct {
	id     uint64
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	logger zerolog.Logger
}

func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	id := hub.newClientID()
	client := &Client{
		id:     id,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		logger: hub.logger.With().Uint64("client_id", id).Logger(),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("read failed")
			}
			return
		}

		var envelope struct {
			Method string `json:"method"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			c.logger.Warn().Err(err).Msg("dropping malformed message")
			continue
		}

		switch envelope.Method {
		case "move":
			var msg moveMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				c.logger.Warn().Err(err).Msg("dropping malformed move")
				continue
			}
			c.hub.moves <- &inboundMove{client: c, symbol: msg.Symbol, field: msg.Field}
		default:
			c.logger.Warn().Str("method", envelope.Method).Msg("dropping unknown method")
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
