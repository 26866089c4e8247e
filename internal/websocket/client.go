package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/dom/wardle/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

type Client struct {
	id        uuid.UUID
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
	closed    chan struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:     uuid.New(),
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		closed: make(chan struct{}),
	}
}

func (c *Client) ID() uuid.UUID {
	return c.id
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn().Err(err).Str("client", c.id.String()).Msg("websocket read failed")
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Message is not valid JSON")
			continue
		}

		c.handleMessage(&msg)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-c.closed:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close stops the write pump. It is safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

func (c *Client) handleMessage(msg *Message) {
	ctx := context.Background()
	game := c.hub.game

	switch msg.Type {
	case MessageTypeSyncState:
		c.hub.syncClient(c)

	case MessageTypeSubmitGuess:
		var payload SubmitGuessPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Invalid submit guess payload")
			return
		}
		outcome, err := game.SubmitGuess(ctx, payload.Guess)
		if err != nil {
			c.sendServiceError(err)
			return
		}
		c.sendMessage(MessageTypeGuessResult, GuessResultPayload{Outcome: outcome})

	case MessageTypeChangeMode:
		var payload ChangeModePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Invalid change mode payload")
			return
		}
		if _, err := game.ChangeMode(ctx, payload.Mode); err != nil {
			c.sendServiceError(err)
		}

	case MessageTypeResetDaily:
		if _, err := game.ResetDaily(ctx); err != nil {
			c.sendServiceError(err)
		}

	default:
		c.sendError(ErrCodeUnknownMessage, "Unknown message type "+string(msg.Type))
	}
}

func (c *Client) sendServiceError(err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownGuess):
		c.sendError(ErrCodeUnknownGuess, err.Error())
	case errors.Is(err, domain.ErrEmptyGuess):
		c.sendError(ErrCodeEmptyGuess, err.Error())
	case errors.Is(err, domain.ErrInvalidMode):
		c.sendError(ErrCodeInvalidMode, err.Error())
	case errors.Is(err, domain.ErrModeNotGuessable):
		c.sendError(ErrCodeModeNotGuessable, err.Error())
	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.sendError(ErrCodeCatalogUnavailable, err.Error())
	default:
		c.hub.logger.Error().Err(err).Str("client", c.id.String()).Msg("game operation failed")
		c.sendError(ErrCodeInternal, "Internal error")
	}
}

func (c *Client) sendError(code, message string) {
	c.sendMessage(MessageTypeError, ErrorPayload{
		Code:    code,
		Message: message,
	})
}

func (c *Client) sendMessage(msgType MessageType, payload interface{}) {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		c.hub.logger.Error().Err(err).Str("type", string(msgType)).Msg("failed to build message")
		return
	}
	c.Send(msg)
}

func (c *Client) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.hub.logger.Error().Err(err).Msg("failed to marshal message")
		return
	}
	c.trySend(data)
}

// trySend queues data without blocking; a client that stopped reading is
// dropped.
func (c *Client) trySend(data []byte) {
	select {
	case <-c.closed:
		return
	default:
	}

	select {
	case c.send <- data:
	default:
		c.hub.logger.Warn().Str("client", c.id.String()).Msg("send buffer full, closing client")
		c.Close()
	}
}
