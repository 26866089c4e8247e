package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/websocket"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test WebSocket client
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	messages chan *websocket.Message
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient creates a new WebSocket test client
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		messages: make(chan *websocket.Message, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// readPump reads messages from the WebSocket connection
func (c *WSClient) readPump() {
	defer close(c.messages)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			case c.errors <- err:
			}
			return
		}

		var msg websocket.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.errors <- err
			continue
		}

		select {
		case c.messages <- &msg:
		case <-c.done:
			return
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

func (c *WSClient) send(msgType websocket.MessageType, payload interface{}) {
	c.t.Helper()

	msg := &websocket.Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	}
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			c.t.Fatalf("failed to marshal payload: %v", err)
		}
		msg.Payload = payloadBytes
	}

	data, err := json.Marshal(msg)
	if err != nil {
		c.t.Fatalf("failed to marshal message: %v", err)
	}

	c.mu.Lock()
	err = c.conn.WriteMessage(gorillaWS.TextMessage, data)
	c.mu.Unlock()

	if err != nil {
		c.t.Fatalf("failed to send %s: %v", msgType, err)
	}
}

// SendRaw writes data as a text frame without any envelope.
func (c *WSClient) SendRaw(data []byte) {
	c.t.Helper()

	c.mu.Lock()
	err := c.conn.WriteMessage(gorillaWS.TextMessage, data)
	c.mu.Unlock()

	if err != nil {
		c.t.Fatalf("failed to send raw frame: %v", err)
	}
}

func (c *WSClient) SyncState() {
	c.send(websocket.MessageTypeSyncState, nil)
}

func (c *WSClient) SubmitGuess(guess string) {
	c.send(websocket.MessageTypeSubmitGuess, websocket.SubmitGuessPayload{Guess: guess})
}

func (c *WSClient) ChangeMode(mode domain.ModeID) {
	c.send(websocket.MessageTypeChangeMode, websocket.ChangeModePayload{Mode: mode})
}

func (c *WSClient) ResetDaily() {
	c.send(websocket.MessageTypeResetDaily, nil)
}

// ExpectMessage waits for a message of the specified type
func (c *WSClient) ExpectMessage(msgType websocket.MessageType, timeout time.Duration) *websocket.Message {
	c.t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case msg := <-c.messages:
			if msg == nil {
				c.t.Fatalf("connection closed while waiting for %s", msgType)
			}
			if msg.Type == msgType {
				return msg
			}
		case err := <-c.errors:
			c.t.Fatalf("error while waiting for %s: %v", msgType, err)
		case <-deadline:
			c.t.Fatalf("timeout waiting for message type %s", msgType)
		}
	}
}

// ExpectStateSync waits for and decodes a STATE_SYNC message
func (c *WSClient) ExpectStateSync(timeout time.Duration) *websocket.StateSyncPayload {
	c.t.Helper()

	msg := c.ExpectMessage(websocket.MessageTypeStateSync, timeout)

	var payload websocket.StateSyncPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.t.Fatalf("failed to decode state sync payload: %v", err)
	}

	return &payload
}

// ExpectStateSyncWhere waits for a STATE_SYNC whose state satisfies match,
// skipping earlier syncs.
func (c *WSClient) ExpectStateSyncWhere(timeout time.Duration, match func(*domain.GameState) bool) *websocket.StateSyncPayload {
	c.t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			c.t.Fatalf("timeout waiting for matching state sync")
		}
		payload := c.ExpectStateSync(remaining)
		if payload.State != nil && match(payload.State) {
			return payload
		}
	}
}

// ExpectGuessResult waits for and decodes a GUESS_RESULT message
func (c *WSClient) ExpectGuessResult(timeout time.Duration) *domain.GuessOutcome {
	c.t.Helper()

	msg := c.ExpectMessage(websocket.MessageTypeGuessResult, timeout)

	var payload websocket.GuessResultPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.t.Fatalf("failed to decode guess result payload: %v", err)
	}

	return payload.Outcome
}

// ExpectError waits for and decodes an ERROR message
func (c *WSClient) ExpectError(timeout time.Duration) *websocket.ErrorPayload {
	c.t.Helper()

	msg := c.ExpectMessage(websocket.MessageTypeError, timeout)

	var payload websocket.ErrorPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.t.Fatalf("failed to decode error payload: %v", err)
	}

	return &payload
}

// ExpectErrorWithCode waits for an error with a specific code
func (c *WSClient) ExpectErrorWithCode(code string, timeout time.Duration) *websocket.ErrorPayload {
	c.t.Helper()

	payload := c.ExpectError(timeout)
	if payload.Code != code {
		c.t.Fatalf("expected error code %s, got %s: %s", code, payload.Code, payload.Message)
	}

	return payload
}

// DrainMessages drains all pending messages, waiting for the channel to
// settle first.
func (c *WSClient) DrainMessages() {
	deadline := time.After(100 * time.Millisecond)
	for {
		select {
		case msg := <-c.messages:
			if msg == nil {
				return
			}
			deadline = time.After(50 * time.Millisecond)
		case <-deadline:
			return
		case <-c.done:
			return
		}
	}
}
