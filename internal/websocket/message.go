package websocket

import (
	"encoding/json"
	"time"

	"github.com/dom/wardle/internal/domain"
)

type MessageType string

const (
	// Client to Server
	MessageTypeSyncState   MessageType = "SYNC_STATE"
	MessageTypeSubmitGuess MessageType = "SUBMIT_GUESS"
	MessageTypeChangeMode  MessageType = "CHANGE_MODE"
	MessageTypeResetDaily  MessageType = "RESET_DAILY"

	// Server to Client
	MessageTypeStateSync   MessageType = "STATE_SYNC"
	MessageTypeGuessResult MessageType = "GUESS_RESULT"
	MessageTypeError       MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Client to Server payloads

type SubmitGuessPayload struct {
	Guess string `json:"guess"`
}

type ChangeModePayload struct {
	Mode domain.ModeID `json:"mode"`
}

// Server to Client payloads

// StateSyncPayload carries the stored record together with the view of its
// current mode, so a presenter can redraw without another request.
type StateSyncPayload struct {
	State        *domain.GameState    `json:"state"`
	Presentation *domain.Presentation `json:"presentation,omitempty"`
}

type GuessResultPayload struct {
	Outcome *domain.GuessOutcome `json:"outcome"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes sent in ErrorPayload.Code
const (
	ErrCodeInvalidPayload     = "INVALID_PAYLOAD"
	ErrCodeUnknownMessage     = "UNKNOWN_MESSAGE"
	ErrCodeUnknownGuess       = "UNKNOWN_GUESS"
	ErrCodeEmptyGuess         = "EMPTY_GUESS"
	ErrCodeInvalidMode        = "INVALID_MODE"
	ErrCodeModeNotGuessable   = "MODE_NOT_GUESSABLE"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)
