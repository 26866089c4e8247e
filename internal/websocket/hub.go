package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/service"
	"github.com/rs/zerolog"
)

// broadcastBuffer bounds the state changes waiting to be pushed. Changes
// beyond it are dropped; the next one carries the full state anyway.
const broadcastBuffer = 64

// Hub keeps every connected presenter in sync with the single game state.
// It listens to the game service and pushes STATE_SYNC after each save.
type Hub struct {
	game       *service.GameService
	logger     zerolog.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *domain.GameState
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	mu         sync.RWMutex
}

func NewHub(game *service.GameService, logger zerolog.Logger) *Hub {
	h := &Hub{
		game:       game,
		logger:     logger.With().Str("component", "hub").Logger(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *domain.GameState, broadcastBuffer),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	game.SetListener(h)
	return h
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()
			h.logger.Debug().Str("client", client.id.String()).Msg("client connected")
			h.syncClient(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mu.Unlock()
			h.logger.Debug().Str("client", client.id.String()).Msg("client disconnected")

		case state := <-h.broadcast:
			h.broadcastState(state)
		}
	}
}

// Stop disconnects every client and blocks until Run has returned.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	close(h.stop)
	<-h.done
}

// StateChanged implements service.StateListener. It is called with the
// game service locked, so it only queues the state.
func (h *Hub) StateChanged(state *domain.GameState) {
	select {
	case h.broadcast <- state:
	default:
		h.logger.Warn().Msg("broadcast queue full, state change dropped")
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

// Unregister safely unregisters a client, handling the case where the hub may be stopped.
func (h *Hub) Unregister(client *Client) {
	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()

	if stopped {
		return
	}

	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcastState(state *domain.GameState) {
	msg, err := h.stateSync(context.Background(), state)
	if err != nil {
		h.logger.Error().Err(err).Str("op", "Hub.broadcastState").Msg("failed to build state sync")
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Str("op", "Hub.broadcastState").Msg("failed to marshal state sync")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.trySend(data)
	}
}

// syncClient sends the current state to one client.
func (h *Hub) syncClient(client *Client) {
	ctx := context.Background()
	state, err := h.game.State(ctx)
	if err != nil {
		client.sendServiceError(err)
		return
	}
	msg, err := h.stateSync(ctx, state)
	if err != nil {
		client.sendServiceError(err)
		return
	}
	client.Send(msg)
}

func (h *Hub) stateSync(ctx context.Context, state *domain.GameState) (*Message, error) {
	view, err := h.game.Presentation(ctx)
	if err != nil && !errors.Is(err, domain.ErrCatalogUnavailable) {
		return nil, err
	}
	return NewMessage(MessageTypeStateSync, StateSyncPayload{
		State:        state,
		Presentation: view,
	})
}
