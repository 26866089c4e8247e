package handlers

import (
	"net/http"

	"github.com/dom/wardle/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"
)

type WebSocketHandler struct {
	hub      *websocket.Hub
	upgrader ws.Upgrader
}

func NewWebSocketHandler(hub *websocket.Hub, allowedOrigin string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("op", "websocket.Handle").Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
