package api

import (
	"net/http"
	"time"

	"github.com/dom/wardle/internal/api/handlers"
	"github.com/dom/wardle/internal/api/middleware"
	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/service"
	"github.com/dom/wardle/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.RequestIDHandler("requestId", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.ClientOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(services.Game)
	catalogHandler := handlers.NewCatalogHandler(services.Catalog)
	authHandler := handlers.NewAuthHandler()
	wsHandler := handlers.NewWebSocketHandler(hub, cfg.ClientOrigin)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// Game routes
		r.Get("/state", gameHandler.State)
		r.Get("/play", gameHandler.Play)
		r.Post("/guesses", gameHandler.SubmitGuess)
		r.Put("/mode", gameHandler.ChangeMode)
		r.Post("/reset", gameHandler.Reset)
		r.Get("/modes", gameHandler.Modes)
		r.Get("/loadout", gameHandler.Loadout)

		// Catalog routes
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", catalogHandler.GetAll)
			r.Get("/{id}", catalogHandler.Get)
		})
		r.Get("/catalog/{kind}/names", catalogHandler.Names)

		// Admin routes, mounted only when tokens can be verified
		if cfg.AdminEnabled() {
			r.Group(func(r chi.Router) {
				r.Use(middleware.Admin(services.Auth))
				r.Get("/admin/me", authHandler.Me)
				r.Post("/catalog/sync", catalogHandler.Sync)
			})
		}

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
