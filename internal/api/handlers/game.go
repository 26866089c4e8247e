package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/service"
)

type GameHandler struct {
	gameService *service.GameService
}

func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type SubmitGuessRequest struct {
	Guess string `json:"guess"`
}

type ChangeModeRequest struct {
	Mode domain.ModeID `json:"mode"`
}

type ModesResponse struct {
	Modes   []domain.GameMode `json:"modes"`
	Default domain.ModeID     `json:"default"`
}

func (h *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameService.State(r.Context())
	if err != nil {
		writeServiceError(w, r, "game.State", err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	view, err := h.gameService.Presentation(r.Context())
	if err != nil {
		writeServiceError(w, r, "game.Play", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SubmitGuess answers 200 for every scored or rejected guess; the outcome
// says which.
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	var req SubmitGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.gameService.SubmitGuess(r.Context(), req.Guess)
	if err != nil {
		writeServiceError(w, r, "game.SubmitGuess", err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h *GameHandler) ChangeMode(w http.ResponseWriter, r *http.Request) {
	var req ChangeModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.gameService.ChangeMode(r.Context(), req.Mode)
	if err != nil {
		writeServiceError(w, r, "game.ChangeMode", err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameService.ResetDaily(r.Context())
	if err != nil {
		writeServiceError(w, r, "game.Reset", err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *GameHandler) Modes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ModesResponse{
		Modes:   domain.GameModes,
		Default: domain.DefaultMode,
	})
}

func (h *GameHandler) Loadout(w http.ResponseWriter, r *http.Request) {
	loadout, err := h.gameService.Loadout(r.Context())
	if err != nil {
		writeServiceError(w, r, "game.Loadout", err)
		return
	}
	writeJSON(w, http.StatusOK, loadout)
}
