package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

// StateStorageKey is the well-known key the game state is persisted under.
const StateStorageKey = "loldle-game-state"

// StateVersion is written with every saved state. Records carrying a newer
// version are treated as malformed.
const StateVersion = 1

// DailyAnswerSet maps a mode to the id of its answer for the day.
type DailyAnswerSet map[ModeID]string

// GameState is the single persisted record for a player.
type GameState struct {
	Version      int                `json:"version,omitempty"`
	CurrentMode  ModeID             `json:"currentMode"`
	DailyAnswers DailyAnswerSet     `json:"dailyAnswers"`
	Guesses      map[ModeID][]Guess `json:"guesses"`
	GameComplete map[ModeID]bool    `json:"gameComplete"`
	LastReset    time.Time          `json:"lastReset"`
}

// NewGameState returns the empty state used on first run and to recover
// from an unreadable record.
func NewGameState() *GameState {
	return &GameState{
		Version:      StateVersion,
		CurrentMode:  DefaultMode,
		DailyAnswers: DailyAnswerSet{},
		Guesses:      map[ModeID][]Guess{},
		GameComplete: map[ModeID]bool{},
	}
}

// Normalize fills nil maps left by older or hand-edited records.
func (s *GameState) Normalize() {
	if s.DailyAnswers == nil {
		s.DailyAnswers = DailyAnswerSet{}
	}
	if s.Guesses == nil {
		s.Guesses = map[ModeID][]Guess{}
	}
	if s.GameComplete == nil {
		s.GameComplete = map[ModeID]bool{}
	}
	if s.CurrentMode == "" {
		s.CurrentMode = DefaultMode
	}
}

// Clone returns a copy whose maps and guess slices can be mutated freely.
// Guessed champions are shared; they are read-only catalog entries.
func (s *GameState) Clone() *GameState {
	out := *s
	out.DailyAnswers = maps.Clone(s.DailyAnswers)
	out.GameComplete = maps.Clone(s.GameComplete)
	out.Guesses = make(map[ModeID][]Guess, len(s.Guesses))
	for mode, guesses := range s.Guesses {
		out.Guesses[mode] = slices.Clone(guesses)
	}
	out.Normalize()
	return &out
}

func (s *GameState) GuessesFor(mode ModeID) []Guess {
	return s.Guesses[mode]
}

func (s *GameState) IsComplete(mode ModeID) bool {
	return s.GameComplete[mode]
}

// HasGuessed reports whether name was already guessed in mode.
func (s *GameState) HasGuessed(mode ModeID, name string) bool {
	for _, g := range s.Guesses[mode] {
		if SameName(g.Name(), name) {
			return true
		}
	}
	return false
}

// StartDay replaces the answers and clears all progress.
func (s *GameState) StartDay(answers DailyAnswerSet, now time.Time) {
	s.Version = StateVersion
	s.DailyAnswers = answers
	s.Guesses = map[ModeID][]Guess{}
	s.GameComplete = map[ModeID]bool{}
	s.LastReset = now
}

// gameStateJSON is the stored shape. lastReset is an ISO-8601 string that
// is empty before the first reset.
type gameStateJSON struct {
	Version      int                `json:"version,omitempty"`
	CurrentMode  ModeID             `json:"currentMode"`
	DailyAnswers DailyAnswerSet     `json:"dailyAnswers"`
	Guesses      map[ModeID][]Guess `json:"guesses"`
	GameComplete map[ModeID]bool    `json:"gameComplete"`
	LastReset    string             `json:"lastReset"`
}

func (s GameState) MarshalJSON() ([]byte, error) {
	out := gameStateJSON{
		Version:      s.Version,
		CurrentMode:  s.CurrentMode,
		DailyAnswers: s.DailyAnswers,
		Guesses:      s.Guesses,
		GameComplete: s.GameComplete,
	}
	if !s.LastReset.IsZero() {
		out.LastReset = s.LastReset.Format(time.RFC3339Nano)
	}
	return json.Marshal(out)
}

func (s *GameState) UnmarshalJSON(data []byte) error {
	var in gameStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if in.Version > StateVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedState, in.Version)
	}

	var lastReset time.Time
	if in.LastReset != "" {
		t, err := time.Parse(time.RFC3339Nano, in.LastReset)
		if err != nil {
			return fmt.Errorf("%w: lastReset: %v", ErrMalformedState, err)
		}
		lastReset = t
	}

	*s = GameState{
		Version:      in.Version,
		CurrentMode:  in.CurrentMode,
		DailyAnswers: in.DailyAnswers,
		Guesses:      in.Guesses,
		GameComplete: in.GameComplete,
		LastReset:    lastReset,
	}
	s.Normalize()
	return nil
}

// DecodeGameState parses a stored record. Any failure wraps
// ErrMalformedState.
func DecodeGameState(data []byte) (*GameState, error) {
	var state GameState
	if err := json.Unmarshal(data, &state); err != nil {
		if errors.Is(err, ErrMalformedState) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return &state, nil
}

// EncodeGameState serializes the record for storage.
func EncodeGameState(state *GameState) ([]byte, error) {
	return json.Marshal(state)
}
