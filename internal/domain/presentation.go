package domain

import "time"

// Guess counts at which a mode reveals more of its answer.
const (
	RevealAfterGuesses    = 6
	SpellHintAfterGuesses = 2
	IconHintAfterGuesses  = 3
)

// Zoom levels, in percent, of the image clue in ward and splash mode.
const (
	WardZoomStart   = 300
	WardZoomStep    = 40
	SplashZoomStart = 400
	SplashZoomStep  = 50
	MinZoom         = 100
)

// ZoomFor returns the image zoom after the given number of wrong guesses,
// or 0 for modes whose clue is not zoomed.
func ZoomFor(mode ModeID, wrongGuesses int) int {
	var start, step int
	switch mode {
	case ModeWard:
		start, step = WardZoomStart, WardZoomStep
	case ModeSplash:
		start, step = SplashZoomStart, SplashZoomStep
	default:
		return 0
	}
	return max(MinZoom, start-wrongGuesses*step)
}

// Clue is what the player is shown to guess from.
type Clue struct {
	Quote   string     `json:"quote,omitempty"`
	Ability AbilityKey `json:"ability,omitempty"`
	Image   string     `json:"image,omitempty"`
	Hint    string     `json:"hint,omitempty"`
}

type GuessView struct {
	Name     string    `json:"name"`
	Correct  bool      `json:"correct"`
	Champion *Champion `json:"champion,omitempty"`
	Verdict  Verdict   `json:"verdict,omitempty"`
}

// Presentation is the view of the current mode. Revealed is set once the
// mode is complete or enough guesses have failed.
type Presentation struct {
	Mode        GameMode    `json:"mode"`
	ComingSoon  bool        `json:"comingSoon"`
	Clue        *Clue       `json:"clue,omitempty"`
	Guesses     []GuessView `json:"guesses"`
	Attempts    int         `json:"attempts"`
	Complete    bool        `json:"complete"`
	Zoom        int         `json:"zoom,omitempty"`
	Revealed    *Answer     `json:"revealed,omitempty"`
	AbilityName string      `json:"abilityName,omitempty"`
	Loadout     *Loadout    `json:"loadout,omitempty"`
	NextReset   time.Time   `json:"nextReset"`
}
