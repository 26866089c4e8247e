package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type GuessKind string

const (
	GuessKindClassic GuessKind = "classic"
	GuessKindName    GuessKind = "name"
)

// Guess is one submitted guess. Classic mode guesses carry the whole
// champion so the attribute table can be rebuilt; every other mode stores
// the guessed name only.
//
// On the wire a classic guess is the champion object and a name guess is a
// bare JSON string.
type Guess struct {
	kind     GuessKind
	champion *Champion
	name     string
}

func ClassicGuess(champion *Champion) Guess {
	return Guess{kind: GuessKindClassic, champion: champion}
}

func NameGuess(name string) Guess {
	return Guess{kind: GuessKindName, name: name}
}

func (g Guess) Kind() GuessKind {
	return g.kind
}

// Champion returns the guessed champion for classic guesses.
func (g Guess) Champion() (*Champion, bool) {
	if g.kind != GuessKindClassic || g.champion == nil {
		return nil, false
	}
	return g.champion, true
}

// Name returns the guessed display name regardless of kind.
func (g Guess) Name() string {
	if g.kind == GuessKindClassic && g.champion != nil {
		return g.champion.Name
	}
	return g.name
}

func (g Guess) MarshalJSON() ([]byte, error) {
	if ch, ok := g.Champion(); ok {
		return json.Marshal(ch)
	}
	return json.Marshal(g.name)
}

func (g *Guess) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty guess: %w", ErrMalformedState)
	}

	switch trimmed[0] {
	case '"':
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*g = NameGuess(name)
	case '{':
		var ch Champion
		if err := json.Unmarshal(trimmed, &ch); err != nil {
			return err
		}
		*g = ClassicGuess(&ch)
	default:
		return fmt.Errorf("unexpected guess payload %q: %w", trimmed, ErrMalformedState)
	}
	return nil
}

// RejectReason explains why a submitted guess was not recorded.
type RejectReason string

const (
	RejectNone            RejectReason = ""
	RejectAlreadyComplete RejectReason = "already_complete"
	RejectDuplicate       RejectReason = "duplicate"
	RejectComingSoon      RejectReason = "coming_soon"
)

// GuessOutcome is what the engine reports back for one submission.
type GuessOutcome struct {
	Mode     ModeID       `json:"mode"`
	Guess    string       `json:"guess"`
	Accepted bool         `json:"accepted"`
	Reason   RejectReason `json:"reason,omitempty"`
	Correct  bool         `json:"correct"`
	Verdict  Verdict      `json:"verdict,omitempty"` // classic mode only
	Attempts int          `json:"attempts"`
	Complete bool         `json:"complete"`
}
