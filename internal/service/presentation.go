package service

import (
	"context"
	"strings"

	"github.com/dom/wardle/internal/daily"
	"github.com/dom/wardle/internal/domain"
)

// Presentation builds the view of the current mode.
func (s *GameService) Presentation(ctx context.Context) (*domain.Presentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, cat, err := s.current(ctx, "GameService.Presentation")
	if err != nil {
		return nil, err
	}

	mode := state.CurrentMode
	view := &domain.Presentation{
		Mode:      gameModeFor(mode),
		Guesses:   []domain.GuessView{},
		NextReset: s.clock.NextReset(s.clock.Now()),
	}

	answer, ok := domain.ResolveAnswer(cat, mode, state.DailyAnswers[mode])
	if !ok {
		view.ComingSoon = true
		return view, nil
	}

	dateKey := s.clock.DateKey(state.LastReset)
	if mode == domain.ModeBravery {
		view.Loadout = daily.SelectLoadout(cat, dateKey, answer.Champion)
		return view, nil
	}

	guesses := state.GuessesFor(mode)
	wrong := 0
	for _, g := range guesses {
		gv := domain.GuessView{Name: g.Name()}
		if champion, isChampion := g.Champion(); isChampion && answer.Champion != nil {
			gv.Champion = champion
			gv.Correct = champion.ID == answer.ID
			gv.Verdict = domain.Compare(champion, answer.Champion)
		} else {
			gv.Correct = domain.SameName(g.Name(), answer.Name)
		}
		if !gv.Correct {
			wrong++
		}
		view.Guesses = append(view.Guesses, gv)
	}

	view.Attempts = len(guesses)
	view.Complete = state.IsComplete(mode)
	view.Zoom = domain.ZoomFor(mode, wrong)
	view.Clue = clueFor(mode, answer, dateKey, len(guesses))

	revealed := view.Complete || (mode != domain.ModeClassic && mode != domain.ModeQuote && view.Attempts >= domain.RevealAfterGuesses)
	if revealed {
		view.Revealed = answer
		if mode == domain.ModeAbility {
			view.AbilityName = abilityName(answer.Champion, view.Clue.Ability)
		}
	}
	return view, nil
}

func gameModeFor(mode domain.ModeID) domain.GameMode {
	if m, ok := domain.LookupMode(mode); ok {
		return m
	}
	return domain.GameMode{ID: mode, Name: string(mode)}
}

func clueFor(mode domain.ModeID, answer *domain.Answer, dateKey string, attempts int) *domain.Clue {
	clue := &domain.Clue{}
	switch mode {
	case domain.ModeQuote:
		clue.Quote = daily.QuoteOfTheDay(answer.Champion, dateKey)
	case domain.ModeAbility:
		clue.Ability = daily.AbilityOfTheDay(dateKey)
		clue.Image = answer.Champion.Abilities[clue.Ability].Icon
	case domain.ModeSplash, domain.ModeWard, domain.ModeIcon, domain.ModeSpell:
		clue.Image = answer.Image()
	}

	switch {
	case mode == domain.ModeSpell && attempts >= domain.SpellHintAfterGuesses:
		clue.Hint = answer.Spell.Description
	case mode == domain.ModeIcon && attempts >= domain.IconHintAfterGuesses:
		collection := "general"
		if strings.Contains(answer.Name, "Season") {
			collection = "seasonal"
		}
		clue.Hint = "This icon is from the " + collection + " collection."
	}
	return clue
}

func abilityName(champion *domain.Champion, key domain.AbilityKey) string {
	if a, ok := champion.Abilities[key]; ok && a.Name != "" {
		return a.Name
	}
	return string(key) + " Ability"
}
