package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dom/wardle/internal/daily"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
	"github.com/rs/zerolog"
)

// CatalogSource supplies the catalog the game is currently played against.
type CatalogSource interface {
	Catalog() *domain.Catalog
}

// StateListener is told about every persisted state change.
type StateListener interface {
	StateChanged(state *domain.GameState)
}

// GameService owns the single game state record: daily staleness, mode
// switching, guess evaluation and manual reset. Every mutation is persisted
// before the call returns.
type GameService struct {
	mu       sync.Mutex
	repo     repository.GameStateRepository
	catalog  CatalogSource
	clock    *daily.Clock
	logger   zerolog.Logger
	listener StateListener
}

func NewGameService(repo repository.GameStateRepository, catalog CatalogSource, clock *daily.Clock, logger zerolog.Logger) *GameService {
	return &GameService{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
		logger:  logger.With().Str("component", "game").Logger(),
	}
}

// SetListener registers the listener notified after each save.
func (s *GameService) SetListener(l StateListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// State returns the current state, starting a new day first when the stored
// one is stale.
func (s *GameService) State(ctx context.Context) (*domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, _, err := s.current(ctx, "GameService.State")
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

// Answer resolves the hidden answer of mode for today. It reports false when
// the mode has no answer yet or its entity is not in the catalog.
func (s *GameService) Answer(ctx context.Context, mode domain.ModeID) (*domain.Answer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, cat, err := s.current(ctx, "GameService.Answer")
	if err != nil {
		return nil, false, err
	}
	answer, ok := domain.ResolveAnswer(cat, mode, state.DailyAnswers[mode])
	return answer, ok, nil
}

// SubmitGuess evaluates value against the current mode's answer. Guesses
// that cannot be scored are rejected without touching the state and carry
// the reason in the outcome.
func (s *GameService) SubmitGuess(ctx context.Context, value string) (*domain.GuessOutcome, error) {
	const op = "GameService.SubmitGuess"

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, domain.ErrEmptyGuess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, cat, err := s.current(ctx, op)
	if err != nil {
		return nil, err
	}

	mode := state.CurrentMode
	outcome := &domain.GuessOutcome{
		Mode:     mode,
		Attempts: len(state.GuessesFor(mode)),
		Complete: state.IsComplete(mode),
	}

	if mode == domain.ModeBravery {
		return nil, domain.ErrModeNotGuessable
	}
	answer, ok := domain.ResolveAnswer(cat, mode, state.DailyAnswers[mode])
	if !ok || !mode.IsGuessable() {
		outcome.Reason = domain.RejectComingSoon
		return outcome, nil
	}
	if outcome.Complete {
		outcome.Reason = domain.RejectAlreadyComplete
		return outcome, nil
	}

	var guess domain.Guess
	if mode == domain.ModeClassic {
		champion, found := cat.ChampionByName(value)
		if !found {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGuess, value)
		}
		guess = domain.ClassicGuess(champion)
		outcome.Correct = champion.ID == answer.ID
		outcome.Verdict = domain.Compare(champion, answer.Champion)
	} else {
		name, found := cat.ResolveName(mode, value)
		if !found {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGuess, value)
		}
		guess = domain.NameGuess(name)
		outcome.Correct = domain.SameName(name, answer.Name)
	}
	outcome.Guess = guess.Name()

	if state.HasGuessed(mode, guess.Name()) {
		outcome.Reason = domain.RejectDuplicate
		outcome.Correct = false
		outcome.Verdict = nil
		return outcome, nil
	}

	state.Guesses[mode] = append(state.Guesses[mode], guess)
	if outcome.Correct {
		state.GameComplete[mode] = true
	}
	if err := s.save(ctx, op, state); err != nil {
		return nil, err
	}

	outcome.Accepted = true
	outcome.Attempts = len(state.Guesses[mode])
	outcome.Complete = state.IsComplete(mode)

	s.logger.Info().
		Str("op", op).
		Str("mode", string(mode)).
		Str("guess", guess.Name()).
		Bool("correct", outcome.Correct).
		Int("attempts", outcome.Attempts).
		Msg("guess recorded")
	return outcome, nil
}

// ChangeMode switches the current mode. Unknown ids are stored too; they
// are presented as coming soon.
func (s *GameService) ChangeMode(ctx context.Context, mode domain.ModeID) (*domain.GameState, error) {
	const op = "GameService.ChangeMode"

	if strings.TrimSpace(string(mode)) == "" {
		return nil, domain.ErrInvalidMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, _, err := s.current(ctx, op)
	if err != nil {
		return nil, err
	}
	if state.CurrentMode == mode {
		return state.Clone(), nil
	}

	state.CurrentMode = mode
	if err := s.save(ctx, op, state); err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

// ResetDaily starts the day over: fresh answers, no guesses, classic mode.
func (s *GameService) ResetDaily(ctx context.Context) (*domain.GameState, error) {
	const op = "GameService.ResetDaily"

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, op)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	answers, err := daily.SelectAnswers(s.catalog.Catalog(), s.clock.DateKey(now))
	if err != nil {
		return nil, err
	}
	state.StartDay(answers, now)
	state.CurrentMode = domain.DefaultMode

	if err := s.save(ctx, op, state); err != nil {
		return nil, err
	}
	s.logger.Info().Str("op", op).Str("dateKey", s.clock.DateKey(now)).Msg("game reset")
	return state.Clone(), nil
}

// Loadout returns today's Ultimate Bravery loadout.
func (s *GameService) Loadout(ctx context.Context) (*domain.Loadout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, cat, err := s.current(ctx, "GameService.Loadout")
	if err != nil {
		return nil, err
	}
	answer, ok := domain.ResolveAnswer(cat, domain.ModeBravery, state.DailyAnswers[domain.ModeBravery])
	if !ok {
		return nil, domain.ErrCatalogUnavailable
	}
	return daily.SelectLoadout(cat, s.clock.DateKey(state.LastReset), answer.Champion), nil
}

// current loads the state and, when it is stale, starts and persists a new
// day.
func (s *GameService) current(ctx context.Context, op string) (*domain.GameState, *domain.Catalog, error) {
	state, err := s.load(ctx, op)
	if err != nil {
		return nil, nil, err
	}

	cat := s.catalog.Catalog()
	now := s.clock.Now()
	if !s.clock.ShouldReset(state.LastReset, now) && len(state.DailyAnswers) > 0 {
		return state, cat, nil
	}

	answers, err := daily.SelectAnswers(cat, s.clock.DateKey(now))
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		// Selection waits for a catalog; the stale state is served as is.
		s.logger.Debug().Str("op", op).Msg("catalog unavailable, daily answers deferred")
		return state, cat, nil
	}
	if err != nil {
		return nil, nil, err
	}

	state.StartDay(answers, now)
	if err := s.save(ctx, op, state); err != nil {
		return nil, nil, err
	}
	s.logger.Info().Str("op", op).Str("dateKey", s.clock.DateKey(now)).Msg("new day started")
	return state, cat, nil
}

// load reads the stored record. A missing or unreadable record yields a
// fresh state.
func (s *GameService) load(ctx context.Context, op string) (*domain.GameState, error) {
	state, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrMalformedState) {
		s.logger.Warn().Err(err).Str("op", op).Msg("stored state unreadable, starting fresh")
		return domain.NewGameState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if state == nil {
		return domain.NewGameState(), nil
	}
	return state, nil
}

func (s *GameService) save(ctx context.Context, op string, state *domain.GameState) error {
	state.Version = domain.StateVersion
	if err := s.repo.Save(ctx, state); err != nil {
		s.logger.Error().Err(err).Str("op", op).Msg("failed to save state")
		return fmt.Errorf("save state: %w", err)
	}
	if s.listener != nil {
		s.listener.StateChanged(state.Clone())
	}
	return nil
}
