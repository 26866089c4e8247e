package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
	"github.com/dom/wardle/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStateRepository_LoadEmpty(t *testing.T) {
	repo := memory.NewGameStateRepository()

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestGameStateRepository_SaveIsolatesCaller(t *testing.T) {
	repo := memory.NewGameStateRepository()
	ctx := context.Background()

	state := domain.NewGameState()
	state.StartDay(domain.DailyAnswerSet{domain.ModeClassic: "103"}, time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))
	state.Guesses[domain.ModeQuote] = []domain.Guess{domain.NameGuess("Ahri")}
	require.NoError(t, repo.Save(ctx, state))

	state.Guesses[domain.ModeQuote] = append(state.Guesses[domain.ModeQuote], domain.NameGuess("Zed"))
	state.CurrentMode = domain.ModeSplash

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeClassic, got.CurrentMode)
	assert.Len(t, got.Guesses[domain.ModeQuote], 1)
	assert.Equal(t, "103", got.DailyAnswers[domain.ModeClassic])
}

func TestGameStateRepository_Malformed(t *testing.T) {
	repo := memory.NewGameStateRepository()
	repo.SetRaw([]byte("{not json"))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedState)
}

func TestChampionRepository_ReplacesCatalog(t *testing.T) {
	repo := memory.NewChampionRepository()
	ctx := context.Background()

	require.NoError(t, repo.UpsertMany(ctx, []*domain.Champion{
		{ID: "103", Name: "Ahri"},
		{ID: "84", Name: "Akali"},
	}))
	require.NoError(t, repo.UpsertMany(ctx, []*domain.Champion{
		{ID: "238", Name: "Zed"},
	}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Zed", all[0].Name)

	_, err = repo.GetByID(ctx, "103")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := repo.GetByID(ctx, "238")
	require.NoError(t, err)
	assert.Equal(t, "Zed", got.Name)
}

func TestChampionRepository_EmptyUpsertKeepsCache(t *testing.T) {
	repo := memory.NewChampionRepository()
	ctx := context.Background()

	require.NoError(t, repo.UpsertMany(ctx, []*domain.Champion{{ID: "103", Name: "Ahri"}}))
	require.NoError(t, repo.UpsertMany(ctx, nil))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
