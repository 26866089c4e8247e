package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	db, err := sqlite.NewConnection(filepath.Join(t.TempDir(), "state", "wardle.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, context.Background()
}

func TestGameStateRepository_Absent(t *testing.T) {
	db, ctx := newTestRepos(t)
	repo := sqlite.NewGameStateRepository(db)

	state, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestGameStateRepository_Upsert(t *testing.T) {
	db, ctx := newTestRepos(t)
	repo := sqlite.NewGameStateRepository(db)

	state := domain.NewGameState()
	state.StartDay(domain.DailyAnswerSet{domain.ModeQuote: "238"}, time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC))
	state.Guesses[domain.ModeQuote] = []domain.Guess{domain.NameGuess("Yasuo")}
	require.NoError(t, repo.Save(ctx, state))

	state.Guesses[domain.ModeQuote] = append(state.Guesses[domain.ModeQuote], domain.NameGuess("Zed"))
	state.GameComplete[domain.ModeQuote] = true
	require.NoError(t, repo.Save(ctx, state))

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM kv_store").Scan(&rows))
	assert.Equal(t, 1, rows)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.GuessesFor(domain.ModeQuote), 2)
	assert.True(t, got.IsComplete(domain.ModeQuote))
}

func TestGameStateRepository_Malformed(t *testing.T) {
	db, ctx := newTestRepos(t)
	repo := sqlite.NewGameStateRepository(db)

	_, err := db.Exec("INSERT INTO kv_store(key, value) VALUES(?, ?)", domain.StateStorageKey, `{"version": 99}`)
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrMalformedState)
}
