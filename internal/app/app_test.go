package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dom/wardle/internal/app"
	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_BundledCatalog(t *testing.T) {
	cfg := testutil.TestConfig()

	a, err := app.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Equal(t, catalog.SourceBundled, a.Services.Catalog.Snapshot().Source)
	assert.False(t, a.Services.Catalog.Catalog().IsEmpty())

	state, err := a.Services.Game.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeClassic, state.CurrentMode)
	assert.NotEmpty(t, state.DailyAnswers[domain.ModeClassic])
}

func TestOpen_BadTimezone(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.ResetTimezone = "Mars/Olympus_Mons"

	_, err := app.Open(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestOpenRepositories(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		driver      string
		hasChampion bool
		wantErr     bool
	}{
		{config.StorageMemory, true, false},
		{config.StorageFile, false, false},
		{config.StorageSQLite, false, false},
		{"redis", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := testutil.TestConfig()
			cfg.StorageDriver = tt.driver
			cfg.StateDir = filepath.Join(dir, tt.driver)
			cfg.SQLitePath = filepath.Join(dir, "wardle.db")

			repos, err := app.OpenRepositories(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { repos.Close() })

			assert.NotNil(t, repos.GameState)
			assert.Equal(t, tt.hasChampion, repos.Champion != nil)

			state, err := repos.GameState.Load(context.Background())
			require.NoError(t, err)
			assert.Nil(t, state)
		})
	}
}
