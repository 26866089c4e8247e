// Package app assembles the storage, catalog and services from a config.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/daily"
	"github.com/dom/wardle/internal/repository"
	"github.com/dom/wardle/internal/repository/file"
	"github.com/dom/wardle/internal/repository/memory"
	"github.com/dom/wardle/internal/repository/postgres"
	"github.com/dom/wardle/internal/repository/sqlite"
	"github.com/dom/wardle/internal/service"
	"github.com/rs/zerolog"
)

type App struct {
	Config   *config.Config
	Repos    *repository.Repositories
	Services *service.Services
	Clock    *daily.Clock
}

// Open wires the app and loads the catalog. The returned app must be
// closed.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	loc, err := daily.LoadLocation(cfg.ResetTimezone)
	if err != nil {
		return nil, err
	}
	clock := daily.NewClock(loc)

	repos, err := OpenRepositories(cfg)
	if err != nil {
		return nil, err
	}

	var fetcher *catalog.Fetcher
	if cfg.CatalogRemote {
		fetcher = catalog.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, catalog.DefaultSources())
	}
	provider := catalog.NewProvider(fetcher, repos.Champion, logger)

	services := service.NewServices(repos, provider, clock, cfg, logger)
	snap := services.Catalog.Load(ctx)

	logger.Info().
		Str("storage", cfg.StorageDriver).
		Str("catalog", snap.Source).
		Int("champions", len(services.Catalog.Catalog().Champions)).
		Str("timezone", loc.String()).
		Msg("app ready")

	return &App{
		Config:   cfg,
		Repos:    repos,
		Services: services,
		Clock:    clock,
	}, nil
}

// OpenRepositories connects the storage driver named in the config.
func OpenRepositories(cfg *config.Config) (*repository.Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memory.NewRepositories(), nil
	case config.StorageFile:
		return file.NewRepositories(cfg.StateDir)
	case config.StorageSQLite:
		db, err := sqlite.NewConnection(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqlite.NewRepositories(db), nil
	case config.StoragePostgres:
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		return postgres.NewRepositories(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (a *App) Close() error {
	if a.Repos.Close == nil {
		return nil
	}
	return a.Repos.Close()
}
