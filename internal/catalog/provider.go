package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
	"github.com/rs/zerolog"
)

// Catalog sources recorded in domain.CatalogSnapshot.
const (
	SourceRemote  = "remote"
	SourceCache   = "cache"
	SourceBundled = "bundled"
	SourceEmpty   = "empty"
)

// ErrRemoteDisabled is returned by Fetch when no fetcher is configured.
var ErrRemoteDisabled = errors.New("remote catalog disabled")

// Provider loads a catalog from the best available source: the remote
// documents, then the champion cache, then the bundled snapshot.
type Provider struct {
	fetcher *Fetcher
	cache   repository.ChampionRepository
	logger  zerolog.Logger
	now     func() time.Time
}

// NewProvider accepts a nil fetcher (remote disabled) and a nil cache.
func NewProvider(fetcher *Fetcher, cache repository.ChampionRepository, logger zerolog.Logger) *Provider {
	return &Provider{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger.With().Str("component", "catalog").Logger(),
		now:     time.Now,
	}
}

// Load never fails. When every source is unavailable it returns an empty
// catalog, and the game defers answer selection until a later load.
func (p *Provider) Load(ctx context.Context) (*domain.Catalog, domain.CatalogSnapshot) {
	cat, err := p.Fetch(ctx)
	if err == nil {
		return cat, p.snapshot(SourceRemote)
	}
	if !errors.Is(err, ErrRemoteDisabled) {
		p.logger.Warn().Err(err).Str("op", "Provider.Load").Msg("remote catalog unavailable")
	}

	bundled, bundledErr := Bundled()
	if bundledErr != nil {
		p.logger.Error().Err(bundledErr).Str("op", "Provider.Load").Msg("bundled catalog unreadable")
		bundled = &domain.Catalog{}
	}

	if champions := p.cached(ctx); len(champions) > 0 {
		cached := *bundled
		cached.Champions = champions
		return &cached, p.snapshot(SourceCache)
	}

	if !bundled.IsEmpty() {
		return bundled, p.snapshot(SourceBundled)
	}
	p.logger.Error().Str("op", "Provider.Load").Msg("no catalog source available")
	return &domain.Catalog{}, p.snapshot(SourceEmpty)
}

// Fetch loads the remote catalog only and refreshes the champion cache.
func (p *Provider) Fetch(ctx context.Context) (*domain.Catalog, error) {
	if p.fetcher == nil {
		return nil, ErrRemoteDisabled
	}

	cat, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if cat.IsEmpty() {
		return nil, fmt.Errorf("remote catalog: %w", domain.ErrCatalogUnavailable)
	}

	if p.cache != nil {
		if err := p.cache.UpsertMany(ctx, cat.Champions); err != nil {
			p.logger.Warn().Err(err).Str("op", "Provider.Fetch").Msg("failed to cache champions")
		}
	}
	return cat, nil
}

func (p *Provider) cached(ctx context.Context) []*domain.Champion {
	if p.cache == nil {
		return nil
	}
	champions, err := p.cache.GetAll(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Str("op", "Provider.Load").Msg("champion cache unavailable")
		return nil
	}
	return champions
}

func (p *Provider) snapshot(source string) domain.CatalogSnapshot {
	return domain.CatalogSnapshot{Source: source, LoadedAt: p.now()}
}
