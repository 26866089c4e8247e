package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
	"github.com/rs/zerolog"
)

// CatalogService holds the catalog in use and swaps it on refresh.
type CatalogService struct {
	mu       sync.RWMutex
	current  *domain.Catalog
	snapshot domain.CatalogSnapshot
	provider *catalog.Provider
	logger   zerolog.Logger
}

func NewCatalogService(provider *catalog.Provider, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		current:  &domain.Catalog{},
		snapshot: domain.CatalogSnapshot{Source: catalog.SourceEmpty},
		provider: provider,
		logger:   logger.With().Str("component", "catalog").Logger(),
	}
}

// Load fills the catalog from the best available source.
func (s *CatalogService) Load(ctx context.Context) domain.CatalogSnapshot {
	cat, snap := s.provider.Load(ctx)
	s.Set(cat, snap)
	s.logger.Info().
		Str("op", "CatalogService.Load").
		Str("source", snap.Source).
		Int("champions", len(cat.Champions)).
		Int("wards", len(cat.Wards)).
		Int("icons", len(cat.Icons)).
		Int("spells", len(cat.Spells)).
		Int("items", len(cat.Items)).
		Msg("catalog loaded")
	return snap
}

// Refresh replaces the catalog with a fresh remote copy. On failure the
// catalog in use is kept.
func (s *CatalogService) Refresh(ctx context.Context) (domain.CatalogSnapshot, error) {
	cat, err := s.provider.Fetch(ctx)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("refresh catalog: %w", err)
	}

	snap := domain.CatalogSnapshot{Source: catalog.SourceRemote, LoadedAt: time.Now()}
	s.Set(cat, snap)
	s.logger.Info().Str("op", "CatalogService.Refresh").Int("champions", len(cat.Champions)).Msg("catalog refreshed")
	return snap, nil
}

// Catalog returns the catalog in use. Callers must treat it as read-only.
func (s *CatalogService) Catalog() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *CatalogService) Snapshot() domain.CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Names returns the display names of one catalog kind for autocomplete.
func (s *CatalogService) Names(kind domain.CatalogKind) ([]string, error) {
	switch kind {
	case domain.CatalogChampions, domain.CatalogWards, domain.CatalogIcons, domain.CatalogSpells, domain.CatalogItems:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCatalog, kind)
	}
	names := s.Catalog().NamesOf(kind)
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *CatalogService) GetChampion(id string) (*domain.Champion, error) {
	champion, ok := s.Catalog().ChampionByID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return champion, nil
}

func (s *CatalogService) Set(cat *domain.Catalog, snap domain.CatalogSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = cat
	s.snapshot = snap
}
