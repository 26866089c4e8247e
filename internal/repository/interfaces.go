package repository

import (
	"context"

	"github.com/dom/wardle/internal/domain"
)

// GameStateRepository stores the single game state record under
// domain.StateStorageKey.
//
// Load returns (nil, nil) when nothing has been saved yet, and an error
// wrapping domain.ErrMalformedState when the stored record cannot be read.
type GameStateRepository interface {
	Load(ctx context.Context) (*domain.GameState, error)
	Save(ctx context.Context, state *domain.GameState) error
}

// ChampionRepository caches the last champion catalog fetched from the
// remote sources.
type ChampionRepository interface {
	UpsertMany(ctx context.Context, champions []*domain.Champion) error
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id string) (*domain.Champion, error)
}

type Repositories struct {
	GameState GameStateRepository
	Champion  ChampionRepository // nil when the storage driver has no catalog cache
	Close     func() error
}
