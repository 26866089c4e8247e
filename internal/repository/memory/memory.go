// Package memory keeps the game state in process memory. State is lost on
// restart; it backs tests and STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
)

type gameStateRepository struct {
	mu   sync.RWMutex
	data []byte
}

func NewGameStateRepository() *gameStateRepository {
	return &gameStateRepository{}
}

// Save stores an encoded copy so later mutations of state are not visible
// through Load.
func (r *gameStateRepository) Save(ctx context.Context, state *domain.GameState) error {
	data, err := domain.EncodeGameState(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	return nil
}

func (r *gameStateRepository) Load(ctx context.Context) (*domain.GameState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return nil, nil
	}
	return domain.DecodeGameState(r.data)
}

// SetRaw replaces the stored record with arbitrary bytes.
func (r *gameStateRepository) SetRaw(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
}

type championRepository struct {
	mu        sync.RWMutex
	champions []*domain.Champion
}

func NewChampionRepository() *championRepository {
	return &championRepository{}
}

// UpsertMany replaces the cached catalog, keeping the given order.
func (r *championRepository) UpsertMany(ctx context.Context, champions []*domain.Champion) error {
	if len(champions) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.champions = append([]*domain.Champion(nil), champions...)
	return nil
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Champion, len(r.champions))
	copy(out, r.champions)
	return out, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.champions {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		GameState: NewGameStateRepository(),
		Champion:  NewChampionRepository(),
		Close:     func() error { return nil },
	}
}
