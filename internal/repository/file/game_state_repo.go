// Package file persists the game state as a JSON document on disk, one file
// per storage key.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
)

type gameStateRepository struct {
	path string
	mu   sync.Mutex
}

// NewGameStateRepository stores the record at <dir>/<StateStorageKey>.json.
func NewGameStateRepository(dir string) (*gameStateRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &gameStateRepository{
		path: filepath.Join(dir, domain.StateStorageKey+".json"),
	}, nil
}

func (r *gameStateRepository) Path() string {
	return r.path
}

func (r *gameStateRepository) Load(ctx context.Context) (*domain.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	return domain.DecodeGameState(data)
}

// Save writes to a temp file and renames it over the record, so a crash
// never leaves a half-written state behind.
func (r *gameStateRepository) Save(ctx context.Context, state *domain.GameState) error {
	data, err := domain.EncodeGameState(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

func NewRepositories(dir string) (*repository.Repositories, error) {
	state, err := NewGameStateRepository(dir)
	if err != nil {
		return nil, err
	}
	return &repository.Repositories{
		GameState: state,
		Close:     func() error { return nil },
	}, nil
}
