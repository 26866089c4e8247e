package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dom/wardle/internal/domain"
)

type gameStateRepository struct {
	db  *sql.DB
	key string
}

func NewGameStateRepository(db *sql.DB) *gameStateRepository {
	return &gameStateRepository{db: db, key: domain.StateStorageKey}
}

func (r *gameStateRepository) Load(ctx context.Context) (*domain.GameState, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM kv_store WHERE key = ?", r.key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return domain.DecodeGameState([]byte(value))
}

func (r *gameStateRepository) Save(ctx context.Context, state *domain.GameState) error {
	data, err := domain.EncodeGameState(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv_store(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		r.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
