package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dom/wardle/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gameStateRepository struct {
	db  *gorm.DB
	key string
}

func NewGameStateRepository(db *gorm.DB) *gameStateRepository {
	return &gameStateRepository{db: db, key: domain.StateStorageKey}
}

func (r *gameStateRepository) Load(ctx context.Context) (*domain.GameState, error) {
	var rec StoredState
	err := r.db.WithContext(ctx).First(&rec, "key = ?", r.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return domain.DecodeGameState(rec.Payload)
}

func (r *gameStateRepository) Save(ctx context.Context, state *domain.GameState) error {
	data, err := domain.EncodeGameState(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	rec := &StoredState{
		Key:       r.key,
		Payload:   datatypes.JSON(data),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(rec).Error
}
