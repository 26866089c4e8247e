package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

// UpsertMany stores champions in the given order. Positions restart at zero,
// so a shorter catalog must replace the previous one rather than merge into it.
func (r *championRepository) UpsertMany(ctx context.Context, champions []*domain.Champion) error {
	if len(champions) == 0 {
		return nil
	}

	now := time.Now()
	records := make([]*ChampionRecord, 0, len(champions))
	for i, c := range champions {
		rec, err := newChampionRecord(c, i, now)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("last_synced_at < ?", now).Delete(&ChampionRecord{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(records).Error
	})
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var records []*ChampionRecord
	err := r.db.WithContext(ctx).Order("position ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	champions := make([]*domain.Champion, 0, len(records))
	for _, rec := range records {
		c, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		champions = append(champions, c)
	}
	return champions, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	var rec ChampionRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain()
}
