package postgres

import (
	"github.com/dom/wardle/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables this package uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&StoredState{},
		&ChampionRecord{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		GameState: NewGameStateRepository(db),
		Champion:  NewChampionRepository(db),
		Close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}
