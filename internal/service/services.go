package service

import (
	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/daily"
	"github.com/dom/wardle/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Auth    *AuthService
	Catalog *CatalogService
	Game    *GameService
}

func NewServices(repos *repository.Repositories, provider *catalog.Provider, clock *daily.Clock, cfg *config.Config, logger zerolog.Logger) *Services {
	catalogService := NewCatalogService(provider, logger)
	return &Services{
		Auth:    NewAuthService(cfg.AdminJWTSecret, cfg.AdminTokenTTL),
		Catalog: catalogService,
		Game:    NewGameService(repos.GameState, catalogService, clock, logger),
	}
}
