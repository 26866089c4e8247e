package handlers

import (
	"net/http"
	"time"

	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/service"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type ChampionsResponse struct {
	Champions []*domain.Champion `json:"champions"`
	Source    string             `json:"source"`
	LoadedAt  time.Time          `json:"loadedAt"`
}

type NamesResponse struct {
	Kind  domain.CatalogKind `json:"kind"`
	Names []string           `json:"names"`
}

type SyncResponse struct {
	Synced   int       `json:"synced"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
}

func (h *CatalogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	cat := h.catalogService.Catalog()
	snap := h.catalogService.Snapshot()

	champions := cat.Champions
	if champions == nil {
		champions = []*domain.Champion{}
	}
	writeJSON(w, http.StatusOK, ChampionsResponse{
		Champions: champions,
		Source:    snap.Source,
		LoadedAt:  snap.LoadedAt,
	})
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	champion, err := h.catalogService.GetChampion(id)
	if err != nil {
		writeServiceError(w, r, "catalog.Get", err)
		return
	}
	writeJSON(w, http.StatusOK, champion)
}

func (h *CatalogHandler) Names(w http.ResponseWriter, r *http.Request) {
	kind := domain.CatalogKind(chi.URLParam(r, "kind"))

	names, err := h.catalogService.Names(kind)
	if err != nil {
		writeServiceError(w, r, "catalog.Names", err)
		return
	}
	writeJSON(w, http.StatusOK, NamesResponse{Kind: kind, Names: names})
}

func (h *CatalogHandler) Sync(w http.ResponseWriter, r *http.Request) {
	snap, err := h.catalogService.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, r, "catalog.Sync", err)
		return
	}
	writeJSON(w, http.StatusOK, SyncResponse{
		Synced:   len(h.catalogService.Catalog().Champions),
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt,
	})
}
