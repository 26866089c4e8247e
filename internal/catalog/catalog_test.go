package catalog_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documents() map[string]any {
	wards := []map[string]any{{"id": 0, "name": "Default Ward", "wardImagePath": "/w/0.png"}}
	for i := 1; i <= 25; i++ {
		wards = append(wards, map[string]any{"id": i, "name": fmt.Sprintf("Ward %d", i), "wardImagePath": fmt.Sprintf("/w/%d.png", i)})
	}
	icons := []map[string]any{{"id": 5, "title": ""}}
	for i := 1; i <= 60; i++ {
		icons = append(icons, map[string]any{"id": i, "title": fmt.Sprintf("Icon %d", i), "imagePath": fmt.Sprintf("/i/%d.jpg", i)})
	}

	return map[string]any{
		"champion-summary.json": []map[string]any{
			{"id": -1, "name": "None", "alias": "None"},
			{"id": 103, "name": "Ahri", "alias": "Ahri", "roles": []string{"mage", "assassin"}},
			{"id": 238, "name": "Zed", "alias": "Zed", "roles": []string{"assassin"}},
			{"id": 141, "name": "Kayn", "alias": "Kayn"},
		},
		"champions.json": map[string]any{
			"Ahri": map[string]any{
				"id": 103, "resource": "MANA", "attackType": "RANGED", "releaseDate": "2011-12-14", "faction": "ionia",
				"abilities": map[string]any{"Q": []map[string]any{{"name": "Orb of Deception"}}},
				"skins":     []map[string]any{{"splashPath": "https://example.test/ahri.jpg"}},
			},
			"Zed": map[string]any{
				"id": 238, "resource": "ENERGY", "attackType": "MELEE", "faction": "unaffiliated",
			},
		},
		"skins.json": map[string]any{
			"238000": map[string]any{"id": 238000, "isBase": true, "splashPath": "/splash/zed.jpg"},
		},
		"ward-skins.json":     wards,
		"summoner-icons.json": icons,
		"summoner-spells.json": []map[string]any{
			{"id": 4, "name": "Flash", "description": "Blink", "iconPath": "/s/flash.png"},
			{"id": 99, "name": "  "},
		},
		"items.json": []map[string]any{
			{"id": 2003, "name": "Health Potion", "categories": []string{"Consumable"}},
			{"id": 3031, "name": "Infinity Edge", "priceTotal": 3400, "categories": []string{"CriticalStrike"}},
			{"id": 3340, "name": "Stealth Ward"},
		},
	}
}

func newDocumentServer(t *testing.T, failing string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	docs := documents()
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == failing {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		doc, ok := docs[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetcher_Fetch(t *testing.T) {
	srv, hits := newDocumentServer(t, "")
	fetcher := catalog.NewFetcher(srv.Client(), catalog.SourcesFrom(srv.URL))

	cat, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(7), hits.Load())

	require.Len(t, cat.Champions, 3, "invalid ids are dropped")

	ahri := cat.Champions[0]
	assert.Equal(t, "103", ahri.ID)
	assert.Equal(t, domain.GenderFemale, ahri.Gender)
	assert.Equal(t, []string{"Mid"}, ahri.Positions)
	assert.Equal(t, "Mana", ahri.Resource)
	assert.Equal(t, domain.RangeRanged, ahri.RangeType)
	assert.Equal(t, 2011, ahri.ReleaseYear)
	assert.Equal(t, []string{"Ionia"}, ahri.Regions)
	assert.Equal(t, "Orb of Deception", ahri.Abilities[domain.AbilityQ].Name)
	assert.Equal(t, "W Ability", ahri.Abilities[domain.AbilityW].Name)
	assert.Equal(t, "https://cdn.communitydragon.org/latest/champion/Ahri/ability-icon/r", ahri.Abilities[domain.AbilityR].Icon)
	assert.Equal(t, "https://example.test/ahri.jpg", ahri.SplashArt)
	assert.Equal(t, []string{"Ahri quote 1", "Ahri quote 2"}, ahri.Quotes)

	zed := cat.Champions[1]
	assert.Equal(t, domain.GenderMale, zed.Gender)
	assert.Equal(t, "Energy", zed.Resource)
	assert.Equal(t, domain.RangeMelee, zed.RangeType)
	assert.Equal(t, []string{"Runeterra"}, zed.Regions)
	assert.Equal(t, domain.FirstReleaseYear+238/20, zed.ReleaseYear)
	assert.Equal(t, srv.URL+"/splash/zed.jpg", zed.SplashArt)

	kayn := cat.Champions[2]
	assert.Equal(t, []string{"Top"}, kayn.Positions, "no roles defaults to top")
	assert.Equal(t, domain.RangeRanged, kayn.RangeType)
	assert.Contains(t, kayn.SplashArt, "kayn_splash_centered_0.jpg")

	require.Len(t, cat.Wards, 20)
	assert.Equal(t, "1", cat.Wards[0].ID, "id 0 is skipped")
	assert.Equal(t, srv.URL+"/w/1.png", cat.Wards[0].Icon)

	require.Len(t, cat.Icons, 50)
	assert.Equal(t, "Icon 1", cat.Icons[0].Name)

	require.Len(t, cat.Spells, 1)
	assert.Equal(t, "Flash", cat.Spells[0].Name)

	require.Len(t, cat.Items, 1)
	assert.Equal(t, "Infinity Edge", cat.Items[0].Name)
	assert.Equal(t, 3400, cat.Items[0].Cost)
}

func TestFetcher_AnyFailureFailsFetch(t *testing.T) {
	srv, _ := newDocumentServer(t, "items.json")
	fetcher := catalog.NewFetcher(srv.Client(), catalog.SourcesFrom(srv.URL))

	_, err := fetcher.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items.json")
}

func TestBundled(t *testing.T) {
	cat, err := catalog.Bundled()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cat.Champions), len(domain.ChampionModes))

	ids := map[string]bool{}
	names := map[string]bool{}
	for _, c := range cat.Champions {
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		assert.False(t, names[domain.FoldName(c.Name)], "duplicate name %s", c.Name)
		ids[c.ID] = true
		names[domain.FoldName(c.Name)] = true

		assert.NotEmpty(t, c.Positions, c.Name)
		assert.NotEmpty(t, c.Quotes, c.Name)
		assert.GreaterOrEqual(t, c.ReleaseYear, domain.FirstReleaseYear, c.Name)
		for _, key := range domain.AbilityKeys {
			assert.NotEmpty(t, c.Abilities[key].Icon, "%s %s", c.Name, key)
		}
	}
	assert.NotEmpty(t, cat.Wards)
	assert.NotEmpty(t, cat.Icons)
	assert.NotEmpty(t, cat.Items)

	_, ok := cat.ResolveName(domain.ModeSpell, "flash")
	assert.True(t, ok)
}

func TestProvider_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("remote caches champions", func(t *testing.T) {
		srv, _ := newDocumentServer(t, "")
		cache := memory.NewChampionRepository()
		p := catalog.NewProvider(catalog.NewFetcher(srv.Client(), catalog.SourcesFrom(srv.URL)), cache, zerolog.Nop())

		cat, snap := p.Load(ctx)
		assert.Equal(t, catalog.SourceRemote, snap.Source)
		assert.False(t, snap.LoadedAt.IsZero())
		assert.Len(t, cat.Champions, 3)

		cached, err := cache.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, cached, 3)
	})

	t.Run("remote failure falls back to cache", func(t *testing.T) {
		srv, _ := newDocumentServer(t, "champions.json")
		cache := memory.NewChampionRepository()
		require.NoError(t, cache.UpsertMany(ctx, []*domain.Champion{{ID: "1", Name: "Annie"}}))
		p := catalog.NewProvider(catalog.NewFetcher(srv.Client(), catalog.SourcesFrom(srv.URL)), cache, zerolog.Nop())

		cat, snap := p.Load(ctx)
		assert.Equal(t, catalog.SourceCache, snap.Source)
		require.Len(t, cat.Champions, 1)
		assert.Equal(t, "Annie", cat.Champions[0].Name)
		assert.NotEmpty(t, cat.Spells, "cosmetic catalogs come from the bundle")
	})

	t.Run("remote disabled without cache uses bundle", func(t *testing.T) {
		p := catalog.NewProvider(nil, nil, zerolog.Nop())

		cat, snap := p.Load(ctx)
		assert.Equal(t, catalog.SourceBundled, snap.Source)
		assert.False(t, cat.IsEmpty())
	})

	t.Run("empty remote catalog is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := strings.TrimPrefix(r.URL.Path, "/")
			if name == "champions.json" || name == "skins.json" {
				w.Write([]byte("{}"))
				return
			}
			w.Write([]byte("[]"))
		}))
		t.Cleanup(srv.Close)
		p := catalog.NewProvider(catalog.NewFetcher(srv.Client(), catalog.SourcesFrom(srv.URL)), nil, zerolog.Nop())

		_, err := p.Fetch(ctx)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)

		_, snap := p.Load(ctx)
		assert.Equal(t, catalog.SourceBundled, snap.Source)
	})
}
