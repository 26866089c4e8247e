// Package catalog loads the reference data the daily game is played
// against: champions, ward skins, summoner icons, summoner spells and items.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dom/wardle/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	communityDragonBaseURL = "https://raw.communitydragon.org/latest/plugins/rcp-be-lol-game-data/global/default"
	merakiBaseURL          = "https://cdn.merakianalytics.com/riot/lol/resources/latest/en-US"
)

// Sources are the URLs of the seven documents a remote catalog is built from.
type Sources struct {
	ChampionSummary string
	Champions       string
	Skins           string
	WardSkins       string
	SummonerIcons   string
	SummonerSpells  string
	Items           string

	// AssetBaseURL prefixes the relative asset paths found in the documents.
	AssetBaseURL string
}

func DefaultSources() Sources {
	return Sources{
		ChampionSummary: communityDragonBaseURL + "/v1/champion-summary.json",
		Champions:       merakiBaseURL + "/champions.json",
		Skins:           communityDragonBaseURL + "/v1/skins.json",
		WardSkins:       communityDragonBaseURL + "/v1/ward-skins.json",
		SummonerIcons:   communityDragonBaseURL + "/v1/summoner-icons.json",
		SummonerSpells:  communityDragonBaseURL + "/v1/summoner-spells.json",
		Items:           communityDragonBaseURL + "/v1/items.json",
		AssetBaseURL:    communityDragonBaseURL,
	}
}

// SourcesFrom points every document at baseURL, using the upstream file
// names. Used to serve a mirrored copy of the documents.
func SourcesFrom(baseURL string) Sources {
	return Sources{
		ChampionSummary: baseURL + "/champion-summary.json",
		Champions:       baseURL + "/champions.json",
		Skins:           baseURL + "/skins.json",
		WardSkins:       baseURL + "/ward-skins.json",
		SummonerIcons:   baseURL + "/summoner-icons.json",
		SummonerSpells:  baseURL + "/summoner-spells.json",
		Items:           baseURL + "/items.json",
		AssetBaseURL:    baseURL,
	}
}

type Fetcher struct {
	client  *http.Client
	sources Sources
}

func NewFetcher(client *http.Client, sources Sources) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, sources: sources}
}

// Fetch downloads all documents concurrently and transforms them. Any
// failed download fails the whole fetch.
func (f *Fetcher) Fetch(ctx context.Context) (*domain.Catalog, error) {
	var raw rawDocuments

	g, ctx := errgroup.WithContext(ctx)
	targets := []struct {
		url string
		dst any
	}{
		{f.sources.ChampionSummary, &raw.summary},
		{f.sources.Champions, &raw.meraki},
		{f.sources.Skins, &raw.skins},
		{f.sources.WardSkins, &raw.wards},
		{f.sources.SummonerIcons, &raw.icons},
		{f.sources.SummonerSpells, &raw.spells},
		{f.sources.Items, &raw.items},
	}
	for _, target := range targets {
		g.Go(func() error {
			return f.getJSON(ctx, target.url, target.dst)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return transform(&raw, f.sources.AssetBaseURL), nil
}

func (f *Fetcher) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
