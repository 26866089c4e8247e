package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/dom/wardle/internal/daily"
	"github.com/dom/wardle/internal/domain"
)

// TestDate is the default "now" of test clocks. Its date key is
// "Fri Oct 16 2026".
var TestDate = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

// ChampionBuilder creates test champions with a builder pattern
type ChampionBuilder struct {
	champion domain.Champion
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	return &ChampionBuilder{
		champion: domain.Champion{
			ID:          "1",
			Name:        "Test Champion",
			Gender:      domain.GenderMale,
			Positions:   []string{"Mid"},
			Species:     []string{"Human"},
			Resource:    "Mana",
			RangeType:   domain.RangeRanged,
			Regions:     []string{"Runeterra"},
			ReleaseYear: 2012,
			Quotes:      []string{"Test quote one", "Test quote two"},
		},
	}
}

func (b *ChampionBuilder) WithID(id string) *ChampionBuilder {
	b.champion.ID = id
	return b
}

func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.champion.Name = name
	return b
}

func (b *ChampionBuilder) WithGender(gender domain.Gender) *ChampionBuilder {
	b.champion.Gender = gender
	return b
}

func (b *ChampionBuilder) WithPositions(positions ...string) *ChampionBuilder {
	b.champion.Positions = positions
	return b
}

func (b *ChampionBuilder) WithSpecies(species ...string) *ChampionBuilder {
	b.champion.Species = species
	return b
}

func (b *ChampionBuilder) WithResource(resource string) *ChampionBuilder {
	b.champion.Resource = resource
	return b
}

func (b *ChampionBuilder) WithRangeType(rangeType domain.RangeType) *ChampionBuilder {
	b.champion.RangeType = rangeType
	return b
}

func (b *ChampionBuilder) WithRegions(regions ...string) *ChampionBuilder {
	b.champion.Regions = regions
	return b
}

func (b *ChampionBuilder) WithReleaseYear(year int) *ChampionBuilder {
	b.champion.ReleaseYear = year
	return b
}

func (b *ChampionBuilder) WithQuotes(quotes ...string) *ChampionBuilder {
	b.champion.Quotes = quotes
	return b
}

// Build returns the champion, filling abilities and splash art from its id
// and name when they were not set.
func (b *ChampionBuilder) Build() *domain.Champion {
	c := b.champion
	if c.Abilities == nil {
		c.Abilities = make(map[domain.AbilityKey]domain.Ability, len(domain.AbilityKeys))
		for _, key := range domain.AbilityKeys {
			c.Abilities[key] = domain.Ability{
				Name: fmt.Sprintf("%s %s", c.Name, key),
				Icon: fmt.Sprintf("https://cdn.test/abilities/%s_%s.png", c.ID, key),
			}
		}
	}
	if c.SplashArt == "" {
		c.SplashArt = fmt.Sprintf("https://cdn.test/splash/%s.jpg", c.ID)
	}
	return &c
}

// SampleCatalog returns a small, fixed catalog. On TestDate it selects
// Jinx for classic, Ahri for quote, Akali for ability, Annie for splash and
// Zed for bravery; the cosmetic picks are the first entry of each list.
func SampleCatalog() *domain.Catalog {
	champ := func(id, name string, gender domain.Gender, resource string, rng domain.RangeType, year int) *ChampionBuilder {
		return NewChampionBuilder().
			WithID(id).
			WithName(name).
			WithGender(gender).
			WithResource(resource).
			WithRangeType(rng).
			WithReleaseYear(year).
			WithQuotes(name+" quote 1", name+" quote 2", name+" quote 3")
	}

	return &domain.Catalog{
		Champions: []*domain.Champion{
			champ("103", "Ahri", domain.GenderFemale, "Mana", domain.RangeRanged, 2011).
				WithPositions("Mid").WithSpecies("Vastayan").WithRegions("Ionia").Build(),
			champ("84", "Akali", domain.GenderFemale, "Energy", domain.RangeMelee, 2010).
				WithPositions("Mid", "Top").WithSpecies("Human").WithRegions("Ionia").Build(),
			champ("1", "Annie", domain.GenderFemale, "Mana", domain.RangeRanged, 2009).
				WithPositions("Mid", "Support").WithSpecies("Human").WithRegions("Noxus").Build(),
			champ("22", "Ashe", domain.GenderFemale, "Mana", domain.RangeRanged, 2009).
				WithPositions("Bottom", "Support").WithSpecies("Human").WithRegions("Freljord").Build(),
			champ("201", "Braum", domain.GenderMale, "Mana", domain.RangeMelee, 2014).
				WithPositions("Support").WithSpecies("Human").WithRegions("Freljord").Build(),
			champ("122", "Darius", domain.GenderMale, "Manaless", domain.RangeMelee, 2012).
				WithPositions("Top").WithSpecies("Human").WithRegions("Noxus").Build(),
			champ("86", "Garen", domain.GenderMale, "Manaless", domain.RangeMelee, 2010).
				WithPositions("Top").WithSpecies("Human").WithRegions("Demacia").Build(),
			champ("222", "Jinx", domain.GenderFemale, "Mana", domain.RangeRanged, 2013).
				WithPositions("Bottom").WithSpecies("Human").WithRegions("Zaun").Build(),
			champ("99", "Lux", domain.GenderFemale, "Mana", domain.RangeRanged, 2010).
				WithPositions("Support", "Mid").WithSpecies("Human").WithRegions("Demacia").Build(),
			champ("238", "Zed", domain.GenderMale, "Energy", domain.RangeMelee, 2012).
				WithPositions("Mid").WithSpecies("Human").WithRegions("Ionia").Build(),
		},
		Wards: []*domain.Ward{
			{ID: "1", Name: "Bat-o'-Lantern Ward", Icon: "https://cdn.test/wards/1.png"},
			{ID: "2", Name: "Gingerbread Ward", Icon: "https://cdn.test/wards/2.png"},
			{ID: "3", Name: "Haunting Ward", Icon: "https://cdn.test/wards/3.png"},
			{ID: "4", Name: "Snow Day Ward", Icon: "https://cdn.test/wards/4.png"},
		},
		Icons: []*domain.SummonerIcon{
			{ID: "1", Name: "Blue Minion Bruiser", Icon: "https://cdn.test/icons/1.jpg"},
			{ID: "7", Name: "Teemo Icon", Icon: "https://cdn.test/icons/7.jpg"},
			{ID: "29", Name: "Rat", Icon: "https://cdn.test/icons/29.jpg"},
			{ID: "6120", Name: "Season 2024 Split 1", Icon: "https://cdn.test/icons/6120.jpg"},
		},
		Spells: []*domain.SummonerSpell{
			{ID: "4", Name: "Flash", Description: "Teleports your champion a short distance.", Icon: "https://cdn.test/spells/flash.png"},
			{ID: "14", Name: "Ignite", Description: "Ignites an enemy champion.", Icon: "https://cdn.test/spells/ignite.png"},
			{ID: "7", Name: "Heal", Description: "Restores health to you and an ally.", Icon: "https://cdn.test/spells/heal.png"},
			{ID: "3", Name: "Exhaust", Description: "Slows an enemy champion.", Icon: "https://cdn.test/spells/exhaust.png"},
		},
		Items: []*domain.Item{
			{ID: "3031", Name: "Infinity Edge", Cost: 3400},
			{ID: "3089", Name: "Rabadon's Deathcap", Cost: 3600},
			{ID: "3078", Name: "Trinity Force", Cost: 3333},
			{ID: "3157", Name: "Zhonya's Hourglass", Cost: 3250},
			{ID: "3068", Name: "Sunfire Aegis", Cost: 2700},
		},
	}
}

// StaticCatalog is a settable catalog source.
type StaticCatalog struct {
	mu  sync.RWMutex
	cat *domain.Catalog
}

func NewStaticCatalog(cat *domain.Catalog) *StaticCatalog {
	return &StaticCatalog{cat: cat}
}

func (s *StaticCatalog) Catalog() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

func (s *StaticCatalog) Set(cat *domain.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat = cat
}

// TestClock is a manually advanced time source.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewTestClock(now time.Time) *TestClock {
	return &TestClock{now: now}
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *TestClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Clock returns a UTC daily clock reading from c.
func (c *TestClock) Clock() *daily.Clock {
	return daily.NewClock(time.UTC).WithNow(c.Now)
}
