package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type RangeType string

const (
	RangeMelee  RangeType = "Melee"
	RangeRanged RangeType = "Ranged"
)

// AbilityKey identifies one of the four champion abilities.
type AbilityKey string

const (
	AbilityQ AbilityKey = "Q"
	AbilityW AbilityKey = "W"
	AbilityE AbilityKey = "E"
	AbilityR AbilityKey = "R"
)

// AbilityKeys lists ability slots in keyboard order
var AbilityKeys = []AbilityKey{AbilityQ, AbilityW, AbilityE, AbilityR}

type Ability struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

type Champion struct {
	ID          string                 `json:"id" yaml:"id"`     // e.g., "103"
	Name        string                 `json:"name" yaml:"name"` // Display name, unique within the catalog
	Gender      Gender                 `json:"gender" yaml:"gender"`
	Positions   []string               `json:"positions" yaml:"positions"` // ["Mid", "Support"]
	Species     []string               `json:"species" yaml:"species"`
	Resource    string                 `json:"resource" yaml:"resource"` // Mana, Energy, Manaless...
	RangeType   RangeType              `json:"rangeType" yaml:"rangeType"`
	Regions     []string               `json:"regions" yaml:"regions"`
	ReleaseYear int                    `json:"releaseYear" yaml:"releaseYear"`
	Quotes      []string               `json:"quotes" yaml:"quotes"`
	Abilities   map[AbilityKey]Ability `json:"abilities" yaml:"abilities"`
	SplashArt   string                 `json:"splashArt" yaml:"splashArt"`
}

// ChampionTag is the class tag published by the game data sources.
type ChampionTag string

const (
	TagFighter  ChampionTag = "Fighter"
	TagTank     ChampionTag = "Tank"
	TagMage     ChampionTag = "Mage"
	TagAssassin ChampionTag = "Assassin"
	TagSupport  ChampionTag = "Support"
	TagMarksman ChampionTag = "Marksman"
)

// FirstReleaseYear is the launch year of the game; no champion predates it.
const FirstReleaseYear = 2009

// CatalogSnapshot records where a loaded catalog came from.
type CatalogSnapshot struct {
	Source   string    `json:"source"` // remote, cache, bundled, empty
	LoadedAt time.Time `json:"loadedAt"`
}
