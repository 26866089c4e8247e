package domain

// Loadout is the Ultimate Bravery build for the day.
type Loadout struct {
	Champion *Champion       `json:"champion"`
	Items    []*Item          `json:"items"`
	Spells   []*SummonerSpell `json:"spells"`
}

const (
	LoadoutItems  = 3
	LoadoutSpells = 2
)
