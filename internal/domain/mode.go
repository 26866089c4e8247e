package domain

// ModeID identifies a game mode. Unknown ids are valid values; they resolve
// to no answer and are shown as "coming soon".
type ModeID string

const (
	ModeClassic ModeID = "classic"
	ModeQuote   ModeID = "quote"
	ModeAbility ModeID = "ability"
	ModeSplash  ModeID = "splash"
	ModeWard    ModeID = "ward"
	ModeIcon    ModeID = "icon"
	ModeSpell   ModeID = "spell"
	ModeBravery ModeID = "bravery"
)

type GameMode struct {
	ID          ModeID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GameModes lists the modes in menu order
var GameModes = []GameMode{
	{ModeClassic, "Classic", "Guess the champion by attributes", "User"},
	{ModeQuote, "Quote", "Guess the champion by their quote", "MessageSquare"},
	{ModeAbility, "Ability", "Guess the champion by ability icon", "Zap"},
	{ModeSplash, "Splash Art", "Guess the champion by splash art", "Image"},
	{ModeWard, "Ward", "Guess the ward skin", "Eye"},
	{ModeIcon, "Icon", "Guess the summoner icon", "Smile"},
	{ModeSpell, "Spell", "Guess the summoner spell", "Sparkles"},
	{ModeBravery, "Ultimate Bravery", "Random champion loadout", "Shuffle"},
}

// ChampionModes are the modes that draw distinct daily answers from the
// champion catalog. Order matters: it is the assignment order of the
// shuffled champions.
var ChampionModes = []ModeID{ModeClassic, ModeQuote, ModeAbility, ModeSplash, ModeBravery}

// DefaultMode is the mode a fresh game starts in.
const DefaultMode = ModeClassic

func LookupMode(id ModeID) (GameMode, bool) {
	for _, m := range GameModes {
		if m.ID == id {
			return m, true
		}
	}
	return GameMode{}, false
}

// CatalogKind names the catalog a mode draws its answer from.
type CatalogKind string

const (
	CatalogNone      CatalogKind = ""
	CatalogChampions CatalogKind = "champions"
	CatalogWards     CatalogKind = "wards"
	CatalogIcons     CatalogKind = "icons"
	CatalogSpells    CatalogKind = "spells"
	CatalogItems     CatalogKind = "items"
)

func CatalogFor(mode ModeID) CatalogKind {
	switch mode {
	case ModeClassic, ModeQuote, ModeAbility, ModeSplash, ModeBravery:
		return CatalogChampions
	case ModeWard:
		return CatalogWards
	case ModeIcon:
		return CatalogIcons
	case ModeSpell:
		return CatalogSpells
	}
	return CatalogNone
}

// PlaceholderAnswers are used for the cosmetic modes when their catalog
// could not be loaded.
var PlaceholderAnswers = map[ModeID]string{
	ModeWard:  "ward_classic",
	ModeIcon:  "icon_1",
	ModeSpell: "flash",
}

// IsGuessable reports whether the mode accepts guesses. Ultimate Bravery
// only shows a loadout.
func (m ModeID) IsGuessable() bool {
	_, known := LookupMode(m)
	return known && m != ModeBravery
}
