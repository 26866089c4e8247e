package domain

import (
	"golang.org/x/text/cases"
)

type Ward struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

type SummonerIcon struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

type SummonerSpell struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	Cost        int    `json:"cost" yaml:"cost"`
}

// Catalog is the read-only reference data the game is played against.
// Slices keep the order they were loaded in; answer selection depends on it.
type Catalog struct {
	Champions []*Champion      `json:"champions" yaml:"champions"`
	Wards     []*Ward          `json:"wards" yaml:"wards"`
	Icons     []*SummonerIcon  `json:"icons" yaml:"icons"`
	Spells    []*SummonerSpell `json:"spells" yaml:"spells"`
	Items     []*Item          `json:"items" yaml:"items"`
}

// FoldName normalizes a display name for case-insensitive comparison.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// SameName reports whether two display names match ignoring case.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}

func (c *Catalog) IsEmpty() bool {
	return c == nil || len(c.Champions) == 0
}

func (c *Catalog) ChampionByID(id string) (*Champion, bool) {
	if c == nil {
		return nil, false
	}
	for _, ch := range c.Champions {
		if ch.ID == id {
			return ch, true
		}
	}
	return nil, false
}

func (c *Catalog) ChampionByName(name string) (*Champion, bool) {
	if c == nil {
		return nil, false
	}
	folded := FoldName(name)
	for _, ch := range c.Champions {
		if FoldName(ch.Name) == folded {
			return ch, true
		}
	}
	return nil, false
}

func (c *Catalog) WardByID(id string) (*Ward, bool) {
	if c == nil {
		return nil, false
	}
	for _, w := range c.Wards {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

func (c *Catalog) IconByID(id string) (*SummonerIcon, bool) {
	if c == nil {
		return nil, false
	}
	for _, i := range c.Icons {
		if i.ID == id {
			return i, true
		}
	}
	return nil, false
}

func (c *Catalog) SpellByID(id string) (*SummonerSpell, bool) {
	if c == nil {
		return nil, false
	}
	for _, s := range c.Spells {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Names returns the display names of the catalog a mode guesses from, in
// catalog order. Modes without a guessable catalog return nil.
func (c *Catalog) Names(mode ModeID) []string {
	return c.NamesOf(CatalogFor(mode))
}

// NamesOf returns the display names of one catalog kind, in catalog order.
func (c *Catalog) NamesOf(kind CatalogKind) []string {
	if c == nil {
		return nil
	}

	var names []string
	switch kind {
	case CatalogChampions:
		for _, ch := range c.Champions {
			names = append(names, ch.Name)
		}
	case CatalogWards:
		for _, w := range c.Wards {
			names = append(names, w.Name)
		}
	case CatalogIcons:
		for _, i := range c.Icons {
			names = append(names, i.Name)
		}
	case CatalogSpells:
		for _, s := range c.Spells {
			names = append(names, s.Name)
		}
	case CatalogItems:
		for _, it := range c.Items {
			names = append(names, it.Name)
		}
	}
	return names
}

// ResolveName finds the canonical spelling of name in the mode's catalog.
func (c *Catalog) ResolveName(mode ModeID, name string) (string, bool) {
	folded := FoldName(name)
	for _, candidate := range c.Names(mode) {
		if FoldName(candidate) == folded {
			return candidate, true
		}
	}
	return "", false
}
