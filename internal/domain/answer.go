package domain

// Answer is the resolved hidden solution of one mode for the day. Exactly
// one of the entity fields is set, matching the mode's catalog.
type Answer struct {
	Mode     ModeID         `json:"mode"`
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Champion *Champion      `json:"champion,omitempty"`
	Ward     *Ward          `json:"ward,omitempty"`
	Icon     *SummonerIcon  `json:"icon,omitempty"`
	Spell    *SummonerSpell `json:"spell,omitempty"`
}

// ResolveAnswer looks up the entity behind an answer id. It reports false
// for unknown modes and for ids missing from the catalog, including the
// cosmetic placeholders.
func ResolveAnswer(cat *Catalog, mode ModeID, id string) (*Answer, bool) {
	if id == "" {
		return nil, false
	}

	answer := &Answer{Mode: mode, ID: id}
	switch CatalogFor(mode) {
	case CatalogChampions:
		ch, ok := cat.ChampionByID(id)
		if !ok {
			return nil, false
		}
		answer.Champion, answer.Name = ch, ch.Name
	case CatalogWards:
		w, ok := cat.WardByID(id)
		if !ok {
			return nil, false
		}
		answer.Ward, answer.Name = w, w.Name
	case CatalogIcons:
		i, ok := cat.IconByID(id)
		if !ok {
			return nil, false
		}
		answer.Icon, answer.Name = i, i.Name
	case CatalogSpells:
		s, ok := cat.SpellByID(id)
		if !ok {
			return nil, false
		}
		answer.Spell, answer.Name = s, s.Name
	default:
		return nil, false
	}
	return answer, true
}

// Image returns the picture shown as the mode's clue, if any.
func (a *Answer) Image() string {
	switch {
	case a.Champion != nil:
		return a.Champion.SplashArt
	case a.Ward != nil:
		return a.Ward.Icon
	case a.Icon != nil:
		return a.Icon.Icon
	case a.Spell != nil:
		return a.Spell.Icon
	}
	return ""
}
