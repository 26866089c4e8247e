package daily

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/dom/wardle/internal/domain"
)

// Shuffle returns a permuted copy of items using a Fisher-Yates pass from
// the back, pulling exactly one stream value per step.
func Shuffle[T any](items []T, s *Stream) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// pickOne shuffles items with a stream seeded by key and returns the head.
func pickOne[T any](items []T, key string) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return Shuffle(items, NewStream(key))[0], true
}

// subKey derives the seed for a selection that must not depend on the
// champion shuffle, such as a cosmetic catalog or a daily quote. The parts
// lead so that the first pulls already differ between selections.
func subKey(dateKey string, parts ...string) string {
	return strings.Join(append(parts, dateKey), "#")
}

// SelectAnswers picks the answer of every mode for dateKey.
//
// Champion modes get distinct champions from one shuffle of the champion
// catalog. Ward, icon and spell each pick from their own catalog and fall
// back to a placeholder id when that catalog is empty.
func SelectAnswers(cat *domain.Catalog, dateKey string) (domain.DailyAnswerSet, error) {
	if cat.IsEmpty() {
		return nil, domain.ErrCatalogUnavailable
	}

	need := len(domain.ChampionModes)
	shuffled := Shuffle(cat.Champions, NewStream(dateKey))

	picked := make([]string, 0, need)
	seen := make(map[string]bool, need)
	for _, ch := range shuffled {
		if len(picked) == need {
			break
		}
		if seen[ch.ID] {
			continue
		}
		seen[ch.ID] = true
		picked = append(picked, ch.ID)
	}
	if len(picked) < need {
		return nil, fmt.Errorf("%w: %d distinct champions, %d modes", domain.ErrInsufficientCatalog, len(picked), need)
	}

	answers := make(domain.DailyAnswerSet, len(domain.GameModes))
	for i, mode := range domain.ChampionModes {
		answers[mode] = picked[i]
	}

	answers[domain.ModeWard] = pickID(cat.Wards, func(w *domain.Ward) string { return w.ID }, dateKey, domain.ModeWard)
	answers[domain.ModeIcon] = pickID(cat.Icons, func(i *domain.SummonerIcon) string { return i.ID }, dateKey, domain.ModeIcon)
	answers[domain.ModeSpell] = pickID(cat.Spells, func(s *domain.SummonerSpell) string { return s.ID }, dateKey, domain.ModeSpell)

	return answers, nil
}

func pickID[T any](items []T, id func(T) string, dateKey string, mode domain.ModeID) string {
	item, ok := pickOne(items, subKey(dateKey, string(mode)))
	if !ok {
		return domain.PlaceholderAnswers[mode]
	}
	return id(item)
}

// SelectLoadout builds the Ultimate Bravery loadout of the day around the
// given champion.
func SelectLoadout(cat *domain.Catalog, dateKey string, champion *domain.Champion) *domain.Loadout {
	loadout := &domain.Loadout{Champion: champion}
	if cat == nil {
		return loadout
	}

	items := Shuffle(cat.Items, NewStream(subKey(dateKey, string(domain.ModeBravery), "items")))
	loadout.Items = items[:min(domain.LoadoutItems, len(items))]

	spells := Shuffle(cat.Spells, NewStream(subKey(dateKey, string(domain.ModeBravery), "spells")))
	loadout.Spells = spells[:min(domain.LoadoutSpells, len(spells))]

	return loadout
}

// QuoteOfTheDay picks the quote shown in quote mode. It returns "" for a
// champion without quotes.
func QuoteOfTheDay(champion *domain.Champion, dateKey string) string {
	quote, _ := pickOne(champion.Quotes, subKey(dateKey, string(domain.ModeQuote), champion.ID))
	return quote
}

// AbilityOfTheDay picks which ability icon ability mode shows: the sum of
// the date key's code units, modulo the number of abilities.
func AbilityOfTheDay(dateKey string) domain.AbilityKey {
	sum := 0
	for _, unit := range utf16.Encode([]rune(dateKey)) {
		sum += int(unit)
	}
	return domain.AbilityKeys[sum%len(domain.AbilityKeys)]
}
