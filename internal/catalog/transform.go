package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dom/wardle/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Document limits applied when building the catalog.
const (
	maxWards = 20
	maxIcons = 50
	maxItems = 100
)

const abilityIconURL = "https://cdn.communitydragon.org/latest/champion/%s/ability-icon/%s"

type rawSummary struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Alias string   `json:"alias"`
	Roles []string `json:"roles"`
}

type rawMerakiAbility struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type rawMerakiChampion struct {
	ID          int                           `json:"id"`
	Resource    string                        `json:"resource"`
	AttackType  string                        `json:"attackType"`
	ReleaseDate string                        `json:"releaseDate"`
	Faction     string                        `json:"faction"`
	Abilities   map[string][]rawMerakiAbility `json:"abilities"`
	Skins       []struct {
		SplashPath string `json:"splashPath"`
	} `json:"skins"`
}

type rawSkin struct {
	ID         int    `json:"id"`
	IsBase     bool   `json:"isBase"`
	SplashPath string `json:"splashPath"`
}

type rawWard struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	WardImagePath string `json:"wardImagePath"`
}

type rawIcon struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	ImagePath string `json:"imagePath"`
}

type rawSpell struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconPath    string `json:"iconPath"`
}

type rawItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IconPath    string   `json:"iconPath"`
	PriceTotal  int      `json:"priceTotal"`
	Categories  []string `json:"categories"`
}

type rawDocuments struct {
	summary []rawSummary
	meraki  map[string]rawMerakiChampion
	skins   map[string]rawSkin
	wards   []rawWard
	icons   []rawIcon
	spells  []rawSpell
	items   []rawItem
}

var femaleChampions = map[string]bool{
	"ahri": true, "annie": true, "ashe": true, "caitlyn": true, "diana": true,
	"elise": true, "evelynn": true, "fiora": true, "irelia": true, "janna": true,
	"jinx": true, "karma": true, "katarina": true, "kayle": true, "leblanc": true,
	"leona": true, "lissandra": true, "lulu": true, "lux": true, "miss fortune": true,
	"morgana": true, "nami": true, "nidalee": true, "orianna": true, "poppy": true,
	"quinn": true, "riven": true, "sejuani": true, "shyvana": true, "sivir": true,
	"sona": true, "soraka": true, "syndra": true, "tristana": true, "vayne": true,
	"vi": true, "zyra": true,
}

func transform(raw *rawDocuments, assetBase string) *domain.Catalog {
	return &domain.Catalog{
		Champions: transformChampions(raw.summary, raw.meraki, raw.skins, assetBase),
		Wards:     transformWards(raw.wards, assetBase),
		Icons:     transformIcons(raw.icons, assetBase),
		Spells:    transformSpells(raw.spells, assetBase),
		Items:     transformItems(raw.items, assetBase),
	}
}

func assetURL(base, path string) string {
	if path == "" {
		return ""
	}
	return base + path
}

func transformChampions(summary []rawSummary, meraki map[string]rawMerakiChampion, skins map[string]rawSkin, assetBase string) []*domain.Champion {
	byID := make(map[int]rawMerakiChampion, len(meraki))
	for _, m := range meraki {
		byID[m.ID] = m
	}
	title := cases.Title(language.English)

	champions := make([]*domain.Champion, 0, len(summary))
	for _, s := range summary {
		if s.ID <= 0 {
			continue
		}
		m, hasMeraki := byID[s.ID]
		lower := strings.ToLower(s.Name)

		c := &domain.Champion{
			ID:          strconv.Itoa(s.ID),
			Name:        s.Name,
			Gender:      domain.GenderMale,
			Positions:   domain.PositionsForTags(s.Roles),
			Species:     speciesFor(lower),
			Resource:    resourceFor(m.Resource),
			RangeType:   domain.RangeRanged,
			Regions:     []string{"Runeterra"},
			ReleaseYear: releaseYearFor(s.ID, m.ReleaseDate),
			Quotes:      []string{s.Name + " quote 1", s.Name + " quote 2"},
			Abilities:   abilitiesFor(s.Alias, m.Abilities),
			SplashArt:   splashFor(s, m, skins, assetBase),
		}
		if femaleChampions[lower] {
			c.Gender = domain.GenderFemale
		}
		if hasMeraki && m.AttackType == "MELEE" {
			c.RangeType = domain.RangeMelee
		}
		if f := m.Faction; f != "" && f != "unaffiliated" {
			c.Regions = []string{title.String(strings.ReplaceAll(f, "-", " "))}
		}
		champions = append(champions, c)
	}
	return champions
}

func speciesFor(lowerName string) []string {
	switch {
	case strings.Contains(lowerName, "void"):
		return []string{"Void"}
	case strings.Contains(lowerName, "yordle"):
		return []string{"Yordle"}
	default:
		return []string{"Human"}
	}
}

func resourceFor(resource string) string {
	switch resource {
	case "ENERGY":
		return "Energy"
	case "BLOOD_WELL":
		return "Manaless"
	default:
		return "Mana"
	}
}

// releaseYearFor prefers the published release date and otherwise
// estimates the year from the champion id.
func releaseYearFor(id int, releaseDate string) int {
	if len(releaseDate) >= 4 {
		if year, err := strconv.Atoi(releaseDate[:4]); err == nil && year >= domain.FirstReleaseYear {
			return year
		}
	}
	return domain.FirstReleaseYear + id/20
}

func abilitiesFor(alias string, published map[string][]rawMerakiAbility) map[domain.AbilityKey]domain.Ability {
	abilities := make(map[domain.AbilityKey]domain.Ability, len(domain.AbilityKeys))
	for _, key := range domain.AbilityKeys {
		a := domain.Ability{
			Name: string(key) + " Ability",
			Icon: fmt.Sprintf(abilityIconURL, alias, strings.ToLower(string(key))),
		}
		if list := published[string(key)]; len(list) > 0 && list[0].Name != "" {
			a.Name = list[0].Name
		}
		abilities[key] = a
	}
	return abilities
}

func splashFor(s rawSummary, m rawMerakiChampion, skins map[string]rawSkin, assetBase string) string {
	if len(m.Skins) > 0 && m.Skins[0].SplashPath != "" {
		return m.Skins[0].SplashPath
	}
	if base, ok := skins[strconv.Itoa(s.ID*1000)]; ok && base.IsBase && base.SplashPath != "" {
		return assetURL(assetBase, base.SplashPath)
	}
	alias := strings.ToLower(s.Alias)
	return fmt.Sprintf(
		"https://raw.communitydragon.org/pbe/plugins/rcp-be-lol-game-data/global/default/assets/characters/%s/skins/base/images/%s_splash_centered_0.jpg",
		alias, alias,
	)
}

func transformWards(raw []rawWard, assetBase string) []*domain.Ward {
	wards := make([]*domain.Ward, 0, maxWards)
	for _, w := range raw {
		if len(wards) == maxWards {
			break
		}
		if w.Name == "" || w.ID == 0 {
			continue
		}
		wards = append(wards, &domain.Ward{
			ID:   strconv.Itoa(w.ID),
			Name: w.Name,
			Icon: assetURL(assetBase, w.WardImagePath),
		})
	}
	return wards
}

func transformIcons(raw []rawIcon, assetBase string) []*domain.SummonerIcon {
	icons := make([]*domain.SummonerIcon, 0, maxIcons)
	for _, i := range raw {
		if len(icons) == maxIcons {
			break
		}
		if i.Title == "" || i.ID == 0 {
			continue
		}
		icons = append(icons, &domain.SummonerIcon{
			ID:   strconv.Itoa(i.ID),
			Name: i.Title,
			Icon: assetURL(assetBase, i.ImagePath),
		})
	}
	return icons
}

func transformSpells(raw []rawSpell, assetBase string) []*domain.SummonerSpell {
	spells := make([]*domain.SummonerSpell, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		spells = append(spells, &domain.SummonerSpell{
			ID:          strconv.Itoa(s.ID),
			Name:        s.Name,
			Description: s.Description,
			Icon:        assetURL(assetBase, s.IconPath),
		})
	}
	return spells
}

// transformItems keeps items that declare categories, none of which is
// Consumable.
func transformItems(raw []rawItem, assetBase string) []*domain.Item {
	items := make([]*domain.Item, 0, maxItems)
	for _, it := range raw {
		if len(items) == maxItems {
			break
		}
		if it.Name == "" || it.ID == 0 || it.Categories == nil || slices.Contains(it.Categories, "Consumable") {
			continue
		}
		items = append(items, &domain.Item{
			ID:          strconv.Itoa(it.ID),
			Name:        it.Name,
			Description: it.Description,
			Icon:        assetURL(assetBase, it.IconPath),
			Cost:        it.PriceTotal,
		})
	}
	return items
}
