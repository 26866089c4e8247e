package domain_test

import (
	"testing"

	"github.com/dom/wardle/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCatalog_ResolveName(t *testing.T) {
	cat := &domain.Catalog{
		Champions: []*domain.Champion{{ID: "145", Name: "Kai'Sa"}, {ID: "21", Name: "Miss Fortune"}},
		Wards:     []*domain.Ward{{ID: "0", Name: "Default Ward"}},
		Spells:    []*domain.SummonerSpell{{ID: "4", Name: "Flash"}},
	}

	tests := []struct {
		name  string
		mode  domain.ModeID
		input string
		want  string
		found bool
	}{
		{"champion upper case", domain.ModeQuote, "KAI'SA", "Kai'Sa", true},
		{"champion with space", domain.ModeSplash, "miss fortune", "Miss Fortune", true},
		{"ward", domain.ModeWard, "default ward", "Default Ward", true},
		{"spell", domain.ModeSpell, "FLASH", "Flash", true},
		{"wrong catalog", domain.ModeSpell, "Kai'Sa", "", false},
		{"unknown mode", domain.ModeID("arena"), "Flash", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cat.ResolveName(tt.mode, tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionsForTags(t *testing.T) {
	assert.Equal(t, []string{"Mid"}, domain.PositionsForTags([]string{"Mage", "Assassin"}))
	assert.Equal(t, []string{"Support"}, domain.PositionsForTags([]string{"tank", "support"}))
	assert.Equal(t, []string{"ADC", "Mid"}, domain.PositionsForTags([]string{"Marksman", "Mage"}))
	assert.Equal(t, []string{"Top"}, domain.PositionsForTags(nil))
}

func TestModeID_IsGuessable(t *testing.T) {
	assert.True(t, domain.ModeClassic.IsGuessable())
	assert.True(t, domain.ModeWard.IsGuessable())
	assert.False(t, domain.ModeBravery.IsGuessable())
	assert.False(t, domain.ModeID("arena").IsGuessable())
}

func TestResolveAnswer(t *testing.T) {
	cat := &domain.Catalog{
		Champions: []*domain.Champion{{ID: "103", Name: "Ahri", SplashArt: "ahri.jpg"}},
		Wards:     []*domain.Ward{{ID: "7", Name: "Bee Ward", Icon: "bee.png"}},
		Icons:     []*domain.SummonerIcon{{ID: "29", Name: "Rat", Icon: "rat.png"}},
		Spells:    []*domain.SummonerSpell{{ID: "4", Name: "Flash", Icon: "flash.png"}},
	}

	tests := []struct {
		name      string
		mode      domain.ModeID
		id        string
		wantOK    bool
		wantName  string
		wantImage string
	}{
		{"classic champion", domain.ModeClassic, "103", true, "Ahri", "ahri.jpg"},
		{"bravery champion", domain.ModeBravery, "103", true, "Ahri", "ahri.jpg"},
		{"ward", domain.ModeWard, "7", true, "Bee Ward", "bee.png"},
		{"icon", domain.ModeIcon, "29", true, "Rat", "rat.png"},
		{"spell", domain.ModeSpell, "4", true, "Flash", "flash.png"},
		{"missing champion", domain.ModeQuote, "1", false, "", ""},
		{"ward placeholder", domain.ModeWard, "ward_classic", false, "", ""},
		{"unknown mode", domain.ModeID("emote"), "103", false, "", ""},
		{"empty id", domain.ModeClassic, "", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := domain.ResolveAnswer(cat, tt.mode, tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, answer)
				return
			}
			assert.Equal(t, tt.wantName, answer.Name)
			assert.Equal(t, tt.wantImage, answer.Image())
			assert.Equal(t, tt.mode, answer.Mode)
		})
	}
}

func TestCatalog_NamesOf(t *testing.T) {
	cat := &domain.Catalog{
		Champions: []*domain.Champion{{ID: "1", Name: "Annie"}, {ID: "2", Name: "Olaf"}},
		Items:     []*domain.Item{{ID: "1001", Name: "Boots"}},
	}

	assert.Equal(t, []string{"Annie", "Olaf"}, cat.NamesOf(domain.CatalogChampions))
	assert.Equal(t, []string{"Boots"}, cat.NamesOf(domain.CatalogItems))
	assert.Nil(t, cat.NamesOf(domain.CatalogWards))
	assert.Equal(t, cat.NamesOf(domain.CatalogChampions), cat.Names(domain.ModeSplash))
	assert.Nil(t, cat.Names(domain.ModeID("emote")))
}
