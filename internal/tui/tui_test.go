package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository/memory"
	"github.com/dom/wardle/internal/service"
	"github.com/dom/wardle/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	catalogService := service.NewCatalogService(catalog.NewProvider(nil, nil, zerolog.Nop()), zerolog.Nop())
	catalogService.Set(testutil.SampleCatalog(), domain.CatalogSnapshot{Source: catalog.SourceBundled})
	clock := testutil.NewTestClock(testutil.TestDate)
	game := service.NewGameService(memory.NewGameStateRepository(), catalogService, clock.Clock(), zerolog.Nop())

	m := NewModel(game, catalogService)
	m.now = clock.Now
	return apply(t, m, m.loadView()())
}

func apply(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated
}

// send delivers a message and, when the model answers with one of its own
// commands, runs it and delivers the result too.
func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	updated := next.(model)
	require.NotNil(t, cmd)
	return apply(t, updated, cmd())
}

func enter(t *testing.T, m model, input string) model {
	t.Helper()
	m.textInput.SetValue(input)
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_LoadsClassic(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, statePlaying, m.state)
	require.NotNil(t, m.view)
	assert.Equal(t, domain.ModeClassic, m.view.Mode.ID)

	out := m.View()
	assert.Contains(t, out, "WARDLE")
	assert.Contains(t, out, "Guess the champion by attributes")
	assert.Contains(t, out, "Next puzzle in 12h0m0s")
}

func TestModel_SubmitGuess(t *testing.T) {
	tests := []struct {
		name     string
		guesses  []string
		status   string
		complete bool
	}{
		{"wrong", []string{"Lux"}, "Lux is not it.", false},
		{"correct", []string{"Lux", "jinx"}, "Jinx is correct! Solved in 2.", true},
		{"duplicate", []string{"Lux", "lux"}, "Lux was already guessed.", false},
		{"unknown", []string{"Teemo"}, "guess does not match any catalog entry", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			for _, g := range tt.guesses {
				m = enter(t, m, g)
			}

			assert.Contains(t, m.status, tt.status)
			assert.Equal(t, tt.complete, m.view.Complete)
			assert.Empty(t, m.textInput.Value())
		})
	}
}

func TestModel_ClassicTable(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "Garen")

	out := m.View()
	assert.Contains(t, out, "Garen")
	assert.Contains(t, out, "Demacia")
	for _, label := range attributeLabels {
		assert.Contains(t, out, label)
	}
}

func TestModel_CycleMode(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, domain.ModeQuote, m.view.Mode.ID)
	assert.Contains(t, m.View(), "Ahri quote 1")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, domain.ModeBravery, m.view.Mode.ID)

	out := m.View()
	assert.Contains(t, out, "Champion: Zed")
	assert.NotContains(t, out, "Type a guess")
}

func TestModel_Commands(t *testing.T) {
	m := newTestModel(t)

	m = enter(t, m, "/mode ward")
	assert.Equal(t, domain.ModeWard, m.view.Mode.ID)
	assert.Contains(t, m.View(), "https://cdn.test/wards/1.png (zoom 300%)")

	m = enter(t, m, "Snow Day Ward")
	assert.Equal(t, 260, m.view.Zoom)

	m = enter(t, m, "/mode arena")
	assert.True(t, m.view.ComingSoon)
	assert.Contains(t, m.View(), "arena is coming soon.")

	m = enter(t, m, "/reset")
	assert.Equal(t, domain.ModeClassic, m.view.Mode.ID)
	assert.Empty(t, m.view.Guesses)
}

func TestModel_BadCommands(t *testing.T) {
	tests := []struct {
		input  string
		status string
	}{
		{"/mode", "usage: /mode <id>"},
		{"/draft", "unknown command /draft"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := newTestModel(t)
			m.textInput.SetValue(tt.input)
			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			assert.Nil(t, cmd)
			assert.Contains(t, next.(model).status, tt.status)
		})
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t)
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_LoadError(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, viewLoadedMsg{err: errors.New("disk on fire")})

	assert.Equal(t, stateError, m.state)
	assert.Contains(t, m.View(), "disk on fire")
}

func TestModel_EmptyEnterIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m.textInput.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestAttributeValue(t *testing.T) {
	champion := testutil.NewChampionBuilder().
		WithPositions("Mid", "Support").
		WithRegions("Ionia").
		WithReleaseYear(2011).
		Build()

	tests := []struct {
		attr     domain.Attribute
		expected string
	}{
		{domain.AttrGender, "Male"},
		{domain.AttrPositions, "Mid, Support"},
		{domain.AttrSpecies, "Human"},
		{domain.AttrResource, "Mana"},
		{domain.AttrRangeType, "Ranged"},
		{domain.AttrRegions, "Ionia"},
		{domain.AttrReleaseYear, "2011"},
	}

	for _, tt := range tests {
		t.Run(string(tt.attr), func(t *testing.T) {
			assert.Equal(t, tt.expected, attributeValue(champion, tt.attr))
		})
	}
	assert.Empty(t, attributeValue(nil, domain.AttrGender))
}

func TestCycleModeWraps(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, domain.ModeBravery, m.cycleMode(-1))
	assert.Equal(t, domain.ModeQuote, m.cycleMode(1))
	assert.Equal(t, domain.ModeClassic, m.cycleMode(len(domain.GameModes)))

	m.view.Mode.ID = domain.ModeBravery
	assert.Equal(t, domain.ModeClassic, m.cycleMode(1))
}
