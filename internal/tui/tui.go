// Package tui is a terminal presenter for the daily game.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/service"
)

type sessionState int

const (
	stateLoading sessionState = iota
	statePlaying
	stateError
)

type model struct {
	state     sessionState
	game      *service.GameService
	catalog   *service.CatalogService
	view      *domain.Presentation
	textInput textinput.Model
	err       error
	status    string
	width     int
	now       func() time.Time
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C8AA6E")).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#0A1428")).
			Background(lipgloss.Color("#C8AA6E")).
			Bold(true)

	clueStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	cellStyle = lipgloss.NewStyle().
			Width(14).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFFFFF"))

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusCorrect:   cellStyle.Background(lipgloss.Color("#2E7D32")),
		domain.StatusPartial:   cellStyle.Background(lipgloss.Color("#F9A825")),
		domain.StatusIncorrect: cellStyle.Background(lipgloss.Color("#C62828")),
	}
)

var attributeLabels = map[domain.Attribute]string{
	domain.AttrGender:      "Gender",
	domain.AttrPositions:   "Position",
	domain.AttrSpecies:     "Species",
	domain.AttrResource:    "Resource",
	domain.AttrRangeType:   "Range",
	domain.AttrRegions:     "Region",
	domain.AttrReleaseYear: "Year",
}

func NewModel(game *service.GameService, catalog *service.CatalogService) model {
	ti := textinput.New()
	ti.Placeholder = "Type a guess..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.ShowSuggestions = true

	return model{
		state:     stateLoading,
		game:      game,
		catalog:   catalog,
		textInput: ti,
		now:       time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadView())
}

type viewLoadedMsg struct {
	view *domain.Presentation
	err  error
}

type guessSubmittedMsg struct {
	outcome *domain.GuessOutcome
	view    *domain.Presentation
	err     error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlR:
			m.status = ""
			return m, m.resetDaily()

		case tea.KeyCtrlN:
			return m, m.changeMode(m.cycleMode(1))

		case tea.KeyCtrlP:
			return m, m.changeMode(m.cycleMode(-1))

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.textInput.Reset()
			return m.runInput(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case viewLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.setView(msg.view)
		return m, nil

	case guessSubmittedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(msg.err.Error())
			return m, nil
		}
		m.status = describeOutcome(msg.outcome)
		if msg.view != nil {
			m.setView(msg.view)
		}
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// runInput handles slash commands; anything else is a guess.
func (m model) runInput(input string) (tea.Model, tea.Cmd) {
	if !strings.HasPrefix(input, "/") {
		return m, m.submitGuess(input)
	}

	fields := strings.Fields(input)
	switch fields[0] {
	case "/quit":
		return m, tea.Quit
	case "/reset":
		m.status = ""
		return m, m.resetDaily()
	case "/mode":
		if len(fields) < 2 {
			m.status = errorStyle.Render("usage: /mode <id>")
			return m, nil
		}
		m.status = ""
		return m, m.changeMode(domain.ModeID(fields[1]))
	default:
		m.status = errorStyle.Render("unknown command " + fields[0])
		return m, nil
	}
}

func (m *model) setView(view *domain.Presentation) {
	m.view = view
	m.state = statePlaying

	names, err := m.catalog.Names(domain.CatalogFor(view.Mode.ID))
	if err != nil {
		names = nil
	}
	m.textInput.SetSuggestions(names)
}

// cycleMode steps through the menu from the current mode, wrapping around.
func (m model) cycleMode(step int) domain.ModeID {
	current := 0
	if m.view != nil {
		for i, gm := range domain.GameModes {
			if gm.ID == m.view.Mode.ID {
				current = i
				break
			}
		}
	}
	n := len(domain.GameModes)
	return domain.GameModes[((current+step)%n+n)%n].ID
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateLoading:
		s = "\n  Loading today's puzzles...\n"

	case statePlaying:
		sections := []string{
			m.renderTabs(),
			"",
			m.renderClue(),
			m.renderGuesses(),
		}
		if !m.view.ComingSoon && m.view.Mode.ID != domain.ModeBravery && !m.view.Complete {
			sections = append(sections, "", m.textInput.View())
		}
		if m.status != "" {
			sections = append(sections, "", m.status)
		}
		sections = append(sections, "", m.renderFooter())
		s = lipgloss.JoinVertical(lipgloss.Left, sections...)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderTabs() string {
	tabs := make([]string, 0, len(domain.GameModes))
	for _, gm := range domain.GameModes {
		if gm.ID == m.view.Mode.ID {
			tabs = append(tabs, activeTabStyle.Render(gm.Name))
		} else {
			tabs = append(tabs, tabStyle.Render(gm.Name))
		}
	}
	return titleStyle.Render("WARDLE") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderClue() string {
	v := m.view
	if v.ComingSoon {
		return clueStyle.Render(fmt.Sprintf("%s is coming soon.", v.Mode.ID))
	}

	var lines []string
	lines = append(lines, titleStyle.Render(v.Mode.Name), v.Mode.Description)

	if v.Loadout != nil {
		lines = append(lines, "", renderLoadout(v.Loadout))
	}
	if c := v.Clue; c != nil {
		if c.Quote != "" {
			lines = append(lines, "", fmt.Sprintf("%q", c.Quote))
		}
		if c.Ability != "" {
			lines = append(lines, "", "Ability: "+string(c.Ability))
		}
		if c.Image != "" {
			image := c.Image
			if v.Zoom > 0 {
				image = fmt.Sprintf("%s (zoom %d%%)", image, v.Zoom)
			}
			lines = append(lines, "", image)
		}
		if c.Hint != "" {
			lines = append(lines, "", "Hint: "+c.Hint)
		}
	}
	if v.Revealed != nil {
		reveal := "Answer: " + v.Revealed.Name
		if v.AbilityName != "" {
			reveal += " (" + v.AbilityName + ")"
		}
		lines = append(lines, "", titleStyle.Render(reveal))
	}

	return clueStyle.Render(strings.Join(lines, "\n"))
}

func renderLoadout(l *domain.Loadout) string {
	var b strings.Builder
	if l.Champion != nil {
		fmt.Fprintf(&b, "Champion: %s\n", l.Champion.Name)
	}
	items := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, it.Name)
	}
	spells := make([]string, 0, len(l.Spells))
	for _, sp := range l.Spells {
		spells = append(spells, sp.Name)
	}
	fmt.Fprintf(&b, "Items:    %s\n", strings.Join(items, ", "))
	fmt.Fprintf(&b, "Spells:   %s", strings.Join(spells, ", "))
	return b.String()
}

func (m model) renderGuesses() string {
	v := m.view
	if len(v.Guesses) == 0 {
		return ""
	}

	if v.Mode.ID == domain.ModeClassic {
		return renderVerdictTable(v.Guesses)
	}

	var lines []string
	for i := len(v.Guesses) - 1; i >= 0; i-- {
		g := v.Guesses[i]
		mark := errorStyle.Render("✗")
		if g.Correct {
			mark = titleStyle.Render("✓")
		}
		lines = append(lines, mark+" "+g.Name)
	}
	return "\n" + strings.Join(lines, "\n")
}

// renderVerdictTable lists classic guesses newest first, one coloured cell
// per attribute.
func renderVerdictTable(guesses []domain.GuessView) string {
	header := []string{cellStyle.Bold(true).Render("Champion")}
	for _, attr := range domain.Attributes {
		header = append(header, cellStyle.Bold(true).Render(attributeLabels[attr]))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i := len(guesses) - 1; i >= 0; i-- {
		g := guesses[i]
		cells := []string{cellStyle.Render(g.Name)}
		for _, attr := range domain.Attributes {
			style, ok := statusStyles[g.Verdict[attr]]
			if !ok {
				style = cellStyle
			}
			cells = append(cells, style.Render(attributeValue(g.Champion, attr)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func attributeValue(c *domain.Champion, attr domain.Attribute) string {
	if c == nil {
		return ""
	}
	switch attr {
	case domain.AttrGender:
		return string(c.Gender)
	case domain.AttrPositions:
		return strings.Join(c.Positions, ", ")
	case domain.AttrSpecies:
		return strings.Join(c.Species, ", ")
	case domain.AttrResource:
		return c.Resource
	case domain.AttrRangeType:
		return string(c.RangeType)
	case domain.AttrRegions:
		return strings.Join(c.Regions, ", ")
	case domain.AttrReleaseYear:
		return fmt.Sprint(c.ReleaseYear)
	}
	return ""
}

func (m model) renderFooter() string {
	v := m.view
	progress := fmt.Sprintf("Attempts: %d", v.Attempts)
	if v.Complete {
		progress += "  Solved!"
	}
	until := v.NextReset.Sub(m.now()).Truncate(time.Minute)
	if until < 0 {
		until = 0
	}
	progress += fmt.Sprintf("  Next puzzle in %s", until)

	help := helpStyle.Render("ctrl+n/ctrl+p: switch mode  ctrl+r: reset  /mode <id>  /quit")
	return progress + "\n" + help
}

func describeOutcome(o *domain.GuessOutcome) string {
	switch {
	case !o.Accepted:
		switch o.Reason {
		case domain.RejectDuplicate:
			return helpStyle.Render(o.Guess + " was already guessed.")
		case domain.RejectAlreadyComplete:
			return helpStyle.Render("Already solved for today.")
		default:
			return helpStyle.Render("This mode is coming soon.")
		}
	case o.Correct:
		return titleStyle.Render(fmt.Sprintf("%s is correct! Solved in %d.", o.Guess, o.Attempts))
	default:
		return fmt.Sprintf("%s is not it.", o.Guess)
	}
}

func (m model) loadView() tea.Cmd {
	return func() tea.Msg {
		view, err := m.game.Presentation(context.Background())
		return viewLoadedMsg{view, err}
	}
}

func (m model) submitGuess(guess string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		outcome, err := m.game.SubmitGuess(ctx, guess)
		if err != nil {
			return guessSubmittedMsg{err: err}
		}
		view, err := m.game.Presentation(ctx)
		return guessSubmittedMsg{outcome: outcome, view: view, err: err}
	}
}

func (m model) changeMode(mode domain.ModeID) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.game.ChangeMode(ctx, mode); err != nil {
			return viewLoadedMsg{err: err}
		}
		view, err := m.game.Presentation(ctx)
		return viewLoadedMsg{view, err}
	}
}

func (m model) resetDaily() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.game.ResetDaily(ctx); err != nil {
			return viewLoadedMsg{err: err}
		}
		view, err := m.game.Presentation(ctx)
		return viewLoadedMsg{view, err}
	}
}

func Run(game *service.GameService, catalog *service.CatalogService) error {
	p := tea.NewProgram(NewModel(game, catalog), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
