package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-breaker/internal/storage"
)

// maxAttempts is the number of attempts loaded into the table.
const maxAttempts = 100

// AttemptSource lists the best finished attempts. An empty player means
// everyone.
type AttemptSource interface {
	TopAttempts(player string, limit int) ([]storage.Attempt, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "all players / me"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best finished attempts in a table.
type ScoreboardModel struct {
	source   AttemptSource
	player   string // the player shown when onlyMine is set
	onlyMine bool
	attempts []storage.Attempt
	err      error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a scoreboard for player. It starts with the
// attempts of all players.
func NewScoreboardModel(source AttemptSource, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source: source,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadAttempts()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Outcome", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// filter returns the player whose attempts are shown, or "" for everyone.
func (m *ScoreboardModel) filter() string {
	if m.onlyMine {
		return m.player
	}
	return ""
}

func (m *ScoreboardModel) loadAttempts() {
	m.attempts, m.err = nil, nil
	if m.source != nil {
		m.attempts, m.err = m.source.TopAttempts(m.filter(), maxAttempts)
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.attempts))
	for i, a := range m.attempts {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			a.Player,
			a.Outcome,
			fmt.Sprintf("%d", a.Level),
			fmt.Sprintf("%d", a.Score),
			a.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.player != "" {
				m.onlyMine = !m.onlyMine
				m.loadAttempts()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "BEST ATTEMPTS - all players"
	if m.onlyMine {
		title = "BEST ATTEMPTS - " + m.player
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot load attempts:\n" + m.err.Error())
	case len(m.attempts) == 0:
		return emptyStyle.Render("No attempts recorded yet.\nFinish a level to get on the board!")
	}
	return m.table.View()
}

// Attempts returns the attempts currently shown.
func (m ScoreboardModel) Attempts() []storage.Attempt {
	return m.attempts
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source AttemptSource, player string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
