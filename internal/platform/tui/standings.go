package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battlebots/internal/registry"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

// Standings browser layout constants
const (
	maxRecent = 100 // Max recent matches to load
)

type standingsView int

const (
	viewStandings standingsView = iota
	viewRecent
)

var viewTitles = [...]string{"STANDINGS", "RECENT MATCHES"}

// StandingsKeyMap defines the key bindings for the standings browser.
type StandingsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StandingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StandingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextView, k.Quit}}
}

// DefaultStandingsKeyMap returns default key bindings.
func DefaultStandingsKeyMap() StandingsKeyMap {
	return StandingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "standings/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StandingsModel is the Bubble Tea model for browsing stored results.
type StandingsModel struct {
	store     *storage.Store
	series    string
	names     map[string]string // Bot ID to display name
	view      standingsView
	standings []storage.Standing
	recent    []storage.MatchRecord
	loadErr   error
	table     table.Model
	help      help.Model
	keys      StandingsKeyMap
	width     int
	height    int
	quitting  bool
}

// NewStandingsModel creates a standings browser over series ("" for all).
func NewStandingsModel(store *storage.Store, series string, width, height int) StandingsModel {
	names := make(map[string]string)
	for _, info := range registry.List() {
		names[info.ID] = info.Name
	}

	m := StandingsModel{
		store:  store,
		series: series,
		names:  names,
		keys:   DefaultStandingsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *StandingsModel) load() {
	if m.store == nil {
		return
	}
	m.standings, m.loadErr = m.store.Standings(m.series)
	if m.loadErr != nil {
		return
	}
	m.recent, m.loadErr = m.store.RecentMatches(maxRecent)
}

// createTable creates a table with the columns of the current view.
func (m *StandingsModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewStandings:
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Bot", Width: 20},
			{Title: "Pts", Width: 5},
			{Title: "W", Width: 4},
			{Title: "D", Width: 4},
			{Title: "L", Width: 4},
		}
	case viewRecent:
		columns = []table.Column{
			{Title: "Player 1", Width: 16},
			{Title: "Player 2", Width: 16},
			{Title: "Result", Width: 20},
			{Title: "HP", Width: 7},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

func (m *StandingsModel) displayName(id string) string {
	if name, ok := m.names[id]; ok && name != id {
		return fmt.Sprintf("%s (%s)", id, name)
	}
	return id
}

// updateTableRows fills the table for the current view.
func (m *StandingsModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewStandings:
		rows = make([]table.Row, len(m.standings))
		for i, st := range m.standings {
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1),
				m.displayName(st.Bot),
				fmt.Sprintf("%d", st.Points()),
				fmt.Sprintf("%d", st.Wins),
				fmt.Sprintf("%d", st.Draws),
				fmt.Sprintf("%d", st.Losses),
			}
		}
	case viewRecent:
		rows = make([]table.Row, len(m.recent))
		for i, r := range m.recent {
			rows[i] = table.Row{
				r.Bot1,
				r.Bot2,
				Outcome(r.Outcome, [2]string{r.Bot1, r.Bot2}),
				fmt.Sprintf("%d-%d", r.Health1, r.Health2),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m StandingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m StandingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % standingsView(len(viewTitles))
			m.table = m.createTable()
			m.updateTableRows()
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

// View renders the browser.
func (m StandingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := viewTitles[m.view]
	if m.series != "" {
		title += " - " + m.series
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m StandingsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No results database available.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case m.view == viewStandings && len(m.standings) == 0,
		m.view == viewRecent && len(m.recent) == 0:
		return emptyStyle.Render("No matches recorded yet.\nRun 'battlebots run' or a tournament first!")
	}
	return m.table.View()
}

// centerText centers each line of text within width using lipgloss.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunStandings runs the standings browser.
func RunStandings(store *storage.Store, series string, width, height int) error {
	p := tea.NewProgram(
		NewStandingsModel(store, series, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
