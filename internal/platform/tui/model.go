package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/core"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

const (
	minSpeed = 0.25
	maxSpeed = 16
)

// Pairing names the registry IDs of the two bots in a match.
type Pairing struct {
	Bot1, Bot2 string
}

// NextMatch builds the match to show after the current one finishes.
// Returning a nil match ends the program.
type NextMatch func() (*battle.Match, Pairing, error)

// Model is the Bubble Tea model for watching a match.
type Model struct {
	match   *battle.Match
	pairing Pairing
	next    NextMatch
	series  string

	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	keys    ViewerKeyMap
	help    help.Model
	palette *Palette

	paused   bool
	showHelp bool
	saved    bool
	quitting bool
	err      error
	last     battle.Result
}

// NewModel creates a viewer for m. Results are saved to store when it is
// not nil.
func NewModel(m *battle.Match, p Pairing, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Speed <= 0 {
		cfg.Speed = 1
	}
	return Model{
		match:   m,
		pairing: p,
		screen:  core.NewScreen(cfg.ScreenW, chromeHeight(cfg.ScreenH)),
		store:   store,
		config:  cfg,
		keys:    DefaultViewerKeyMap(),
		help:    help.New(),
		palette: defaultPalette,
	}
}

// WithPalette renders through p, typically one built for an SSH session.
func (m Model) WithPalette(p *Palette) Model {
	if p != nil {
		m.palette = p
	}
	return m
}

// WithNext makes the viewer start another match when one finishes.
func (m Model) WithNext(next NextMatch) Model {
	m.next = next
	return m
}

// WithSeries tags saved results.
func (m Model) WithSeries(series string) Model {
	m.series = series
	return m
}

// chromeHeight reserves the last terminal row for the help line.
func chromeHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tickCmd(m.match.Config().Match.TickRate, m.config.Speed)
}

// Update handles messages and advances the match.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, chromeHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		if m.paused {
			return m.advance()
		}
	case key.Matches(msg, m.keys.Faster):
		m.config.Speed = min(m.config.Speed*2, maxSpeed)
	case key.Matches(msg, m.keys.Slower):
		m.config.Speed = max(m.config.Speed/2, minSpeed)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	}
	return m, nil
}

// handleTick steps once per tick unless paused, and keeps the loop alive.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, m.tick()
	}
	model, cmd := m.advance()
	if cmd != nil {
		return model, cmd
	}
	return model, model.(Model).tick()
}

// advance steps the match once and handles its end.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.match.Step(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if m.match.State().Terminal() && !m.saved {
		m.saveResult()
		m.saved = true
	}

	if !m.match.Done() {
		return m, nil
	}

	m.last = m.match.Result()
	if m.next == nil {
		m.quitting = true
		return m, tea.Quit
	}

	next, pairing, err := m.next()
	if err != nil || next == nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.match = next
	m.pairing = pairing
	m.saved = false
	return m, nil
}

func (m Model) saveResult() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the viewer continues regardless
	m.store.SaveResult(m.series, m.pairing.Bot1, m.pairing.Bot2, m.match.Result())
}

// saveScreenshot writes the current arena as plain text.
func (m *Model) saveScreenshot() {
	DrawFrame(m.screen, m.match.Frame())

	dir := filepath.Join(os.Getenv("HOME"), ".battlebots", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_vs_%s_%s.txt", m.pairing.Bot1, m.pairing.Bot2, timestamp)

	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the arena and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.match.Frame())

	status := fmt.Sprintf(" %.2gx", m.config.Speed)
	if m.paused {
		status += " paused"
	}
	return m.palette.Render(m.screen) + "\n" + m.palette.help.Render(m.help.View(m.keys)+status)
}

// Result returns the outcome of the last match that ran to completion.
func (m Model) Result() battle.Result {
	if m.match != nil && m.match.State().Terminal() {
		return m.match.Result()
	}
	return m.last
}

// Err returns the error that stopped the viewer, if any.
func (m Model) Err() error {
	return m.err
}

// Run shows a single match in the terminal and returns its outcome.
// Quitting early returns the state at that moment.
func Run(match *battle.Match, p Pairing, store *storage.Store, cfg core.RuntimeConfig) (battle.Result, error) {
	model := NewModel(match, p, store, cfg)

	prog := tea.NewProgram(model, tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return match.Result(), err
	}

	fm, ok := final.(Model)
	if !ok {
		return match.Result(), nil
	}
	if fm.Err() != nil {
		return match.Result(), fm.Err()
	}
	return match.Result(), nil
}
