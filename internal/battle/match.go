package battle

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battlebots/internal/config"
)

// Match owns the full simulation state of one two-ship battle.
// It is not safe for concurrent use; one goroutine drives Step.
type Match struct {
	cfg      config.BattleConfig
	arena    Arena
	tickRate float64

	bots     [2]Bot
	ships    [2]*Entity
	shots    [2][]*Entity // Projectiles by owner, in creation order
	effects  []*Entity
	powerups []*Entity // Reserved; always empty

	state     State
	ticks     uint64 // Total ticks stepped
	frame     int    // Tick within the current second
	seconds   int    // Whole seconds since match start, countdown included
	exitTicks int
	nextID    uint64
	failed    error

	cues   CueSink
	logger *log.Logger
}

// Option configures a Match.
type Option func(*Match)

// WithCueSink routes sound cues to s.
func WithCueSink(s CueSink) Option {
	return func(m *Match) {
		if s != nil {
			m.cues = s
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMatch validates cfg and places both ships at their starting positions.
// bot1 pilots the ship at start1, bot2 the one at start2.
func NewMatch(cfg config.BattleConfig, bot1, bot2 Bot, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bot1 == nil || bot2 == nil {
		return nil, errors.New("battle: both bots are required")
	}

	m := &Match{
		cfg:      cfg,
		arena:    Arena{Width: float64(cfg.Arena.Width), Height: float64(cfg.Arena.Height)},
		tickRate: cfg.TicksPerSecond(),
		bots:     [2]Bot{bot1, bot2},
		cues:     nopSink{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.ships[0] = m.newShip(bot1.Name(), cfg.Arena.Start1X, cfg.Arena.Start1Y)
	m.ships[1] = m.newShip(bot2.Name(), cfg.Arena.Start2X, cfg.Arena.Start2Y)

	if cfg.Match.CountSecs <= 0 {
		m.begin()
	}
	return m, nil
}

func (m *Match) newShip(name string, x, y int) *Entity {
	p := m.cfg.Player
	e := NewEntity(KindShip, float64(x), float64(y), 0, 0, float64(p.Width), float64(p.Height))
	e.ID = m.allocID()
	e.Health = p.Health
	e.Ship = &Ship{
		Name:      name,
		Torpedoes: p.Torpedoes,
		Phasers:   float64(p.Phasers),
	}
	return e
}

func (m *Match) allocID() uint64 {
	m.nextID++
	return m.nextID
}

// Config returns the configuration the match was built with.
func (m *Match) Config() config.BattleConfig {
	return m.cfg
}

// State returns the current phase.
func (m *Match) State() State {
	return m.state
}

// Done reports whether the match has finished, including its exit delay,
// or was aborted by a failing bot.
func (m *Match) Done() bool {
	if m.failed != nil {
		return true
	}
	return m.state.Terminal() && m.exitTicks <= 0
}

// Err returns the error that aborted the match, if any.
func (m *Match) Err() error {
	return m.failed
}

// TimeLeft returns the seconds remaining before the time limit.
func (m *Match) TimeLeft() int {
	return m.cfg.Match.MatchSecs - m.seconds
}

// Countdown returns the seconds left before the match becomes active.
func (m *Match) Countdown() int {
	return max(m.cfg.Match.CountSecs-m.seconds, 0)
}

// Ticks returns the number of ticks stepped so far.
func (m *Match) Ticks() uint64 {
	return m.ticks
}

// Step advances the simulation by exactly one tick.
func (m *Match) Step() error {
	if m.failed != nil {
		return m.failed
	}
	if m.Done() {
		return ErrMatchOver
	}

	if m.state.Terminal() {
		m.updateEffects()
		m.exitTicks--
		m.advanceClock()
		return nil
	}

	if m.state == StateActive && m.ticks%uint64(m.cfg.Match.TicksPerTurn) == 0 {
		if err := m.takeTurns(); err != nil {
			m.failed = err
			m.logger.Error("match aborted", "error", err)
			return err
		}
	}

	m.updateEffects()

	if m.state == StateActive {
		m.move()
		m.resolveCombat()
		m.evaluate()
	}

	m.advanceClock()
	return nil
}

func (m *Match) move() {
	for _, ship := range m.ships {
		ship.Update(m.arena, m.tickRate)
	}
	m.powerups = m.updateList(m.powerups)
	m.shots[0] = m.updateList(m.shots[0])
	m.shots[1] = m.updateList(m.shots[1])
}

func (m *Match) updateEffects() {
	m.effects = m.updateList(m.effects)
}

func (m *Match) updateList(list []*Entity) []*Entity {
	for _, e := range list {
		if e.Update(m.arena, m.tickRate) {
			e.markRemoved()
		}
	}
	return sweep(list)
}

// evaluate applies the end conditions in order: destruction, then time.
func (m *Match) evaluate() {
	d1, d2 := m.ships[0].Ship.Destroyed, m.ships[1].Ship.Destroyed
	switch {
	case d1 && d2:
		m.finish(StateDraw)
	case d1:
		m.finish(StatePlayer2Wins)
	case d2:
		m.finish(StatePlayer1Wins)
	case m.TimeLeft() <= 0:
		h1, h2 := m.ships[0].Health, m.ships[1].Health
		switch {
		case h1 > h2:
			m.finish(StatePlayer1Wins)
		case h2 > h1:
			m.finish(StatePlayer2Wins)
		default:
			m.finish(StateDraw)
		}
	}
}

func (m *Match) finish(s State) {
	if m.state.Terminal() {
		return
	}
	m.state = s
	m.exitTicks = m.cfg.Match.ExitSecs * m.cfg.Match.TickRate
	m.cues.Play(CueGameOver)
	m.logger.Debug("match over",
		"state", s,
		"seconds", m.seconds,
		"health1", m.ships[0].Health,
		"health2", m.ships[1].Health,
	)
}

func (m *Match) begin() {
	m.state = StateActive
	m.cues.Play(CueHorn)
	m.logger.Debug("match started",
		"player1", m.ships[0].Ship.Name,
		"player2", m.ships[1].Ship.Name,
	)
}

func (m *Match) advanceClock() {
	m.ticks++
	m.frame++
	if m.frame < m.cfg.Match.TickRate {
		return
	}
	m.frame = 0
	m.seconds++

	switch m.state {
	case StatePre:
		if m.seconds >= m.cfg.Match.CountSecs {
			m.begin()
		}
	case StateActive:
		if m.cfg.Match.BellSecs > 0 && m.TimeLeft() == m.cfg.Match.BellSecs {
			m.cues.Play(CueBell)
		}
	}
}

// Result summarises a match for storage and tournament bookkeeping.
type Result struct {
	Names   [2]string
	Health  [2]int
	State   State
	Seconds int
	Ticks   uint64
}

// Margin returns player 1's health minus player 2's.
func (r Result) Margin() int {
	return r.Health[0] - r.Health[1]
}

// String formats the result for logs.
func (r Result) String() string {
	switch r.State.Winner() {
	case Side1:
		return fmt.Sprintf("%s beat %s (%d-%d)", r.Names[0], r.Names[1], r.Health[0], r.Health[1])
	case Side2:
		return fmt.Sprintf("%s beat %s (%d-%d)", r.Names[1], r.Names[0], r.Health[1], r.Health[0])
	}
	if r.State == StateDraw {
		return fmt.Sprintf("%s drew with %s (%d-%d)", r.Names[0], r.Names[1], r.Health[0], r.Health[1])
	}
	return fmt.Sprintf("%s vs %s: %s", r.Names[0], r.Names[1], r.State)
}

// Result returns the current outcome summary.
func (m *Match) Result() Result {
	return Result{
		Names:   [2]string{m.ships[0].Ship.Name, m.ships[1].Ship.Name},
		Health:  [2]int{m.ships[0].Health, m.ships[1].Health},
		State:   m.state,
		Seconds: m.seconds,
		Ticks:   m.ticks,
	}
}
