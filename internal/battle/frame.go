package battle

// Frame is a value snapshot of a match for renderers. It shares no memory
// with the match, so it stays valid after further Steps.
type Frame struct {
	State     State
	Ticks     uint64
	Seconds   int
	TimeLeft  int
	Countdown int
	Starting  bool // Within the first second of the active phase
	TickRate  int
	Arena     Arena

	Ships    [2]Entity // Ship payloads are copies too
	Shots    []Entity
	Effects  []Entity
	Powerups []Entity
}

// Frame captures the current state.
func (m *Match) Frame() Frame {
	f := Frame{
		State:     m.state,
		Ticks:     m.ticks,
		Seconds:   m.seconds,
		TimeLeft:  m.TimeLeft(),
		Countdown: m.Countdown(),
		Starting:  m.state == StateActive && m.cfg.Match.CountSecs > 0 && m.seconds == m.cfg.Match.CountSecs,
		TickRate:  m.cfg.Match.TickRate,
		Arena:     m.arena,
		Shots:     make([]Entity, 0, len(m.shots[0])+len(m.shots[1])),
		Effects:   copyAll(m.effects),
		Powerups:  copyAll(m.powerups),
	}
	for i, ship := range m.ships {
		crew := *ship.Ship
		f.Ships[i] = *ship
		f.Ships[i].Ship = &crew
	}
	for _, owned := range m.shots {
		for _, p := range owned {
			f.Shots = append(f.Shots, *p)
		}
	}
	return f
}

func copyAll(list []*Entity) []Entity {
	out := make([]Entity, len(list))
	for i, e := range list {
		out[i] = *e
	}
	return out
}
