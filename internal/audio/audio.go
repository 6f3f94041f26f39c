// Package audio provides battle.CueSink implementations. The terminal has
// no mixer, so cues are logged, rung on the terminal bell or counted.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

// LogSink writes each cue to a logger at debug level.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Play(c battle.Cue) {
	if s.Logger != nil {
		s.Logger.Debug("cue", "sound", c)
	}
}

// Bell writes the terminal bell character for the cues that matter most.
// Write errors are ignored.
type Bell struct {
	W io.Writer
}

func (b Bell) Play(c battle.Cue) {
	switch c {
	case battle.CueBell, battle.CueHorn, battle.CueGameOver:
		if b.W != nil {
			_, _ = io.WriteString(b.W, "\a")
		}
	}
}

// Recorder keeps every cue in order. It is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	cues []battle.Cue
}

func (r *Recorder) Play(c battle.Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []battle.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]battle.Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

// Count returns how many times c was played.
func (r *Recorder) Count(c battle.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// Fanout plays each cue on every sink in order.
type Fanout []battle.CueSink

func (f Fanout) Play(c battle.Cue) {
	for _, s := range f {
		if s != nil {
			s.Play(c)
		}
	}
}
