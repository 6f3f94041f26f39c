package audio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

func TestRecorderAndFanout(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	sink := Fanout{a, nil, b}

	sink.Play(battle.CueHit)
	sink.Play(battle.CueHit)
	sink.Play(battle.CueExplode)

	for i, r := range []*Recorder{a, b} {
		if got := r.Count(battle.CueHit); got != 2 {
			t.Errorf("recorder %d: hit count = %d, want 2", i, got)
		}
		if got := r.Cues(); len(got) != 3 || got[2] != battle.CueExplode {
			t.Errorf("recorder %d: cues = %v", i, got)
		}
	}

	// Cues hands out a copy.
	got := a.Cues()
	got[0] = battle.CueBell
	if a.Count(battle.CueBell) != 0 {
		t.Error("changing the returned slice should not touch the recorder")
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	LogSink{Logger: logger}.Play(battle.CueHorn)

	if !strings.Contains(buf.String(), "horn") {
		t.Errorf("log output = %q, want it to mention the cue", buf.String())
	}

	// A sink without a logger is a no-op.
	LogSink{}.Play(battle.CueHorn)
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	bell := Bell{W: &buf}

	bell.Play(battle.CueHit)
	bell.Play(battle.CueGameOver)
	bell.Play(battle.CueBell)

	if buf.String() != "\a\a" {
		t.Errorf("bell output = %q, want two bells", buf.String())
	}
}
