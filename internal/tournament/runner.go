// Package tournament runs batches of matches: best-of-N series between two
// bots and full round robins. Matches are played through a Runner, either in
// process or by spawning the battlebots binary and reading its exit code.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/config"
	"github.com/vovakirdan/tui-battlebots/internal/registry"
)

// Outcome is what a Runner learned about one match.
type Outcome struct {
	battle.Result

	// Detailed is false when only the final state is known, as with
	// ExecRunner. Health and timing are zero then.
	Detailed bool
}

// Runner plays a single match between two registered bots.
// bot1 takes the player 1 side.
type Runner interface {
	Play(ctx context.Context, bot1, bot2 string) (Outcome, error)
}

// Recorder persists finished matches. *storage.Store implements it.
type Recorder interface {
	SaveResult(series, bot1, bot2 string, res battle.Result) (int64, error)
}

// LocalRunner simulates matches in the current process as fast as possible.
type LocalRunner struct {
	Config config.BattleConfig
	Cues   battle.CueSink
	Logger *log.Logger
}

func (r LocalRunner) Play(ctx context.Context, bot1, bot2 string) (Outcome, error) {
	b1, err := registry.Create(bot1)
	if err != nil {
		return Outcome{}, err
	}
	b2, err := registry.Create(bot2)
	if err != nil {
		return Outcome{}, err
	}

	m, err := battle.NewMatch(r.Config, b1, b2,
		battle.WithCueSink(r.Cues),
		battle.WithLogger(r.Logger),
	)
	if err != nil {
		return Outcome{}, err
	}

	res, err := battle.Run(ctx, m)
	if err != nil {
		return Outcome{}, fmt.Errorf("tournament: %s vs %s: %w", bot1, bot2, err)
	}
	return Outcome{Result: res, Detailed: true}, nil
}

// ExecRunner runs each match as a child process and maps its exit code to
// an outcome: 1 player 1 wins, 2 player 2 wins, 3 draw, 0 no result.
// The bot IDs are appended to Args.
type ExecRunner struct {
	Path   string
	Args   []string
	Stdout io.Writer // Defaults to discarding child output
	Stderr io.Writer
}

func (r ExecRunner) Play(ctx context.Context, bot1, bot2 string) (Outcome, error) {
	args := append(append([]string{}, r.Args...), bot1, bot2)
	cmd := exec.CommandContext(ctx, r.Path, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Outcome{}, fmt.Errorf("tournament: cannot run %s: %w", r.Path, err)
		}
		code = exitErr.ExitCode()
	}

	if code < battle.ExitNoResult || code > battle.ExitDraw {
		return Outcome{}, fmt.Errorf("tournament: %s exited with unexpected code %d", r.Path, code)
	}

	return Outcome{Result: battle.Result{
		Names: [2]string{bot1, bot2},
		State: battle.StateFromExitCode(code),
	}}, nil
}
