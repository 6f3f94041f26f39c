package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/core"
)

// Minimum screen that still fits the HUD, the arena border and a few cells
// of arena.
const (
	minScreenW = 24
	minScreenH = 8
	barWidth   = 10
)

var sideColors = [2]core.Color{core.ColorPlayer1, core.ColorPlayer2}

// shipGlyphs are indexed by heading octant, starting east and turning
// counter-clockwise.
var shipGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// viewport maps arena pixels onto the cells inside the arena border.
type viewport struct {
	x0, y0 int // First inner cell
	w, h   int // Inner size in cells
	arena  battle.Arena
}

func newViewport(s *core.Screen, a battle.Arena) viewport {
	// Row 0 is the timer, the last row the loadout line, and the border
	// takes one cell on every side.
	return viewport{
		x0:    1,
		y0:    2,
		w:     s.Width() - 2,
		h:     s.Height() - 4,
		arena: a,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := v.x0 + int(x/v.arena.Width*float64(v.w))
	cy := v.y0 + int(y/v.arena.Height*float64(v.h))
	return core.Clamp(cx, v.x0, v.x0+v.w-1), core.Clamp(cy, v.y0, v.y0+v.h-1)
}

func (v viewport) inside(x, y float64) bool {
	return x >= 0 && x <= v.arena.Width && y >= 0 && y <= v.arena.Height
}

func (v viewport) border() core.Rect {
	return core.NewRect(v.x0-1, v.y0-1, v.w+2, v.h+2)
}

// DrawFrame renders a match snapshot into dst.
func DrawFrame(dst *core.Screen, f battle.Frame) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "terminal too small", core.ColorBrightRed)
		return
	}

	v := newViewport(dst, f.Arena)
	dst.DrawBox(v.border(), core.ColorBorder)

	drawTimer(dst, f)

	for i := range f.Powerups {
		x, y := v.cell(f.Powerups[i].X, f.Powerups[i].Y)
		dst.SetColored(x, y, '+', core.ColorGreen)
	}
	for i := range f.Shots {
		drawShot(dst, v, &f.Shots[i])
	}
	for i := range f.Ships {
		drawShip(dst, v, &f.Ships[i], sideColors[i])
	}
	for i := range f.Effects {
		drawEffect(dst, v, &f.Effects[i])
	}

	drawStatus(dst, f)
	drawBanner(dst, v, f)
}

// drawTimer shows the remaining time while active. Under ten seconds it
// blinks on a quarter-second cadence.
func drawTimer(dst *core.Screen, f battle.Frame) {
	if f.State != battle.StateActive {
		return
	}
	remaining := max(f.TimeLeft, 0)
	if remaining < 10 {
		quarter := uint64(max(f.TickRate/4, 1))
		if (f.Ticks/quarter)%2 == 1 {
			return
		}
	}
	dst.DrawTextCentered(dst.Width()/2, 0, clock(remaining), core.ColorWhite)
}

func clock(secs int) string {
	return fmt.Sprintf("%02d:%02d", (secs/60)%60, secs%60)
}

func drawShip(dst *core.Screen, v viewport, e *battle.Entity, c core.Color) {
	if e.Health <= 0 {
		return
	}
	x, y := v.cell(e.X, e.Y)
	dst.SetColored(x, y, shipGlyph(e.Heading()), c)

	label := e.Ship.Name
	if y+1 < v.y0+v.h {
		dst.DrawTextCentered(x, y+1, label, core.ColorWhite)
	} else {
		dst.DrawTextCentered(x, y-1, label, core.ColorWhite)
	}
}

func shipGlyph(heading float64) rune {
	h := math.Mod(heading, 360)
	if h < 0 {
		h += 360
	}
	octant := int(math.Round(h/45)) % 8
	return shipGlyphs[octant]
}

func drawShot(dst *core.Screen, v viewport, e *battle.Entity) {
	if !v.inside(e.X, e.Y) {
		return
	}
	x, y := v.cell(e.X, e.Y)
	r, c := '·', core.ColorPhaser1
	if e.Owner == battle.Side2 {
		c = core.ColorPhaser2
	}
	if e.Weapon == battle.WeaponTorpedo {
		r, c = '•', core.ColorTorpedo
	}
	dst.SetColored(x, y, r, c)
}

func drawEffect(dst *core.Screen, v viewport, e *battle.Entity) {
	x, y := v.cell(e.X, e.Y)
	if e.Effect != battle.EffectExplosionLarge {
		dst.SetColored(x, y, '*', core.ColorBrightYellow)
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cy := x+dx, y+dy
			if cx < v.x0 || cx >= v.x0+v.w || cy < v.y0 || cy >= v.y0+v.h {
				continue
			}
			r := '#'
			if dx != 0 && dy != 0 {
				r = '*'
			}
			dst.SetColored(cx, cy, r, core.ColorExplosion)
		}
	}
}

// drawStatus writes both loadouts on the bottom row.
func drawStatus(dst *core.Screen, f battle.Frame) {
	y := dst.Height() - 1
	left := loadout(&f.Ships[0])
	right := loadout(&f.Ships[1])

	dst.DrawText(0, y, left, sideColors[0])
	dst.DrawText(dst.Width()-len([]rune(right)), y, right, sideColors[1])
}

func loadout(e *battle.Entity) string {
	return fmt.Sprintf("%s %s T%d P%.2f", e.Ship.Name, healthBar(e.Health), e.Ship.Torpedoes, e.Ship.Phasers)
}

// healthBar draws health as a fixed-width gauge, one cell per point up to
// barWidth.
func healthBar(health int) string {
	filled := core.Clamp(health, 0, barWidth)
	return "[" + strings.Repeat("|", filled) + strings.Repeat(" ", barWidth-filled) + "]"
}

// drawBanner overlays the countdown or the outcome.
func drawBanner(dst *core.Screen, v viewport, f battle.Frame) {
	cx := v.x0 + v.w/2
	cy := v.y0 + v.h/3

	names := [2]string{f.Ships[0].Ship.Name, f.Ships[1].Ship.Name}
	switch {
	case f.State == battle.StatePre:
		dst.DrawTextCentered(cx, cy, names[0]+" vs "+names[1], core.ColorBanner)
		dst.DrawTextCentered(cx, cy+1, fmt.Sprint(f.Countdown), core.ColorBanner)
	case f.Starting:
		dst.DrawTextCentered(cx, cy, "Begin", core.ColorBanner)
	case f.State.Terminal():
		dst.DrawTextCentered(cx, cy, Outcome(f.State, names), core.ColorOutcome)
	}
}

// Outcome describes a finished match.
func Outcome(s battle.State, names [2]string) string {
	switch s {
	case battle.StatePlayer1Wins:
		return names[0] + " wins!"
	case battle.StatePlayer2Wins:
		return names[1] + " wins!"
	case battle.StateDraw:
		return "Draw"
	default:
		return ""
	}
}
