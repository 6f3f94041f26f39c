package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battlebots/internal/core"
)

// ansiCodes maps each screen color to an ANSI 256-color code. An empty
// code leaves the terminal's foreground.
var ansiCodes = [...]string{
	core.ColorDefault:      "",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// Palette turns screen colors into styles for one output. SSH sessions get
// their own palette so color support follows the client's terminal.
type Palette struct {
	styles [len(ansiCodes)]lipgloss.Style
	help   lipgloss.Style
}

// NewPalette builds styles with r, or the default renderer when r is nil.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{help: r.NewStyle().Foreground(lipgloss.Color("241"))}
	for i, code := range ansiCodes {
		style := r.NewStyle()
		if code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		// Sides and the outcome banner are bold.
		switch core.Color(i) {
		case core.ColorPlayer1, core.ColorPlayer2, core.ColorOutcome:
			style = style.Bold(true)
		}
		p.styles[i] = style
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if int(c) >= len(p.styles) {
		return p.styles[core.ColorDefault]
	}
	return p.styles[c]
}

// Render converts a Screen buffer to a styled string. Each run of cells
// sharing a color becomes one styled segment.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(p.style(c).Render(run.String()))
		}
	}
	return sb.String()
}

// defaultPalette styles for the local terminal.
var defaultPalette = NewPalette(nil)
