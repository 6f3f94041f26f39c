package core

// Color is the foreground of a screen cell. The platform layer turns it
// into an ANSI 256-color style.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Arena roles.
const (
	ColorPlayer1   = ColorRed
	ColorPlayer2   = ColorCyan
	ColorPhaser1   = ColorYellow
	ColorPhaser2   = ColorBrightCyan
	ColorTorpedo   = ColorOrange
	ColorExplosion = ColorBrightRed
	ColorBorder    = ColorGray
	ColorBanner    = ColorRed
	ColorOutcome   = ColorBlue
)
