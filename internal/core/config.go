package core

// RuntimeConfig contains settings for a match viewer.
// The simulation itself is configured separately; these only affect pacing
// and the size of the terminal canvas.
type RuntimeConfig struct {
	ScreenW int     // Screen width in characters
	ScreenH int     // Screen height in characters
	Speed   float64 // Playback speed multiplier (1 = real time)
	Seed    int64   // Seed used when the viewer picks bots at random
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Speed:   1,
		Seed:    0, // 0 means use current time in platform layer
	}
}
