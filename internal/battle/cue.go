package battle

// Cue names a sound the match wants played.
type Cue string

const (
	CuePhaser   Cue = "phaser"
	CueTorpedo  Cue = "torpedo"
	CueHit      Cue = "hit"
	CueExplode  Cue = "explode"
	CueBell     Cue = "bell"
	CueHorn     Cue = "horn"
	CueGameOver Cue = "gameover"
)

// AllCues lists every cue the match can play.
var AllCues = []Cue{CuePhaser, CueTorpedo, CueHit, CueExplode, CueBell, CueHorn, CueGameOver}

// CueSink receives fire-and-forget sound cues.
// Implementations must not block; playback failures are theirs to swallow.
type CueSink interface {
	Play(c Cue)
}

type nopSink struct{}

func (nopSink) Play(Cue) {}
