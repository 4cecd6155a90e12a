package sound

// Cue names. A file named after a cue in the sound directory overrides the
// built-in tone.
const (
	CueSuccess = "success" // room created or joined
	CueError   = "error"   // api call failed
	CueDice    = "dice"    // leaderboard refreshed
)

// Player plays a cue by name.
type Player interface {
	Play(name string)
}

// Mute is a Player that plays nothing.
type Mute struct{}

func (Mute) Play(string) {}
