package colortap

// Phase is the session's position in the game state machine.
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting_start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Flash is the short border pulse after a tap or an expiry.
// Purely cosmetic.
type Flash int

const (
	FlashNone Flash = iota
	FlashSuccess
	FlashAlert
)

// Snapshot is an immutable copy of the whole session state, published after
// every transition. Holding one never aliases session internals.
type Snapshot struct {
	Level     int
	Phase     Phase
	Tiles     Tiles
	Prompt    Prompt
	Progress  Progress
	Countdown Countdown
	Flash     Flash

	// Round counts layouts generated since the session was created.
	Round int
	// LastOutcome is the most recent applied outcome, OutcomeNone after a reset.
	LastOutcome Outcome

	decoyID  int
	hasDecoy bool
}

// Decoy returns the decoy tile id, if this round has one.
func (s Snapshot) Decoy() (int, bool) {
	return s.decoyID, s.hasDecoy
}

// Tile returns the tile in slot id.
func (s Snapshot) Tile(id int) (Tile, bool) {
	if id < 0 || id >= TileCount {
		return Tile{}, false
	}
	return s.Tiles[id], true
}

// Terminal reports whether the round has ended and awaits an explicit event.
func (s Snapshot) Terminal() bool {
	return s.Phase == PhaseLevelComplete || s.Phase == PhaseGameOver
}
