package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionSelect         // 1-9 keys or mouse click - tile chosen (see InputFrame.Tile)
	ActionConfirm        // Space, Enter - start game / continue to next level
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - back to level 1
	ActionRetry          // T - retry current level
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionRetry:
		return "Retry"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// tiles are the slots chosen this frame, in press order.
	tiles []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SelectTile queues a tile choice for this frame. Several presses within
// one tick are all kept.
func (f *InputFrame) SelectTile(id int) {
	f.Set(ActionSelect)
	f.tiles = append(f.tiles, id)
}

// Tile returns the first tile chosen this frame, if any.
func (f InputFrame) Tile() (int, bool) {
	if !f.Has(ActionSelect) || len(f.tiles) == 0 {
		return 0, false
	}
	return f.tiles[0], true
}

// Tiles returns every tile chosen this frame, in press order.
func (f InputFrame) Tiles() []int {
	if !f.Has(ActionSelect) {
		return nil
	}
	return f.tiles
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.tiles = f.tiles[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.tiles = append([]int(nil), f.tiles...)
	return clone
}
