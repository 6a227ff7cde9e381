package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - steer left while held
	ActionRight          // Right arrow, D - steer right while held
	ActionFire           // Space - shoot, edge-triggered
	ActionConfirm        // Enter or click - start a run from the title screen
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Actions holds edge-triggered presses (true only on the tick the key went
// down); Held holds keys that are currently down.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as freshly pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetHeld marks an action as held down for this frame.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was freshly pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsDown returns true if the action is held or was pressed this frame.
func (f InputFrame) IsDown(a Action) bool {
	return f.Has(a) || (f.Held != nil && f.Held[a])
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// HoldTracker turns a stream of key-press events into held state.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until no press for it has been seen for window ticks.
type HoldTracker struct {
	window  int
	windows map[Action]int // Per-action overrides of window
	tick    int
	last    map[Action]int
}

// NewHoldTracker creates a tracker with the given hold window in ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window:  window,
		windows: make(map[Action]int),
		last:    make(map[Action]int),
	}
}

// WithWindow gives one action its own window in ticks.
// Auto-repeat starts long after the first press, so edge-triggered actions
// need a window that spans that delay.
func (t *HoldTracker) WithWindow(a Action, window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	t.windows[a] = window
	return t
}

func (t *HoldTracker) windowFor(a Action) int {
	if w, ok := t.windows[a]; ok {
		return w
	}
	return t.window
}

// Press records a key press for the current tick.
// Returns true when the press is fresh, i.e. the key was not already held.
// Auto-repeat presses return false.
func (t *HoldTracker) Press(a Action) bool {
	prev, seen := t.last[a]
	t.last[a] = t.tick
	return !seen || t.tick-prev > t.windowFor(a)
}

// Apply marks every action pressed within the hold window as held in frame,
// then advances the tracker by one tick.
func (t *HoldTracker) Apply(frame *InputFrame) {
	for a, at := range t.last {
		if t.tick-at <= t.windowFor(a) {
			frame.SetHeld(a)
		} else {
			delete(t.last, a)
		}
	}
	t.tick++
}

// Release forgets an action so its next press is fresh.
func (t *HoldTracker) Release(a Action) {
	delete(t.last, a)
}

// Reset forgets all held keys.
func (t *HoldTracker) Reset() {
	for a := range t.last {
		delete(t.last, a)
	}
}
