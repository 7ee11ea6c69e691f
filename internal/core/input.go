package core

import "strconv"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionPick1
	ActionPick2
	ActionPick3
	ActionPick4
	ActionPick5
	ActionPick6
	ActionPick7
	ActionPick8
	ActionPick9
	ActionPick10
	ActionCancel  // Esc, Backspace - drop a pending selection
	ActionConfirm // Enter - start the default tier / new game
	ActionRestart // R - new game after a win
	ActionBack    // B - back to menu
	ActionQuit    // Q, Ctrl+C - exit game/session
)

// MaxPicks is the number of distinct pick actions (keys 1-9, then 0 for ten).
const MaxPicks = int(ActionPick10-ActionPick1) + 1

// PickAction returns the pick action for a 1-based cup number.
// Numbers outside 1..MaxPicks map to ActionNone.
func PickAction(n int) Action {
	if n < 1 || n > MaxPicks {
		return ActionNone
	}
	return ActionPick1 + Action(n-1)
}

// PickIndex returns the zero-based cup index selected by a pick action.
func (a Action) PickIndex() (int, bool) {
	if a < ActionPick1 || a > ActionPick10 {
		return 0, false
	}
	return int(a - ActionPick1), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if idx, ok := a.PickIndex(); ok {
		return "Pick" + strconv.Itoa(idx+1)
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionCancel:
		return "Cancel"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the ordered list of actions delivered to a game in one step.
// Order matters: two picks in the same frame are a source and a destination.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates a frame holding the given actions in order.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action is in the frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Actions returns a copy of the frame's actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the frame for the next step.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
