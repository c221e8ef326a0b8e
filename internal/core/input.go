package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the runner to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - start a jump arc
	ActionLeft           // A, Left arrow - hold to run left
	ActionRight          // D, Right arrow - hold to run right
	ActionConfirm        // Enter - start a run from the welcome screen or restart after game over
	ActionPause          // P, Escape - pause/unpause the run
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents is the normalized input sampled once per simulation tick.
// Input collaborators (keyboard, SSH terminal, tests) only ever produce these.
type Intents struct {
	MoveLeft      bool
	MoveRight     bool
	JumpRequested bool
}

// Direction returns -1, 0 or +1 for the held horizontal direction.
// Holding both directions cancels out.
func (in Intents) Direction() float64 {
	switch {
	case in.MoveLeft && !in.MoveRight:
		return -1
	case in.MoveRight && !in.MoveLeft:
		return 1
	default:
		return 0
	}
}
