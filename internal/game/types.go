// Package game implements the two-player paddle-and-ball simulation:
// paddle clamping, fixed-step ball motion, wall and paddle collision,
// scoring and the Idle/Running/GameOver state machine.
//
// Drawing and sound are collaborators reached through the Renderer and
// Audio interfaces; the package never touches a terminal.
package game

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Direction is the sign of a paddle move. Up is negative in field coordinates.
type Direction int

const (
	DirUp   Direction = -1
	DirDown Direction = 1
)

// Phase is the discrete state of a match.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
