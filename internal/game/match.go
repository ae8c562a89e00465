package game

// Outcome is the result of applying a score: either the match continues
// or a winner has been decided.
type Outcome struct {
	Winner Side
}

// Continue reports whether the match goes on.
func (o Outcome) Continue() bool {
	return o.Winner == SideNone
}

// MatchState tracks the scores and phase of one match.
// Scores only increase; only Reset brings the phase back to Idle.
type MatchState struct {
	left, right int
	threshold   int
	phase       Phase
	winner      Side
}

// NewMatchState creates an idle match that ends when a side reaches threshold.
func NewMatchState(threshold int) MatchState {
	return MatchState{threshold: threshold, phase: PhaseIdle}
}

// Phase returns the current phase.
func (m *MatchState) Phase() Phase {
	return m.phase
}

// Score returns the score of the given side.
func (m *MatchState) Score(side Side) int {
	switch side {
	case SideLeft:
		return m.left
	case SideRight:
		return m.right
	default:
		return 0
	}
}

// Winner returns the winning side, or SideNone while undecided.
func (m *MatchState) Winner() Side {
	return m.winner
}

// Start moves an idle match to Running. It reports whether the phase changed.
func (m *MatchState) Start() bool {
	if m.phase != PhaseIdle {
		return false
	}
	m.phase = PhaseRunning
	return true
}

// ApplyScore credits side with a point. Reaching the threshold ends the
// match. Once the match is over the scores are frozen and the recorded
// winner is returned.
func (m *MatchState) ApplyScore(side Side) Outcome {
	if m.phase == PhaseGameOver {
		return Outcome{Winner: m.winner}
	}

	switch side {
	case SideLeft:
		m.left++
	case SideRight:
		m.right++
	default:
		return Outcome{}
	}

	if m.left >= m.threshold || m.right >= m.threshold {
		m.phase = PhaseGameOver
		m.winner = side
		return Outcome{Winner: side}
	}
	return Outcome{}
}

// Reset zeroes both scores and returns the match to Idle.
func (m *MatchState) Reset() {
	m.left = 0
	m.right = 0
	m.winner = SideNone
	m.phase = PhaseIdle
}
