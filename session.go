package cubestate

// Session owns one cube and records how it got there. It adds move
// history, undo and phase change detection on top of Cube.
//
// A Session is not safe for concurrent use; give each goroutine its own.
type Session struct {
	cfg           *config
	start         *Cube
	cube          *Cube
	moves         []Move
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase)
}

// NewSession creates a session starting from the solved state unless
// WithStart says otherwise.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	start := cfg.start
	if start == nil {
		start = Solved()
	}

	s := &Session{cfg: cfg, start: start}
	s.Reset()
	return s
}

// OnPhaseChange sets a callback that fires when a new highest phase is
// reached.
func (s *Session) OnPhaseChange(cb func(phase Phase)) {
	s.phaseCallback = cb
}

// Reset returns the session to its start state and clears history.
func (s *Session) Reset() {
	s.cube = s.start.Clone()
	s.moves = nil
	s.highestPhase = PhaseScrambled // Start at lowest phase
}

// ApplyMove applies a move and checks for phase transitions.
func (s *Session) ApplyMove(m Move) {
	s.cube.ApplyMove(m)
	if s.cfg.moveHistory {
		s.moves = append(s.moves, m)
	}
	s.checkPhaseTransition()
}

// Apply applies multiple moves.
func (s *Session) Apply(moves ...Move) {
	for _, m := range moves {
		s.ApplyMove(m)
	}
}

// ApplyNotation parses and applies a move sequence. Nothing is applied if
// the sequence is invalid.
func (s *Session) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	s.Apply(moves...)
	return nil
}

// Undo reverts the last recorded move. It returns false when there is no
// history to undo.
func (s *Session) Undo() (Move, bool) {
	if len(s.moves) == 0 {
		return Move{}, false
	}
	last := s.moves[len(s.moves)-1]
	s.moves = s.moves[:len(s.moves)-1]
	s.cube.ApplyMove(last.Inverse())
	return last, true
}

// checkPhaseTransition fires the callback when a NEW highest phase is
// reached. Phases may go backwards while solving; the callback does not.
func (s *Session) checkPhaseTransition() {
	if !s.cfg.phaseDetection {
		return
	}

	current := s.cube.DetectPhase()
	if current > s.highestPhase {
		s.highestPhase = current
		if s.phaseCallback != nil {
			s.phaseCallback(current)
		}
	}
}

// Moves returns a copy of the recorded moves.
func (s *Session) Moves() []Move {
	out := make([]Move, len(s.moves))
	copy(out, s.moves)
	return out
}

// Solution returns the moves that lead back to the start state, derived
// from history.
func (s *Session) Solution() []Move {
	return Invert(Simplify(s.moves))
}

// Phase returns the current detected phase.
// This reflects the raw cube state and may go backwards during solving.
func (s *Session) Phase() Phase {
	return s.cube.DetectPhase()
}

// HighestPhase returns the highest phase reached by a move since the last
// reset.
func (s *Session) HighestPhase() Phase {
	return s.highestPhase
}

// IsSolved returns true if the cube is solved.
func (s *Session) IsSolved() bool {
	return s.cube.IsSolved()
}

// Cube returns a copy of the current cube.
func (s *Session) Cube() *Cube {
	return s.cube.Clone()
}

// Facelets returns the current facelet string.
func (s *Session) Facelets() string {
	return s.cube.Encode()
}

// String returns the unfolded net of the current cube.
func (s *Session) String() string {
	return s.cube.String()
}
