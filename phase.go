package cubestate

// Phase represents progress through the layer-by-layer method, solving
// from the Up face down. Phases progress from Scrambled (0) to Solved (7),
// allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no phase is complete.
	PhaseScrambled Phase = iota

	// PhaseUpCross indicates the 4 Up edges show the Up color and their
	// side stickers match the adjacent centers.
	PhaseUpCross

	// PhaseFirstLayer indicates the whole Up layer is complete.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the 4 middle layer edges are in place.
	PhaseSecondLayer

	// PhaseDownCross indicates the 4 Down edges show the Down color.
	PhaseDownCross

	// PhaseDownCorners indicates the 4 Down corners are in their slots,
	// possibly twisted.
	PhaseDownCorners

	// PhaseDownOriented indicates the Down corners are oriented.
	PhaseDownOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseUpCross:
		return "up_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseDownCross:
		return "down_cross"
	case PhaseDownCorners:
		return "down_corners"
	case PhaseDownOriented:
		return "down_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseUpCross:
		return "Up Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseDownCross:
		return "Down Cross"
	case PhaseDownCorners:
		return "Down Corners Positioned"
	case PhaseDownOriented:
		return "Down Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// Progress represents which phases are complete.
type Progress struct {
	UpCross      bool
	FirstLayer   bool
	SecondLayer  bool
	DownCross    bool
	DownCorners  bool
	DownOriented bool
	Solved       bool
}
