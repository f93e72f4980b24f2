package cubestate

import "math/rand/v2"

// DefaultScrambleLength is the number of moves in a scramble when no
// length is given.
const DefaultScrambleLength = 25

// axis groups opposite faces: U/D, R/L, F/B.
func (f Face) axis() int {
	switch f {
	case FaceU, FaceD:
		return 0
	case FaceR, FaceL:
		return 1
	default:
		return 2
	}
}

// Scramble returns length random moves. It never turns the same face twice
// in a row, and never turns a face again right after its opposite face
// when that face was turned just before (as in "R L R"), so no move is
// trivially wasted.
//
// A nil rng uses the package-level random source.
func Scramble(rng *rand.Rand, length int) []Move {
	if length <= 0 {
		length = DefaultScrambleLength
	}
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	moves := make([]Move, 0, length)
	for len(moves) < length {
		m := AllMoves[intN(len(AllMoves))]
		n := len(moves)
		if n > 0 && moves[n-1].Face == m.Face {
			continue
		}
		if n > 1 && moves[n-2].Face == m.Face && moves[n-1].Face.axis() == m.Face.axis() {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// NewRand returns a deterministic random source for Scramble.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Scrambled returns a cube scrambled by moves from Scramble, along with
// the moves used.
func Scrambled(rng *rand.Rand, length int) (*Cube, []Move) {
	moves := Scramble(rng, length)
	c := Solved()
	c.Apply(moves...)
	return c, moves
}
