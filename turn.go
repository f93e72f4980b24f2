package cubestate

import "fmt"

// strip is three facelets of one face lying along the edge of a turning
// face, listed in the order they travel.
type strip struct {
	face    Face
	indices [3]int
}

// faceCycles holds, for every face, the four neighbor strips in the order a
// clockwise turn carries them: strip k lands on strip k+1, element by
// element, and strip 3 lands on strip 0.
//
// Clockwise is judged looking straight at the turning face. Indices follow
// the facelet-string net: U is seen from above with B at its top edge, D is
// seen from below with F at its top edge, and the side faces have U at
// their top edge.
//
// This table is the only place reversed strips occur.
var faceCycles = [NumFaces][4]strip{
	FaceU: {
		{FaceF, [3]int{0, 1, 2}},
		{FaceL, [3]int{0, 1, 2}},
		{FaceB, [3]int{0, 1, 2}},
		{FaceR, [3]int{0, 1, 2}},
	},
	FaceR: {
		{FaceF, [3]int{2, 5, 8}},
		{FaceU, [3]int{2, 5, 8}},
		{FaceB, [3]int{6, 3, 0}},
		{FaceD, [3]int{2, 5, 8}},
	},
	FaceF: {
		{FaceU, [3]int{6, 7, 8}},
		{FaceR, [3]int{0, 3, 6}},
		{FaceD, [3]int{2, 1, 0}},
		{FaceL, [3]int{8, 5, 2}},
	},
	FaceD: {
		{FaceF, [3]int{6, 7, 8}},
		{FaceR, [3]int{6, 7, 8}},
		{FaceB, [3]int{6, 7, 8}},
		{FaceL, [3]int{6, 7, 8}},
	},
	FaceL: {
		{FaceU, [3]int{0, 3, 6}},
		{FaceF, [3]int{0, 3, 6}},
		{FaceD, [3]int{0, 3, 6}},
		{FaceB, [3]int{8, 5, 2}},
	},
	FaceB: {
		{FaceU, [3]int{2, 1, 0}},
		{FaceL, [3]int{0, 3, 6}},
		{FaceD, [3]int{6, 7, 8}},
		{FaceR, [3]int{8, 5, 2}},
	},
}

// permutation is a gather map: after applying it, facelet i holds what
// facelet p[i] held before.
type permutation [NumFacelets]uint8

// moveTable[face][q] is the permutation for q clockwise quarter turns of
// face. q = 0 is the identity, q = 3 is a counter-clockwise turn.
var moveTable [NumFaces][4]permutation

func init() {
	for _, face := range Faces {
		quarter := quarterTurn(face)
		moveTable[face][0] = identity()
		for q := 1; q < 4; q++ {
			moveTable[face][q] = moveTable[face][q-1].then(quarter)
		}
		for q := 1; q < 4; q++ {
			if err := moveTable[face][q].check(); err != nil {
				panic(fmt.Sprintf("cubestate: move table for %s x%d: %v", face, q, err))
			}
		}
	}
}

func identity() permutation {
	var p permutation
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// quarterTurn builds the permutation of one clockwise quarter turn.
func quarterTurn(face Face) permutation {
	p := identity()

	// Own face: (row, col) -> (col, 2-row). The center is left out.
	for idx := 0; idx < FaceletsPerFace; idx++ {
		if idx == centerIndex {
			continue
		}
		row, col := idx/3, idx%3
		dst := col*3 + (2 - row)
		p[position(face, dst)] = uint8(position(face, idx))
	}

	cycle := faceCycles[face]
	for k, from := range cycle {
		to := cycle[(k+1)%len(cycle)]
		for j := range from.indices {
			p[position(to.face, to.indices[j])] = uint8(position(from.face, from.indices[j]))
		}
	}
	return p
}

// then returns the permutation that applies p followed by next.
func (p permutation) then(next permutation) permutation {
	var out permutation
	for i := range out {
		out[i] = p[next[i]]
	}
	return out
}

// check verifies p is a bijection that leaves every center in place.
func (p permutation) check() error {
	var seen [NumFacelets]bool
	for i, src := range p {
		if int(src) >= NumFacelets || seen[src] {
			return fmt.Errorf("position %d: source %d repeated or out of range", i, src)
		}
		seen[src] = true
	}
	for _, face := range Faces {
		center := position(face, centerIndex)
		if int(p[center]) != center {
			return fmt.Errorf("center of %s moved", face)
		}
	}
	return nil
}

// moved returns the positions whose content changes under p.
func (p permutation) moved() []int {
	var out []int
	for i, src := range p {
		if int(src) != i {
			out = append(out, i)
		}
	}
	return out
}

// normalizeTurn folds any turn amount onto 0..3 clockwise quarter turns.
func normalizeTurn(turn int) int {
	return ((turn % 4) + 4) % 4
}

// Turn applies a turn of face to the cube.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees; other values are taken modulo 4.
// An invalid face is a programming error and panics.
func (c *Cube) Turn(face Face, turn int) {
	if !face.Valid() {
		panic(fmt.Sprintf("cubestate: invalid face %d", int(face)))
	}
	q := normalizeTurn(turn)
	if q == 0 {
		return
	}
	c.permute(&moveTable[face][q])
}

// permute gathers into a fresh array so the cube only ever holds a fully
// rotated state.
func (c *Cube) permute(p *permutation) {
	var next [NumFacelets]Color
	for i, src := range p {
		next[i] = c.facelets[src]
	}
	c.facelets = next
}

// ApplyMove applies a Move to the cube.
func (c *Cube) ApplyMove(m Move) {
	c.Turn(m.Face, int(m.Turn))
}

// Apply applies moves to the cube in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyNotation parses a space-separated move sequence and applies it.
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}
