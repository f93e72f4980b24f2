package cubestate

import "fmt"

// Corner names a corner slot, or the piece that belongs there when the
// cube is solved. Each name lists the piece's faces clockwise, starting
// with the U or D face.
type Corner uint8

const (
	CornerURF Corner = iota
	CornerUFL
	CornerULB
	CornerUBR
	CornerDFR
	CornerDLF
	CornerDBL
	CornerDRB
)

// NumCorners is the number of corner pieces.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if int(c) >= NumCorners {
		return "?"
	}
	return cornerNames[c]
}

// Edge names an edge slot or piece. The first face is the reference face
// for orientation: U or D for layer edges, F or B for middle-layer edges.
type Edge uint8

const (
	EdgeUR Edge = iota
	EdgeUF
	EdgeUL
	EdgeUB
	EdgeDR
	EdgeDF
	EdgeDL
	EdgeDB
	EdgeFR
	EdgeFL
	EdgeBL
	EdgeBR
)

// NumEdges is the number of edge pieces.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if int(e) >= NumEdges {
		return "?"
	}
	return edgeNames[e]
}

// cornerFacelets holds the facelet positions of each corner slot, in the
// same face order as the slot name.
var cornerFacelets = [NumCorners][3]int{
	CornerURF: {8, 9, 20},
	CornerUFL: {6, 18, 38},
	CornerULB: {0, 36, 47},
	CornerUBR: {2, 45, 11},
	CornerDFR: {29, 26, 15},
	CornerDLF: {27, 44, 24},
	CornerDBL: {33, 53, 42},
	CornerDRB: {35, 17, 51},
}

// edgeFacelets holds the facelet positions of each edge slot.
var edgeFacelets = [NumEdges][2]int{
	EdgeUR: {5, 10},
	EdgeUF: {7, 19},
	EdgeUL: {3, 37},
	EdgeUB: {1, 46},
	EdgeDR: {32, 16},
	EdgeDF: {28, 25},
	EdgeDL: {30, 43},
	EdgeDB: {34, 52},
	EdgeFR: {23, 12},
	EdgeFL: {21, 41},
	EdgeBL: {50, 39},
	EdgeBR: {48, 14},
}

// cornerColors and edgeColors are the stickers of each piece, in name
// order. They follow from the names because colors share face letters.
var (
	cornerColors [NumCorners][3]Color
	edgeColors   [NumEdges][2]Color
)

func init() {
	for i, name := range cornerNames {
		for n := range cornerColors[i] {
			cornerColors[i][n], _ = ParseColor(name[n])
		}
	}
	for i, name := range edgeNames {
		for n := range edgeColors[i] {
			edgeColors[i][n], _ = ParseColor(name[n])
		}
	}
}

// Cubies describes a cube by its pieces instead of its stickers.
//
// CP[i] is the corner piece sitting in slot i and CO[i] its twist: the
// number of clockwise turns that bring its U/D sticker from the slot's
// U/D facelet to where it is. EP and EO are the same for edges; EO[i] is
// 1 when the piece's reference sticker is not on the slot's reference
// facelet.
type Cubies struct {
	CP [NumCorners]Corner
	CO [NumCorners]uint8
	EP [NumEdges]Edge
	EO [NumEdges]uint8
}

// SolvedCubies returns every piece in its home slot, unturned.
func SolvedCubies() *Cubies {
	var cc Cubies
	for i := range cc.CP {
		cc.CP[i] = Corner(i)
	}
	for i := range cc.EP {
		cc.EP[i] = Edge(i)
	}
	return &cc
}

// Cubies identifies the piece in every slot. It fails with a
// *CubieError when a slot's stickers match no piece or repeat a piece
// found earlier. It does not check reachability; see Reachable.
func (c *Cube) Cubies() (*Cubies, error) {
	var cc Cubies

	var seenCorner [NumCorners]bool
	for i, slot := range cornerFacelets {
		ori := -1
		for o := 0; o < 3; o++ {
			if col := c.facelets[slot[o]]; col == ColorU || col == ColorD {
				ori = o
				break
			}
		}

		piece := -1
		if ori >= 0 {
			for j, colors := range cornerColors {
				if c.facelets[slot[ori]] == colors[0] &&
					c.facelets[slot[(ori+1)%3]] == colors[1] &&
					c.facelets[slot[(ori+2)%3]] == colors[2] {
					piece = j
					break
				}
			}
		}
		if piece < 0 || seenCorner[piece] {
			return nil, &CubieError{Slot: Corner(i).String(), Colors: c.stickers(slot[:])}
		}
		seenCorner[piece] = true
		cc.CP[i] = Corner(piece)
		cc.CO[i] = uint8(ori)
	}

	var seenEdge [NumEdges]bool
	for i, slot := range edgeFacelets {
		a, b := c.facelets[slot[0]], c.facelets[slot[1]]
		piece := -1
		for j, colors := range edgeColors {
			switch {
			case a == colors[0] && b == colors[1]:
				piece, cc.EO[i] = j, 0
			case a == colors[1] && b == colors[0]:
				piece, cc.EO[i] = j, 1
			default:
				continue
			}
			break
		}
		if piece < 0 || seenEdge[piece] {
			return nil, &CubieError{Slot: Edge(i).String(), Colors: c.stickers(slot[:])}
		}
		seenEdge[piece] = true
		cc.EP[i] = Edge(piece)
	}

	return &cc, nil
}

// stickers returns the colors at the given positions as symbols.
func (c *Cube) stickers(positions []int) string {
	buf := make([]byte, len(positions))
	for i, p := range positions {
		buf[i] = c.facelets[p].Byte()
	}
	return string(buf)
}

// Cube builds the sticker view of cc. Every piece must appear exactly
// once and every orientation must be in range; reachability is not
// required.
func (cc *Cubies) Cube() (*Cube, error) {
	var seenCorner [NumCorners]bool
	for i, p := range cc.CP {
		if int(p) >= NumCorners || seenCorner[p] || cc.CO[i] > 2 {
			return nil, fmt.Errorf("%w: corner slot %s holds %s twisted %d", ErrInvalidCubie, Corner(i), p, cc.CO[i])
		}
		seenCorner[p] = true
	}
	var seenEdge [NumEdges]bool
	for i, p := range cc.EP {
		if int(p) >= NumEdges || seenEdge[p] || cc.EO[i] > 1 {
			return nil, fmt.Errorf("%w: edge slot %s holds %s flipped %d", ErrInvalidCubie, Edge(i), p, cc.EO[i])
		}
		seenEdge[p] = true
	}

	c := Solved()
	for i, slot := range cornerFacelets {
		colors := cornerColors[cc.CP[i]]
		ori := int(cc.CO[i])
		for n := 0; n < 3; n++ {
			c.facelets[slot[(n+ori)%3]] = colors[n]
		}
	}
	for i, slot := range edgeFacelets {
		colors := edgeColors[cc.EP[i]]
		ori := int(cc.EO[i])
		for n := 0; n < 2; n++ {
			c.facelets[slot[(n+ori)%2]] = colors[n]
		}
	}
	return c, nil
}

// Twist returns the total corner twist modulo 3.
func (cc *Cubies) Twist() int {
	sum := 0
	for _, o := range cc.CO {
		sum += int(o)
	}
	return sum % 3
}

// Flip returns the total edge flip modulo 2.
func (cc *Cubies) Flip() int {
	sum := 0
	for _, o := range cc.EO {
		sum += int(o)
	}
	return sum % 2
}

// CornerParity returns 1 when the corner permutation is odd.
func (cc *Cubies) CornerParity() int {
	return parity(cc.CP[:])
}

// EdgeParity returns 1 when the edge permutation is odd.
func (cc *Cubies) EdgeParity() int {
	return parity(cc.EP[:])
}

// parity counts inversions modulo 2.
func parity[T Corner | Edge](p []T) int {
	n := 0
	for i := range p {
		for j := 0; j < i; j++ {
			if p[j] > p[i] {
				n++
			}
		}
	}
	return n % 2
}

// Verify checks the three conditions a state needs to be reachable by
// face turns, in order: corner twist, edge flip, then matching
// permutation parity.
func (cc *Cubies) Verify() error {
	if t := cc.Twist(); t != 0 {
		return fmt.Errorf("%w: total twist %d", ErrCornerTwist, t)
	}
	if cc.Flip() != 0 {
		return fmt.Errorf("%w: one edge flipped", ErrEdgeFlip)
	}
	if cp, ep := cc.CornerParity(), cc.EdgeParity(); cp != ep {
		return fmt.Errorf("%w: corners %s, edges %s", ErrParity, parityName(cp), parityName(ep))
	}
	return nil
}

func parityName(p int) string {
	if p == 0 {
		return "even"
	}
	return "odd"
}

// Reachable reports whether face turns can bring a solved cube to c.
// Decode accepts unreachable strings; call Reachable to tell them apart.
// The error wraps ErrInvalidCubie, ErrCornerTwist, ErrEdgeFlip or
// ErrParity.
func (c *Cube) Reachable() error {
	cc, err := c.Cubies()
	if err != nil {
		return err
	}
	return cc.Verify()
}
