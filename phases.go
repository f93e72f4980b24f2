package cubestate

// Phase detection for the layer-by-layer method. Every check compares
// stickers against the center colors, so it works for any color scheme.

// sideFaces are the four faces around the U-D axis.
var sideFaces = []Face{FaceF, FaceR, FaceB, FaceL}

func (c *Cube) at(face Face, index int) Color {
	return c.facelets[position(face, index)]
}

func (c *Cube) center(face Face) Color {
	return c.at(face, centerIndex)
}

// IsUpCrossComplete checks if the Up cross is complete:
// - Up edge positions (1, 3, 5, 7) carry the Up color
// - each edge's other sticker matches the adjacent center
func (c *Cube) IsUpCrossComplete() bool {
	up := c.center(FaceU)
	for _, pos := range []int{1, 3, 5, 7} {
		if c.at(FaceU, pos) != up {
			return false
		}
	}

	// U[1]-B[1], U[3]-L[1], U[5]-R[1], U[7]-F[1]
	for _, face := range sideFaces {
		if c.at(face, 1) != c.center(face) {
			return false
		}
	}

	return true
}

// IsFirstLayerComplete checks if the Up cross plus the Up corners are
// solved.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsUpCrossComplete() {
		return false
	}

	up := c.center(FaceU)
	for i := 0; i < FaceletsPerFace; i++ {
		if c.at(FaceU, i) != up {
			return false
		}
	}

	// Corner stickers on the side faces: top-left (0) and top-right (2).
	for _, face := range sideFaces {
		center := c.center(face)
		if c.at(face, 0) != center || c.at(face, 2) != center {
			return false
		}
	}

	return true
}

// IsSecondLayerComplete checks if the middle layer edges are solved.
// Middle layer edges are at positions 3 and 5 on F, R, B, L faces.
func (c *Cube) IsSecondLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}

	for _, face := range sideFaces {
		center := c.center(face)
		if c.at(face, 3) != center || c.at(face, 5) != center {
			return false
		}
	}

	return true
}

// IsDownCrossComplete checks if the Down edges show the Down color.
// Their side stickers may still be permuted.
func (c *Cube) IsDownCrossComplete() bool {
	if !c.IsSecondLayerComplete() {
		return false
	}

	down := c.center(FaceD)
	for _, pos := range []int{1, 3, 5, 7} {
		if c.at(FaceD, pos) != down {
			return false
		}
	}

	return true
}

// downCorners lists the stickers of each Down corner slot.
var downCorners = [4][3]struct {
	face  Face
	index int
}{
	{{FaceD, 2}, {FaceF, 8}, {FaceR, 6}}, // DFR
	{{FaceD, 0}, {FaceL, 8}, {FaceF, 6}}, // DLF
	{{FaceD, 6}, {FaceB, 8}, {FaceL, 6}}, // DBL
	{{FaceD, 8}, {FaceR, 8}, {FaceB, 6}}, // DRB
}

// AreDownCornersPositioned checks if each Down corner sits in its slot,
// ignoring twist.
func (c *Cube) AreDownCornersPositioned() bool {
	if !c.IsDownCrossComplete() {
		return false
	}

	for _, corner := range downCorners {
		actual := make([]Color, 0, 3)
		expected := make([]Color, 0, 3)
		for _, s := range corner {
			actual = append(actual, c.at(s.face, s.index))
			expected = append(expected, c.center(s.face))
		}
		if !sameColors(actual, expected) {
			return false
		}
	}

	return true
}

// AreDownCornersOriented checks if the Down corners are twisted correctly.
// Only the Down edges can remain out of place after this.
func (c *Cube) AreDownCornersOriented() bool {
	if !c.AreDownCornersPositioned() {
		return false
	}

	down := c.center(FaceD)
	for _, pos := range []int{0, 2, 6, 8} {
		if c.at(FaceD, pos) != down {
			return false
		}
	}

	for _, face := range sideFaces {
		center := c.center(face)
		if c.at(face, 6) != center || c.at(face, 8) != center {
			return false
		}
	}

	return true
}

// sameColors checks if two color slices contain the same colors (in any order).
func sameColors(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}

	count := make(map[Color]int)
	for _, c := range a {
		count[c]++
	}
	for _, c := range b {
		count[c]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}

// DetectPhase returns the highest phase the cube state satisfies.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if c.AreDownCornersOriented() {
		return PhaseDownOriented
	}
	if c.AreDownCornersPositioned() {
		return PhaseDownCorners
	}
	if c.IsDownCrossComplete() {
		return PhaseDownCross
	}
	if c.IsSecondLayerComplete() {
		return PhaseSecondLayer
	}
	if c.IsFirstLayerComplete() {
		return PhaseFirstLayer
	}
	if c.IsUpCrossComplete() {
		return PhaseUpCross
	}
	return PhaseScrambled
}

// Progress returns the current progress through all phases.
func (c *Cube) Progress() Progress {
	return Progress{
		UpCross:      c.IsUpCrossComplete(),
		FirstLayer:   c.IsFirstLayerComplete(),
		SecondLayer:  c.IsSecondLayerComplete(),
		DownCross:    c.IsDownCrossComplete(),
		DownCorners:  c.AreDownCornersPositioned(),
		DownOriented: c.AreDownCornersOriented(),
		Solved:       c.IsSolved(),
	}
}
