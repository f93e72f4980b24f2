package cubestate

import "testing"

// Single clockwise turns from solved, as two-phase solvers expect them.
var singleTurnFacelets = map[Face]string{
	FaceU: "UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB",
	FaceR: "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB",
	FaceF: "UUUUUULLLURRURRURRFFFFFFFFFRRRDDDDDDLLDLLDLLDBBBBBBBBB",
	FaceD: "UUUUUUUUURRRRRRFFFFFFFFFLLLDDDDDDDDDLLLLLLBBBBBBBBBRRR",
	FaceL: "BUUBUUBUURRRRRRRRRUFFUFFUFFFDDFDDFDDLLLLLLLLLBBDBBDBBD",
	FaceB: "RRRUUUUUURRDRRDRRDFFFFFFFFFDDDDDDLLLULLULLULLBBBBBBBBB",
}

func TestSingleTurnFacelets(t *testing.T) {
	for face, want := range singleTurnFacelets {
		c := Solved()
		c.Turn(face, 1)
		if got := c.Encode(); got != want {
			t.Errorf("%s from solved = %s, want %s", face, got, want)
			t.Log(c.String())
		}
	}
}

func TestSuperflip(t *testing.T) {
	c := Solved()
	if err := c.ApplyNotation("R L U2 F U' D F2 R2 B2 L U2 F' B' U R2 D F2 U R2 U"); err != nil {
		t.Fatal(err)
	}
	want := "UBULURUFURURFRBRDRFUFLFRFDFDFDLDRDBDLULBLFLDLBUBRBLBDB"
	if got := c.Encode(); got != want {
		t.Errorf("superflip = %s, want %s", got, want)
	}
}

func TestQuarterTurnOrder_AllFaces(t *testing.T) {
	scrambled, _ := Scrambled(NewRand(7), 30)
	for _, face := range Faces {
		for _, turn := range []int{1, -1} {
			c := scrambled.Clone()
			for i := 0; i < 4; i++ {
				c.Turn(face, turn)
			}
			if !c.Equal(scrambled) {
				t.Errorf("%s turn %d x 4 should return to the start state", face, turn)
			}
		}
	}
}

func TestHalfTurnOrder_AllFaces(t *testing.T) {
	scrambled, _ := Scrambled(NewRand(11), 30)
	for _, face := range Faces {
		c := scrambled.Clone()
		c.Turn(face, 2)
		c.Turn(face, 2)
		if !c.Equal(scrambled) {
			t.Errorf("%s2 x 2 should return to the start state", face)
		}
	}
}

func TestMoveThenInverse_AllMoves(t *testing.T) {
	scrambled, _ := Scrambled(NewRand(3), 30)
	for _, m := range AllMoves {
		c := scrambled.Clone()
		c.Apply(m, m.Inverse())
		if !c.Equal(scrambled) {
			t.Errorf("%s %s should be the identity", m, m.Inverse())
		}
	}
}

func TestHalfTurnEqualsTwoQuarters(t *testing.T) {
	for _, face := range Faces {
		a := Solved()
		a.Turn(face, 1)
		a.Turn(face, 1)
		b := Solved()
		b.Turn(face, 2)
		if !a.Equal(b) {
			t.Errorf("%s %s should equal %s2", face, face, face)
		}
	}
}

func TestTurnNormalization(t *testing.T) {
	cases := []struct {
		turn int
		same int
	}{
		{0, 4},
		{3, -1},
		{-3, 1},
		{-2, 2},
		{5, 1},
		{-6, 2},
	}
	for _, tc := range cases {
		a := Solved()
		a.Apply(TPerm...)
		b := a.Clone()
		a.Turn(FaceF, tc.turn)
		b.Turn(FaceF, tc.same)
		if !a.Equal(b) {
			t.Errorf("turn %d should equal turn %d", tc.turn, tc.same)
		}
	}
}

func TestCentersNeverMove(t *testing.T) {
	for _, face := range Faces {
		for q := 1; q < 4; q++ {
			p := moveTable[face][q]
			for _, other := range Faces {
				center := position(other, centerIndex)
				if int(p[center]) != center {
					t.Errorf("%s x%d moves the %s center", face, q, other)
				}
			}
		}
	}
}

func TestRTouchesTwentyFacelets(t *testing.T) {
	moved := moveTable[FaceR][1].moved()
	if len(moved) != 20 {
		t.Fatalf("R permutes %d facelets, want 20", len(moved))
	}

	want := map[int]bool{}
	for _, idx := range []int{0, 1, 2, 3, 5, 6, 7, 8} {
		want[position(FaceR, idx)] = true
	}
	for _, s := range faceCycles[FaceR] {
		for _, idx := range s.indices {
			want[position(s.face, idx)] = true
		}
	}
	for _, pos := range moved {
		if !want[pos] {
			t.Errorf("R moves unexpected position %d", pos)
		}
	}

	// From solved the own-face rotation is invisible: only the 12 strip
	// stickers change color, the other 42 keep theirs.
	solved := Solved()
	c := Solved()
	c.Apply(R)
	changed := 0
	for i := range c.facelets {
		if c.facelets[i] != solved.facelets[i] {
			changed++
		}
	}
	if changed != 12 {
		t.Errorf("R changes %d facelet colors from solved, want 12", changed)
	}
}

func TestEveryMovePermutesTwentyFacelets(t *testing.T) {
	for _, face := range Faces {
		for q := 1; q < 4; q++ {
			if n := len(moveTable[face][q].moved()); n != 20 {
				t.Errorf("%s x%d permutes %d facelets, want 20", face, q, n)
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := Solved()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := Solved()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should change the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestColorMultisetPreserved(t *testing.T) {
	c := Solved()
	rng := NewRand(42)
	for i := 0; i < 1000; i++ {
		c.ApplyMove(AllMoves[rng.IntN(len(AllMoves))])
	}
	for color, n := range c.ColorsCount() {
		if n != 9 {
			t.Errorf("color %s appears %d times after 1000 moves", color, n)
		}
	}
	for _, face := range Faces {
		if got := c.center(face); got != face.HomeColor() {
			t.Errorf("%s center is %s after 1000 moves", face, got)
		}
	}
}

func TestInvalidFacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Turn with an invalid face should panic")
		}
	}()
	Solved().Turn(Face(9), 1)
}

func TestApplyNotationInvalidLeavesCube(t *testing.T) {
	c := Solved()
	if err := c.ApplyNotation("R U X"); err == nil {
		t.Fatal("expected error for invalid token")
	}
	if !c.IsSolved() {
		t.Error("invalid sequence should not be partially applied")
	}
}

func TestScrambleAndReverse(t *testing.T) {
	c := Solved()
	scramble := []Move{R, U, RPrime, UPrime, F, D, L2, B, DPrime}

	c.Apply(scramble...)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}

	c.Apply(Invert(scramble)...)
	if !c.IsSolved() {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}
