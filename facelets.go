package cubestate

import "unicode/utf8"

// SolvedFacelets is the facelet string of a solved cube.
const SolvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Encode serializes the cube as a 54-character facelet string: faces in
// U, R, F, D, L, B order, each face row-major.
func (c *Cube) Encode() string {
	buf := make([]byte, NumFacelets)
	for i, color := range c.facelets {
		buf[i] = color.Byte()
	}
	return string(buf)
}

// Encode serializes c. See (*Cube).Encode.
func Encode(c *Cube) string {
	return c.Encode()
}

// Decode parses a facelet string into a new Cube.
//
// Length and positions count characters, not bytes, so a stray
// multi-byte character is reported as ErrAlphabet at its own position.
//
// The checks run in a fixed order and the first failure is returned:
// length (ErrLength), symbols (ErrAlphabet), color counts (ErrColorCount),
// then centers (ErrCenterMismatch). Decode does not check that the state is
// reachable by legal moves; see (*Cube).Reachable.
func Decode(s string) (*Cube, error) {
	if n := utf8.RuneCountInString(s); n != NumFacelets {
		return nil, &LengthError{Length: n}
	}

	var buf [NumFacelets]Color
	i := 0
	for _, r := range s {
		color, ok := ParseColor(byte(r))
		if r >= utf8.RuneSelf || !ok {
			return nil, &AlphabetError{Pos: i, Char: r}
		}
		buf[i] = color
		i++
	}

	var counts [NumFaces]int
	for _, color := range buf {
		counts[color]++
	}
	for _, face := range Faces {
		color := face.HomeColor()
		if counts[color] != FaceletsPerFace {
			return nil, &ColorCountError{Color: color, Count: counts[color]}
		}
	}

	for _, face := range Faces {
		if got := buf[position(face, centerIndex)]; got != face.HomeColor() {
			return nil, &CenterMismatchError{Face: face, Color: got}
		}
	}

	return &Cube{facelets: buf}, nil
}

// MustDecode is like Decode but panics on error. Intended for fixtures.
func MustDecode(s string) *Cube {
	c, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether s is a structurally valid facelet string.
func Validate(s string) error {
	_, err := Decode(s)
	return err
}
