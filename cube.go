package cubestate

import (
	"fmt"
	"strings"
)

// Face identifies one of the six cube faces. The ordinal order is the
// order faces appear in a facelet string.
type Face int

const (
	FaceU Face = 0 // Up
	FaceR Face = 1 // Right
	FaceF Face = 2 // Front
	FaceD Face = 3 // Down
	FaceL Face = 4 // Left
	FaceB Face = 5 // Back
)

// NumFaces is the number of faces on a cube.
const NumFaces = 6

// Faces lists every face in facelet-string order.
var Faces = [NumFaces]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

const faceLetters = "URFDLB"

func (f Face) String() string {
	if !f.Valid() {
		return "?"
	}
	return faceLetters[f : f+1]
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceB
}

// HomeColor returns the color of the face's center, which is also the
// color of the whole face when the cube is solved.
func (f Face) HomeColor() Color {
	return Color(f)
}

// ParseFace converts a face letter (U, R, F, D, L, B) to a Face.
func ParseFace(b byte) (Face, bool) {
	i := strings.IndexByte(faceLetters, b)
	if i < 0 {
		return 0, false
	}
	return Face(i), true
}

// Color is a facelet color symbol. The six symbols share the face letters:
// a color is named after the face whose center carries it.
type Color uint8

const (
	ColorU Color = 0 // Up face when solved
	ColorR Color = 1 // Right face when solved
	ColorF Color = 2 // Front face when solved
	ColorD Color = 3 // Down face when solved
	ColorL Color = 4 // Left face when solved
	ColorB Color = 5 // Back face when solved
)

func (c Color) String() string {
	if c > ColorB {
		return "?"
	}
	return faceLetters[c : c+1]
}

// Byte returns the facelet-string symbol for the color.
func (c Color) Byte() byte {
	if c > ColorB {
		return '?'
	}
	return faceLetters[c]
}

// Home returns the face whose center defines this color.
func (c Color) Home() Face {
	return Face(c)
}

// ParseColor converts a facelet symbol to a Color.
func ParseColor(b byte) (Color, bool) {
	f, ok := ParseFace(b)
	return Color(f), ok
}

// FaceletsPerFace is the number of stickers on one face.
const FaceletsPerFace = 9

// NumFacelets is the number of stickers on the whole cube.
const NumFacelets = NumFaces * FaceletsPerFace

// centerIndex is the row-major index of a face's center facelet.
const centerIndex = 4

// Cube represents a 3x3 Rubik's cube as 54 facelet colors.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Faces are stored in facelet-string order (U, R, F, D, L, B). The center
// (index 4) defines the face color and never moves.
//
// The zero value is not a valid cube; use Solved or Decode.
type Cube struct {
	facelets [NumFacelets]Color
}

// Solved creates a solved cube: every facelet carries its face's home color.
func Solved() *Cube {
	c := &Cube{}
	for _, face := range Faces {
		for i := 0; i < FaceletsPerFace; i++ {
			c.facelets[position(face, i)] = face.HomeColor()
		}
	}
	return c
}

// position returns the absolute facelet position for a face and index.
func position(face Face, index int) int {
	return int(face)*FaceletsPerFace + index
}

// Get returns the color at the given face, row and column.
func (c *Cube) Get(face Face, row, col int) (Color, error) {
	if err := checkCoord(face, row, col); err != nil {
		return 0, err
	}
	return c.facelets[position(face, row*3+col)], nil
}

func checkCoord(face Face, row, col int) error {
	if !face.Valid() || row < 0 || row > 2 || col < 0 || col > 2 {
		return &OutOfRangeError{Face: face, Row: row, Col: col}
	}
	return nil
}

// Face returns a copy of one face's 9 facelets in row-major order.
func (c *Cube) Face(face Face) [FaceletsPerFace]Color {
	var out [FaceletsPerFace]Color
	if !face.Valid() {
		panic(fmt.Sprintf("cubestate: invalid face %d", int(face)))
	}
	copy(out[:], c.facelets[position(face, 0):position(face, FaceletsPerFace)])
	return out
}

// ColorsCount returns how many facelets carry each color.
func (c *Cube) ColorsCount() map[Color]int {
	counts := make(map[Color]int, NumFaces)
	for _, color := range c.facelets {
		counts[color]++
	}
	return counts
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether two cubes have identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.facelets == other.facelets
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		expected := face.HomeColor()
		for i := 0; i < FaceletsPerFace; i++ {
			if c.facelets[position(face, i)] != expected {
				return false
			}
		}
	}
	return true
}

// String returns the unfolded net of the cube:
//
//	      U
//	L F R B
//	      D
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.facelets[position(face, row*3+col)].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
