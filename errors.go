package cubestate

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubestate package.
var (
	// Coordinate errors
	ErrOutOfRange = errors.New("cubestate: facelet coordinate out of range")

	// Facelet string errors
	ErrLength         = errors.New("cubestate: facelet string must be 54 characters")
	ErrAlphabet       = errors.New("cubestate: invalid facelet symbol")
	ErrColorCount     = errors.New("cubestate: each color must appear exactly 9 times")
	ErrCenterMismatch = errors.New("cubestate: center facelet does not match its face")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubestate: invalid move notation")
	ErrUnknownColor    = errors.New("cubestate: unknown color name")

	// Solver errors
	ErrInvalidState = errors.New("cubestate: solver rejected cube state")
	ErrUnsolved     = errors.New("cubestate: solution does not solve the cube")

	// Cubie errors
	ErrInvalidCubie = errors.New("cubestate: facelets do not form valid cubies")
	ErrCornerTwist  = errors.New("cubestate: corner twist is not a multiple of 3")
	ErrEdgeFlip     = errors.New("cubestate: edge flip is odd")
	ErrParity       = errors.New("cubestate: corner and edge permutation parity differ")
)

// OutOfRangeError reports an access outside the 6x3x3 facelet grid.
type OutOfRangeError struct {
	Face     Face
	Row, Col int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: face=%d row=%d col=%d", ErrOutOfRange, int(e.Face), e.Row, e.Col)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// LengthError reports a facelet string of the wrong length.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrLength, e.Length)
}

func (e *LengthError) Unwrap() error { return ErrLength }

// AlphabetError reports a character outside U, R, F, D, L, B.
type AlphabetError struct {
	Pos  int  // character index, not byte offset
	Char rune // utf8.RuneError for an invalid byte
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrAlphabet, e.Char, e.Pos)
}

func (e *AlphabetError) Unwrap() error { return ErrAlphabet }

// ColorCountError reports the first color whose count is not 9.
type ColorCountError struct {
	Color Color
	Count int
}

func (e *ColorCountError) Error() string {
	return fmt.Sprintf("%v: %s appears %d times", ErrColorCount, e.Color, e.Count)
}

func (e *ColorCountError) Unwrap() error { return ErrColorCount }

// CenterMismatchError reports a face block whose center is not the
// face's home color.
type CenterMismatchError struct {
	Face  Face
	Color Color
}

func (e *CenterMismatchError) Error() string {
	return fmt.Sprintf("%v: %s center is %s", ErrCenterMismatch, e.Face, e.Color)
}

func (e *CenterMismatchError) Unwrap() error { return ErrCenterMismatch }

// CubieError reports a corner or edge slot whose stickers match no piece,
// or match a piece already found in another slot.
type CubieError struct {
	Slot   string // slot name, such as "URF" or "UB"
	Colors string // the slot's stickers, in slot order
}

func (e *CubieError) Error() string {
	return fmt.Sprintf("%v: %s slot holds %s", ErrInvalidCubie, e.Slot, e.Colors)
}

func (e *CubieError) Unwrap() error { return ErrInvalidCubie }
