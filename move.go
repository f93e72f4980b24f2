package cubestate

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Normalize folds any turn amount onto CW, CCW or Double.
// It returns 0 for turns that are a multiple of a full rotation.
func (t Turn) Normalize() Turn {
	switch normalizeTurn(int(t)) {
	case 1:
		return CW
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return 0
	}
}

// Move represents a single face turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn.Normalize() {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn.Normalize() {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	case Double:
		inv.Turn = Double
	}
	return inv
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	face, ok := ParseFace(upper(s[0]))
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Any invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes moves: reversed, each move
// inverted.
func Invert(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Simplify merges adjacent turns of the same face and drops turns that
// cancel out. The resulting sequence produces the same cube state.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		m.Turn = m.Turn.Normalize()
		if m.Turn == 0 {
			continue
		}
		n := len(out)
		if n == 0 || out[n-1].Face != m.Face {
			out = append(out, m)
			continue
		}
		combined := (out[n-1].Turn + m.Turn).Normalize()
		if combined == 0 {
			out = out[:n-1]
			continue
		}
		out[n-1].Turn = combined
	}
	return out
}
