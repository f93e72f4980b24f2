package cubestate

import (
	"context"
	"fmt"
)

// Solver finds a move sequence that solves the cube described by a facelet
// string. It returns an empty slice for a solved cube and an error wrapping
// ErrInvalidState for a string it cannot solve.
//
// Implementations usually wrap a two-phase search; the search is not part
// of this package.
type Solver interface {
	Solve(ctx context.Context, facelets string) ([]Move, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, facelets string) ([]Move, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, facelets string) ([]Move, error) {
	return f(ctx, facelets)
}

// ReverseSolver solves cubes whose scramble is known, by undoing it.
type ReverseSolver struct {
	Scramble []Move
}

// Solve returns the inverted scramble. The facelet string must be exactly
// the scramble applied to a solved cube.
func (s ReverseSolver) Solve(ctx context.Context, facelets string) ([]Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := Decode(facelets)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	expected := Solved()
	expected.Apply(s.Scramble...)
	if !c.Equal(expected) {
		return nil, fmt.Errorf("%w: state does not match scramble %q", ErrInvalidState, FormatMoves(s.Scramble))
	}

	if c.IsSolved() {
		return []Move{}, nil
	}
	return Invert(Simplify(s.Scramble)), nil
}

// SolveCube encodes c, asks solver for a solution and verifies it on a
// copy of c. The cube itself is not modified.
func SolveCube(ctx context.Context, solver Solver, c *Cube) ([]Move, error) {
	moves, err := solver.Solve(ctx, c.Encode())
	if err != nil {
		return nil, err
	}

	check := c.Clone()
	check.Apply(moves...)
	if !check.IsSolved() {
		return nil, fmt.Errorf("%w: %s", ErrUnsolved, FormatMoves(moves))
	}
	return moves, nil
}
