package cubestate

import (
	"context"
	"errors"
	"testing"
)

func TestReverseSolver(t *testing.T) {
	c, scramble := Scrambled(NewRand(5), 25)

	moves, err := SolveCube(context.Background(), ReverseSolver{Scramble: scramble}, c)
	if err != nil {
		t.Fatalf("SolveCube: %v", err)
	}
	c.Apply(moves...)
	if !c.IsSolved() {
		t.Errorf("solution %s did not solve the cube", FormatMoves(moves))
	}
}

func TestReverseSolverAlreadySolved(t *testing.T) {
	moves, err := ReverseSolver{}.Solve(context.Background(), SolvedFacelets)
	if err != nil {
		t.Fatal(err)
	}
	if moves == nil || len(moves) != 0 {
		t.Errorf("solved cube should give an empty, non-nil solution, got %v", moves)
	}
}

func TestReverseSolverRejectsOtherState(t *testing.T) {
	c := Solved()
	c.Apply(R)
	_, err := ReverseSolver{Scramble: []Move{U}}.Solve(context.Background(), c.Encode())
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("error = %v, want ErrInvalidState", err)
	}
}

func TestReverseSolverRejectsMalformed(t *testing.T) {
	_, err := ReverseSolver{}.Solve(context.Background(), "UUU")
	if !errors.Is(err, ErrInvalidState) || !errors.Is(err, ErrLength) {
		t.Errorf("error = %v, want ErrInvalidState wrapping ErrLength", err)
	}
}

func TestReverseSolverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (ReverseSolver{}).Solve(ctx, SolvedFacelets); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestSolveCubeRejectsWrongSolution(t *testing.T) {
	c := Solved()
	c.Apply(R)

	// A solver that reads the facelet string with the wrong orientation
	// answers with the wrong turn direction.
	bad := SolverFunc(func(ctx context.Context, facelets string) ([]Move, error) {
		return []Move{R}, nil
	})
	_, err := SolveCube(context.Background(), bad, c)
	if !errors.Is(err, ErrUnsolved) {
		t.Errorf("error = %v, want ErrUnsolved", err)
	}
	if !c.Equal(func() *Cube { x := Solved(); x.Apply(R); return x }()) {
		t.Error("SolveCube should not modify its argument")
	}
}

func TestSolveCubePassesFacelets(t *testing.T) {
	c := Solved()
	c.Apply(F)
	var seen string
	solver := SolverFunc(func(ctx context.Context, facelets string) ([]Move, error) {
		seen = facelets
		return []Move{FPrime}, nil
	})
	if _, err := SolveCube(context.Background(), solver, c); err != nil {
		t.Fatal(err)
	}
	if seen != singleTurnFacelets[FaceF] {
		t.Errorf("solver saw %s, want %s", seen, singleTurnFacelets[FaceF])
	}
}
