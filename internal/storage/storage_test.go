package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cubestate"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenMigrated(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenMigrated: %v", err)
	}
	if db.Path() != path {
		t.Fatalf("Path() = %s, want %s", db.Path(), path)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrations(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	version, err := db.CurrentVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if version != LatestVersion {
		t.Errorf("version = %d, want %d", version, LatestVersion)
	}

	// Running again is a no-op.
	if err := db.MigrateUp(ctx); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
}

func TestStateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)

	c := cubestate.Solved()
	c.Apply(cubestate.SexyMove...)
	facelets := c.Encode()

	id, err := states.Create(ctx, facelets, "sexy", "R U R' U'")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := states.Get(ctx, id)
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if got.Facelets != facelets {
		t.Errorf("Facelets = %s, want %s", got.Facelets, facelets)
	}
	if got.Label == nil || *got.Label != "sexy" {
		t.Errorf("Label = %v, want sexy", got.Label)
	}
	if got.IsSolved {
		t.Error("IsSolved should be false")
	}

	decoded, err := got.Cube()
	if err != nil || !decoded.Equal(c) {
		t.Errorf("Cube() = %v, %v", decoded, err)
	}

	scramble, err := got.Scramble()
	if err != nil {
		t.Fatal(err)
	}
	if cubestate.FormatMoves(scramble) != "R U R' U'" {
		t.Errorf("Scramble() = %s", cubestate.FormatMoves(scramble))
	}
}

func TestStateOptionalFields(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)

	id, err := states.Create(ctx, cubestate.SolvedFacelets, "", "")
	if err != nil {
		t.Fatal(err)
	}
	got, err := states.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != nil || got.ScrambleText != nil {
		t.Errorf("empty label and scramble should be NULL: %+v", got)
	}
	if !got.IsSolved {
		t.Error("solved facelets should be marked solved")
	}
	if moves, err := got.Scramble(); err != nil || moves != nil {
		t.Errorf("Scramble() = %v, %v; want nil, nil", moves, err)
	}
}

func TestStateCreateRejectsInvalid(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)

	if _, err := states.Create(ctx, "UUU", "", ""); !errors.Is(err, cubestate.ErrLength) {
		t.Errorf("error = %v, want ErrLength", err)
	}
	if _, err := states.Create(ctx, cubestate.SolvedFacelets, "", "R Q"); !errors.Is(err, cubestate.ErrInvalidNotation) {
		t.Errorf("error = %v, want ErrInvalidNotation", err)
	}

	list, err := states.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("rejected states were stored: %d", len(list))
	}
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)
	got, err := NewStateRepository(db).Get(context.Background(), "missing")
	if err != nil || got != nil {
		t.Errorf("Get(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestListOrderAndLimit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		c, moves := cubestate.Scrambled(cubestate.NewRand(uint64(i)), 10)
		id, err := states.Create(ctx, c.Encode(), "", cubestate.FormatMoves(moves))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	all, err := states.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].StateID != ids[2] || all[2].StateID != ids[0] {
		t.Errorf("List should return newest first")
	}

	two, err := states.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(two) != 2 {
		t.Errorf("List(2) returned %d states", len(two))
	}
}

func TestFindByFacelets(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)

	for _, label := range []string{"a", "b"} {
		if _, err := states.Create(ctx, cubestate.SolvedFacelets, label, ""); err != nil {
			t.Fatal(err)
		}
	}
	found, err := states.FindByFacelets(ctx, cubestate.SolvedFacelets)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Errorf("found %d states, want 2", len(found))
	}
}

func TestSolutions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)
	solutions := NewSolutionRepository(db)

	c := cubestate.Solved()
	c.Apply(cubestate.TPerm...)

	stateID, solutionID, err := states.CreateSolved(ctx, c.Encode(), "tperm", "", "reverse", cubestate.TPerm)
	if err != nil {
		t.Fatalf("CreateSolved: %v", err)
	}
	if solutionID == "" {
		t.Fatal("empty solution id")
	}

	if _, err := solutions.Create(ctx, stateID, "manual", []cubestate.Move{cubestate.R}); err != nil {
		t.Fatal(err)
	}

	list, err := solutions.ForState(ctx, stateID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d solutions, want 2", len(list))
	}
	if list[0].Solver != "manual" || list[1].MoveCount != len(cubestate.TPerm) {
		t.Errorf("solutions should be ordered by length: %+v", list)
	}

	moves, err := list[1].Moves()
	if err != nil {
		t.Fatal(err)
	}
	c.Apply(moves...)
	if !c.IsSolved() {
		t.Error("stored T-perm should solve the T-perm state")
	}
}

func TestSolutionRequiresState(t *testing.T) {
	db := openTestDB(t)
	if _, err := NewSolutionRepository(db).Create(context.Background(), "missing", "reverse", nil); err == nil {
		t.Error("solution for a missing state should fail the foreign key")
	}
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)
	solutions := NewSolutionRepository(db)

	stateID, _, err := states.CreateSolved(ctx, cubestate.SolvedFacelets, "", "", "reverse", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := states.Delete(ctx, stateID); err != nil {
		t.Fatal(err)
	}

	list, err := solutions.ForState(ctx, stateID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("solutions survived their state: %d", len(list))
	}

	if err := states.Delete(ctx, stateID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second delete = %v, want sql.ErrNoRows", err)
	}
}

func TestCreateSolvedRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	states := NewStateRepository(db)

	// Make the solution insert fail after the state row is written.
	if _, err := db.ExecContext(ctx, `
		CREATE TRIGGER reject_solutions BEFORE INSERT ON solutions
		BEGIN SELECT RAISE(ABORT, 'solutions rejected'); END
	`); err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	stateID, solutionID, err := states.CreateSolved(ctx, sexyFacelets(), "sexy", "R U R' U'", "reverse", cubestate.Invert(cubestate.SexyMove))
	if err == nil {
		t.Fatal("CreateSolved should fail when the solution insert fails")
	}
	if stateID != "" || solutionID != "" {
		t.Errorf("failed CreateSolved returned ids %q, %q", stateID, solutionID)
	}

	list, err := states.List(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("state row survived rollback: %+v", list)
	}
}

func TestTransactionCancelledContext(t *testing.T) {
	db := openTestDB(t)
	states := NewStateRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := states.CreateSolved(ctx, cubestate.SolvedFacelets, "", "", "reverse", nil); err == nil {
		t.Fatal("CreateSolved with a cancelled context should fail")
	}

	list, err := states.List(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("cancelled CreateSolved left %d states", len(list))
	}
}

func sexyFacelets() string {
	c := cubestate.Solved()
	c.Apply(cubestate.SexyMove...)
	return c.Encode()
}
