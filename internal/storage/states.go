package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubestate"
)

// State is a stored cube state.
type State struct {
	StateID      string
	Label        *string
	Facelets     string
	ScrambleText *string
	IsSolved     bool
	CreatedAt    time.Time
}

// Cube decodes the stored facelet string.
func (s *State) Cube() (*cubestate.Cube, error) {
	return cubestate.Decode(s.Facelets)
}

// Scramble parses the stored scramble, if any.
func (s *State) Scramble() ([]cubestate.Move, error) {
	if s.ScrambleText == nil {
		return nil, nil
	}
	return cubestate.ParseMoves(*s.ScrambleText)
}

// StateRepository provides CRUD operations for cube states.
type StateRepository struct {
	db *DB
}

// NewStateRepository creates a new state repository.
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Create stores a facelet string and returns its ID. The string must
// decode; an empty label or scramble is stored as NULL.
func (r *StateRepository) Create(ctx context.Context, facelets, label, scramble string) (string, error) {
	return insertState(ctx, r.db, facelets, label, scramble)
}

// CreateSolved stores a state together with a solution in one
// transaction.
func (r *StateRepository) CreateSolved(ctx context.Context, facelets, label, scramble, solver string, moves []cubestate.Move) (string, string, error) {
	var stateID, solutionID string
	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		var err error
		if stateID, err = insertState(ctx, tx, facelets, label, scramble); err != nil {
			return err
		}
		solutionID, err = insertSolution(ctx, tx, stateID, solver, moves)
		return err
	})
	if err != nil {
		return "", "", err
	}
	return stateID, solutionID, nil
}

func insertState(ctx context.Context, q execer, facelets, label, scramble string) (string, error) {
	c, err := cubestate.Decode(facelets)
	if err != nil {
		return "", fmt.Errorf("failed to create state: %w", err)
	}
	if scramble != "" {
		moves, err := cubestate.ParseMoves(scramble)
		if err != nil {
			return "", fmt.Errorf("failed to create state: %w", err)
		}
		scramble = cubestate.FormatMoves(moves)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var labelPtr, scramblePtr *string
	if label != "" {
		labelPtr = &label
	}
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO states (state_id, label, facelets, scramble_text, is_solved, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, labelPtr, facelets, scramblePtr, c.IsSolved(), createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("failed to create state: %w", err)
	}

	return id, nil
}

const stateColumns = `state_id, label, facelets, scramble_text, is_solved, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanState(row scanner) (*State, error) {
	var s State
	var createdAtStr string
	if err := row.Scan(&s.StateID, &s.Label, &s.Facelets, &s.ScrambleText, &s.IsSolved, &createdAtStr); err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created time: %w", err)
	}
	s.CreatedAt = createdAt
	return &s, nil
}

// Get retrieves a state by ID. It returns nil, nil when there is none.
func (r *StateRepository) Get(ctx context.Context, stateID string) (*State, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+stateColumns+` FROM states WHERE state_id = ?`, stateID)
	s, err := scanState(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return s, nil
}

// List returns the most recently stored states first. A limit of zero or
// less returns all of them.
func (r *StateRepository) List(ctx context.Context, limit int) ([]State, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+stateColumns+`
		FROM states
		ORDER BY rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	var states []State
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}

	return states, nil
}

// FindByFacelets returns all stored states with the given facelet string.
func (r *StateRepository) FindByFacelets(ctx context.Context, facelets string) ([]State, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+stateColumns+`
		FROM states
		WHERE facelets = ?
		ORDER BY rowid
	`, facelets)
	if err != nil {
		return nil, fmt.Errorf("failed to find states: %w", err)
	}
	defer rows.Close()

	var states []State
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, *s)
	}
	return states, rows.Err()
}

// Delete removes a state and its solutions.
func (r *StateRepository) Delete(ctx context.Context, stateID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM states WHERE state_id = ?", stateID)
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("state %s: %w", stateID, sql.ErrNoRows)
	}
	return nil
}
