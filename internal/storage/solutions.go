package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubestate"
)

// Solution is a move sequence recorded for a stored state.
type Solution struct {
	SolutionID string
	StateID    string
	Solver     string
	MovesText  string
	MoveCount  int
	CreatedAt  time.Time
}

// Moves parses the stored move sequence.
func (s *Solution) Moves() ([]cubestate.Move, error) {
	return cubestate.ParseMoves(s.MovesText)
}

// SolutionRepository provides CRUD operations for solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create records a solution for a state and returns its ID.
func (r *SolutionRepository) Create(ctx context.Context, stateID, solver string, moves []cubestate.Move) (string, error) {
	return insertSolution(ctx, r.db, stateID, solver, moves)
}

func insertSolution(ctx context.Context, q execer, stateID, solver string, moves []cubestate.Move) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := q.ExecContext(ctx, `
		INSERT INTO solutions (solution_id, state_id, solver, moves_text, move_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, stateID, solver, cubestate.FormatMoves(moves), len(moves), createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("failed to create solution: %w", err)
	}

	return id, nil
}

// ForState returns a state's solutions, shortest first.
func (r *SolutionRepository) ForState(ctx context.Context, stateID string) ([]Solution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT solution_id, state_id, solver, moves_text, move_count, created_at
		FROM solutions
		WHERE state_id = ?
		ORDER BY move_count, rowid
	`, stateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		var s Solution
		var createdAtStr string
		if err := rows.Scan(&s.SolutionID, &s.StateID, &s.Solver, &s.MovesText, &s.MoveCount, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created time: %w", err)
		}
		solutions = append(solutions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}

	return solutions, nil
}
