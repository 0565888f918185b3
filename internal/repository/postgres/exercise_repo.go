package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fittrack/internal/errs"
	"fittrack/internal/model"
)

// ExerciseRepo implements ExerciseRepository using PostgreSQL.
type ExerciseRepo struct{ db *DB }

// NewExerciseRepo constructs an exercise repository.
func NewExerciseRepo(db *DB) *ExerciseRepo { return &ExerciseRepo{db: db} }

// Create inserts a new exercise row and returns the assigned ID in e.ID.
func (r *ExerciseRepo) Create(ctx context.Context, e *model.Exercise) error {
	const q = `
INSERT INTO exercises (name, category, difficulty, sets, reps)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := r.db.Pool.QueryRow(ctx, q, e.Name, string(e.Category), e.Difficulty, e.Sets, e.Reps).Scan(&e.ID)
	if isCheckViolation(err) {
		return errs.ErrValidation
	}
	return err
}

// GetByID selects an exercise by ID.
func (r *ExerciseRepo) GetByID(ctx context.Context, id int64) (*model.Exercise, error) {
	const q = `
SELECT id, name, category, difficulty, sets, reps
FROM exercises WHERE id=$1`
	var e model.Exercise
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&e.ID, &e.Name, &e.Category, &e.Difficulty, &e.Sets, &e.Reps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns all catalog exercises ordered by ID.
func (r *ExerciseRepo) List(ctx context.Context) ([]model.Exercise, error) {
	const q = `
SELECT id, name, category, difficulty, sets, reps
FROM exercises ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Exercise{}
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Difficulty, &e.Sets, &e.Reps); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes an exercise by ID. Absent IDs are a no-op; join rows
// referencing the exercise go with it (ON DELETE CASCADE).
func (r *ExerciseRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM exercises WHERE id=$1`
	_, err := r.db.Pool.Exec(ctx, q, id)
	return err
}
