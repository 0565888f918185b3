package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fittrack/internal/errs"
	"fittrack/internal/model"
)

// WorkoutRepo implements WorkoutRepository using PostgreSQL.
type WorkoutRepo struct{ db *DB }

// NewWorkoutRepo constructs a workout repository.
func NewWorkoutRepo(db *DB) *WorkoutRepo { return &WorkoutRepo{db: db} }

// Create inserts a new workout row and returns the assigned ID in w.ID.
func (r *WorkoutRepo) Create(ctx context.Context, w *model.Workout) error {
	const q = `
INSERT INTO workouts (workout_date, duration_min, user_id)
VALUES ($1, $2, $3)
RETURNING id`
	err := r.db.Pool.QueryRow(ctx, q, w.Date, w.Duration, w.UserID).Scan(&w.ID)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// GetByID selects a workout by ID.
func (r *WorkoutRepo) GetByID(ctx context.Context, id int64) (*model.Workout, error) {
	const q = `
SELECT id, workout_date, duration_min, user_id
FROM workouts WHERE id=$1`
	var w model.Workout
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&w.ID, &w.Date, &w.Duration, &w.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// ListByUser returns a user's workouts ordered by date, then ID.
func (r *WorkoutRepo) ListByUser(ctx context.Context, userID int64) ([]model.Workout, error) {
	const q = `
SELECT id, workout_date, duration_min, user_id
FROM workouts WHERE user_id=$1 ORDER BY workout_date, id`
	return r.scanList(ctx, q, userID)
}

// List returns all workouts ordered by date, then ID.
func (r *WorkoutRepo) List(ctx context.Context) ([]model.Workout, error) {
	const q = `
SELECT id, workout_date, duration_min, user_id
FROM workouts ORDER BY workout_date, id`
	return r.scanList(ctx, q)
}

func (r *WorkoutRepo) scanList(ctx context.Context, q string, args ...any) ([]model.Workout, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Workout{}
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.Duration, &w.UserID); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Delete removes a workout and its join rows in a single transaction.
// Absent IDs are a no-op.
func (r *WorkoutRepo) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const delJoin = `DELETE FROM workout_exercises WHERE workout_id=$1`
	const delWorkout = `DELETE FROM workouts WHERE id=$1`

	if _, err = tx.Exec(ctx, delJoin, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, delWorkout, id); err != nil {
		return err
	}
	return nil
}

// AttachExercise inserts a join row linking an exercise to a workout with
// completed actuals.
func (r *WorkoutRepo) AttachExercise(ctx context.Context, we *model.WorkoutExercise) error {
	const q = `
INSERT INTO workout_exercises (workout_id, exercise_id, sets_completed, reps_completed)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, we.WorkoutID, we.ExerciseID, we.SetsCompleted, we.RepsCompleted)
	switch {
	case isForeignKeyViolation(err):
		return errs.ErrNotFound
	case isUniqueViolation(err):
		return errs.ErrAlreadyExists
	}
	return err
}

// ListExercises returns the exercises attached to a workout with actuals,
// ordered by exercise ID.
func (r *WorkoutRepo) ListExercises(ctx context.Context, workoutID int64) ([]model.WorkoutEntry, error) {
	const q = `
SELECT e.id, e.name, e.category, e.difficulty, e.sets, e.reps,
       we.sets_completed, we.reps_completed
FROM workout_exercises we
JOIN exercises e ON e.id = we.exercise_id
WHERE we.workout_id=$1
ORDER BY e.id`
	rows, err := r.db.Pool.Query(ctx, q, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.WorkoutEntry{}
	for rows.Next() {
		var en model.WorkoutEntry
		if err := rows.Scan(&en.Exercise.ID, &en.Exercise.Name, &en.Exercise.Category,
			&en.Exercise.Difficulty, &en.Exercise.Sets, &en.Exercise.Reps,
			&en.SetsCompleted, &en.RepsCompleted); err != nil {
			return nil, err
		}
		out = append(out, en)
	}
	return out, rows.Err()
}
