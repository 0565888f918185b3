package repository

import (
	"context"

	"fittrack/internal/model"
)

// WorkoutRepository provides access to workouts and their exercise entries.
type WorkoutRepository interface {
	// Create inserts a new workout and fills in the DB-assigned ID.
	Create(ctx context.Context, w *model.Workout) error
	// GetByID loads a workout by ID.
	GetByID(ctx context.Context, id int64) (*model.Workout, error)
	// ListByUser returns a user's workouts ordered by date.
	ListByUser(ctx context.Context, userID int64) ([]model.Workout, error)
	// List returns all workouts ordered by date.
	List(ctx context.Context) ([]model.Workout, error)
	// Delete removes a workout and its join rows in one transaction.
	// Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id int64) error
	// AttachExercise records that an exercise was performed within a workout.
	AttachExercise(ctx context.Context, we *model.WorkoutExercise) error
	// ListExercises returns the exercises attached to a workout with actuals.
	ListExercises(ctx context.Context, workoutID int64) ([]model.WorkoutEntry, error)
}
