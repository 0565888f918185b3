package repository

import (
	"context"

	"fittrack/internal/model"
)

// ExerciseRepository provides access to the exercise catalog.
type ExerciseRepository interface {
	// Create inserts a new exercise and fills in the DB-assigned ID.
	Create(ctx context.Context, e *model.Exercise) error
	// GetByID loads an exercise by ID.
	GetByID(ctx context.Context, id int64) (*model.Exercise, error)
	// List returns all catalog exercises ordered by ID.
	List(ctx context.Context) ([]model.Exercise, error)
	// Delete removes an exercise by ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id int64) error
}
