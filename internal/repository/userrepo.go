// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"fittrack/internal/model"
)

// UserRepository provides CRUD access for user accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the DB-assigned ID.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByUsername loads a user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// List returns all users ordered by ID. Empty store yields an empty slice.
	List(ctx context.Context) ([]model.User, error)
	// Delete removes a user by ID. Deleting an absent ID is a no-op.
	// A user that still owns workouts is not deleted (errs.ErrConflict).
	Delete(ctx context.Context, id int64) error
	// DeleteByUsername removes a user by username with the same semantics.
	DeleteByUsername(ctx context.Context, username string) error
}
