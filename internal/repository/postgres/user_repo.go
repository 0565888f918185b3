package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fittrack/internal/errs"
	"fittrack/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row and returns the assigned ID in u.ID.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (username, pwd_hash, salt_auth, name, age, fitness_goal)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`
	err := r.db.Pool.QueryRow(ctx, q, u.Username, u.PwdHash, u.SaltAuth, u.Name, u.Age, u.FitnessGoal).
		Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
SELECT id, username, pwd_hash, salt_auth, name, age, fitness_goal, created_at
FROM users WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByUsername selects a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
SELECT id, username, pwd_hash, salt_auth, name, age, fitness_goal, created_at
FROM users WHERE username=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, username))
}

func (r *UserRepo) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PwdHash, &u.SaltAuth, &u.Name, &u.Age, &u.FitnessGoal, &u.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users ordered by ID.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const q = `
SELECT id, username, pwd_hash, salt_auth, name, age, fitness_goal, created_at
FROM users ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PwdHash, &u.SaltAuth, &u.Name, &u.Age, &u.FitnessGoal, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Delete removes a user by ID. Absent IDs are a no-op; a user who still owns
// workouts is blocked by the ON DELETE RESTRICT reference.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id=$1`
	_, err := r.db.Pool.Exec(ctx, q, id)
	if isForeignKeyViolation(err) {
		return errs.ErrConflict
	}
	return err
}

// DeleteByUsername removes a user by username with Delete semantics.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	const q = `DELETE FROM users WHERE username=$1`
	_, err := r.db.Pool.Exec(ctx, q, username)
	if isForeignKeyViolation(err) {
		return errs.ErrConflict
	}
	return err
}
