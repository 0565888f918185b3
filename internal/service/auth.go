// Package service contains application services for authentication and workout tracking.
package service

import (
	"context"
	"errors"
	"strings"

	pkgcrypto "fittrack/internal/crypto"
	"fittrack/internal/errs"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/validate"
)

// RegisterParams collects the fields required to create an account.
type RegisterParams struct {
	Username    string
	Password    string
	Name        string
	Age         int
	FitnessGoal string
}

// AuthService defines registration and authentication operations.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, p RegisterParams) (*model.User, error)
	// Authenticate verifies credentials and returns the matching user.
	// Unknown username and wrong password both yield errs.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

type AuthServiceImpl struct {
	users repository.UserRepository
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository) *AuthServiceImpl {
	return &AuthServiceImpl{users: users}
}

// Register validates fields, hashes the password with a per-user salt and
// inserts the account. The raw password is never stored.
func (s *AuthServiceImpl) Register(ctx context.Context, p RegisterParams) (*model.User, error) {
	p.Username = strings.TrimSpace(p.Username)
	if err := validate.NonEmpty(p.Username, "username"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(p.Password, "password"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(p.Name, "name"); err != nil {
		return nil, err
	}
	if err := validate.Age(p.Age); err != nil {
		return nil, err
	}
	if err := validate.Goal(p.FitnessGoal); err != nil {
		return nil, err
	}

	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Username:    p.Username,
		PwdHash:     pkgcrypto.HashPassword([]byte(p.Password), salt),
		SaltAuth:    salt,
		Name:        p.Name,
		Age:         p.Age,
		FitnessGoal: p.FitnessGoal,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate looks up the user and verifies the password. The error never
// reveals whether the username or the password was wrong. Storage failures
// pass through unchanged; they are not an authentication verdict.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}
