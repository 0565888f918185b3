// Package session holds the one-slot in-memory login state for the process.
//
// A Session is not a source of truth: it lives only for the process lifetime
// and is passed explicitly into the workflow engine instead of living in a
// package-level variable.
package session

import "fittrack/internal/model"

// Session holds at most one authenticated user.
type Session struct {
	user *model.User
}

// New returns an empty session.
func New() *Session { return &Session{} }

// Login stores u as the current user, replacing any previous one.
func (s *Session) Login(u *model.User) { s.user = u }

// Logout clears the slot.
func (s *Session) Logout() { s.user = nil }

// Current returns the authenticated user, if any.
func (s *Session) Current() (*model.User, bool) {
	return s.user, s.user != nil
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool { return s.user != nil }
