package service

import (
	"context"
	"errors"
	"testing"

	"fittrack/internal/errs"
)

func validParams() RegisterParams {
	return RegisterParams{
		Username:    "alice",
		Password:    "s3cret",
		Name:        "Alice",
		Age:         30,
		FitnessGoal: "run a marathon",
	}
}

func TestAuth_Register_Basics(t *testing.T) {
	t.Parallel()
	users := newFakeUsers()
	s := NewAuthService(users)

	u, err := s.Register(context.Background(), validParams())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned user id")
	}
	if len(u.PwdHash) == 0 || len(u.SaltAuth) == 0 {
		t.Fatalf("expected hashed credential, got %+v", u)
	}
	if string(u.PwdHash) == "s3cret" {
		t.Fatalf("raw password must never be stored")
	}

	// Duplicate username.
	p := validParams()
	p.Password = "other"
	if _, err := s.Register(context.Background(), p); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists on duplicate username, got %v", err)
	}
	all, _ := users.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("exactly one record with that username should persist, got %d", len(all))
	}

	users.createErr = errors.New("boom")
	p = validParams()
	p.Username = "bob"
	if _, err := s.Register(context.Background(), p); err == nil {
		t.Fatalf("want propagated repo error")
	}
}

func TestAuth_Register_Validation(t *testing.T) {
	t.Parallel()
	s := NewAuthService(newFakeUsers())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterParams)
	}{
		{"empty username", func(p *RegisterParams) { p.Username = " " }},
		{"empty password", func(p *RegisterParams) { p.Password = "" }},
		{"empty name", func(p *RegisterParams) { p.Name = "" }},
		{"age zero", func(p *RegisterParams) { p.Age = 0 }},
		{"age too high", func(p *RegisterParams) { p.Age = 101 }},
		{"goal too long", func(p *RegisterParams) {
			long := make([]byte, 140)
			for i := range long {
				long[i] = 'x'
			}
			p.FitnessGoal = string(long)
		}},
	}
	for _, tc := range cases {
		p := validParams()
		tc.mutate(&p)
		if _, err := s.Register(ctx, p); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: want validation error, got %v", tc.name, err)
		}
	}
}

func TestAuth_Authenticate(t *testing.T) {
	t.Parallel()
	users := newFakeUsers()
	s := NewAuthService(users)
	ctx := context.Background()

	reg, err := s.Register(ctx, validParams())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := s.Authenticate(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != reg.ID {
		t.Fatalf("authenticate returned id=%d, registered id=%d", got.ID, reg.ID)
	}

	// Wrong password and unknown user look identical.
	_, errWrongPwd := s.Authenticate(ctx, "alice", "nope")
	_, errNoUser := s.Authenticate(ctx, "mallory", "s3cret")
	if !errors.Is(errWrongPwd, errs.ErrUnauthorized) || !errors.Is(errNoUser, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized for both, got %v / %v", errWrongPwd, errNoUser)
	}
	if errWrongPwd.Error() != errNoUser.Error() {
		t.Fatalf("error text must not reveal which field was wrong: %q vs %q", errWrongPwd, errNoUser)
	}

	// A storage failure is not an authentication verdict: it surfaces
	// unchanged instead of reading as invalid credentials.
	storageErr := errors.New("connection refused")
	users.getErr = storageErr
	_, err = s.Authenticate(ctx, "alice", "s3cret")
	if !errors.Is(err, storageErr) {
		t.Fatalf("want storage error to pass through, got %v", err)
	}
	if errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("storage failure must not render as invalid credentials")
	}
}

func TestLastUserMarker(t *testing.T) {
	dir := t.TempDir()

	if got := LoadLastUser(dir); got != "" {
		t.Fatalf("missing marker should read empty, got %q", got)
	}
	if err := SaveLastUser(dir, "alice\n"); err != nil {
		t.Fatalf("SaveLastUser: %v", err)
	}
	if got := LoadLastUser(dir); got != "alice" {
		t.Fatalf("LoadLastUser=%q, want alice", got)
	}
	if err := ClearLastUser(dir); err != nil {
		t.Fatalf("ClearLastUser: %v", err)
	}
	if got := LoadLastUser(dir); got != "" {
		t.Fatalf("marker should be gone, got %q", got)
	}
	if err := ClearLastUser(dir); err != nil {
		t.Fatalf("clearing twice must be a no-op: %v", err)
	}
}
