// Command fittrack is a personal fitness-tracking CLI backed by PostgreSQL.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fittrack/internal/config"
	"fittrack/internal/errs"
	"fittrack/internal/migrate"
	"fittrack/internal/repository/postgres"
	"fittrack/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// app bundles everything a command needs after startup.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	db      *postgres.DB
	auth    service.AuthService
	tracker service.TrackerService
}

// newApp loads configuration, opens the store, runs migrations and wires
// repositories and services. Failures here are the only non-zero exits.
func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	logger := newLogger(cfg)
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	if err := migrate.Up(ctx, cfg.DSN); err != nil {
		return nil, fmt.Errorf("migrate up: %w", err)
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	userRepo := postgres.NewUserRepo(db)
	exerciseRepo := postgres.NewExerciseRepo(db)
	workoutRepo := postgres.NewWorkoutRepo(db)

	return &app{
		cfg:     cfg,
		log:     logger,
		db:      db,
		auth:    service.NewAuthService(userRepo),
		tracker: service.NewTrackerService(userRepo, exerciseRepo, workoutRepo),
	}, nil
}

func (a *app) close() {
	a.db.Close()
	_ = a.log.Sync()
}

// newLogger writes JSON logs to the configured file so the interactive
// console stays clean; it falls back to stderr if the file cannot be opened.
func newLogger(cfg config.Config) *zap.Logger {
	_ = os.MkdirAll(cfg.StateDir, 0o700)
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{cfg.LogPath}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath}
	logger, err := zcfg.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// login authenticates the -u/-p pair for subcommands that need a user.
func (a *app) login(ctx context.Context, username, password string) (int64, error) {
	u, err := a.auth.Authenticate(ctx, username, password)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// promptIfEmpty asks for any missing field on in, in the order given.
func promptIfEmpty(in io.Reader, fields map[string]*string, order ...string) error {
	r := bufio.NewReader(in)
	for _, name := range order {
		p := fields[name]
		if *p != "" {
			continue
		}
		fmt.Printf("%s: ", name)
		line, err := r.ReadString('\n')
		if err != nil {
			return err
		}
		*p = strings.TrimSpace(line)
	}
	return nil
}

// promptIntIfZero asks for a numeric field left at its zero flag default,
// re-prompting until the input parses.
func promptIntIfZero(in io.Reader, name string, p *int) error {
	if *p != 0 {
		return nil
	}
	r := bufio.NewReader(in)
	for {
		fmt.Printf("%s: ", name)
		line, err := r.ReadString('\n')
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Println("Please enter a number")
			continue
		}
		*p = n
		return nil
	}
}

// renderErr prints a handled domain error as one human-readable line and
// reports whether err was handled. Handled errors exit 0.
func renderErr(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, errs.ErrValidation):
		fmt.Fprintf(os.Stdout, "Invalid input: %v\n", err)
	case errors.Is(err, errs.ErrAlreadyExists):
		fmt.Fprintln(os.Stdout, "That username is already taken")
	case errors.Is(err, errs.ErrUnauthorized):
		fmt.Fprintln(os.Stdout, "Invalid credentials")
	case errors.Is(err, errs.ErrNotFound):
		fmt.Fprintln(os.Stdout, "No such record")
	case errors.Is(err, errs.ErrConflict):
		fmt.Fprintln(os.Stdout, "User still has workouts; delete them first")
	default:
		return false
	}
	return true
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
