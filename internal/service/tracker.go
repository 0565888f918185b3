package service

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/errs"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/validate"
)

// ExerciseParams collects the fields for one exercise entry, with the
// performed actuals.
type ExerciseParams struct {
	Name       string
	Category   string
	Difficulty int
	Sets       int
	Reps       int
}

// TrackerService defines workout and exercise-catalog operations.
type TrackerService interface {
	// AddWorkout persists a workout scoped to userID and returns it with
	// the assigned ID.
	AddWorkout(ctx context.Context, userID int64, date time.Time, duration int) (*model.Workout, error)
	// LogExercise creates a catalog exercise and attaches it to the workout
	// with the supplied sets/reps as completed actuals.
	LogExercise(ctx context.Context, workoutID int64, p ExerciseParams) (*model.Exercise, error)
	// DeleteWorkout removes a workout owned by userID together with its
	// exercise entries. Deleting someone else's workout is ErrNotFound.
	DeleteWorkout(ctx context.Context, userID, workoutID int64) error
	// ListWorkouts returns the user's workouts.
	ListWorkouts(ctx context.Context, userID int64) ([]model.Workout, error)
	// WorkoutDetail returns a workout with its attached exercises.
	WorkoutDetail(ctx context.Context, workoutID int64) (*model.Workout, []model.WorkoutEntry, error)

	// AddExercise creates a standalone catalog exercise.
	AddExercise(ctx context.Context, p ExerciseParams) (*model.Exercise, error)
	// DeleteExercise removes a catalog exercise. Absent IDs are a no-op.
	DeleteExercise(ctx context.Context, id int64) error
	// ListExercises returns the whole catalog.
	ListExercises(ctx context.Context) ([]model.Exercise, error)

	// ListUsers returns all accounts.
	ListUsers(ctx context.Context) ([]model.User, error)
	// DeleteUser removes an account. A user who still owns workouts is
	// blocked with errs.ErrConflict.
	DeleteUser(ctx context.Context, id int64) error
	// DeleteUserByUsername removes an account by username with DeleteUser
	// semantics.
	DeleteUserByUsername(ctx context.Context, username string) error
}

type TrackerServiceImpl struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	workouts  repository.WorkoutRepository
}

// NewTrackerService constructs TrackerService with required dependencies.
func NewTrackerService(users repository.UserRepository, exercises repository.ExerciseRepository, workouts repository.WorkoutRepository) *TrackerServiceImpl {
	return &TrackerServiceImpl{users: users, exercises: exercises, workouts: workouts}
}

// AddWorkout validates fields and persists the workout row. The row commits
// before any exercises are attached, since join rows need a workout id.
func (s *TrackerServiceImpl) AddWorkout(ctx context.Context, userID int64, date time.Time, duration int) (*model.Workout, error) {
	if err := validate.PositiveInt(duration, "duration"); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, errs.Field("date", "must be set")
	}
	w := &model.Workout{Date: date, Duration: duration, UserID: userID}
	if err := s.workouts.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// validateExercise applies the catalog field checks shared by LogExercise
// and AddExercise.
func validateExercise(p *ExerciseParams) (model.Category, error) {
	if err := validate.NonEmpty(p.Name, "exercise name"); err != nil {
		return "", err
	}
	cat, err := validate.Category(p.Category)
	if err != nil {
		return "", err
	}
	if err := validate.Difficulty(p.Difficulty); err != nil {
		return "", err
	}
	if err := validate.PositiveInt(p.Sets, "sets"); err != nil {
		return "", err
	}
	if err := validate.PositiveInt(p.Reps, "reps"); err != nil {
		return "", err
	}
	return cat, nil
}

// LogExercise always inserts a fresh catalog row (no dedupe by name), then
// links it to the workout. Each pair commits in its own statements; a failure
// here never rolls back the workout or earlier entries.
func (s *TrackerServiceImpl) LogExercise(ctx context.Context, workoutID int64, p ExerciseParams) (*model.Exercise, error) {
	cat, err := validateExercise(&p)
	if err != nil {
		return nil, err
	}
	if _, err := s.workouts.GetByID(ctx, workoutID); err != nil {
		return nil, err
	}
	e := &model.Exercise{Name: p.Name, Category: cat, Difficulty: p.Difficulty, Sets: p.Sets, Reps: p.Reps}
	if err := s.exercises.Create(ctx, e); err != nil {
		return nil, err
	}
	we := &model.WorkoutExercise{
		WorkoutID:     workoutID,
		ExerciseID:    e.ID,
		SetsCompleted: p.Sets,
		RepsCompleted: p.Reps,
	}
	if err := s.workouts.AttachExercise(ctx, we); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteWorkout checks ownership, then removes the workout and its join rows.
// Absent workout IDs are a no-op. The catalog rows stay.
func (s *TrackerServiceImpl) DeleteWorkout(ctx context.Context, userID, workoutID int64) error {
	w, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}
	if w.UserID != userID {
		return errs.ErrNotFound
	}
	return s.workouts.Delete(ctx, workoutID)
}

// ListWorkouts returns the user's workouts ordered by date.
func (s *TrackerServiceImpl) ListWorkouts(ctx context.Context, userID int64) ([]model.Workout, error) {
	return s.workouts.ListByUser(ctx, userID)
}

// WorkoutDetail returns a workout and its attached exercise entries.
func (s *TrackerServiceImpl) WorkoutDetail(ctx context.Context, workoutID int64) (*model.Workout, []model.WorkoutEntry, error) {
	w, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.workouts.ListExercises(ctx, workoutID)
	if err != nil {
		return nil, nil, err
	}
	return w, entries, nil
}

// AddExercise creates a standalone catalog row.
func (s *TrackerServiceImpl) AddExercise(ctx context.Context, p ExerciseParams) (*model.Exercise, error) {
	cat, err := validateExercise(&p)
	if err != nil {
		return nil, err
	}
	e := &model.Exercise{Name: p.Name, Category: cat, Difficulty: p.Difficulty, Sets: p.Sets, Reps: p.Reps}
	if err := s.exercises.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteExercise removes a catalog row. Absent IDs are a no-op.
func (s *TrackerServiceImpl) DeleteExercise(ctx context.Context, id int64) error {
	return s.exercises.Delete(ctx, id)
}

// ListExercises returns the whole catalog.
func (s *TrackerServiceImpl) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	return s.exercises.List(ctx)
}

// ListUsers returns all accounts.
func (s *TrackerServiceImpl) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes an account by ID. Users who still own workouts are
// blocked; the operator must delete the workouts first.
func (s *TrackerServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// DeleteUserByUsername removes an account by username. Absent usernames are a
// no-op; a user who still owns workouts is blocked.
func (s *TrackerServiceImpl) DeleteUserByUsername(ctx context.Context, username string) error {
	return s.users.DeleteByUsername(ctx, username)
}
