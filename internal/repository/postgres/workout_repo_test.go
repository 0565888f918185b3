package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"fittrack/internal/errs"
	"fittrack/internal/model"
)

func workoutColumns() []string {
	return []string{"id", "workout_date", "duration_min", "user_id"}
}

func TestWorkoutRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWorkoutRepo(db)
	ctx := context.Background()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w := &model.Workout{Date: date, Duration: 45, UserID: 1}

	mock.ExpectQuery(`INSERT INTO workouts \(workout_date, duration_min, user_id\) VALUES \(\$1, \$2, \$3\) RETURNING id`).
		WithArgs(date, 45, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	require.NoError(t, r.Create(ctx, w))
	require.Equal(t, int64(10), w.ID)

	// Unknown owner maps to ErrNotFound.
	mock.ExpectQuery(`INSERT INTO workouts .* RETURNING id`).
		WithArgs(date, 45, int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, r.Create(ctx, w), errs.ErrNotFound)
}

func TestWorkoutRepo_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWorkoutRepo(db)
	ctx := context.Background()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, workout_date, duration_min, user_id FROM workouts WHERE id=\$1`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows(workoutColumns()).AddRow(int64(10), date, 45, int64(1)))
	w, err := r.GetByID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), w.UserID)

	mock.ExpectQuery(`SELECT id, workout_date, duration_min, user_id FROM workouts WHERE id=\$1`).
		WithArgs(int64(11)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, 11)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestWorkoutRepo_ListByUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWorkoutRepo(db)
	ctx := context.Background()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, workout_date, duration_min, user_id FROM workouts WHERE user_id=\$1 ORDER BY workout_date, id`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(workoutColumns()).
			AddRow(int64(10), date, 45, int64(1)).
			AddRow(int64(11), date.AddDate(0, 0, 1), 30, int64(1)))
	out, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, int64(10), out[0].ID)

	// Empty store lists are empty, never an error.
	mock.ExpectQuery(`SELECT id, workout_date, duration_min, user_id FROM workouts WHERE user_id=\$1 ORDER BY workout_date, id`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(workoutColumns()))
	out, err = r.ListByUser(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestWorkoutRepo_Delete_RemovesJoinRowsFirst(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWorkoutRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM workout_exercises WHERE workout_id=\$1`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM workouts WHERE id=\$1`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, r.Delete(context.Background(), 10))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutRepo_Delete_AbsentIsNoop(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWorkoutRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM workout_exercises WHERE workout_id=\$1`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM workouts WHERE id=\$1`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectCommit()

	require.NoError(t, r.Delete(context.Background(), 99))
}

func TestWorkoutRepo_AttachExercise(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWorkoutRepo(db)
	ctx := context.Background()

	we := &model.WorkoutExercise{WorkoutID: 10, ExerciseID: 5, SetsCompleted: 3, RepsCompleted: 10}

	mock.ExpectExec(`INSERT INTO workout_exercises \(workout_id, exercise_id, sets_completed, reps_completed\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(we.WorkoutID, we.ExerciseID, we.SetsCompleted, we.RepsCompleted).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.AttachExercise(ctx, we))

	mock.ExpectExec(`INSERT INTO workout_exercises .*`).
		WithArgs(we.WorkoutID, we.ExerciseID, we.SetsCompleted, we.RepsCompleted).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, r.AttachExercise(ctx, we), errs.ErrNotFound)

	mock.ExpectExec(`INSERT INTO workout_exercises .*`).
		WithArgs(we.WorkoutID, we.ExerciseID, we.SetsCompleted, we.RepsCompleted).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.AttachExercise(ctx, we), errs.ErrAlreadyExists)
}

func TestWorkoutRepo_ListExercises(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewWorkoutRepo(db)

	cols := []string{"id", "name", "category", "difficulty", "sets", "reps", "sets_completed", "reps_completed"}
	mock.ExpectQuery(`SELECT e.id, e.name, e.category, e.difficulty, e.sets, e.reps, we.sets_completed, we.reps_completed FROM workout_exercises we JOIN exercises e ON e.id = we.exercise_id WHERE we.workout_id=\$1 ORDER BY e.id`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(5), "pushups", "chest", 3, 3, 10, 3, 10))
	out, err := r.ListExercises(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "pushups", out[0].Exercise.Name)
	require.Equal(t, 3, out[0].SetsCompleted)
	require.Equal(t, 10, out[0].RepsCompleted)
}
