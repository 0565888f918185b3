package service

import (
	"context"

	"fittrack/internal/errs"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUsers struct {
	byID   map[int64]*model.User
	nextID int64

	workouts *fakeWorkouts // for the delete-block check; may be nil

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int64]*model.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, ex := range f.byID {
		if ex.Username == u.Username {
			return errs.ErrAlreadyExists
		}
	}
	u.ID = f.nextID
	f.nextID++
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) List(context.Context) ([]model.User, error) {
	out := []model.User{}
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.byID[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if f.workouts != nil {
		for _, w := range f.workouts.byID {
			if w.UserID == id {
				return errs.ErrConflict
			}
		}
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUsers) DeleteByUsername(ctx context.Context, username string) error {
	for id, u := range f.byID {
		if u.Username == username {
			return f.Delete(ctx, id)
		}
	}
	return nil
}

type fakeExercises struct {
	byID   map[int64]*model.Exercise
	nextID int64

	createErr error
}

var _ repository.ExerciseRepository = (*fakeExercises)(nil)

func newFakeExercises() *fakeExercises {
	return &fakeExercises{byID: map[int64]*model.Exercise{}, nextID: 1}
}

func (f *fakeExercises) Create(_ context.Context, e *model.Exercise) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = f.nextID
	f.nextID++
	cpy := *e
	f.byID[e.ID] = &cpy
	return nil
}

func (f *fakeExercises) GetByID(_ context.Context, id int64) (*model.Exercise, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *e
	return &c, nil
}

func (f *fakeExercises) List(context.Context) ([]model.Exercise, error) {
	out := []model.Exercise{}
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.byID[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExercises) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

type fakeWorkouts struct {
	byID   map[int64]*model.Workout
	joins  []model.WorkoutExercise
	nextID int64

	exercises *fakeExercises // for ListExercises join; may be nil

	createErr error
	attachErr error
}

var _ repository.WorkoutRepository = (*fakeWorkouts)(nil)

func newFakeWorkouts() *fakeWorkouts {
	return &fakeWorkouts{byID: map[int64]*model.Workout{}, nextID: 1}
}

func (f *fakeWorkouts) Create(_ context.Context, w *model.Workout) error {
	if f.createErr != nil {
		return f.createErr
	}
	w.ID = f.nextID
	f.nextID++
	cpy := *w
	f.byID[w.ID] = &cpy
	return nil
}

func (f *fakeWorkouts) GetByID(_ context.Context, id int64) (*model.Workout, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *w
	return &c, nil
}

func (f *fakeWorkouts) ListByUser(_ context.Context, userID int64) ([]model.Workout, error) {
	out := []model.Workout{}
	for id := int64(1); id < f.nextID; id++ {
		if w, ok := f.byID[id]; ok && w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkouts) List(context.Context) ([]model.Workout, error) {
	out := []model.Workout{}
	for id := int64(1); id < f.nextID; id++ {
		if w, ok := f.byID[id]; ok {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkouts) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	keep := f.joins[:0]
	for _, j := range f.joins {
		if j.WorkoutID != id {
			keep = append(keep, j)
		}
	}
	f.joins = keep
	return nil
}

func (f *fakeWorkouts) AttachExercise(_ context.Context, we *model.WorkoutExercise) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	if _, ok := f.byID[we.WorkoutID]; !ok {
		return errs.ErrNotFound
	}
	for _, j := range f.joins {
		if j.WorkoutID == we.WorkoutID && j.ExerciseID == we.ExerciseID {
			return errs.ErrAlreadyExists
		}
	}
	f.joins = append(f.joins, *we)
	return nil
}

func (f *fakeWorkouts) ListExercises(_ context.Context, workoutID int64) ([]model.WorkoutEntry, error) {
	out := []model.WorkoutEntry{}
	for _, j := range f.joins {
		if j.WorkoutID != workoutID {
			continue
		}
		en := model.WorkoutEntry{SetsCompleted: j.SetsCompleted, RepsCompleted: j.RepsCompleted}
		if f.exercises != nil {
			if e, ok := f.exercises.byID[j.ExerciseID]; ok {
				en.Exercise = *e
			}
		}
		out = append(out, en)
	}
	return out, nil
}
