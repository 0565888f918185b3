// Package menu implements the interactive workflow engine: a finite-state
// menu loop gating actions by authentication state, including the nested
// add-workout dialogue.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"fittrack/internal/errs"
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/session"
	"fittrack/internal/validate"
)

// State identifies a workflow state of the engine.
type State int

const (
	// StateAnonymous offers register/login and account browsing.
	StateAnonymous State = iota
	// StateAuthenticated offers workout and exercise actions.
	StateAuthenticated
	// StateExit terminates the loop.
	StateExit
)

// sentinelDone ends the exercise entry loop of the add-workout dialogue.
const sentinelDone = "done"

// item is one selectable menu entry: a label and its handler. Handlers
// return the next state.
type item struct {
	label   string
	handler func(ctx context.Context) (State, error)
}

// Engine drives the menu loop over an injected reader/writer so it can be
// exercised from tests without a terminal.
type Engine struct {
	auth    service.AuthService
	tracker service.TrackerService
	sess    *session.Session

	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger

	stateDir string // last-username marker location

	items map[State][]item
}

// New constructs an Engine reading from in and writing to out.
func New(auth service.AuthService, tracker service.TrackerService, sess *session.Session, stateDir string, in io.Reader, out io.Writer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		auth:     auth,
		tracker:  tracker,
		sess:     sess,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      log,
		stateDir: stateDir,
	}
	// Dispatch table: (state, choice) -> handler. Choice 0 is always the
	// state's leave action (exit or logout).
	e.items = map[State][]item{
		StateAnonymous: {
			{"Exit", e.handleExit},
			{"Register", e.handleRegister},
			{"Login", e.handleLogin},
			{"Show all users", e.handleListUsers},
			{"Delete user by id", e.handleDeleteUser},
		},
		StateAuthenticated: {
			{"Logout", e.handleLogout},
			{"Add workout", e.handleAddWorkout},
			{"Delete workout", e.handleDeleteWorkout},
			{"Show my workouts", e.handleListWorkouts},
			{"Add exercise", e.handleAddExercise},
			{"Delete exercise", e.handleDeleteExercise},
			{"Show all exercises", e.handleListExercises},
			{"Show exercises for a workout", e.handleWorkoutDetail},
		},
	}
	return e
}

// state derives the current workflow state from the session slot.
func (e *Engine) state() State {
	if e.sess.Authenticated() {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Run executes the menu loop until the operator exits or input ends.
func (e *Engine) Run(ctx context.Context) error {
	for {
		st := e.state()
		e.printMenu(st)

		line, err := e.readLine("> ")
		if err != nil {
			// Input exhausted: treat like exit.
			return nil
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		items := e.items[st]
		if convErr != nil || n < 0 || n >= len(items) {
			fmt.Fprintln(e.out, "Invalid choice")
			continue
		}

		next, err := items[n].handler(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			e.reportError(err)
			continue
		}
		if next == StateExit {
			fmt.Fprintln(e.out, "Goodbye!")
			return nil
		}
	}
}

func (e *Engine) printMenu(st State) {
	switch st {
	case StateAuthenticated:
		if u, ok := e.sess.Current(); ok {
			fmt.Fprintf(e.out, "\nLogged in as %s. Please select an option:\n", u.Username)
		}
	default:
		fmt.Fprintln(e.out, "\nPlease select an option:")
	}
	for i, it := range e.items[st] {
		fmt.Fprintf(e.out, "%d. %s\n", i, it.label)
	}
}

// reportError renders a domain error as a single human-readable line.
// Nothing propagates as an uncaught fault.
func (e *Engine) reportError(err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		fmt.Fprintf(e.out, "Invalid input: %v\n", err)
	case errors.Is(err, errs.ErrAlreadyExists):
		// Context-neutral: the sentinel can come from any duplicate insert,
		// not only registration.
		fmt.Fprintln(e.out, "Already exists")
	case errors.Is(err, errs.ErrUnauthorized):
		fmt.Fprintln(e.out, "Invalid credentials")
	case errors.Is(err, errs.ErrNotAuthenticated):
		fmt.Fprintln(e.out, "You must be logged in to do that")
	case errors.Is(err, errs.ErrNotFound):
		fmt.Fprintln(e.out, "No such record")
	case errors.Is(err, errs.ErrConflict):
		fmt.Fprintln(e.out, "User still has workouts; delete them first")
	default:
		e.log.Error("storage failure", zap.Error(err))
		fmt.Fprintln(e.out, "Something went wrong talking to the store; the operation was aborted")
	}
}

// ---- prompting ----

func (e *Engine) readLine(prompt string) (string, error) {
	fmt.Fprint(e.out, prompt)
	if !e.in.Scan() {
		if err := e.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(e.in.Text()), nil
}

// promptInt re-prompts until the input parses as an integer and passes check.
func (e *Engine) promptInt(label string, check func(int) error) (int, error) {
	for {
		line, err := e.readLine(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(e.out, "Please enter a number")
			continue
		}
		if check != nil {
			if err := check(n); err != nil {
				e.reportError(err)
				continue
			}
		}
		return n, nil
	}
}

// promptInt64 is promptInt for id fields.
func (e *Engine) promptInt64(label string) (int64, error) {
	for {
		line, err := e.readLine(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.ParseInt(line, 10, 64)
		if convErr != nil {
			fmt.Fprintln(e.out, "Please enter a number")
			continue
		}
		return n, nil
	}
}

// promptDate re-prompts until the input parses under the fixed date format.
func (e *Engine) promptDate(label string) (time.Time, error) {
	for {
		line, err := e.readLine(label)
		if err != nil {
			return time.Time{}, err
		}
		d, parseErr := validate.Date(line)
		if parseErr != nil {
			e.reportError(parseErr)
			continue
		}
		return d, nil
	}
}

// promptCategory re-prompts until the input matches the category set.
func (e *Engine) promptCategory(label string) (model.Category, error) {
	for {
		line, err := e.readLine(label)
		if err != nil {
			return "", err
		}
		c, parseErr := validate.Category(line)
		if parseErr != nil {
			e.reportError(parseErr)
			continue
		}
		return c, nil
	}
}

// ---- anonymous handlers ----

func (e *Engine) handleExit(context.Context) (State, error) {
	return StateExit, nil
}

func (e *Engine) handleRegister(ctx context.Context) (State, error) {
	username, err := e.readLine("Username: ")
	if err != nil {
		return e.state(), err
	}
	password, err := e.readLine("Password: ")
	if err != nil {
		return e.state(), err
	}
	name, err := e.readLine("Display name: ")
	if err != nil {
		return e.state(), err
	}
	age, err := e.promptInt("Age: ", validate.Age)
	if err != nil {
		return e.state(), err
	}
	goal, err := e.readLine("Fitness goal: ")
	if err != nil {
		return e.state(), err
	}

	u, regErr := e.auth.Register(ctx, service.RegisterParams{
		Username:    username,
		Password:    password,
		Name:        name,
		Age:         age,
		FitnessGoal: goal,
	})
	if regErr != nil {
		if errors.Is(regErr, errs.ErrAlreadyExists) {
			fmt.Fprintln(e.out, "That username is already taken")
			return e.state(), nil
		}
		return e.state(), regErr
	}
	e.log.Info("user registered", zap.Int64("user_id", u.ID))
	fmt.Fprintf(e.out, "Registered %s (id %d). You can log in now.\n", u.Username, u.ID)
	return e.state(), nil
}

func (e *Engine) handleLogin(ctx context.Context) (State, error) {
	label := "Username: "
	remembered := service.LoadLastUser(e.stateDir)
	if remembered != "" {
		label = fmt.Sprintf("Username [%s]: ", remembered)
	}
	username, err := e.readLine(label)
	if err != nil {
		return e.state(), err
	}
	if username == "" {
		username = remembered
	}
	password, err := e.readLine("Password: ")
	if err != nil {
		return e.state(), err
	}

	u, authErr := e.auth.Authenticate(ctx, username, password)
	if authErr != nil {
		return e.state(), authErr
	}
	e.sess.Login(u)
	if err := service.SaveLastUser(e.stateDir, u.Username); err != nil {
		e.log.Warn("could not persist last-username marker", zap.Error(err))
	}
	fmt.Fprintf(e.out, "Welcome back, %s!\n", u.Name)
	return StateAuthenticated, nil
}

func (e *Engine) handleListUsers(ctx context.Context) (State, error) {
	users, err := e.tracker.ListUsers(ctx)
	if err != nil {
		return e.state(), err
	}
	if len(users) == 0 {
		fmt.Fprintln(e.out, "No users yet")
		return e.state(), nil
	}
	for _, u := range users {
		fmt.Fprintf(e.out, "%d\t%s\t%s\tage %d\t%s\n", u.ID, u.Username, u.Name, u.Age, u.FitnessGoal)
	}
	return e.state(), nil
}

func (e *Engine) handleDeleteUser(ctx context.Context) (State, error) {
	id, err := e.promptInt64("User id: ")
	if err != nil {
		return e.state(), err
	}
	if err := e.tracker.DeleteUser(ctx, id); err != nil {
		return e.state(), err
	}
	fmt.Fprintln(e.out, "User deleted")
	return e.state(), nil
}

// ---- authenticated handlers ----

func (e *Engine) handleLogout(context.Context) (State, error) {
	e.sess.Logout()
	fmt.Fprintln(e.out, "Logged out")
	return StateAnonymous, nil
}

// handleAddWorkout runs the nested add-workout dialogue: workout fields
// first, then a loop of exercise entries ended by the "done" sentinel. The
// workout row commits before the loop; entries commit one by one, so a
// failed entry never discards earlier ones.
func (e *Engine) handleAddWorkout(ctx context.Context) (State, error) {
	u, ok := e.sess.Current()
	if !ok {
		return e.state(), errs.ErrNotAuthenticated
	}

	date, err := e.promptDate("Workout date (YYYY-MM-DD): ")
	if err != nil {
		return e.state(), err
	}
	duration, err := e.promptInt("Duration (minutes): ", func(n int) error {
		return validate.PositiveInt(n, "duration")
	})
	if err != nil {
		return e.state(), err
	}

	w, addErr := e.tracker.AddWorkout(ctx, u.ID, date, duration)
	if addErr != nil {
		return e.state(), addErr
	}
	e.log.Info("workout created", zap.Int64("workout_id", w.ID), zap.Int64("user_id", u.ID))

	for {
		name, err := e.readLine(fmt.Sprintf("Exercise name (%q to finish): ", sentinelDone))
		if err != nil {
			return e.state(), err
		}
		if strings.EqualFold(name, sentinelDone) {
			break
		}
		category, err := e.promptCategory("Category: ")
		if err != nil {
			return e.state(), err
		}
		difficulty, err := e.promptInt("Difficulty (1-5): ", validate.Difficulty)
		if err != nil {
			return e.state(), err
		}
		sets, err := e.promptInt("Sets completed: ", func(n int) error {
			return validate.PositiveInt(n, "sets")
		})
		if err != nil {
			return e.state(), err
		}
		reps, err := e.promptInt("Reps completed: ", func(n int) error {
			return validate.PositiveInt(n, "reps")
		})
		if err != nil {
			return e.state(), err
		}

		if _, logErr := e.tracker.LogExercise(ctx, w.ID, service.ExerciseParams{
			Name:       name,
			Category:   string(category),
			Difficulty: difficulty,
			Sets:       sets,
			Reps:       reps,
		}); logErr != nil {
			// Report and re-prompt this entry; earlier entries stay committed.
			e.reportError(logErr)
			continue
		}
		fmt.Fprintf(e.out, "Added %s\n", name)
	}

	fmt.Fprintf(e.out, "Workout %d created successfully!\n", w.ID)
	return StateAuthenticated, nil
}

func (e *Engine) handleDeleteWorkout(ctx context.Context) (State, error) {
	u, ok := e.sess.Current()
	if !ok {
		return e.state(), errs.ErrNotAuthenticated
	}
	id, err := e.promptInt64("Workout id: ")
	if err != nil {
		return e.state(), err
	}
	if err := e.tracker.DeleteWorkout(ctx, u.ID, id); err != nil {
		return e.state(), err
	}
	fmt.Fprintln(e.out, "Workout deleted")
	return e.state(), nil
}

func (e *Engine) handleListWorkouts(ctx context.Context) (State, error) {
	u, ok := e.sess.Current()
	if !ok {
		return e.state(), errs.ErrNotAuthenticated
	}
	workouts, err := e.tracker.ListWorkouts(ctx, u.ID)
	if err != nil {
		return e.state(), err
	}
	if len(workouts) == 0 {
		fmt.Fprintln(e.out, "No workouts yet")
		return e.state(), nil
	}
	for _, w := range workouts {
		fmt.Fprintf(e.out, "%d\t%s\t%d minutes\n", w.ID, w.Date.Format(validate.DateFormat), w.Duration)
	}
	return e.state(), nil
}

func (e *Engine) handleAddExercise(ctx context.Context) (State, error) {
	name, err := e.readLine("Exercise name: ")
	if err != nil {
		return e.state(), err
	}
	category, err := e.promptCategory("Category: ")
	if err != nil {
		return e.state(), err
	}
	difficulty, err := e.promptInt("Difficulty (1-5): ", validate.Difficulty)
	if err != nil {
		return e.state(), err
	}
	sets, err := e.promptInt("Target sets: ", func(n int) error {
		return validate.PositiveInt(n, "sets")
	})
	if err != nil {
		return e.state(), err
	}
	reps, err := e.promptInt("Target reps: ", func(n int) error {
		return validate.PositiveInt(n, "reps")
	})
	if err != nil {
		return e.state(), err
	}

	ex, addErr := e.tracker.AddExercise(ctx, service.ExerciseParams{
		Name:       name,
		Category:   string(category),
		Difficulty: difficulty,
		Sets:       sets,
		Reps:       reps,
	})
	if addErr != nil {
		return e.state(), addErr
	}
	fmt.Fprintf(e.out, "Exercise %d added\n", ex.ID)
	return e.state(), nil
}

func (e *Engine) handleDeleteExercise(ctx context.Context) (State, error) {
	id, err := e.promptInt64("Exercise id: ")
	if err != nil {
		return e.state(), err
	}
	if err := e.tracker.DeleteExercise(ctx, id); err != nil {
		return e.state(), err
	}
	fmt.Fprintln(e.out, "Exercise deleted")
	return e.state(), nil
}

func (e *Engine) handleListExercises(ctx context.Context) (State, error) {
	exercises, err := e.tracker.ListExercises(ctx)
	if err != nil {
		return e.state(), err
	}
	if len(exercises) == 0 {
		fmt.Fprintln(e.out, "No exercises yet")
		return e.state(), nil
	}
	for _, ex := range exercises {
		fmt.Fprintf(e.out, "%d\t%s\t%s\tdifficulty %d\t%dx%d\n", ex.ID, ex.Name, ex.Category, ex.Difficulty, ex.Sets, ex.Reps)
	}
	return e.state(), nil
}

func (e *Engine) handleWorkoutDetail(ctx context.Context) (State, error) {
	id, err := e.promptInt64("Workout id: ")
	if err != nil {
		return e.state(), err
	}
	w, entries, detailErr := e.tracker.WorkoutDetail(ctx, id)
	if detailErr != nil {
		return e.state(), detailErr
	}
	fmt.Fprintf(e.out, "Workout %d on %s, %d minutes\n", w.ID, w.Date.Format(validate.DateFormat), w.Duration)
	if len(entries) == 0 {
		fmt.Fprintln(e.out, "No exercises attached")
		return e.state(), nil
	}
	for _, en := range entries {
		fmt.Fprintf(e.out, "  %s (%s) difficulty %d: %d sets x %d reps\n",
			en.Exercise.Name, en.Exercise.Category, en.Exercise.Difficulty,
			en.SetsCompleted, en.RepsCompleted)
	}
	return e.state(), nil
}
