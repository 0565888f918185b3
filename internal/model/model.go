// Package model defines domain entities used by services and repositories.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Category is a fixed exercise category. Stored lowercase; parsed
// case-insensitively.
type Category string

const (
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
	CategoryChest     Category = "chest"
	CategoryTriceps   Category = "triceps"
	CategoryShoulders Category = "shoulders"
	CategoryBack      Category = "back"
	CategoryBiceps    Category = "biceps"
	CategoryLegs      Category = "legs"
)

// Categories lists all valid exercise categories in display order.
var Categories = []Category{
	CategoryCore, CategoryCardio, CategoryChest, CategoryTriceps,
	CategoryShoulders, CategoryBack, CategoryBiceps, CategoryLegs,
}

// ParseCategory matches s case-insensitively against the fixed category set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Categories {
		if c == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown exercise category %q", s)
}

// User is an account record. The password is never stored in plaintext.
type User struct {
	ID          int64  // PK, DB-assigned
	Username    string // unique
	PwdHash     []byte // Argon2id(password, SaltAuth)
	SaltAuth    []byte // per-user auth salt
	Name        string // display name
	Age         int    // 1..100
	FitnessGoal string // free text, < 140 chars
	CreatedAt   time.Time
}

// Exercise is a catalog record with target sets/reps. It exists
// independently of any workout.
type Exercise struct {
	ID         int64
	Name       string
	Category   Category
	Difficulty int // 1..5
	Sets       int // target, > 0
	Reps       int // target, > 0
}

// Workout is a dated session owned by exactly one user.
type Workout struct {
	ID       int64
	Date     time.Time // calendar date, no time component
	Duration int       // minutes, > 0
	UserID   int64     // FK -> users.id
}

// WorkoutExercise records that an exercise was performed within a workout,
// with completed actuals. Identity is the (WorkoutID, ExerciseID) pair.
type WorkoutExercise struct {
	WorkoutID     int64
	ExerciseID    int64
	SetsCompleted int
	RepsCompleted int
}

// WorkoutEntry is an exercise joined with its actuals for display.
type WorkoutEntry struct {
	Exercise      Exercise
	SetsCompleted int
	RepsCompleted int
}
