// Package validate contains pure field-level checks applied before persistence.
package validate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fittrack/internal/errs"
	"fittrack/internal/model"
)

// DateFormat is the only accepted workout date layout (year-month-day).
const DateFormat = "2006-01-02"

// MaxGoalLen bounds the fitness goal description.
const MaxGoalLen = 140

// PositiveInt fails when n <= 0.
func PositiveInt(n int, field string) error {
	if n <= 0 {
		return errs.Field(field, "must be a positive integer")
	}
	return nil
}

// IntRange fails when n is outside [lo, hi].
func IntRange(n, lo, hi int, field string) error {
	if n < lo || n > hi {
		return errs.Field(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return nil
}

// NonEmpty fails when s is empty or whitespace.
func NonEmpty(s, field string) error {
	if strings.TrimSpace(s) == "" {
		return errs.Field(field, "must not be empty")
	}
	return nil
}

// Date parses s against DateFormat and rejects everything else.
func Date(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Field("date", "invalid date format (want YYYY-MM-DD)")
	}
	return d, nil
}

// Age checks the registration age bound (1..100 inclusive).
func Age(n int) error {
	return IntRange(n, 1, 100, "age")
}

// Goal checks the fitness goal length bound. Counted in runes, matching the
// char_length check constraint in the store.
func Goal(s string) error {
	if utf8.RuneCountInString(s) >= MaxGoalLen {
		return errs.Field("fitness goal", fmt.Sprintf("must be shorter than %d characters", MaxGoalLen))
	}
	return nil
}

// Difficulty checks the exercise difficulty bound (1..5 inclusive).
func Difficulty(n int) error {
	return IntRange(n, 1, 5, "difficulty")
}

// Category matches s case-insensitively against the fixed category set.
func Category(s string) (model.Category, error) {
	c, err := model.ParseCategory(s)
	if err != nil {
		return "", errs.Field("category", "must be one of: core, cardio, chest, triceps, shoulders, back, biceps, legs")
	}
	return c, nil
}
