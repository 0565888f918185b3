package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fittrack/internal/validate"
)

// workoutsCmd groups workout subcommands. They all authenticate with -u/-p
// first; there is no stored token.
func workoutsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "workouts",
		Short: "Add, list and delete workouts",
	}
	c.AddCommand(workoutsAddCmd(), workoutsListCmd(), workoutsDeleteCmd(), workoutShowCmd())
	return c
}

func workoutsAddCmd() *cobra.Command {
	var username, password, dateStr string
	var duration int
	c := &cobra.Command{
		Use:   "add",
		Short: "Add a workout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			fields := map[string]*string{"username": &username, "password": &password, "date": &dateStr}
			if err := promptIfEmpty(cmd.InOrStdin(), fields, "username", "password", "date"); err != nil {
				return err
			}

			userID, err := a.login(cmd.Context(), username, password)
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err != nil {
				return nil
			}

			date, err := validate.Date(dateStr)
			if !renderErr(err) || err != nil {
				return nil
			}
			if err := promptIntIfZero(cmd.InOrStdin(), "duration", &duration); err != nil {
				return err
			}

			w, err := a.tracker.AddWorkout(cmd.Context(), userID, date, duration)
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err == nil {
				fmt.Printf("Workout %d created\n", w.ID)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	c.Flags().StringVar(&dateStr, "date", "", "workout date (YYYY-MM-DD)")
	c.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	return c
}

func workoutsListCmd() *cobra.Command {
	var username, password string
	c := &cobra.Command{
		Use:   "list",
		Short: "List your workouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			fields := map[string]*string{"username": &username, "password": &password}
			if err := promptIfEmpty(cmd.InOrStdin(), fields, "username", "password"); err != nil {
				return err
			}

			userID, err := a.login(cmd.Context(), username, password)
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err != nil {
				return nil
			}

			workouts, err := a.tracker.ListWorkouts(cmd.Context(), userID)
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			for _, w := range workouts {
				fmt.Printf("%d\t%s\t%d minutes\n", w.ID, w.Date.Format(validate.DateFormat), w.Duration)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	return c
}

func workoutsDeleteCmd() *cobra.Command {
	var username, password string
	c := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your workouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, convErr := strconv.ParseInt(args[0], 10, 64)
			if convErr != nil {
				fmt.Println("Invalid input: id must be a number")
				return nil
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			fields := map[string]*string{"username": &username, "password": &password}
			if err := promptIfEmpty(cmd.InOrStdin(), fields, "username", "password"); err != nil {
				return err
			}

			userID, err := a.login(cmd.Context(), username, password)
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err != nil {
				return nil
			}

			if err := a.tracker.DeleteWorkout(cmd.Context(), userID, id); !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			} else if err == nil {
				fmt.Println("Workout deleted")
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	return c
}

// workoutShowCmd prints a workout with its attached exercises and actuals.
func workoutShowCmd() *cobra.Command {
	var username, password string
	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the exercises attached to a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, convErr := strconv.ParseInt(args[0], 10, 64)
			if convErr != nil {
				fmt.Println("Invalid input: id must be a number")
				return nil
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			fields := map[string]*string{"username": &username, "password": &password}
			if err := promptIfEmpty(cmd.InOrStdin(), fields, "username", "password"); err != nil {
				return err
			}

			if _, err := a.login(cmd.Context(), username, password); !renderErr(err) || err != nil {
				return nil
			}

			w, entries, err := a.tracker.WorkoutDetail(cmd.Context(), id)
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err != nil {
				return nil
			}
			fmt.Printf("Workout %d on %s, %d minutes\n", w.ID, w.Date.Format(validate.DateFormat), w.Duration)
			for _, en := range entries {
				fmt.Printf("  %s (%s) difficulty %d: %d sets x %d reps\n",
					en.Exercise.Name, en.Exercise.Category, en.Exercise.Difficulty,
					en.SetsCompleted, en.RepsCompleted)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	return c
}
