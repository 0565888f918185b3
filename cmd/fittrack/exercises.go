package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fittrack/internal/service"
)

// exercisesCmd groups exercise-catalog subcommands.
func exercisesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "exercises",
		Short: "Manage the exercise catalog",
	}
	c.AddCommand(exercisesAddCmd(), exercisesListCmd(), exercisesDeleteCmd())
	return c
}

func exercisesAddCmd() *cobra.Command {
	var username, password, name, category string
	var difficulty, sets, reps int
	c := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog exercise",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			fields := map[string]*string{
				"username": &username,
				"password": &password,
				"name":     &name,
				"category": &category,
			}
			if err := promptIfEmpty(cmd.InOrStdin(), fields, "username", "password", "name", "category"); err != nil {
				return err
			}
			for _, f := range []struct {
				name string
				p    *int
			}{
				{"difficulty", &difficulty},
				{"sets", &sets},
				{"reps", &reps},
			} {
				if err := promptIntIfZero(cmd.InOrStdin(), f.name, f.p); err != nil {
					return err
				}
			}

			if _, err := a.login(cmd.Context(), username, password); !renderErr(err) || err != nil {
				return nil
			}

			ex, err := a.tracker.AddExercise(cmd.Context(), service.ExerciseParams{
				Name:       name,
				Category:   category,
				Difficulty: difficulty,
				Sets:       sets,
				Reps:       reps,
			})
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err == nil {
				fmt.Printf("Exercise %d added\n", ex.ID)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	c.Flags().StringVarP(&name, "name", "n", "", "exercise name")
	c.Flags().StringVar(&category, "category", "", "category (core, cardio, chest, triceps, shoulders, back, biceps, legs)")
	c.Flags().IntVar(&difficulty, "difficulty", 0, "difficulty (1-5)")
	c.Flags().IntVar(&sets, "sets", 0, "target sets")
	c.Flags().IntVar(&reps, "reps", 0, "target reps")
	return c
}

func exercisesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the exercise catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			exercises, err := a.tracker.ListExercises(cmd.Context())
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			for _, ex := range exercises {
				fmt.Printf("%d\t%s\t%s\tdifficulty %d\t%dx%d\n", ex.ID, ex.Name, ex.Category, ex.Difficulty, ex.Sets, ex.Reps)
			}
			return nil
		},
	}
}

func exercisesDeleteCmd() *cobra.Command {
	var username, password string
	c := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a catalog exercise by id",
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

			if err := a.tracker.DeleteExercise(cmd.Context(), id); !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			} else if err == nil {
				fmt.Println("Exercise deleted")
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	return c
}
