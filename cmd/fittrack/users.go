package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fittrack/internal/service"
)

// registerCmd creates an account from flags, prompting for missing fields.
func registerCmd() *cobra.Command {
	var (
		username, password, name, goal string
		age                            int
	)
	c := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
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
			}
			if err := promptIfEmpty(cmd.InOrStdin(), fields, "username", "password", "name"); err != nil {
				return err
			}
			if err := promptIntIfZero(cmd.InOrStdin(), "age", &age); err != nil {
				return err
			}

			u, err := a.auth.Register(cmd.Context(), service.RegisterParams{
				Username:    username,
				Password:    password,
				Name:        name,
				Age:         age,
				FitnessGoal: goal,
			})
			if !renderErr(err) {
				a.log.Error("register failed", zap.Error(err))
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err == nil {
				fmt.Printf("Registered %s (id %d)\n", u.Username, u.ID)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	c.Flags().StringVarP(&name, "name", "n", "", "display name")
	c.Flags().IntVar(&age, "age", 0, "age (1-100)")
	c.Flags().StringVar(&goal, "goal", "", "fitness goal")
	return c
}

// loginCmd verifies credentials and remembers the username for the
// interactive menu. It issues no token; there is nothing else to keep.
func loginCmd() *cobra.Command {
	var username, password string
	c := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and remember the username",
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

			u, err := a.auth.Authenticate(cmd.Context(), username, password)
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if err == nil {
				if err := service.SaveLastUser(a.cfg.StateDir, u.Username); err != nil {
					a.log.Warn("could not persist last-username marker", zap.Error(err))
				}
				fmt.Printf("Welcome back, %s!\n", u.Name)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&username, "username", "u", "", "username")
	c.Flags().StringVarP(&password, "password", "p", "", "password")
	return c
}

func usersCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "users",
		Short: "List and delete accounts",
	}
	c.AddCommand(usersListCmd(), usersDeleteCmd())
	return c
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			users, err := a.tracker.ListUsers(cmd.Context())
			if !renderErr(err) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			for _, u := range users {
				fmt.Printf("%d\t%s\t%s\tage %d\t%s\n", u.ID, u.Username, u.Name, u.Age, u.FitnessGoal)
			}
			return nil
		},
	}
}

func usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|username>",
		Short: "Delete an account by id or username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			var delErr error
			if id, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
				delErr = a.tracker.DeleteUser(cmd.Context(), id)
			} else {
				delErr = a.tracker.DeleteUserByUsername(cmd.Context(), args[0])
			}
			if !renderErr(delErr) {
				fmt.Println("Something went wrong talking to the store")
				return nil
			}
			if delErr == nil {
				fmt.Println("User deleted")
			}
			return nil
		},
	}
}
