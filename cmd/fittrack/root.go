package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fittrack/internal/menu"
	"fittrack/internal/session"
)

// rootCmd builds the command tree. Running fittrack with no subcommand
// starts the interactive menu.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fittrack",
		Short:         "Track workouts and exercises from the terminal",
		Long:          `fittrack is a personal fitness tracker. Run it without arguments for the interactive menu, or use subcommands for scripted access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	root.AddCommand(
		versionCmd(),
		registerCmd(),
		loginCmd(),
		usersCmd(),
		workoutsCmd(),
		exercisesCmd(),
	)
	return root
}

// runInteractive drives the menu state machine over stdin/stdout.
func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	eng := menu.New(a.auth, a.tracker, session.New(), a.cfg.StateDir, os.Stdin, os.Stdout, a.log)
	return eng.Run(ctx)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("fittrack %s (%s)\n", version, buildDate)
		},
	}
}
