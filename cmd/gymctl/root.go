package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymcore/internal/logging"
)

var (
	verbosity int
	gymName   string

	rootCmd = &cobra.Command{
		Use:           "gymctl",
		Short:         "Run the gym management demo",
		Long:          "gymctl seeds a gym with members, staff, and sessions, drives the registration and payroll workflows, and prints the resulting state report and action history.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.Setup(verbosity, os.Stderr)
			return runDemo(cmd.Context(), cmd.OutOrStdout(), log, gymName)
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	rootCmd.Flags().StringVar(&gymName, "name", "CrossFit", "Gym display name")
}
