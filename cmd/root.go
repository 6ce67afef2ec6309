// Package cmd wires the teamsplit CLI.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avrillon/teamsplit/core/engine"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "teamsplit",
	Short: "Constraint-aware team generation",
	Long: `teamsplit partitions a roster of present members into near-balanced
teams while honoring "never together" and "always together" pair rules.`,
	SilenceUsage: true,
	// Typed generation failures are reported by the generate command with
	// their suggestion; Execute prints everything else exactly once.
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (json or yaml)")
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.As(err, new(*engine.Error)) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
