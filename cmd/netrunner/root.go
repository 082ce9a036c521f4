// Package main provides the entry point for the NetRunner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for NetRunner.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "netrunner",
		Short: "Browser fingerprint uniqueness analyzer",
		Long: `NetRunner analyzes browser fingerprints and scores how uniquely
identifiable they are. It estimates the information content of each signal
(user agent, screen resolution, canvas hash, ...) against real-world
distributions and reports a 0-100 uniqueness score with privacy risks and
recommendations.

Fingerprints are read as JSON from a file or stdin.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
