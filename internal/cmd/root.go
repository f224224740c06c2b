// Package cmd wires the doclint command line. Commands stay thin: they
// parse flags, call the engine, and render.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/doclint/pkg/logging"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
)

// rootCmd is the base command; `doclint` without a subcommand prints help.
var rootCmd = &cobra.Command{
	Use:   "doclint",
	Short: "Static analysis for AI agent instruction files",
	Long: `doclint lints markdown instruction files (CLAUDE.md, AGENTS.md, and
friends) for the defects that quietly degrade agent behavior: the same
concept named differently across files, enumeration tables that have
drifted apart, vague directives, leftover placeholders, and broken
heading structure.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env in the working directory is a convenience, not a requirement.
		_ = godotenv.Load()

		switch {
		case quiet:
			logging.SetLevel(zerolog.ErrorLevel)
		case verbose:
			logging.SetLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (default: .doclint.yaml in the project root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}

// Execute runs the CLI with a context that cancels on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
