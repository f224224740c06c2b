package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/doclint/internal/config"
	"github.com/agentstation/doclint/internal/engine"
	"github.com/agentstation/doclint/internal/output"
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/logging"
)

var (
	formatFlag string
	failOnFlag string
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Lint markdown instruction files",
	Long: `Check scans a project for instruction files, runs every enabled
checker, and reports the findings. The exit code is non-zero when any
finding reaches the --fail-on severity.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "output format: text, json, yaml, github")
	checkCmd.Flags().StringVar(&failOnFlag, "fail-on", "error", "minimum severity that causes a non-zero exit: info, warning, error")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	failOn, err := diagnostic.ParseSeverity(failOnFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile, root)
	if err != nil {
		return err
	}

	result, err := engine.Run(engine.Options{
		Root:   root,
		Config: cfg,
		Logger: logging.Default(),
	})
	if err != nil {
		return err
	}

	if err := output.Render(cmd.OutOrStdout(), format, result.Diagnostics); err != nil {
		return err
	}

	if diagnostic.AnyAtLeast(result.Diagnostics, failOn) {
		return fmt.Errorf("findings at or above %s severity", failOn)
	}
	return nil
}
