package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/idgen"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/logging"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/scan"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/ui"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/wizard"
	"github.com/spf13/cobra"
)

var script string

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Run the kiosk wizard (default command)",
	GroupID: "kiosk",
	Args:    cobra.NoArgs,
	RunE:    runWizard,
}

// runWizard runs one kiosk session. Prompts go to stderr and the kiosk
// screen to stdout, so --json output stays machine-readable.
func runWizard(cmd *cobra.Command, args []string) error {
	runID := idgen.MustGenerate()

	var view wizard.View = ui.NewTextView(cmd.OutOrStdout())
	if jsonOutput {
		view = ui.NewJSONView(cmd.OutOrStdout())
	}

	runner := wizard.NewRunner(newScanner(cmd), view,
		wizard.WithLogger(logging.WithField("component", "wizard")),
		wizard.WithHints(cfg.Hints),
		wizard.WithRunID(runID),
		wizard.WithStation(cfg.Station),
	)

	if _, err := runner.Run(cmd.Context()); err != nil {
		if errors.Is(err, wizard.ErrInputClosed) {
			return fmt.Errorf("run %s ended before a decision: %w", runID, err)
		}
		return fmt.Errorf("run %s: %w", runID, err)
	}
	return nil
}

func newScanner(cmd *cobra.Command) wizard.Scanner {
	if cmd.Flags().Changed("script") {
		return scan.ParseScript(script)
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return scan.New(f, cmd.ErrOrStderr())
	}
	return scan.NewLines(cmd.InOrStdin(), cmd.ErrOrStderr())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&script, "script", "", "comma-separated readings to replay instead of prompting (e.g. BP123,TAG456,50,30,15)")
}
