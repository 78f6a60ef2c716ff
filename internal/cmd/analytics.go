package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyticsReset bool

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show the rolling optimization analytics",
	Long: `Show the rolling analytics ledger: optimization count, average
improvement, style/platform usage, and total estimated time saved.

Examples:
  promptsmith analytics
  promptsmith analytics --reset`,
	RunE:         runAnalytics,
	SilenceUsage: true,
}

func init() {
	analyticsCmd.Flags().BoolVar(&analyticsReset, "reset", false, "Reset the analytics ledger to zero")
	RootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	if analyticsReset {
		if err := engine.ResetAnalytics(cmd.Context()); err != nil {
			return err
		}
		u := newUI()
		fmt.Fprintf(u.Writer, "%s analytics reset\n", u.Styles.IconSuccess)
		return nil
	}

	stats, err := engine.Analytics(cmd.Context())
	if err != nil {
		return err
	}

	return newReporter(newUI()).Analytics(stats)
}
