package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptsmith/promptsmith/internal/rules"
	"github.com/promptsmith/promptsmith/internal/scorer"
)

var (
	scoreStyle    string
	scorePlatform string
)

var scoreCmd = &cobra.Command{
	Use:   "score [prompt]",
	Short: "Score a prompt's quality without rewriting it",
	Long: `Score a prompt across the clarity, completeness, context, and
specificity dimensions without changing it.

Examples:
  promptsmith score "tell me about dogs"
  promptsmith score --file prompt.txt --format json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runScore,
	SilenceUsage: true,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreStyle, "style", "s", rules.DefaultStyle, "Target writing style")
	scoreCmd.Flags().StringVarP(&scorePlatform, "platform", "p", rules.DefaultPlatform, "Target platform")
	scoreCmd.Flags().StringVar(&optFile, "file", "", "Read the prompt from a file")
	RootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	text, err := readPrompt(args)
	if err != nil {
		return err
	}

	st, err := newStore()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(st)
	if err != nil {
		return err
	}

	quality := scorer.New(reg).Score(text, scoreStyle, scorePlatform)
	return newReporter(newUI()).Score(quality)
}
