package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptsmith/promptsmith/internal/optimizer"
)

var (
	optStyle    string
	optPlatform string
	optFile     string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [prompt]",
	Short: "Rewrite a prompt for a target style and platform",
	Long: `Rewrite a prompt for a target style and platform.

The prompt is read from the argument, from --file, or from stdin.

Examples:
  promptsmith optimize "tell me about dogs" --style academic --platform perplexity
  promptsmith optimize --file prompt.txt --platform claude
  cat prompt.txt | promptsmith optimize --format json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runOptimize,
	SilenceUsage: true,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optStyle, "style", "s", "", "Target writing style (professional, creative, technical, academic)")
	optimizeCmd.Flags().StringVarP(&optPlatform, "platform", "p", "", "Target platform (chatgpt, claude, gemini, perplexity)")
	optimizeCmd.Flags().StringVar(&optFile, "file", "", "Read the prompt from a file")
	RootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	text, err := readPrompt(args)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	result, err := engine.Optimize(cmd.Context(), text, optimizer.Request{
		Platform: optPlatform,
		Style:    optStyle,
	})
	if err != nil {
		return err
	}

	return newReporter(newUI()).Optimization(result)
}

// readPrompt resolves the prompt text from the argument, --file, or stdin.
func readPrompt(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	if optFile != "" {
		data, err := os.ReadFile(optFile)
		if err != nil {
			return "", fmt.Errorf("reading prompt file: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no prompt given: pass it as an argument, via --file, or on stdin")
}
