package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptsmith/promptsmith/internal/ledger"
	"github.com/promptsmith/promptsmith/internal/optimizer"
	"github.com/promptsmith/promptsmith/internal/platform"
	"github.com/promptsmith/promptsmith/internal/reporter"
	"github.com/promptsmith/promptsmith/internal/rules"
	"github.com/promptsmith/promptsmith/internal/store"
	"github.com/promptsmith/promptsmith/internal/ui"
)

var (
	// Global flags
	verbose   bool
	format    string
	dataDir   string
	rulesPath string
)

// RootCmd is the top-level promptsmith command.
var RootCmd = &cobra.Command{
	Use:   "promptsmith",
	Short: "A rule-based prompt optimizer for AI chat platforms",
	Long: `promptsmith rewrites a natural-language prompt into a higher-quality
version tailored to a target writing style and AI chat platform, and
reports a quantified before/after quality delta.

All transformations are rule-based and deterministic: the same input,
style, and platform always produce the same rewrite. No model calls.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for analytics and overrides (default: user config dir)")
	RootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to a rules override YAML file")
}

// newUI builds the terminal UI for the current format flag.
func newUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, format)
}

// newReporter picks the reporter matching the format flag.
func newReporter(u *ui.UI) reporter.Reporter {
	if u.IsJSON() {
		return reporter.NewJSONReporter(u.Writer)
	}
	return reporter.NewTerminalReporter(u.Writer, u)
}

// resolveDataDir returns the directory holding the store and overrides.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "promptsmith"), nil
}

// overridesKey is the store key under which rule overrides persist.
const overridesKey = "rules_overrides"

// newStore opens the durable store under the data dir.
func newStore() (*store.FileStore, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return store.NewFileStore(filepath.Join(dir, "store.json")), nil
}

// loadRegistry loads the built-in rule registry plus any user overrides:
// an explicit --rules file (or rules.yaml in the data dir), then overrides
// persisted in the store.
func loadRegistry(st store.Store) (*rules.Registry, error) {
	reg, err := rules.Load()
	if err != nil {
		return nil, err
	}

	path := rulesPath
	if path == "" {
		if dir, err := resolveDataDir(); err == nil {
			candidate := filepath.Join(dir, "rules.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := reg.ApplyOverrides(data); err != nil {
			return nil, err
		}
	}

	if st != nil {
		values, err := st.Get(context.Background(), overridesKey)
		if err != nil {
			return nil, err
		}
		if raw, ok := values[overridesKey]; ok {
			if err := reg.ApplyOverrides(raw); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

// newEngine wires the optimization engine and its collaborators.
func newEngine() (*optimizer.Engine, error) {
	st, err := newStore()
	if err != nil {
		return nil, err
	}

	reg, err := loadRegistry(st)
	if err != nil {
		return nil, err
	}

	return optimizer.NewEngine(optimizer.Config{
		Registry: reg,
		Ledger:   ledger.New(st),
		Detector: platform.NewEnvDetector(reg),
	}), nil
}
