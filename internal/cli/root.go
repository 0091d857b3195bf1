// Package cli implements the promptbox command line.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/promptbox/buffer"
	"github.com/iw2rmb/promptbox/repl"
)

var (
	verbose            bool
	primaryPrompt      string
	continuationPrompt string
)

var rootCmd = &cobra.Command{
	Use:   "promptbox",
	Short: "Interactive window with prompt-aware box selection",
	Long: `promptbox is an interactive evaluation window whose input rows are
decorated with read-only prompts. Box selection (Alt+Shift+arrows or Alt+drag)
spans prompts and content; edits only ever touch content.

Examples:
  promptbox run                               # open the interactive window
  promptbox scenario testdata/*.yaml          # replay scripted sessions
  promptbox run --primary-prompt "py> "       # custom prompts`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&primaryPrompt, "primary-prompt", buffer.DefaultPrimaryPrompt, "prompt of the first submission row")
	rootCmd.PersistentFlags().StringVar(&continuationPrompt, "continuation-prompt", buffer.DefaultContinuationPrompt, "prompt of continuation rows")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func windowConfig(logger *slog.Logger) repl.Config {
	return repl.Config{
		PrimaryPrompt:      primaryPrompt,
		ContinuationPrompt: continuationPrompt,
		Evaluator:          repl.EchoEvaluator,
		Logger:             logger,
	}
}
