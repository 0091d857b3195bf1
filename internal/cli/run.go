package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/promptbox/editor"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive window",
	Long: `Opens a full-screen interactive window. Submissions are echoed back.

Keys:
  enter               submit          alt+enter   newline
  alt+shift+arrows    box select      shift+arrows select
  esc                 cancel selection
  ctrl+z / ctrl+y     undo / redo     ctrl+l      clear window
  ctrl+d / ctrl+q     quit`,
	Args: cobra.NoArgs,
	RunE: runRunCmd,
}

var (
	runText        string
	runNoClipboard bool
	runTimeout     time.Duration
	runLogFile     string
)

func init() {
	runCmd.Flags().StringVar(&runText, "text", "", "initial submission text")
	runCmd.Flags().BoolVar(&runNoClipboard, "no-clipboard", false, "disable the system clipboard")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Second, "evaluation timeout per submission")
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "write logs to this file instead of discarding them")
	rootCmd.AddCommand(runCmd)
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stderr while the program runs.
	var logOut io.Writer = io.Discard
	if runLogFile != "" {
		f, err := os.OpenFile(runLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	cfg := editor.DefaultConfig()
	cfg.Window = windowConfig(logger)
	cfg.Text = runText
	cfg.EvalTimeout = runTimeout
	if !runNoClipboard {
		if cb := (editor.SystemClipboard{}); cb.Available() {
			cfg.Clipboard = cb
		}
	}

	p := tea.NewProgram(newApp(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interactive window: %w", err)
	}
	return nil
}
