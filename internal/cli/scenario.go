package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/promptbox/scenario"
)

// scenarioCmd replays scripted editing sessions and reports mismatches.
var scenarioCmd = &cobra.Command{
	Use:   "scenario <file>...",
	Short: "Run scenario files against a fresh interactive window",
	Long: `Runs every scenario in the given YAML files. Each scenario starts from a
cleared window (#cls), runs its steps, and compares the final submission with
its expect text. --primary-prompt and --continuation-prompt apply to
scenarios whose file does not set prompts.

Examples:
  promptbox scenario scenario/testdata/box_selection.yaml
  promptbox scenario -v a.yaml b.yaml     # with debug logging`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarioCmd,
}

var scenarioFailFast bool

func init() {
	scenarioCmd.Flags().BoolVar(&scenarioFailFast, "fail-fast", false, "stop after the first failing file")
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarioCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	opt := scenario.Options{
		Logger:  logger,
		Prompts: &scenario.Prompts{Primary: primaryPrompt, Continuation: continuationPrompt},
	}
	out := cmd.OutOrStdout()

	total, failed := 0, 0
	for _, path := range args {
		results, err := scenario.RunFile(cmd.Context(), path, opt)
		if err != nil {
			return err
		}
		total += len(results)
		n := scenario.Failed(results)
		failed += n
		writeResults(out, path, results)
		if n > 0 && scenarioFailFast {
			break
		}
	}

	fmt.Fprintf(out, "%d scenarios, %d failed\n", total, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, total)
	}
	return nil
}

func writeResults(w io.Writer, path string, results []scenario.Result) {
	fmt.Fprintf(w, "%s\n", path)
	for _, r := range results {
		if r.Passed {
			fmt.Fprintf(w, "  PASS  %s\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "  FAIL  %s: %v\n", r.Name, r.Err)
		if r.Diff != "" {
			for _, line := range strings.Split(strings.TrimRight(r.Diff, "\n"), "\n") {
				fmt.Fprintf(w, "        %s\n", line)
			}
		}
	}
}
