package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/promptbox"
	"github.com/iw2rmb/promptbox/buffer"
	"github.com/iw2rmb/promptbox/editor"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	reset := func() {
		scenarioFailFast = false
		verbose = false
		primaryPrompt = buffer.DefaultPrimaryPrompt
		continuationPrompt = buffer.DefaultContinuationPrompt
	}
	reset()
	t.Cleanup(reset)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, promptbox.VersionTag()+"\n", out)
}

func TestScenarioCommand_BoxSelectionPasses(t *testing.T) {
	path := filepath.Join("..", "..", "scenario", "testdata", "box_selection.yaml")
	out, err := execute(t, "scenario", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "19 scenarios, 0 failed")
	assert.NotContains(t, out, "FAIL")
}

func TestScenarioCommand_ReportsDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `
scenarios:
  - name: wrong expectation
    steps:
      - insert: "abc"
    expect: "abd"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "scenario", path)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL  wrong expectation")
	assert.Contains(t, out, "1 scenarios, 1 failed")
	assert.Contains(t, out, "-")
}

func TestScenarioCommand_PromptFlagsAreDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	doc := `
scenarios:
  - name: caret after a custom prompt
    steps:
      - insert: "ab"
      - place: {marker: "$ ", offset: 0}
      - keys: "X"
    expect: "Xab"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "scenario", "--primary-prompt", "$ ", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 scenarios, 0 failed")

	out, err = execute(t, "scenario", path)
	require.Error(t, err)
	assert.Contains(t, out, "1 scenarios, 1 failed")
}

func TestScenarioCommand_RequiresFiles(t *testing.T) {
	_, err := execute(t, "scenario")
	assert.Error(t, err)
}

func TestRunCommandHelp(t *testing.T) {
	out, err := execute(t, "run", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "box select")
	assert.Contains(t, out, "--primary-prompt")
}

func TestApp_StatusShowsSelectionShape(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.Text = "abc\ndef"
	a := newApp(cfg)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	a = m.(app)
	assert.Contains(t, a.status(), "caret")

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftDown, Alt: true})
	a = m.(app)
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftRight, Alt: true})
	a = m.(app)
	assert.Contains(t, a.status(), "box 2x1")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
