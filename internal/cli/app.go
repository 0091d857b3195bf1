package cli

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/promptbox/buffer"
	"github.com/iw2rmb/promptbox/editor"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// app hosts the editor with a one-line status bar.
type app struct {
	editor editor.Model
	width  int
}

func newApp(cfg editor.Config) app {
	return app{editor: editor.New(cfg)}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+d", "ctrl+q":
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.editor.View() + "\n" + a.status()
}

func (a app) status() string {
	b := a.editor.Buffer()
	cur := b.Cursor()

	parts := []string{selectionLabel(b), "row " + strconv.Itoa(cur.Row+1) + " col " + strconv.Itoa(cur.Col+1)}
	if err := a.editor.Err(); err != nil {
		parts = append(parts, "error: "+err.Error())
	}
	line := strings.Join(parts, "  ")
	if a.width > 0 {
		line = runewidth.Truncate(line, a.width, "")
	}
	return statusStyle.Render(line)
}

func selectionLabel(b *buffer.Buffer) string {
	sel, ok := b.Selection()
	if !ok {
		return "caret"
	}
	if sel.Mode == buffer.SelectBlock {
		bx, _ := b.Box()
		return "box " + strconv.Itoa(bx.Height()) + "x" + strconv.Itoa(bx.Width())
	}
	return sel.Mode.String()
}
