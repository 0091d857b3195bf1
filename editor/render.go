package editor

import (
	"strings"

	"github.com/iw2rmb/promptbox/buffer"
	graphemeutil "github.com/iw2rmb/promptbox/internal/grapheme"
	"github.com/iw2rmb/promptbox/repl"
)

func (m *Model) renderContent() string {
	st := m.cfg.Style
	lines := m.win.ViewLines()
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		switch ln.Kind {
		case repl.LineHistory:
			out = append(out, st.Prompt.Render(ln.Prompt)+st.History.Render(ln.Text))
		case repl.LineOutput:
			out = append(out, st.Output.Render(ln.Text))
		case repl.LineError:
			out = append(out, st.Error.Render(ln.Text))
		case repl.LineInput:
			out = append(out, m.renderInputRow(ln))
		}
	}
	return strings.Join(out, "\n")
}

// renderInputRow renders one submission row cluster by cluster. Columns are
// view columns, so a box can cover prompt cells too.
func (m *Model) renderInputRow(ln repl.Line) string {
	st := m.cfg.Style
	b := m.win.Buffer()
	row := ln.Row

	prompt := graphemeutil.Split(ln.Prompt)
	content := graphemeutil.Split(ln.Text)
	pw := len(prompt)
	clusters := append(append(make([]string, 0, pw+len(content)), prompt...), content...)

	box, boxOK := b.Box()
	rng, rngOK := b.SelectionRange()

	// Carets, in view columns. A zero-width box shows one on every row.
	carets := map[int]bool{}
	if m.focused {
		cur := b.Cursor()
		switch {
		case boxOK && box.IsZeroWidth():
			if row >= box.Top && row <= box.Bottom {
				carets[box.Left] = true
			}
		case row == cur.Row:
			carets[pw+cur.Col] = true
		}
	}

	selected := func(viewCol int) bool {
		if boxOK && box.Contains(row, viewCol) {
			return true
		}
		if !rngOK || viewCol < pw {
			return false
		}
		p := buffer.Pos{Row: row, Col: viewCol - pw}
		return buffer.ComparePos(p, rng.Start) >= 0 && buffer.ComparePos(p, rng.End) < 0
	}

	var sb strings.Builder
	for i, c := range clusters {
		style := st.Text
		if i < pw {
			style = st.Prompt
		}
		switch {
		case carets[i]:
			style = st.Cursor
		case selected(i):
			style = st.Selection
		}
		sb.WriteString(style.Render(c))
	}

	// Carets past the row end: pad up to the caret, then a 1-cell placeholder.
	for col := len(clusters); ; col++ {
		if !hasCaretAtOrAfter(carets, col) {
			break
		}
		if carets[col] {
			sb.WriteString(st.Cursor.Render(" "))
			continue
		}
		sb.WriteString(st.Text.Render(" "))
	}
	return sb.String()
}

func hasCaretAtOrAfter(carets map[int]bool, col int) bool {
	for c := range carets {
		if c >= col {
			return true
		}
	}
	return false
}
