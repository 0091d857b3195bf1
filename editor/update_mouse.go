package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptbox/buffer"
	graphemeutil "github.com/iw2rmb/promptbox/internal/grapheme"
	"github.com/iw2rmb/promptbox/repl"
)

// updateMouse handles wheel scrolling and left-button placement. Shift
// extends a stream selection; Alt drags a box.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if !m.focused {
		return m, cmd
	}
	b := m.win.Buffer()

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		p, ok := m.screenToPos(msg.X, msg.Y)
		if !ok {
			return m, cmd
		}
		if msg.Shift {
			anchor := b.Cursor()
			if sel, ok := b.Selection(); ok {
				anchor = sel.Anchor
			}
			m.mouseAnchor = anchor
			b.SetSelection(anchor, p, dragMode(msg))
		} else {
			m.mouseAnchor = p
			b.SetCursor(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p, ok := m.screenToPos(x, y)
		if !ok {
			return m, cmd
		}
		b.SetSelection(m.mouseAnchor, p, dragMode(msg))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func dragMode(msg tea.MouseMsg) buffer.SelectMode {
	if msg.Alt {
		return buffer.SelectBlock
	}
	return buffer.SelectLinear
}

// screenToPos maps a viewport cell to a submission position. Transcript
// lines map to nothing; positions inside a prompt keep their negative column.
func (m Model) screenToPos(x, y int) (buffer.Pos, bool) {
	lines := m.win.ViewLines()
	idx := y + m.viewport.YOffset
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	if idx < 0 || lines[idx].Kind != repl.LineInput {
		return buffer.Pos{}, false
	}
	ln := lines[idx]
	prompt := graphemeutil.Split(ln.Prompt)
	clusters := append(append([]string{}, prompt...), graphemeutil.Split(ln.Text)...)
	viewCol := cellToCluster(clusters, x)
	return buffer.Pos{Row: ln.Row, Col: viewCol - len(prompt)}, true
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
