package editor

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptbox/buffer"
	"github.com/iw2rmb/promptbox/repl"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	b := m.win.Buffer()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.win.InsertCode(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend, block bool) {
		b.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend, Block: block})
	}

	switch {
	case key.Matches(msg, km.BoxLeft):
		move(buffer.MoveGrapheme, buffer.DirLeft, true, true)
	case key.Matches(msg, km.BoxRight):
		move(buffer.MoveGrapheme, buffer.DirRight, true, true)
	case key.Matches(msg, km.BoxUp):
		move(buffer.MoveGrapheme, buffer.DirUp, true, true)
	case key.Matches(msg, km.BoxDown):
		move(buffer.MoveGrapheme, buffer.DirDown, true, true)

	case key.Matches(msg, km.Left):
		move(buffer.MoveGrapheme, buffer.DirLeft, false, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveGrapheme, buffer.DirRight, false, false)
	case key.Matches(msg, km.Up):
		move(buffer.MoveGrapheme, buffer.DirUp, false, false)
	case key.Matches(msg, km.Down):
		move(buffer.MoveGrapheme, buffer.DirDown, false, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveGrapheme, buffer.DirLeft, true, false)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveGrapheme, buffer.DirRight, true, false)
	case key.Matches(msg, km.ShiftUp):
		move(buffer.MoveGrapheme, buffer.DirUp, true, false)
	case key.Matches(msg, km.ShiftDown):
		move(buffer.MoveGrapheme, buffer.DirDown, true, false)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false, false)
	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false, false)

	case key.Matches(msg, km.Cancel):
		m.command(repl.CommandSelectionCancel)
	case key.Matches(msg, km.SelectAll):
		m.command(repl.CommandSelectAll)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.win.Backspace(1)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.win.Delete(1)
		}
	case key.Matches(msg, km.Newline):
		if !m.cfg.ReadOnly {
			b.InsertNewline()
		}
	case key.Matches(msg, km.Submit):
		if !m.cfg.ReadOnly {
			m.submit()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			m.command(repl.CommandUndo)
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			m.command(repl.CommandRedo)
		}
	case key.Matches(msg, km.ClearScreen):
		if !m.cfg.ReadOnly {
			m.command(repl.CommandClearScreen)
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.win.InsertCode(strings.Repeat(" ", m.cfg.TabWidth))
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.win.InsertCode(string(msg.Runes))
			}
		}
	}

	return m, nil
}

func (m *Model) command(name string) {
	m.lastErr = m.win.ExecuteCommand(context.Background(), name)
}

func (m *Model) submit() {
	ctx := context.Background()
	if m.cfg.EvalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.EvalTimeout)
		defer cancel()
	}
	m.lastErr = m.win.Submit(ctx)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, ok := m.win.Buffer().SelectedText()
	if !ok || s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	b := m.win.Buffer()
	s, ok := b.SelectedText()
	if !ok {
		return
	}
	if s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	b.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.win.InsertCode(normalizeNewlines(s))
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
