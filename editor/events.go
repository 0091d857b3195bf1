package editor

import "github.com/iw2rmb/promptbox/buffer"

type ChangeEvent struct {
	Version      uint64
	Cursor       buffer.Pos
	Selection    buffer.Selection
	HasSelection bool

	// Text is the current submission with prompts stripped.
	Text string

	// Entries is the transcript length.
	Entries int
}

func (m Model) buildChangeEvent() ChangeEvent {
	b := m.win.Buffer()
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
		Entries: len(m.win.Transcript()),
	}
	ev.Selection, ev.HasSelection = b.Selection()
	return ev
}
