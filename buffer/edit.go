package buffer

import (
	"strings"

	"github.com/iw2rmb/promptbox/internal/grapheme"
)

// InsertText types s: it replaces a block on every box row, replaces a
// linear selection, or inserts at the caret.
func (b *Buffer) InsertText(s string) {
	if b.sel.mode == SelectBlock {
		if !strings.Contains(s, "\n") {
			b.insertBlock(s)
			return
		}
		// A line break cannot be typed into every row at once.
		if bx, _ := b.Box(); !bx.IsZeroWidth() {
			b.insertBlock("")
		}
		b.CollapseSelection()
	}

	if s == "" {
		b.DeleteSelection()
		return
	}

	r, ok := b.SelectionRange()
	if !ok {
		c := b.contentPos(b.cursor)
		r = Range{Start: c, End: c}
	}
	b.replaceAndCommit(r, s)
}

// InsertNewline inserts a line break at the caret, or replaces the active
// selection. The new row carries the continuation prompt.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies one backspace.
func (b *Buffer) DeleteBackward() {
	switch b.sel.mode {
	case SelectBlock:
		b.deleteBlockBackward()
		return
	case SelectLinear:
		b.DeleteSelection()
		return
	}

	c := b.contentPos(b.cursor)
	row, col := c.Row, c.Col
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		b.replaceAndCommit(Range{Start: Pos{Row: row, Col: col - 1}, End: c}, "")
		return
	}

	// Join with previous line (delete the newline).
	prevRow := row - 1
	b.replaceAndCommit(Range{Start: Pos{Row: prevRow, Col: len(b.lines[prevRow])}, End: c}, "")
}

// DeleteForward applies one delete.
func (b *Buffer) DeleteForward() {
	switch b.sel.mode {
	case SelectBlock:
		b.deleteBlockForward()
		return
	case SelectLinear:
		b.DeleteSelection()
		return
	}

	c := b.contentPos(b.cursor)
	row, col := c.Row, c.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}

	if col < len(b.lines[row]) {
		b.replaceAndCommit(Range{Start: c, End: Pos{Row: row, Col: col + 1}}, "")
		return
	}

	// Join with next line (delete the newline).
	b.replaceAndCommit(Range{Start: c, End: Pos{Row: row + 1, Col: 0}}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	switch b.sel.mode {
	case SelectBlock:
		if bx, _ := b.Box(); !bx.IsZeroWidth() {
			b.insertBlock("")
		}
	case SelectLinear:
		if r, ok := b.SelectionRange(); ok {
			b.replaceAndCommit(r, "")
			return
		}
		b.ClearSelection()
	}
}

func (b *Buffer) replaceAndCommit(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange()
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col
	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]string(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	out := make([][]string, 0, startRow+len(repl)+len(b.lines)-endRow-1)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == r.Start.Row {
			partStart = r.Start.Col
		}
		if row == r.End.Row {
			partEnd = r.End.Col
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
