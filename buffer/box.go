package buffer

import (
	"strings"

	"github.com/iw2rmb/promptbox/internal/grapheme"
)

// rowSpan is the editable part of one box row, in content columns. left is
// the box's left edge on that row before clipping to the row length.
type rowSpan struct {
	row    int
	lo, hi int
	left   int
}

func (b *Buffer) boxOf(anchor, active Pos) Box {
	ac, cc := b.viewCol(anchor), b.viewCol(active)
	return Box{
		Top:    minInt(anchor.Row, active.Row),
		Bottom: maxInt(anchor.Row, active.Row),
		Left:   minInt(ac, cc),
		Right:  maxInt(ac, cc),
	}
}

// blockSpan clips box against row. Rows whose selected span lies entirely
// inside the prompt are read-only and report ok=false. That includes a
// zero-width box whose column is inside the prompt (Right < pw): typing there
// does nothing rather than inserting at the prompt boundary. Otherwise the
// left edge clamps to the prompt boundary and both edges clamp to the row
// length.
func (b *Buffer) blockSpan(row int, bx Box) (rowSpan, bool) {
	pw := b.PromptWidth(row)
	hi := bx.Right - pw
	if hi < 0 {
		return rowSpan{}, false
	}
	lo := maxInt(bx.Left-pw, 0)
	n := b.lineLen(row)
	return rowSpan{row: row, lo: minInt(lo, n), hi: minInt(hi, n), left: lo}, true
}

func (b *Buffer) blockSpans(bx Box) []rowSpan {
	spans := make([]rowSpan, 0, bx.Height())
	for row := bx.Top; row <= bx.Bottom; row++ {
		if sp, ok := b.blockSpan(row, bx); ok {
			spans = append(spans, sp)
		}
	}
	return spans
}

// BlockText returns the selected text of every box row, top to bottom.
// Read-only rows contribute an empty string.
func (b *Buffer) BlockText() []string {
	bx, ok := b.Box()
	if !ok {
		return nil
	}
	out := make([]string, 0, bx.Height())
	for row := bx.Top; row <= bx.Bottom; row++ {
		sp, ok := b.blockSpan(row, bx)
		if !ok {
			out = append(out, "")
			continue
		}
		out = append(out, grapheme.Join(b.lines[row][sp.lo:sp.hi]))
	}
	return out
}

// replaceBlock replaces every span with text and leaves a zero-width box just
// after the inserted text. It reports whether anything changed.
func (b *Buffer) replaceBlock(spans []rowSpan, text string) bool {
	ins := grapheme.Split(text)
	changedAny := false
	for _, sp := range spans {
		if sp.lo != sp.hi || len(ins) > 0 {
			changedAny = true
			break
		}
	}
	if !changedAny {
		return false
	}

	prev := b.snapshot()
	change := b.beginChange()

	for _, sp := range spans {
		if applied, ok := b.replaceInRow(sp.row, sp.lo, sp.hi, ins); ok {
			change.addAppliedEdit(applied)
		}
	}

	// Short rows were clipped; the box column follows the unclipped edge.
	ref := b.referenceSpan(spans)
	b.setBoxColumn(b.PromptWidth(ref.row) + ref.left + len(ins))

	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
	return true
}

// referenceSpan picks the span that positions the resulting box: the active
// row's span when it is editable, otherwise the nearest editable one.
func (b *Buffer) referenceSpan(spans []rowSpan) rowSpan {
	for _, sp := range spans {
		if sp.row == b.sel.active.Row {
			return sp
		}
	}
	if b.sel.active.Row < spans[0].row {
		return spans[0]
	}
	return spans[len(spans)-1]
}

// setBoxColumn turns the current box into a zero-width box at viewCol.
func (b *Buffer) setBoxColumn(viewCol int) {
	anchor := Pos{Row: b.sel.anchor.Row, Col: viewCol - b.PromptWidth(b.sel.anchor.Row)}
	active := Pos{Row: b.sel.active.Row, Col: viewCol - b.PromptWidth(b.sel.active.Row)}
	b.sel = selectionState{mode: SelectBlock, anchor: anchor, active: active}
	b.cursor = b.clampPos(active)
}

func (b *Buffer) replaceInRow(row, lo, hi int, ins []string) (AppliedEdit, bool) {
	line := b.lines[row]
	deleted := grapheme.Join(line[lo:hi])
	inserted := grapheme.Join(ins)
	if deleted == inserted {
		return AppliedEdit{}, false
	}

	next := make([]string, 0, len(line)-(hi-lo)+len(ins))
	next = append(next, line[:lo]...)
	next = append(next, ins...)
	next = append(next, line[hi:]...)
	b.lines[row] = next

	start := Pos{Row: row, Col: lo}
	return AppliedEdit{
		RangeBefore: Range{Start: start, End: Pos{Row: row, Col: hi}},
		RangeAfter:  Range{Start: start, End: Pos{Row: row, Col: lo + len(ins)}},
		InsertText:  inserted,
		DeletedText: deleted,
	}, true
}

func (b *Buffer) insertBlock(text string) {
	bx, _ := b.Box()
	spans := b.blockSpans(bx)
	if len(spans) == 0 {
		return
	}
	b.replaceBlock(spans, text)
}

// deleteBlockBackward removes the block, or for a zero-width box the cluster
// left of the column on every row that has one inside its content.
func (b *Buffer) deleteBlockBackward() {
	bx, _ := b.Box()
	if !bx.IsZeroWidth() {
		b.insertBlock("")
		return
	}

	spans := make([]rowSpan, 0, bx.Height())
	for row := bx.Top; row <= bx.Bottom; row++ {
		col := bx.Left - b.PromptWidth(row)
		if col <= 0 || col > b.lineLen(row) {
			continue
		}
		spans = append(spans, rowSpan{row: row, lo: col - 1, hi: col, left: col - 1})
	}
	if len(spans) == 0 {
		return
	}
	b.replaceBlock(spans, "")
}

// deleteBlockForward removes the block, or for a zero-width box the cluster
// at the column on every row that has one. It never joins rows.
func (b *Buffer) deleteBlockForward() {
	bx, _ := b.Box()
	if !bx.IsZeroWidth() {
		b.insertBlock("")
		return
	}

	spans := make([]rowSpan, 0, bx.Height())
	for row := bx.Top; row <= bx.Bottom; row++ {
		col := bx.Left - b.PromptWidth(row)
		if col < 0 || col >= b.lineLen(row) {
			continue
		}
		spans = append(spans, rowSpan{row: row, lo: col, hi: col + 1, left: col})
	}
	if len(spans) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange()
	for _, sp := range spans {
		if applied, ok := b.replaceInRow(sp.row, sp.lo, sp.hi, nil); ok {
			change.addAppliedEdit(applied)
		}
	}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
}

// SelectedText returns the selection as plain text. Box rows are joined
// with "\n".
func (b *Buffer) SelectedText() (string, bool) {
	switch b.sel.mode {
	case SelectBlock:
		return strings.Join(b.BlockText(), "\n"), true
	case SelectLinear:
		r, ok := b.SelectionRange()
		if !ok {
			return "", false
		}
		return textForLinesRange(b.lines, r), true
	default:
		return "", false
	}
}
