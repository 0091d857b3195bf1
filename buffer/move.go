package buffer

import "github.com/iw2rmb/promptbox/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/active; if false clears selection
	Block  bool // with Extend, grows a box instead of a stream selection
}

// Move moves the caret. Moves start from the caret clamped to the content,
// except vertical moves, which keep the view column so boxes stay aligned
// across rows with different prompts. A box corner keeps its column past
// the end of short rows; the caret itself is clamped.
func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	growBox := m.Extend && m.Block
	from := prevCursor
	if growBox && prevSel.mode == SelectBlock {
		from = prevSel.active
	}
	var target Pos
	if growBox && m.Unit == MoveGrapheme && (m.Dir == DirLeft || m.Dir == DirRight) {
		target = b.moveBoxColumn(from, m.Dir)
	} else {
		target = b.moveCursor(from, m)
	}
	nextCursor := b.clampPos(target)

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.mode != SelectNone {
			anchor = prevSel.anchor
		}
		mode := SelectLinear
		active := nextCursor
		if m.Block {
			mode = SelectBlock
			active = b.clampCorner(target)
		}
		nextSel = selectionState{mode: mode, anchor: anchor, active: active}
		if mode == SelectLinear && b.contentPos(anchor) == b.contentPos(nextCursor) {
			nextSel = selectionState{}
		}
	}

	if prevCursor == nextCursor && prevSel == nextSel {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	if m.Dir == DirUp || m.Dir == DirDown {
		return b.moveVertical(p, m)
	}
	p = b.contentPos(p)
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveVertical(p Pos, m Move) Pos {
	if m.Unit == MoveDoc {
		return b.moveDoc(m.Dir)
	}
	nr := p.Row - 1
	if m.Dir == DirDown {
		nr = p.Row + 1
	}
	if nr < 0 || nr >= len(b.lines) {
		return p
	}
	col := b.viewCol(p) - b.PromptWidth(nr)
	if !m.Block {
		col = clampInt(col, 0, len(b.lines[nr]))
	}
	return Pos{Row: nr, Col: col}
}

// moveBoxColumn shifts a box corner by one view column on its own row. It
// stops at the prompt's left edge and at the widest row.
func (b *Buffer) moveBoxColumn(p Pos, dir MoveDir) Pos {
	pw := b.PromptWidth(p.Row)
	if dir == DirLeft {
		return Pos{Row: p.Row, Col: maxInt(p.Col-1, -pw)}
	}
	widest := 0
	for row := range b.lines {
		widest = maxInt(widest, b.PromptWidth(row)+len(b.lines[row]))
	}
	return Pos{Row: p.Row, Col: minInt(p.Col+1, maxInt(widest-pw, p.Col))}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		prevRow := row - 1
		return Pos{Row: prevRow, Col: len(b.lines[prevRow])}
	case DirRight:
		if row == lastRow && col == len(b.lines[lastRow]) {
			return p
		}
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		return Pos{Row: row + 1, Col: 0}
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	default:
		return p
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	line := b.lines[row]

	switch dir {
	case DirLeft:
		return Pos{Row: row, Col: prevWordBoundary(line, col)}
	case DirRight:
		return Pos{Row: row, Col: nextWordBoundary(line, col)}
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: len(line)}
	default:
		return p
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Row: p.Row, Col: 0}
	case DirEnd:
		return Pos{Row: p.Row, Col: len(b.lines[p.Row])}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(dir MoveDir) Pos {
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	default:
		return Pos{Row: lastRow, Col: len(b.lines[lastRow])}
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - a row end is a hard boundary
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
