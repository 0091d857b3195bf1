package buffer

import (
	"strings"

	"github.com/iw2rmb/promptbox/internal/grapheme"
)

const (
	DefaultPrimaryPrompt      = "> "
	DefaultContinuationPrompt = ". "
)

// Options configures a Buffer. Prompts are used verbatim; an empty prompt
// means the row has no decoration.
type Options struct {
	HistoryLimit int // default: 1000

	PrimaryPrompt      string // row 0
	ContinuationPrompt string // rows 1..n
}

// DefaultOptions returns Options with the standard REPL prompts.
func DefaultOptions() Options {
	return Options{
		HistoryLimit:       1000,
		PrimaryPrompt:      DefaultPrimaryPrompt,
		ContinuationPrompt: DefaultContinuationPrompt,
	}
}

type selectionState struct {
	mode   SelectMode
	anchor Pos
	active Pos
}

// RowView is one rendered input row.
type RowView struct {
	Prompt  string
	Content string
}

// Buffer is the pure submission state: rows, caret, and selection.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	primary      []string
	continuation []string

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:        splitLines(text),
		primary:      grapheme.Split(opt.PrimaryPrompt),
		continuation: grapheme.Split(opt.ContinuationPrompt),
		opt:          opt,
	}
}

// Text returns the submission content with prompts stripped.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// ViewText returns the submission as displayed, prompts included.
func (b *Buffer) ViewText() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(b.prompt(i)))
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

func (b *Buffer) RowCount() int { return len(b.lines) }

func (b *Buffer) Row(row int) RowView {
	if row < 0 || row >= len(b.lines) {
		return RowView{}
	}
	return RowView{
		Prompt:  grapheme.Join(b.prompt(row)),
		Content: grapheme.Join(b.lines[row]),
	}
}

// PromptWidth returns the number of prompt clusters decorating row.
func (b *Buffer) PromptWidth(row int) int { return len(b.prompt(row)) }

// LineLen returns the number of editable clusters on row.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when content changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Options() Options { return b.opt }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the caret and collapses any selection.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && b.sel.mode == SelectNone {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

// Selection returns the raw selection. ok is false in SelectNone.
func (b *Buffer) Selection() (Selection, bool) {
	if b.sel.mode == SelectNone {
		return Selection{}, false
	}
	return Selection{Mode: b.sel.mode, Anchor: b.sel.anchor, Active: b.sel.active}, true
}

// SelectionRange returns the normalized content range of a linear selection.
func (b *Buffer) SelectionRange() (Range, bool) {
	if b.sel.mode != SelectLinear {
		return Range{}, false
	}
	r := b.linearRange()
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// Box returns the normalized rectangle of a block selection.
func (b *Buffer) Box() (Box, bool) {
	if b.sel.mode != SelectBlock {
		return Box{}, false
	}
	return b.boxOf(b.sel.anchor, b.sel.active), true
}

// SetSelection selects from anchor to active and moves the caret to active.
// A linear selection that is empty after clamping collapses to a caret. Box
// corners may lie past the end of their rows.
func (b *Buffer) SetSelection(anchor, active Pos, mode SelectMode) {
	if mode == SelectBlock {
		anchor = b.clampCorner(anchor)
		active = b.clampCorner(active)
	} else {
		anchor = b.clampPos(anchor)
		active = b.clampPos(active)
	}
	cursor := b.clampPos(active)

	next := selectionState{mode: mode, anchor: anchor, active: active}
	if mode == SelectLinear && b.contentPos(anchor) == b.contentPos(active) {
		next = selectionState{}
	}
	if mode == SelectNone {
		next = selectionState{}
	}

	if next == b.sel && b.cursor == cursor {
		return
	}
	b.sel = next
	b.cursor = cursor
	b.version++
}

// SelectAll selects the whole submission as a linear range.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	b.SetSelection(Pos{}, Pos{Row: last, Col: len(b.lines[last])}, SelectLinear)
}

func (b *Buffer) ClearSelection() {
	if b.sel.mode == SelectNone {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// CollapseSelection drops the selection and leaves the caret on the active
// corner, which is what Escape does.
func (b *Buffer) CollapseSelection() {
	if b.sel.mode == SelectNone {
		return
	}
	b.cursor = b.clampPos(b.sel.active)
	b.ClearSelection()
}

// Reset replaces the whole submission and forgets undo history.
func (b *Buffer) Reset(text string) {
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.hist = historyState{}
	b.hasLastChange = false
	b.version++
	b.textVersion++
}

func (b *Buffer) prompt(row int) []string {
	if row == 0 {
		return b.primary
	}
	return b.continuation
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) viewCol(p Pos) int { return b.PromptWidth(p.Row) + p.Col }

// clampPos keeps p inside the row, allowing the caret to sit in the prompt.
func (b *Buffer) clampPos(p Pos) Pos {
	row := clampInt(p.Row, 0, len(b.lines)-1)
	return Pos{Row: row, Col: clampInt(p.Col, -b.PromptWidth(row), b.lineLen(row))}
}

// clampCorner keeps a box corner on a row and right of the prompt's left
// edge. blockSpan clips each row to its length.
func (b *Buffer) clampCorner(p Pos) Pos {
	row := clampInt(p.Row, 0, len(b.lines)-1)
	return Pos{Row: row, Col: maxInt(p.Col, -b.PromptWidth(row))}
}

// contentPos clamps p to the editable region.
func (b *Buffer) contentPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func (b *Buffer) linearRange() Range {
	return NormalizeRange(Range{
		Start: b.contentPos(b.sel.anchor),
		End:   b.contentPos(b.sel.active),
	})
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
