package buffer

// Pos points into the submission by (row, col) in grapheme clusters.
// Col is relative to the end of the row's prompt and may be negative.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open content range: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the content in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

// SelectMode identifies the shape of the active selection.
type SelectMode uint8

const (
	SelectNone SelectMode = iota
	SelectLinear
	SelectBlock
)

func (m SelectMode) String() string {
	switch m {
	case SelectLinear:
		return "linear"
	case SelectBlock:
		return "block"
	default:
		return "none"
	}
}

// Selection is the raw selection: the corner it started from (Anchor) and the
// corner the caret sits on (Active).
type Selection struct {
	Mode   SelectMode
	Anchor Pos
	Active Pos
}

// Box is a normalized rectangle in rows and view columns. Left and Right are
// caret stops, so Left == Right is a zero-width insertion column.
type Box struct {
	Top, Bottom int
	Left, Right int
}

func (bx Box) Width() int { return bx.Right - bx.Left }

func (bx Box) Height() int { return bx.Bottom - bx.Top + 1 }

func (bx Box) IsZeroWidth() bool { return bx.Left == bx.Right }

func (bx Box) Contains(row, viewCol int) bool {
	return row >= bx.Top && row <= bx.Bottom && viewCol >= bx.Left && viewCol < bx.Right
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampPos clamps p into content bounds described by rowCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
