package buffer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/promptbox/internal/grapheme"
)

var (
	ErrMarkerNotFound = errors.New("marker not found")
	ErrEmptyMarker    = errors.New("empty marker")
)

// PlaceOptions controls how PlaceCaret treats the existing selection.
type PlaceOptions struct {
	Extend bool // keep the anchor and move only the active corner
	Block  bool // with Extend, select a rectangle instead of a stream
}

// viewStream is the submission as displayed, flattened into caret stops:
// one per cluster (prompt clusters included) and one per line break.
type viewStream struct {
	rowStart []int // stream index of each row's first view column
	rowLen   []int // prompt width + content length
	total    int
	offsets  []int // byte offset of every stream element, plus the end
}

func (b *Buffer) buildViewStream() viewStream {
	vs := viewStream{
		rowStart: make([]int, len(b.lines)),
		rowLen:   make([]int, len(b.lines)),
	}
	clusters := make([]string, 0)
	for row, line := range b.lines {
		if row > 0 {
			clusters = append(clusters, "\n")
		}
		vs.rowStart[row] = len(clusters)
		clusters = append(clusters, b.prompt(row)...)
		clusters = append(clusters, line...)
		vs.rowLen[row] = len(clusters) - vs.rowStart[row]
	}
	vs.total = len(clusters)
	vs.offsets = grapheme.Offsets(clusters)
	return vs
}

func (vs viewStream) pos(i int, b *Buffer) Pos {
	for row := len(vs.rowStart) - 1; row >= 0; row-- {
		if i >= vs.rowStart[row] {
			viewCol := minInt(i-vs.rowStart[row], vs.rowLen[row])
			return Pos{Row: row, Col: viewCol - b.PromptWidth(row)}
		}
	}
	return Pos{Col: -b.PromptWidth(0)}
}

// Locate finds the first occurrence of marker in ViewText (prompts included)
// and resolves a caret position relative to it. After the find the caret sits
// at the match end and the anchor at the match start, so:
//
//	offset > 0: matchEnd + offset - 1
//	offset = 0: matchEnd
//	offset < 0: matchStart + offset + 1
//
// The result is clamped to the document bounds; line breaks are one stop.
func (b *Buffer) Locate(marker string, offset int) (Pos, error) {
	if marker == "" {
		return Pos{}, ErrEmptyMarker
	}
	idx := strings.Index(b.ViewText(), marker)
	if idx < 0 {
		return Pos{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}

	vs := b.buildViewStream()
	start := grapheme.Floor(vs.offsets, idx)
	end := grapheme.Ceil(vs.offsets, idx+len(marker))

	var i int
	switch {
	case offset > 0:
		i = end + offset - 1
	case offset == 0:
		i = end
	default:
		i = start + offset + 1
	}
	return vs.pos(clampInt(i, 0, vs.total), b), nil
}

// PlaceCaret moves the caret relative to marker. Without Extend the selection
// collapses; with Extend the selection runs from the existing anchor (or the
// caret) to the new position.
func (b *Buffer) PlaceCaret(marker string, offset int, opt PlaceOptions) (Pos, error) {
	p, err := b.Locate(marker, offset)
	if err != nil {
		return Pos{}, err
	}
	if !opt.Extend {
		b.SetCursor(p)
		return p, nil
	}

	anchor := b.cursor
	if b.sel.mode != SelectNone {
		anchor = b.sel.anchor
	}
	mode := SelectLinear
	if opt.Block {
		mode = SelectBlock
	}
	b.SetSelection(anchor, p, mode)
	return p, nil
}
