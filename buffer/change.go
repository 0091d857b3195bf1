package buffer

// SelectionState captures selection state at a point in time.
type SelectionState struct {
	Mode   SelectMode
	Anchor Pos
	Active Pos
}

// AppliedEdit describes one effective edit in a change transaction. A box
// edit produces one AppliedEdit per changed row.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

type changeBuilder struct {
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	appliedEdits    []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if sel.mode == SelectNone {
		return SelectionState{}
	}
	return SelectionState{Mode: sel.mode, Anchor: sel.anchor, Active: sel.active}
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateFromInternal(b.sel),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(b.sel),
		AppliedEdits:    append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: fullDocumentRange(beforeText),
		RangeAfter:  fullDocumentRange(afterText),
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

func fullDocumentRange(text string) Range {
	lines := splitLines(text)
	lastRow := len(lines) - 1
	return Range{
		End: Pos{Row: lastRow, Col: len(lines[lastRow])},
	}
}
