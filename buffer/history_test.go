package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", DefaultOptions())
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected empty history")
	}

	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", DefaultOptions())
	b.SetCursor(Pos{Row: 0, Col: 1})
	v := b.Version()

	if ok := b.Undo(); ok {
		t.Fatalf("expected Undo=false")
	}
	if ok := b.Redo(); ok {
		t.Fatalf("expected Redo=false")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_UndoRedo_BoxBackspaceSequence(t *testing.T) {
	b := New(inputSAndEInTheMiddle, DefaultOptions())
	selectBox(t, b, caretStep{"s", -1}, caretStep{"e", 0})
	b.DeleteBackward()
	afterFirst := b.Text()
	b.DeleteBackward()

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != afterFirst {
		t.Fatalf("undo:\n%s\nwant:\n%s", got, afterFirst)
	}
	if bx, ok := b.Box(); !ok || !bx.IsZeroWidth() {
		t.Fatalf("box=%+v ok=%v, want zero-width box", bx, ok)
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != inputSAndEInTheMiddle {
		t.Fatalf("second undo:\n%s", got)
	}

	if !b.Redo() || !b.Redo() {
		t.Fatalf("expected two redos")
	}
	if got := b.Row(0).Content; got != "1CDEF" {
		t.Fatalf("row 0=%q, want %q", got, "1CDEF")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	undos := 0
	for b.Undo() {
		undos++
	}
	if undos != 2 {
		t.Fatalf("undos=%d, want 2", undos)
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_NegativeHistoryLimitDisablesUndo(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected no undo history")
	}
}
