package buffer

import (
	"strings"
	"testing"
)

const (
	inputXAtLeft = "1234567890ABCDEF\n1234567890ABCDEF\n1234567890ABCDEF\n1234567890ABCDEF\n" +
		"1234567890ABCDEF\n1234567890ABCDEF\nx234567890ABCDEF\n1234567890ABCDEF"
	inputSAndEAtLeft = "1234567890ABCDEF\n1234567890ABCDEF\ns234567890ABCDEF\n1234567890ABCDEF\n" +
		"1234567890ABCDEF\n1234567890ABCDEF\ne234567890ABCDEF\n1234567890ABCDEF"
	inputSAndEInTheMiddle = "12s4567890ABCDEF\n1234567890ABCDEF\n1234567890ABCDEF\n1234567890ABCDEF\n" +
		"1234567890ABCDEF\n1234567890ABCDEF\n1234567890AeCDEF\n1234567890ABCDEF"
	inputEInTheMiddle = "1234567890ABCDEF\n1234567890ABCDEF\n1234567890ABCDEF\n1234567890ABCDEF\n" +
		"1234567890ABCDEF\n1234567890ABCDEF\n1234567890AeCDEF\n1234567890ABCDEF"
)

type caretStep struct {
	marker string
	offset int
}

// selectBox places the caret at from, then extends a box to to.
func selectBox(t *testing.T, b *Buffer, from, to caretStep) {
	t.Helper()
	if _, err := b.PlaceCaret(from.marker, from.offset, PlaceOptions{}); err != nil {
		t.Fatalf("place %q: %v", from.marker, err)
	}
	if _, err := b.PlaceCaret(to.marker, to.offset, PlaceOptions{Extend: true, Block: true}); err != nil {
		t.Fatalf("extend to %q: %v", to.marker, err)
	}
}

func lines(s ...string) string { return strings.Join(s, "\n") }

func TestBox_TypeAcrossPromptAndSymbols(t *testing.T) {
	prefixedX := lines(
		"__234567890ABCDEF", "__234567890ABCDEF", "__234567890ABCDEF", "__234567890ABCDEF",
		"__234567890ABCDEF", "__234567890ABCDEF", "__234567890ABCDEF", "1234567890ABCDEF",
	)
	prefixedSE := lines(
		"1234567890ABCDEF", "1234567890ABCDEF", "__234567890ABCDEF", "__234567890ABCDEF",
		"__234567890ABCDEF", "__234567890ABCDEF", "__234567890ABCDEF", "1234567890ABCDEF",
	)

	cases := []struct {
		name     string
		input    string
		from, to caretStep
		want     string
		caretRow int
	}{
		{"top-left to bottom-right, prompt to symbol", inputXAtLeft, caretStep{">", 1}, caretStep{"x", 0}, prefixedX, 6},
		{"bottom-right to top-left, prompt to symbol", inputXAtLeft, caretStep{"x", 0}, caretStep{">", 1}, prefixedX, 0},
		{"top-right to bottom-left, prompt to symbol", inputXAtLeft, caretStep{">", 3}, caretStep{"x", -2}, prefixedX, 6},
		{"bottom-left to top-right, prompt to symbol", inputXAtLeft, caretStep{"x", -2}, caretStep{">", 3}, prefixedX, 0},
		{"top-left to bottom-right, symbol to symbol", inputSAndEAtLeft, caretStep{"s", -1}, caretStep{"e", 1}, prefixedSE, 6},
		{"bottom-right to top-left, symbol to symbol", inputSAndEAtLeft, caretStep{"e", 1}, caretStep{"s", -1}, prefixedSE, 2},
		{"top-right to bottom-left, symbol to symbol", inputSAndEAtLeft, caretStep{"s", 1}, caretStep{"e", -1}, prefixedSE, 6},
		{"bottom-left to top-right, symbol to symbol", inputSAndEAtLeft, caretStep{"e", -1}, caretStep{"s", 1}, prefixedSE, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.input, DefaultOptions())
			selectBox(t, b, tc.from, tc.to)
			b.InsertText("__")
			if got := b.Text(); got != tc.want {
				t.Fatalf("text:\n%s\nwant:\n%s", got, tc.want)
			}

			b.CollapseSelection()
			b.InsertText("|")
			row := b.Row(tc.caretRow).Content
			if !strings.HasPrefix(row, "__|") {
				t.Fatalf("row %d=%q, want caret mark after the inserted prefix", tc.caretRow, row)
			}
		})
	}
}

func TestBox_TypeReplacesBlock(t *testing.T) {
	b := New(inputSAndEAtLeft, DefaultOptions())
	selectBox(t, b, caretStep{"s", -3}, caretStep{"e", 2})
	b.InsertText("_")

	want := lines(
		"1234567890ABCDEF", "1234567890ABCDEF", "_34567890ABCDEF", "_34567890ABCDEF",
		"_34567890ABCDEF", "_34567890ABCDEF", "_34567890ABCDEF", "1234567890ABCDEF",
	)
	if got := b.Text(); got != want {
		t.Fatalf("text:\n%s\nwant:\n%s", got, want)
	}
}

func TestBox_SelectionInsidePromptIsReadOnly(t *testing.T) {
	cases := []struct {
		name     string
		from, to caretStep
	}{
		{"top-left to bottom-right", caretStep{"e", -2}, caretStep{"s", -3}},
		{"top-right to bottom-left", caretStep{"s", -2}, caretStep{"e", -3}},
		{"bottom-left to top-right", caretStep{"e", -3}, caretStep{"s", -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(inputSAndEAtLeft, DefaultOptions())
			selectBox(t, b, tc.from, tc.to)
			v := b.Version()
			b.InsertText("_")
			if got := b.Text(); got != inputSAndEAtLeft {
				t.Fatalf("text changed:\n%s", got)
			}
			if b.Version() != v {
				t.Fatalf("version changed on a read-only edit")
			}
		})
	}
}

func TestBox_ZeroWidthInsidePromptIsReadOnly(t *testing.T) {
	b := New("abc\nabc", DefaultOptions())
	b.SetSelection(Pos{Row: 0, Col: -1}, Pos{Row: 1, Col: -1}, SelectBlock)
	v := b.Version()

	b.InsertText("_")
	b.DeleteBackward()
	b.DeleteForward()
	if got, want := b.Text(), "abc\nabc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if b.Version() != v {
		t.Fatalf("version changed on a read-only edit")
	}
}

func TestBox_ZeroWidthAtPromptBoundaryInserts(t *testing.T) {
	want := lines(
		"1234567890ABCDEF", "1234567890ABCDEF", "__s234567890ABCDEF", "__1234567890ABCDEF",
		"__1234567890ABCDEF", "__1234567890ABCDEF", "__e234567890ABCDEF", "1234567890ABCDEF",
	)
	cases := []struct {
		name     string
		from, to caretStep
	}{
		{"selection touching submission buffer", caretStep{"s", -2}, caretStep{"e", -1}},
		{"zero width next to prompt", caretStep{"s", -1}, caretStep{"e", -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(inputSAndEAtLeft, DefaultOptions())
			selectBox(t, b, tc.from, tc.to)
			b.InsertText("_")
			b.InsertText("_")
			if got := b.Text(); got != want {
				t.Fatalf("text:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestBox_Backspace(t *testing.T) {
	b := New(inputSAndEInTheMiddle, DefaultOptions())
	selectBox(t, b, caretStep{"s", -1}, caretStep{"e", 0})
	b.DeleteBackward()
	b.DeleteBackward()

	want := lines("1CDEF", "1CDEF", "1CDEF", "1CDEF", "1CDEF", "1CDEF", "1CDEF", "1234567890ABCDEF")
	if got := b.Text(); got != want {
		t.Fatalf("text:\n%s\nwant:\n%s", got, want)
	}
}

func TestBox_BackspaceStopsAtPromptBoundary(t *testing.T) {
	b := New(inputEInTheMiddle, DefaultOptions())
	selectBox(t, b, caretStep{">", 0}, caretStep{"e", 0})
	b.DeleteBackward()
	v := b.TextVersion()
	b.DeleteBackward()

	want := lines("CDEF", "CDEF", "CDEF", "CDEF", "CDEF", "CDEF", "CDEF", "1234567890ABCDEF")
	if got := b.Text(); got != want {
		t.Fatalf("text:\n%s\nwant:\n%s", got, want)
	}
	if b.TextVersion() != v {
		t.Fatalf("second backspace at the prompt boundary must not edit")
	}
}

func TestBox_ReversedSingleRow(t *testing.T) {
	cases := []struct {
		name     string
		from, to caretStep
		edit     func(b *Buffer)
		want     string
	}{
		{"backspace", caretStep{"2", -5}, caretStep{">", 8}, (*Buffer).DeleteBackward, "7890ABCDEF"},
		{"delete", caretStep{"1", -1}, caretStep{">", 5}, (*Buffer).DeleteForward, "4567890ABCDEF"},
		{"type", caretStep{"1", -1}, caretStep{">", 5}, func(b *Buffer) { b.InsertText("__") }, "__4567890ABCDEF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New("1234567890ABCDEF", DefaultOptions())
			selectBox(t, b, tc.from, tc.to)
			tc.edit(b)
			if got := b.Text(); got != tc.want {
				t.Fatalf("text=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestBox_CornerSymmetry(t *testing.T) {
	// Rectangle over rows 1..3, view columns 4..7.
	corners := [][2]Pos{
		{{Row: 1, Col: 2}, {Row: 3, Col: 5}},
		{{Row: 3, Col: 5}, {Row: 1, Col: 2}},
		{{Row: 1, Col: 5}, {Row: 3, Col: 2}},
		{{Row: 3, Col: 2}, {Row: 1, Col: 5}},
	}
	edits := map[string]func(b *Buffer){
		"type":      func(b *Buffer) { b.InsertText("#") },
		"backspace": (*Buffer).DeleteBackward,
		"delete":    (*Buffer).DeleteForward,
	}

	for name, edit := range edits {
		var want string
		var wantBox Box
		for i, c := range corners {
			b := New(inputSAndEAtLeft, DefaultOptions())
			b.SetSelection(c[0], c[1], SelectBlock)
			bx, ok := b.Box()
			if !ok {
				t.Fatalf("%s: expected a box", name)
			}
			edit(b)
			if i == 0 {
				want, wantBox = b.Text(), bx
				continue
			}
			if bx != wantBox {
				t.Fatalf("%s corners %d: box=%+v, want %+v", name, i, bx, wantBox)
			}
			if got := b.Text(); got != want {
				t.Fatalf("%s corners %d:\n%s\nwant:\n%s", name, i, got, want)
			}
		}
	}
}

func TestBox_PromptsNeverChange(t *testing.T) {
	b := New(inputSAndEAtLeft, DefaultOptions())
	before := make([]string, b.RowCount())
	for i := range before {
		before[i] = b.Row(i).Prompt
	}

	b.SetSelection(Pos{Row: 0, Col: -2}, Pos{Row: 7, Col: 4}, SelectBlock)
	b.DeleteBackward()
	b.DeleteBackward()
	b.DeleteForward()
	b.InsertText("zz")

	for i := range before {
		if got := b.Row(i).Prompt; got != before[i] {
			t.Fatalf("row %d prompt=%q, want %q", i, got, before[i])
		}
	}
	if !strings.HasPrefix(b.ViewText(), "> zz") {
		t.Fatalf("view=%q", b.ViewText())
	}
}

func TestBox_InsertThenDeleteRoundTrip(t *testing.T) {
	b := New(inputXAtLeft, DefaultOptions())
	start := Pos{Row: 1, Col: 3}
	b.SetSelection(start, Pos{Row: 5, Col: 3}, SelectBlock)
	b.InsertText("abc")

	b.SetSelection(start, Pos{Row: 5, Col: 3}, SelectBlock)
	for range 3 {
		b.DeleteForward()
	}
	if got := b.Text(); got != inputXAtLeft {
		t.Fatalf("round trip:\n%s\nwant:\n%s", got, inputXAtLeft)
	}
}

func TestBox_ShortRows(t *testing.T) {
	b := New("abcdef\nab\nabcdef", DefaultOptions())
	b.SetSelection(Pos{Row: 0, Col: 3}, Pos{Row: 2, Col: 5}, SelectBlock)

	if got, want := strings.Join(b.BlockText(), "|"), "de||de"; got != want {
		t.Fatalf("block text=%q, want %q", got, want)
	}

	b.InsertText("X")
	if got, want := b.Text(), "abcXf\nabX\nabcXf"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// The short row is past the box column and contributes nothing.
	b.DeleteBackward()
	if got, want := b.Text(), "abcf\nabX\nabcf"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBox_EditIsOneUndoStep(t *testing.T) {
	b := New(inputSAndEAtLeft, DefaultOptions())
	selectBox(t, b, caretStep{"s", -1}, caretStep{"e", 1})
	b.InsertText("__")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected a change")
	}
	if len(ch.AppliedEdits) != 5 {
		t.Fatalf("applied edits=%d, want 5", len(ch.AppliedEdits))
	}
	if ch.SelectionAfter.Mode != SelectBlock {
		t.Fatalf("selection after=%v, want block", ch.SelectionAfter.Mode)
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != inputSAndEAtLeft {
		t.Fatalf("undo:\n%s", got)
	}
	bx, ok := b.Box()
	if !ok || bx != (Box{Top: 2, Bottom: 6, Left: 2, Right: 3}) {
		t.Fatalf("box after undo=%+v ok=%v", bx, ok)
	}
}

func TestBox_NewlineCollapsesToCaret(t *testing.T) {
	b := New("abcd\nabcd", DefaultOptions())
	b.SetSelection(Pos{Row: 0, Col: 1}, Pos{Row: 1, Col: 2}, SelectBlock)
	b.InsertText("\n")

	if got, want := b.Text(), "acd\na\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected no selection")
	}
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 0}) {
		t.Fatalf("cursor=%v", got)
	}
}

func TestSelectedText(t *testing.T) {
	b := New("abcd\nefgh", DefaultOptions())
	if _, ok := b.SelectedText(); ok {
		t.Fatalf("caret must have no selected text")
	}

	b.SetSelection(Pos{Row: 0, Col: 1}, Pos{Row: 1, Col: 3}, SelectBlock)
	if got, _ := b.SelectedText(); got != "bc\nfg" {
		t.Fatalf("block text=%q", got)
	}

	b.SetSelection(Pos{Row: 0, Col: 2}, Pos{Row: 1, Col: 1}, SelectLinear)
	if got, _ := b.SelectedText(); got != "cd\ne" {
		t.Fatalf("linear text=%q", got)
	}
}
