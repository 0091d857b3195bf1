package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iw2rmb/promptbox/buffer"
)

// Entry is one evaluated submission.
type Entry struct {
	Input  string
	Output string
	Err    error
}

// LineKind classifies a rendered line.
type LineKind uint8

const (
	LineHistory LineKind = iota // an earlier submission, with its prompt
	LineOutput
	LineError
	LineInput // a row of the current submission
)

// Line is one rendered line of the window. Row is the submission row for
// LineInput and -1 otherwise.
type Line struct {
	Kind   LineKind
	Prompt string
	Text   string
	Row    int
}

// Window is an interactive window: transcript on top, editable submission
// below. It is not safe for concurrent use.
type Window struct {
	cfg Config
	log *slog.Logger

	buf     *buffer.Buffer
	entries []Entry
}

func New(cfg Config) *Window {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Window{
		cfg: cfg,
		log: log,
		buf: buffer.New("", cfg.bufferOptions()),
	}
}

// Buffer returns the current submission. The pointer changes after every
// submit.
func (w *Window) Buffer() *buffer.Buffer { return w.buf }

// InsertCode types text at the caret of the current submission.
func (w *Window) InsertCode(text string) {
	w.buf.InsertText(text)
}

// LastReplInput returns the current submission with prompts stripped.
func (w *Window) LastReplInput() string { return w.buf.Text() }

func (w *Window) Transcript() []Entry {
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// PlaceCaret moves the caret relative to the first occurrence of marker in
// the displayed submission.
func (w *Window) PlaceCaret(marker string, offset int, opt buffer.PlaceOptions) error {
	p, err := w.buf.PlaceCaret(marker, offset, opt)
	if err != nil {
		return fmt.Errorf("place caret: %w", err)
	}
	w.log.Debug("caret placed",
		"marker", marker,
		"offset", offset,
		"extend", opt.Extend,
		"block", opt.Block,
		"row", p.Row,
		"col", p.Col,
	)
	return nil
}

func (w *Window) Backspace(n int) {
	for range n {
		w.buf.DeleteBackward()
	}
}

func (w *Window) Delete(n int) {
	for range n {
		w.buf.DeleteForward()
	}
}

// SubmitText replaces the current submission with text and submits it.
func (w *Window) SubmitText(ctx context.Context, text string) error {
	w.buf.Reset(text)
	return w.Submit(ctx)
}

// Submit evaluates the current submission, or runs it as a directive, and
// starts a fresh one. When ctx is done the submission is kept.
func (w *Window) Submit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	code := w.buf.Text()

	if d, ok := lookupDirective(code); ok {
		w.log.Debug("directive", "name", d.name)
		if err := d.run(ctx, w); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		w.fresh()
		return nil
	}

	entry := Entry{Input: code}
	if w.cfg.Evaluator != nil {
		out, err := w.cfg.Evaluator.Evaluate(ctx, code)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		entry.Output, entry.Err = out, err
	}
	if entry.Err != nil {
		w.log.Warn("evaluation failed", "err", entry.Err)
	} else {
		w.log.Debug("submitted", "rows", w.buf.RowCount(), "output_bytes", len(entry.Output))
	}
	w.entries = append(w.entries, entry)
	w.fresh()
	return nil
}

func (w *Window) fresh() {
	w.buf = buffer.New("", w.cfg.bufferOptions())
}

func (w *Window) clearTranscript() {
	w.entries = nil
}

// ViewLines renders the transcript followed by the current submission.
func (w *Window) ViewLines() []Line {
	opt := w.cfg.bufferOptions()
	var out []Line
	for _, e := range w.entries {
		for i, s := range strings.Split(e.Input, "\n") {
			prompt := opt.ContinuationPrompt
			if i == 0 {
				prompt = opt.PrimaryPrompt
			}
			out = append(out, Line{Kind: LineHistory, Prompt: prompt, Text: s, Row: -1})
		}
		if e.Output != "" {
			for _, s := range strings.Split(strings.TrimSuffix(e.Output, "\n"), "\n") {
				out = append(out, Line{Kind: LineOutput, Text: s, Row: -1})
			}
		}
		if e.Err != nil {
			out = append(out, Line{Kind: LineError, Text: e.Err.Error(), Row: -1})
		}
	}
	for row := 0; row < w.buf.RowCount(); row++ {
		rv := w.buf.Row(row)
		out = append(out, Line{Kind: LineInput, Prompt: rv.Prompt, Text: rv.Content, Row: row})
	}
	return out
}
