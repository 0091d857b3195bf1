package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/promptbox/buffer"
	"github.com/iw2rmb/promptbox/repl"
)

var ErrMismatch = errors.New("submission mismatch")

type Options struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Evaluator receives submit steps. nil evaluates nothing.
	Evaluator repl.Evaluator

	// Prompts applies to scenarios that set none, in the file or their own.
	Prompts *Prompts
}

// Result is the outcome of one scenario. Diff is set on a mismatch, in
// cmp.Diff form (-want +got).
type Result struct {
	Name   string
	Passed bool
	Steps  int
	Diff   string
	Got    string
	Err    error
}

// Run executes sc on a fresh window. The window is cleared with #cls before
// the first step and the selection is cancelled after the last one.
func Run(ctx context.Context, sc Scenario, opt Options) Result {
	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("scenario", sc.Name)

	cfg := repl.Config{Evaluator: opt.Evaluator, Logger: log}
	prompts := sc.Prompts
	if prompts == nil {
		prompts = opt.Prompts
	}
	if prompts != nil {
		cfg.PrimaryPrompt = prompts.Primary
		cfg.ContinuationPrompt = prompts.Continuation
	}
	w := repl.New(cfg)

	res := Result{Name: sc.Name}
	if err := w.SubmitText(ctx, "#cls"); err != nil {
		res.Err = fmt.Errorf("clear window: %w", err)
		return res
	}

	steps := make([]Step, 0, len(sc.Setup)+len(sc.Steps))
	steps = append(steps, sc.Setup...)
	steps = append(steps, sc.Steps...)
	for i, st := range steps {
		res.Steps = i + 1
		if err := runStep(ctx, w, st, &res); err != nil {
			res.Err = fmt.Errorf("step %d: %w", i+1, err)
			log.Warn("scenario failed", "step", i+1, "err", err)
			return res
		}
	}

	if sc.Expect != nil {
		if err := expect(w, *sc.Expect, &res); err != nil {
			res.Err = err
			log.Warn("scenario failed", "err", err)
			return res
		}
	}
	if err := w.ExecuteCommand(ctx, repl.CommandSelectionCancel); err != nil {
		res.Err = err
		return res
	}

	res.Got = w.LastReplInput()
	res.Passed = true
	log.Debug("scenario passed", "steps", res.Steps)
	return res
}

func runStep(ctx context.Context, w *repl.Window, st Step, res *Result) error {
	switch {
	case st.Insert != nil:
		w.InsertCode(*st.Insert)
	case st.Submit != nil:
		return w.SubmitText(ctx, *st.Submit)
	case st.Place != nil:
		return w.PlaceCaret(st.Place.Marker, st.Place.Offset, buffer.PlaceOptions{
			Extend: st.Place.Extend,
			Block:  st.Place.Block,
		})
	case st.Keys != nil:
		return w.SendScript(ctx, *st.Keys)
	case st.Command != "":
		return w.ExecuteCommand(ctx, st.Command)
	case st.Expect != nil:
		return expect(w, *st.Expect, res)
	default:
		return ErrInvalidStep
	}
	return nil
}

func expect(w *repl.Window, want string, res *Result) error {
	got := w.LastReplInput()
	res.Got = got
	if diff := cmp.Diff(want, got); diff != "" {
		res.Diff = diff
		return ErrMismatch
	}
	return nil
}

// RunAll runs every scenario in f. A failure does not stop later scenarios.
func RunAll(ctx context.Context, f *File, opt Options) []Result {
	out := make([]Result, 0, len(f.Scenarios))
	for _, sc := range f.Scenarios {
		if err := ctx.Err(); err != nil {
			out = append(out, Result{Name: sc.Name, Err: err})
			continue
		}
		out = append(out, Run(ctx, sc, opt))
	}
	return out
}

// RunFile loads path and runs every scenario in it.
func RunFile(ctx context.Context, path string, opt Options) ([]Result, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return RunAll(ctx, f, opt), nil
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
