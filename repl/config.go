package repl

import (
	"context"
	"log/slog"

	"github.com/iw2rmb/promptbox/buffer"
)

// Evaluator runs one submission and returns its printed output.
type Evaluator interface {
	Evaluate(ctx context.Context, code string) (string, error)
}

// Resetter is implemented by evaluators that hold session state.
type Resetter interface {
	Reset(ctx context.Context) error
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(ctx context.Context, code string) (string, error)

func (f EvaluatorFunc) Evaluate(ctx context.Context, code string) (string, error) {
	return f(ctx, code)
}

// EchoEvaluator prints every submission back.
var EchoEvaluator = EvaluatorFunc(func(_ context.Context, code string) (string, error) {
	return code, nil
})

// Config configures a Window.
type Config struct {
	// Prompts decorating submission rows. When both are empty the standard
	// "> " and ". " prompts are used.
	PrimaryPrompt      string
	ContinuationPrompt string

	// Forwarded to buffer.Options.
	HistoryLimit int

	// Evaluator runs submissions. nil means submissions produce no output.
	Evaluator Evaluator

	// Logger receives debug records for submissions and commands.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

func (c Config) bufferOptions() buffer.Options {
	opt := buffer.Options{
		HistoryLimit:       c.HistoryLimit,
		PrimaryPrompt:      c.PrimaryPrompt,
		ContinuationPrompt: c.ContinuationPrompt,
	}
	if opt.PrimaryPrompt == "" && opt.ContinuationPrompt == "" {
		opt.PrimaryPrompt = buffer.DefaultPrimaryPrompt
		opt.ContinuationPrompt = buffer.DefaultContinuationPrompt
	}
	return opt
}
