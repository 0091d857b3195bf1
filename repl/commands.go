package repl

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command names accepted by ExecuteCommand.
const (
	CommandSelectionCancel = "Edit.SelectionCancel"
	CommandUndo            = "Edit.Undo"
	CommandRedo            = "Edit.Redo"
	CommandSelectAll       = "Edit.SelectAll"
	CommandClearScreen     = "InteractiveConsole.ClearScreen"
	CommandReset           = "InteractiveConsole.Reset"
)

// Commands lists every command name in a stable order.
func Commands() []string {
	return []string{
		CommandSelectionCancel,
		CommandUndo,
		CommandRedo,
		CommandSelectAll,
		CommandClearScreen,
		CommandReset,
	}
}

// ExecuteCommand runs a named editor command.
func (w *Window) ExecuteCommand(ctx context.Context, name string) error {
	w.log.Debug("command", "name", name)
	switch name {
	case CommandSelectionCancel:
		w.buf.CollapseSelection()
	case CommandUndo:
		w.buf.Undo()
	case CommandRedo:
		w.buf.Redo()
	case CommandSelectAll:
		w.buf.SelectAll()
	case CommandClearScreen:
		w.clearTranscript()
		w.fresh()
	case CommandReset:
		if err := w.resetSession(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		w.fresh()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return nil
}

func (w *Window) resetSession(ctx context.Context) error {
	w.clearTranscript()
	if r, ok := w.cfg.Evaluator.(Resetter); ok {
		return r.Reset(ctx)
	}
	return nil
}

type directive struct {
	name string
	help string
	run  func(ctx context.Context, w *Window) error
}

var directives = []directive{
	{name: "#cls", help: "clear the window", run: clearDirective},
	{name: "#clear", help: "clear the window", run: clearDirective},
	{name: "#reset", help: "reset the session", run: func(ctx context.Context, w *Window) error {
		return w.resetSession(ctx)
	}},
	{name: "#help", help: "list directives"},
}

// #help reads the directive table, so its handler is attached after the
// table is initialized.
func init() {
	for i := range directives {
		if directives[i].name == "#help" {
			directives[i].run = helpDirective
		}
	}
}

func helpDirective(_ context.Context, w *Window) error {
	w.entries = append(w.entries, Entry{Input: "#help", Output: helpText()})
	return nil
}

func clearDirective(_ context.Context, w *Window) error {
	w.clearTranscript()
	return nil
}

func lookupDirective(code string) (directive, bool) {
	code = strings.TrimSpace(code)
	for _, d := range directives {
		if d.name == code {
			return d, true
		}
	}
	return directive{}, false
}

func helpText() string {
	var sb strings.Builder
	sb.WriteString("Directives:\n")
	for _, d := range directives {
		fmt.Fprintf(&sb, "  %-8s %s\n", d.name, d.help)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
