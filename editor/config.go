package editor

import (
	"time"

	"github.com/iw2rmb/promptbox/repl"
)

// Config configures the editor Model.
type Config struct {
	// Window configures the underlying interactive window: prompts,
	// evaluator, logger and undo depth.
	Window repl.Config

	// Initial submission text.
	Text string

	// Zero value means DefaultKeyMap().
	KeyMap KeyMap
	Style  Style

	// Clipboard backs copy, cut and paste. nil disables them.
	Clipboard Clipboard

	// OnChange is called after any update that changes the submission,
	// caret, selection or transcript.
	OnChange func(ChangeEvent)

	// ReadOnly blocks every mutation; movement and selection still work.
	ReadOnly bool

	// TabWidth is the number of spaces Tab inserts. Default: 4.
	TabWidth int

	// EvalTimeout bounds one submission. Zero means no limit.
	EvalTimeout time.Duration
}

// DefaultConfig returns a Config with the default key map and style.
func DefaultConfig() Config {
	return Config{
		KeyMap:   DefaultKeyMap(),
		Style:    DefaultStyle(),
		TabWidth: 4,
	}
}
