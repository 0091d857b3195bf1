// Package repl models an interactive evaluation window: a transcript of
// earlier submissions and their output, followed by the prompt-decorated
// submission being edited.
//
// Window exposes the surface UI automation drives (insert code, place the
// caret relative to a marker, send keys, execute commands, submit) and the
// LastReplInput oracle used to verify the result.
package repl
