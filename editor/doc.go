// Package editor provides a Bubble Tea component for an interactive window:
// the transcript of earlier submissions followed by the prompt-decorated
// submission being edited.
//
// The component handles keys (including Alt+Shift box selection), mouse
// placement and dragging, viewport scrolling, prompt-aware rendering, the
// clipboard and change events. Editing semantics live in the buffer and
// repl packages.
package editor
