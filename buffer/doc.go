// Package buffer implements the pure, grapheme-accurate model of a REPL
// submission: input rows decorated with read-only prompts, a caret, and a
// selection that is either a stream (linear) range or a rectangular box.
//
// Coordinates are 0-based (Row, Col) in grapheme clusters. Col is measured
// from the first editable character of the row; negative columns point into
// the row's prompt decoration. Box geometry is computed in view columns
// (prompt width + Col) so rows with different prompts line up visually.
package buffer
