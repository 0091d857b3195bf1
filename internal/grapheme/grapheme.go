package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Offsets returns the byte offset at which each cluster starts, plus a final
// entry holding the total byte length.
func Offsets(clusters []string) []int {
	out := make([]int, 0, len(clusters)+1)
	off := 0
	for _, c := range clusters {
		out = append(out, off)
		off += len(c)
	}
	return append(out, off)
}

// Floor returns the index of the cluster containing byte offset off.
// offsets must come from Offsets.
func Floor(offsets []int, off int) int {
	i := 0
	for i+1 < len(offsets) && offsets[i+1] <= off {
		i++
	}
	return i
}

// Ceil returns the smallest cluster boundary at or after byte offset off.
func Ceil(offsets []int, off int) int {
	for i, o := range offsets {
		if o >= off {
			return i
		}
	}
	return len(offsets) - 1
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
