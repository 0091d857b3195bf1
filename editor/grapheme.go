package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCellWidth returns the terminal-cell width of one grapheme cluster.
func graphemeCellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// cellToCluster maps a cell offset within clusters to the caret stop it
// falls on. A click on the right half of a cluster lands after it.
func cellToCluster(clusters []string, cell int) int {
	if cell <= 0 {
		return 0
	}
	x := 0
	for i, c := range clusters {
		w := graphemeCellWidth(c)
		if cell < x+w {
			if w > 1 && cell-x >= (w+1)/2 {
				return i + 1
			}
			return i
		}
		x += w
	}
	return len(clusters)
}
