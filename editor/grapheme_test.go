package editor

import "testing"

func TestCellToCluster_WideGlyphs(t *testing.T) {
	clusters := []string{"a", "世", "b"}
	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 9: 3}
	for cell, want := range cases {
		if got := cellToCluster(clusters, cell); got != want {
			t.Fatalf("cellToCluster(%d)=%d, want %d", cell, got, want)
		}
	}
}
