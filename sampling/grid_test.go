package sampling

import "testing"

// TestGridIndices verifies the layer-major decomposition: layers cycle fastest,
// directions advance once per full layer cycle.
func TestGridIndices(t *testing.T) {
	tests := []struct {
		name    string
		cursor  int
		layers  int
		dirs    int
		wantLay int
		wantDir int
	}{
		{"origin", 0, 3, 4, 0, 0},
		{"second layer", 1, 3, 4, 1, 0},
		{"last layer first direction", 2, 3, 4, 2, 0},
		{"direction advances after layer cycle", 3, 3, 4, 0, 1},
		{"mid grid", 7, 3, 4, 1, 2},
		{"last cell", 11, 3, 4, 2, 3},
		{"wraps past grid", 12, 3, 4, 0, 0},
		{"degenerate single cell", 0, 1, 1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lay, dir := gridIndices(tc.cursor, tc.layers, tc.dirs)
			if lay != tc.wantLay || dir != tc.wantDir {
				t.Errorf("gridIndices(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.cursor, tc.layers, tc.dirs, lay, dir, tc.wantLay, tc.wantDir)
			}
		})
	}
}

// TestGridCoversAllCells verifies every (layer, direction) pair appears exactly
// once over one full sweep.
func TestGridCoversAllCells(t *testing.T) {
	const layers, dirs = 4, 6

	seen := make(map[[2]int]int)
	for cursor := 0; cursor < layers*dirs; cursor++ {
		lay, dir := gridIndices(cursor, layers, dirs)
		seen[[2]int{lay, dir}]++
	}

	if len(seen) != layers*dirs {
		t.Fatalf("covered %d cells, want %d", len(seen), layers*dirs)
	}
	for cell, n := range seen {
		if n != 1 {
			t.Errorf("cell %v visited %d times", cell, n)
		}
	}
}
