package grid

import "testing"

func TestOccupiedCells(t *testing.T) {
	l := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 3, Y: 1, W: 1, H: 1},
	}
	occ := OccupiedCells(l)

	if len(occ) != 5 {
		t.Fatalf("len(occ) = %d, want 5", len(occ))
	}
	for _, c := range []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {3, 1}} {
		if !occ.Has(c.X, c.Y) {
			t.Errorf("cell %v should be occupied", c)
		}
	}
	if occ.Has(2, 0) {
		t.Error("cell (2,0) should be free")
	}
}

func TestOccupancyFree(t *testing.T) {
	occ := OccupiedCells(Layout{{ID: "a", X: 2, Y: 2, W: 1, H: 1}})

	tests := []struct {
		name       string
		x, y, w, h int
		want       bool
	}{
		{"clear block", 0, 0, 2, 2, true},
		{"covers occupied cell", 1, 1, 2, 2, false},
		{"adjacent", 3, 2, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occ.Free(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("Free(%d,%d,%d,%d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestOccupiedCellsEmpty(t *testing.T) {
	if occ := OccupiedCells(nil); len(occ) != 0 {
		t.Errorf("OccupiedCells(nil) has %d cells, want 0", len(occ))
	}
}
