package grid

// Cell is a single grid cell.
type Cell struct {
	X, Y int
}

// Occupancy is the set of cells covered by a layout.
// It is rebuilt per search; layouts hold tens of items so incremental
// maintenance is not worth it.
type Occupancy map[Cell]struct{}

// OccupiedCells marks every cell covered by an item in l.
func OccupiedCells(l Layout) Occupancy {
	occ := make(Occupancy)
	for _, it := range l {
		for y := it.Y; y < it.Y+it.H; y++ {
			for x := it.X; x < it.X+it.W; x++ {
				occ[Cell{x, y}] = struct{}{}
			}
		}
	}
	return occ
}

// Has reports whether the cell (x, y) is covered.
func (o Occupancy) Has(x, y int) bool {
	_, ok := o[Cell{x, y}]
	return ok
}

// Free reports whether every cell of the w×h block at (x, y) is uncovered.
func (o Occupancy) Free(x, y, w, h int) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if o.Has(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}
