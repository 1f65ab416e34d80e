package grid

const (
	// MaxSearchRows bounds the free-position scan below its start row.
	MaxSearchRows = 100

	// MaxSearchDistance bounds the ring search around a displaced item's anchor.
	MaxSearchDistance = 20
)

// CanPlaceAt reports whether a w×h item fits at (x, y) without leaving the
// column range, going above row 0 or overlapping any item in l other than
// excludeID. There is no upper bound on y.
func CanPlaceAt(x, y, w, h int, l Layout, excludeID string, cols int) bool {
	candidate := Rect{X: x, Y: y, W: w, H: h}
	if !InBounds(candidate, cols) {
		return false
	}
	for _, it := range l {
		if it.ID == excludeID {
			continue
		}
		if Overlaps(candidate, it.Rect()) {
			return false
		}
	}
	return true
}

// FindFreePosition scans rows from startRow downward and columns left to
// right, returning the first origin where a w×h item fits. Lower y wins,
// then lower x. If nothing fits within MaxSearchRows rows the result is
// (0, startRow).
func FindFreePosition(l Layout, w, h, cols, startRow int) Point {
	startRow = ClampY(startRow)
	occ := OccupiedCells(l)
	for y := startRow; y < startRow+MaxSearchRows; y++ {
		for x := 0; x <= cols-w; x++ {
			if occ.Free(x, y, w, h) {
				return Point{X: x, Y: y}
			}
		}
	}
	return Point{X: 0, Y: startRow}
}

// FindNearestEmptyPosition finds a slot for an item displaced from
// (startX, startY). Candidates are tried in this order:
//
//  1. rightward along the same row
//  2. the first column of the next row
//  3. square rings of growing Chebyshev distance around the anchor, each
//     ring scanned row by row, up to MaxSearchDistance
//
// The first fit wins. When nothing fits, the item goes to column 0 of the
// row after [Layout.Bottom], leaving one empty row below every item in l.
//
// The order favours small visual displacement (same row first) over strict
// geometric distance.
func FindNearestEmptyPosition(startX, startY, w, h int, l Layout, excludeID string, cols int) Point {
	for x := startX + 1; x <= cols-w; x++ {
		if CanPlaceAt(x, startY, w, h, l, excludeID, cols) {
			return Point{X: x, Y: startY}
		}
	}

	if CanPlaceAt(0, startY+1, w, h, l, excludeID, cols) {
		return Point{X: 0, Y: startY + 1}
	}

	for d := 1; d <= MaxSearchDistance; d++ {
		for dy := -d; dy <= d; dy++ {
			for dx := -d; dx <= d; dx++ {
				if abs(dx) != d && abs(dy) != d {
					continue
				}
				if CanPlaceAt(startX+dx, startY+dy, w, h, l, excludeID, cols) {
					return Point{X: startX + dx, Y: startY + dy}
				}
			}
		}
	}

	return Point{X: 0, Y: l.Bottom() + 1}
}

// FindOverlapping returns the items in l, other than excludeID, that overlap
// the rectangle r. Results keep layout order.
func FindOverlapping(r Rect, l Layout, excludeID string) []Item {
	var hits []Item
	for _, it := range l {
		if it.ID == excludeID {
			continue
		}
		if Overlaps(r, it.Rect()) {
			hits = append(hits, it)
		}
	}
	return hits
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
