package grid

// Overlaps reports whether a and b share at least one cell.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// ClampX keeps a span of width w starting at x inside [0, cols).
func ClampX(x, w, cols int) int {
	return max(0, min(x, cols-w))
}

// ClampY keeps y non-negative. Rows are unbounded below.
func ClampY(y int) int {
	return max(0, y)
}

// InBounds reports whether r lies fully inside the column range and below
// row 0.
func InBounds(r Rect, cols int) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= cols
}
