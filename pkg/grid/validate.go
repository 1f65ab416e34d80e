package grid

import (
	"fmt"
	"strings"

	"github.com/echotab/echotab/pkg/errors"
)

// Violation describes one broken layout invariant.
type Violation struct {
	ID      string
	OtherID string // set for overlaps and duplicates
	Reason  string
}

func (v Violation) String() string {
	if v.OtherID != "" {
		return fmt.Sprintf("%s/%s: %s", v.ID, v.OtherID, v.Reason)
	}
	return fmt.Sprintf("%s: %s", v.ID, v.Reason)
}

// Check lists every invariant l breaks on a grid of cols columns: duplicate
// ids, sizes below 1×1, items outside the columns and overlapping pairs.
func Check(l Layout, cols int) []Violation {
	var out []Violation
	seen := make(map[string]bool, len(l))
	for i, it := range l {
		if seen[it.ID] {
			out = append(out, Violation{ID: it.ID, OtherID: it.ID, Reason: "duplicate id"})
		}
		seen[it.ID] = true

		if it.W < 1 || it.H < 1 {
			out = append(out, Violation{ID: it.ID, Reason: fmt.Sprintf("degenerate size %dx%d", it.W, it.H)})
		}
		if !InBounds(it.Rect(), cols) {
			out = append(out, Violation{ID: it.ID, Reason: fmt.Sprintf("out of bounds at (%d,%d) width %d on %d columns", it.X, it.Y, it.W, cols)})
		}
		for _, other := range l[i+1:] {
			if other.ID != it.ID && Overlaps(it.Rect(), other.Rect()) {
				out = append(out, Violation{ID: it.ID, OtherID: other.ID, Reason: "overlap"})
			}
		}
	}
	return out
}

// Validate returns an INVALID_LAYOUT error summarising [Check], or nil.
func Validate(l Layout, cols int) error {
	vs := Check(l, cols)
	if len(vs) == 0 {
		return nil
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return errors.New(errors.ErrCodeInvalidLayout, "%d violation(s): %s", len(vs), strings.Join(parts, "; "))
}
