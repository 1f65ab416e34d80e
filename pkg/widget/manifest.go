package widget

import "github.com/echotab/echotab/pkg/grid"

// Kind tells built-in widgets apart from ones loaded at runtime.
type Kind string

const (
	KindBuiltin  Kind = "builtin"
	KindExternal Kind = "external"
)

// Manifest describes one widget type.
type Manifest struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Version     string `json:"version,omitempty" bson:"version,omitempty"`
	Author      string `json:"author,omitempty" bson:"author,omitempty"`
	Type        Kind   `json:"type" bson:"type"`
	Icon        string `json:"icon,omitempty" bson:"icon,omitempty"`

	DefaultSize grid.Size `json:"default_size" bson:"default_size"`
	MinSize     grid.Size `json:"min_size" bson:"min_size"`
	MaxSize     grid.Size `json:"max_size" bson:"max_size"`

	Tags              []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Category          string   `json:"category,omitempty" bson:"category,omitempty"`
	DefaultBackground bool     `json:"default_background" bson:"default_background"`
}

// ClampSize bounds w×h to the manifest limits. A zero limit on either axis
// leaves that side unbounded; the result is never below 1×1.
func (m Manifest) ClampSize(w, h int) (int, int) {
	return clamp(w, m.MinSize.W, m.MaxSize.W), clamp(h, m.MinSize.H, m.MaxSize.H)
}

// Size returns the default size, or 1×1 when the manifest leaves it unset.
func (m Manifest) Size() grid.Size {
	w, h := m.DefaultSize.W, m.DefaultSize.H
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return grid.Size{W: w, H: h}
}

// HasTag reports whether the manifest carries tag.
func (m Manifest) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if lo > 0 && v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return max(1, v)
}
