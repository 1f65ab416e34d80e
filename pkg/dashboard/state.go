package dashboard

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/echotab/echotab/pkg/grid"
)

// ShortcutPrefix starts the layout id of every shortcut.
const ShortcutPrefix = "shortcut-"

// Shortcut is a link tile occupying a single cell.
type Shortcut struct {
	ID    string `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
	URL   string `json:"url" bson:"url"`
	Icon  string `json:"icon,omitempty" bson:"icon,omitempty"`
}

// Widget is one placed instance of a widget type.
type Widget struct {
	ID        string         `json:"id" bson:"id"`
	Type      string         `json:"type" bson:"type"`
	Config    map[string]any `json:"config,omitempty" bson:"config,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// State is a complete dashboard. The zero value is an empty dashboard with
// no grid; use [NewState] for the default grid.
type State struct {
	Grid      grid.Config `json:"grid" bson:"grid"`
	Layout    grid.Layout `json:"layout" bson:"layout"`
	Shortcuts []Shortcut  `json:"shortcuts" bson:"shortcuts"`
	Widgets   []Widget    `json:"widgets" bson:"widgets"`

	// NextShortcutID is the smallest number the next shortcut id may use.
	NextShortcutID int64 `json:"next_shortcut_id" bson:"next_shortcut_id"`

	EditMode    bool         `json:"-" bson:"-"`
	Interaction *Interaction `json:"-" bson:"-"`
}

// NewState returns an empty dashboard on the default grid.
func NewState() State {
	return State{Grid: grid.DefaultConfig()}
}

// DisplayLayout returns the layout to draw: the preview while an interaction
// has one, the committed layout otherwise.
func (s State) DisplayLayout() grid.Layout {
	if s.Interaction != nil && s.Interaction.Preview != nil {
		return s.Interaction.Preview
	}
	return s.Layout
}

// Shortcut returns the shortcut with the given id.
func (s State) Shortcut(id string) (Shortcut, bool) {
	if i := s.shortcutIndex(id); i >= 0 {
		return s.Shortcuts[i], true
	}
	return Shortcut{}, false
}

// Widget returns the widget instance with the given id.
func (s State) Widget(id string) (Widget, bool) {
	if i := s.widgetIndex(id); i >= 0 {
		return s.Widgets[i], true
	}
	return Widget{}, false
}

// Label returns a short human name for a layout item: the shortcut title or
// the widget type.
func (s State) Label(id string) string {
	if sc, ok := s.Shortcut(id); ok {
		return sc.Title
	}
	if w, ok := s.Widget(id); ok {
		return w.Type
	}
	return id
}

// IsShortcut reports whether id names a shortcut tile.
func IsShortcut(id string) bool {
	return strings.HasPrefix(id, ShortcutPrefix)
}

func shortcutID(n int64) string {
	return fmt.Sprintf("%s%d", ShortcutPrefix, n)
}

func (s State) shortcutIndex(id string) int {
	for i := range s.Shortcuts {
		if s.Shortcuts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) widgetIndex(id string) int {
	for i := range s.Widgets {
		if s.Widgets[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy whose slices can be modified without touching s.
// Widget configs are shared; replace a config map rather than editing it.
func (s State) Clone() State {
	out := s
	out.Layout = s.Layout.Clone()
	if s.Shortcuts != nil {
		out.Shortcuts = append([]Shortcut(nil), s.Shortcuts...)
	}
	if s.Widgets != nil {
		out.Widgets = append([]Widget(nil), s.Widgets...)
	}
	if s.Interaction != nil {
		in := *s.Interaction
		out.Interaction = &in
	}
	return out
}

func mergeConfig(base, updates map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(updates))
	maps.Copy(out, base)
	maps.Copy(out, updates)
	return out
}
