package dashboard

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
	"github.com/echotab/echotab/pkg/widget"
)

// DefaultWidgetSize is used for widget types the registry does not describe.
var DefaultWidgetSize = grid.Size{W: 4, H: 4}

// Reducer applies actions to dashboard states.
type Reducer struct {
	// Registry supplies widget sizes. With a nil registry every widget type
	// is accepted at DefaultWidgetSize.
	Registry *widget.Registry

	// NewID generates the unique part of widget ids.
	NewID func() string

	// Now is the clock used for shortcut ids and widget timestamps.
	Now func() time.Time

	// StartRow is the first row scanned when placing new items.
	StartRow int
}

// NewReducer returns a reducer using reg, random UUIDs and the wall clock.
func NewReducer(reg *widget.Registry) *Reducer {
	return &Reducer{
		Registry: reg,
		NewID:    uuid.NewString,
		Now:      time.Now,
	}
}

// Reduce returns the state after a. It never modifies s and never fails;
// actions that do not apply return s unchanged.
func (r *Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetEditMode:
		return r.setEditMode(s, a)
	case SetGridConfig:
		out := s.Clone()
		out.Grid = a.Config
		out.Interaction = nil
		return out
	case AddShortcut:
		return r.addShortcut(s, a)
	case UpdateShortcut:
		return r.updateShortcut(s, a)
	case RemoveShortcut:
		return r.removeItem(s, a.ID, true)
	case AddWidget:
		return r.addWidget(s, a)
	case UpdateWidget:
		return r.updateWidget(s, a)
	case RemoveWidget:
		return r.removeItem(s, a.ID, false)
	case BeginDrag:
		return r.begin(s, a.ID, Drag)
	case BeginResize:
		return r.begin(s, a.ID, Resize)
	case DragTo:
		return r.propose(s, Drag, grid.MoveTo(a.X, a.Y))
	case ResizeTo:
		return r.propose(s, Resize, r.resizeProposal(s, a.W, a.H))
	case EndDrag:
		return r.end(s, Drag)
	case EndResize:
		return r.end(s, Resize)
	case CancelInteraction:
		if s.Interaction == nil {
			return s
		}
		out := s.Clone()
		out.Interaction = nil
		return out
	case MoveItem:
		if s.Interaction != nil {
			return s
		}
		out := s.Clone()
		out.Layout = grid.ResolveMove(a.ID, a.X, a.Y, s.Layout, s.Grid)
		return out
	case ResizeItem:
		if s.Interaction != nil {
			return s
		}
		w, h := r.clampItemSize(s, a.ID, a.W, a.H)
		out := s.Clone()
		out.Layout = grid.ResolveResize(a.ID, w, h, s.Layout, s.Grid)
		return out
	}
	return s
}

// Apply checks a against s and reduces it. The error explains why an action
// would have been ignored.
func (r *Reducer) Apply(s State, a Action) (State, error) {
	if err := r.Check(s, a); err != nil {
		return s, err
	}
	return r.Reduce(s, a), nil
}

// Check reports why a would be a no-op on s, or nil if it applies.
func (r *Reducer) Check(s State, a Action) error {
	switch a := a.(type) {
	case SetGridConfig:
		if a.Config.Cols < 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "grid needs at least one column, got %d", a.Config.Cols)
		}
	case AddShortcut:
		if strings.TrimSpace(a.Title) == "" {
			return errors.New(errors.ErrCodeInvalidInput, "shortcut title is required")
		}
		return errors.ValidateURL(a.URL)
	case UpdateShortcut:
		if s.shortcutIndex(a.ID) < 0 {
			return errors.New(errors.ErrCodeItemNotFound, "no shortcut %q", a.ID)
		}
		if a.URL != "" {
			return errors.ValidateURL(a.URL)
		}
	case RemoveShortcut:
		if s.shortcutIndex(a.ID) < 0 {
			return errors.New(errors.ErrCodeItemNotFound, "no shortcut %q", a.ID)
		}
	case AddWidget:
		if a.Type == "" {
			return errors.New(errors.ErrCodeInvalidInput, "widget type is required")
		}
		if r.Registry != nil {
			if _, err := r.Registry.Manifest(a.Type); err != nil {
				return err
			}
		}
		if a.W < 0 || a.H < 0 {
			return errors.ValidateSize(a.W, a.H)
		}
	case UpdateWidget:
		if s.widgetIndex(a.ID) < 0 {
			return errors.New(errors.ErrCodeItemNotFound, "no widget %q", a.ID)
		}
	case RemoveWidget:
		if s.widgetIndex(a.ID) < 0 {
			return errors.New(errors.ErrCodeItemNotFound, "no widget %q", a.ID)
		}
	case BeginDrag:
		return checkBegin(s, a.ID)
	case BeginResize:
		return checkBegin(s, a.ID)
	case DragTo, EndDrag:
		return checkActive(s, Drag)
	case ResizeTo:
		if err := checkActive(s, Resize); err != nil {
			return err
		}
		return errors.ValidateSize(a.W, a.H)
	case EndResize:
		return checkActive(s, Resize)
	case CancelInteraction:
		if s.Interaction == nil {
			return errors.New(errors.ErrCodeInteractionNotFound, "no interaction in progress")
		}
	case MoveItem:
		if err := checkIdle(s); err != nil {
			return err
		}
		return checkItem(s, a.ID)
	case ResizeItem:
		if err := checkIdle(s); err != nil {
			return err
		}
		if err := checkItem(s, a.ID); err != nil {
			return err
		}
		return errors.ValidateSize(a.W, a.H)
	}
	return nil
}

func checkItem(s State, id string) error {
	if s.Layout.Index(id) < 0 {
		return errors.New(errors.ErrCodeItemNotFound, "no layout item %q", id)
	}
	return nil
}

func checkIdle(s State) error {
	if s.Interaction != nil {
		return errors.New(errors.ErrCodeInteractionActive, "%s of %s in progress", s.Interaction.Kind, s.Interaction.ItemID)
	}
	return nil
}

func checkBegin(s State, id string) error {
	if !s.EditMode {
		return errors.New(errors.ErrCodeInvalidInput, "items can only be moved in edit mode")
	}
	if err := checkIdle(s); err != nil {
		return err
	}
	return checkItem(s, id)
}

func checkActive(s State, kind InteractionKind) error {
	if s.Interaction == nil || s.Interaction.Kind != kind {
		return errors.New(errors.ErrCodeInteractionNotFound, "no %s in progress", kind)
	}
	return nil
}

// =============================================================================
// Items
// =============================================================================

func (r *Reducer) setEditMode(s State, a SetEditMode) State {
	if s.EditMode == a.On {
		return s
	}
	out := s.Clone()
	out.EditMode = a.On
	if !a.On {
		out.Interaction = nil
	}
	return out
}

func (r *Reducer) addShortcut(s State, a AddShortcut) State {
	n := max(r.now().UnixMilli(), s.NextShortcutID)
	sc := Shortcut{
		ID:    shortcutID(n),
		Title: a.Title,
		URL:   a.URL,
		Icon:  a.Icon,
	}

	out := s.Clone()
	out.NextShortcutID = n + 1
	out.Shortcuts = append(out.Shortcuts, sc)
	out.Layout = grid.AddItemFrom(s.Layout, sc.ID, 1, 1, s.Grid, r.StartRow)
	return out
}

func (r *Reducer) updateShortcut(s State, a UpdateShortcut) State {
	i := s.shortcutIndex(a.ID)
	if i < 0 {
		return s
	}
	out := s.Clone()
	sc := &out.Shortcuts[i]
	if a.Title != "" {
		sc.Title = a.Title
	}
	if a.URL != "" {
		sc.URL = a.URL
	}
	if a.Icon != "" {
		sc.Icon = a.Icon
	}
	return out
}

func (r *Reducer) addWidget(s State, a AddWidget) State {
	if a.Type == "" {
		return s
	}
	size := DefaultWidgetSize
	var m widget.Manifest
	if r.Registry != nil {
		var err error
		if m, err = r.Registry.Manifest(a.Type); err != nil {
			return s
		}
		size = m.Size()
	}
	if a.W > 0 {
		size.W = a.W
	}
	if a.H > 0 {
		size.H = a.H
	}
	size.W, size.H = m.ClampSize(size.W, size.H)
	size.W = min(size.W, max(1, s.Grid.Cols))

	now := r.now()
	w := Widget{
		ID:        a.Type + "-" + r.newID(),
		Type:      a.Type,
		Config:    mergeConfig(nil, a.Config),
		CreatedAt: now,
		UpdatedAt: now,
	}

	out := s.Clone()
	out.Widgets = append(out.Widgets, w)
	out.Layout = grid.AddItemFrom(s.Layout, w.ID, size.W, size.H, s.Grid, r.StartRow)
	return out
}

func (r *Reducer) updateWidget(s State, a UpdateWidget) State {
	i := s.widgetIndex(a.ID)
	if i < 0 {
		return s
	}
	out := s.Clone()
	w := &out.Widgets[i]
	w.Config = mergeConfig(w.Config, a.Config)
	w.UpdatedAt = r.now()
	return out
}

// removeItem deletes a shortcut or widget together with its layout item.
// Removing the item under an interaction cancels it.
func (r *Reducer) removeItem(s State, id string, shortcut bool) State {
	var idx int
	if shortcut {
		idx = s.shortcutIndex(id)
	} else {
		idx = s.widgetIndex(id)
	}
	if idx < 0 {
		return s
	}

	out := s.Clone()
	if shortcut {
		out.Shortcuts = append(out.Shortcuts[:idx:idx], out.Shortcuts[idx+1:]...)
	} else {
		out.Widgets = append(out.Widgets[:idx:idx], out.Widgets[idx+1:]...)
	}
	out.Layout = grid.RemoveItem(s.Layout, id)
	if s.Interaction != nil && s.Interaction.ItemID == id {
		out.Interaction = nil
	}
	return out
}

// =============================================================================
// Interactions
// =============================================================================

func (r *Reducer) begin(s State, id string, kind InteractionKind) State {
	if checkBegin(s, id) != nil {
		return s
	}
	out := s.Clone()
	out.Interaction = &Interaction{
		Kind:     kind,
		ItemID:   id,
		Snapshot: grid.BeginInteraction(s.Layout, s.Grid),
	}
	return out
}

func (r *Reducer) propose(s State, kind InteractionKind, p grid.Proposal) State {
	if checkActive(s, kind) != nil {
		return s
	}
	out := s.Clone()
	in := out.Interaction
	res := in.Snapshot.Apply(in.ItemID, p)
	in.Proposal = &p
	in.Preview = res.Layout
	in.Outcome = res.Outcome
	return out
}

func (r *Reducer) end(s State, kind InteractionKind) State {
	if checkActive(s, kind) != nil {
		return s
	}
	out := s.Clone()
	out.Layout = s.Interaction.Result()
	out.Interaction = nil
	return out
}

// resizeProposal bounds a widget resize to its manifest limits.
func (r *Reducer) resizeProposal(s State, w, h int) grid.Proposal {
	if s.Interaction != nil {
		w, h = r.clampItemSize(s, s.Interaction.ItemID, w, h)
	}
	return grid.ResizeTo(w, h)
}

func (r *Reducer) clampItemSize(s State, id string, w, h int) (int, int) {
	if r.Registry == nil {
		return w, h
	}
	wd, ok := s.Widget(id)
	if !ok {
		return w, h
	}
	m, err := r.Registry.Manifest(wd.Type)
	if err != nil {
		return w, h
	}
	return m.ClampSize(w, h)
}

func (r *Reducer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Reducer) newID() string {
	if r.NewID == nil {
		return uuid.NewString()
	}
	return r.NewID()
}
