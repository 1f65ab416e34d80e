package dashboard

import "github.com/echotab/echotab/pkg/grid"

// Action is a state transition understood by [Reducer.Reduce].
type Action interface {
	action()
}

// SetEditMode enters or leaves edit mode. Leaving cancels any interaction.
type SetEditMode struct{ On bool }

// SetGridConfig replaces the grid settings and cancels any interaction.
type SetGridConfig struct{ Config grid.Config }

// AddShortcut places a new 1×1 shortcut tile at the first free cell.
type AddShortcut struct {
	Title, URL, Icon string
}

// UpdateShortcut overwrites the non-empty fields of shortcut ID.
type UpdateShortcut struct {
	ID               string
	Title, URL, Icon string
}

// RemoveShortcut deletes shortcut ID and its tile.
type RemoveShortcut struct{ ID string }

// AddWidget places a new instance of widget Type. A zero W or H takes the
// manifest default for that side.
type AddWidget struct {
	Type   string
	Config map[string]any
	W, H   int
}

// UpdateWidget merges Config into the configuration of widget ID.
type UpdateWidget struct {
	ID     string
	Config map[string]any
}

// RemoveWidget deletes widget ID and its layout item.
type RemoveWidget struct{ ID string }

// BeginDrag starts dragging item ID.
type BeginDrag struct{ ID string }

// DragTo proposes a new origin for the dragged item.
type DragTo struct{ X, Y int }

// EndDrag commits the drag.
type EndDrag struct{}

// BeginResize starts resizing item ID.
type BeginResize struct{ ID string }

// ResizeTo proposes a new size for the resized item.
type ResizeTo struct{ W, H int }

// EndResize commits the resize.
type EndResize struct{}

// CancelInteraction drops the active drag or resize, keeping the committed
// layout.
type CancelInteraction struct{}

// MoveItem moves an item in one step, outside any interaction.
type MoveItem struct {
	ID   string
	X, Y int
}

// ResizeItem resizes an item in one step, outside any interaction.
type ResizeItem struct {
	ID   string
	W, H int
}

func (SetEditMode) action()       {}
func (SetGridConfig) action()     {}
func (AddShortcut) action()       {}
func (UpdateShortcut) action()    {}
func (RemoveShortcut) action()    {}
func (AddWidget) action()         {}
func (UpdateWidget) action()      {}
func (RemoveWidget) action()      {}
func (BeginDrag) action()         {}
func (DragTo) action()            {}
func (EndDrag) action()           {}
func (BeginResize) action()       {}
func (ResizeTo) action()          {}
func (EndResize) action()         {}
func (CancelInteraction) action() {}
func (MoveItem) action()          {}
func (ResizeItem) action()        {}
