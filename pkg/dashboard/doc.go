// Package dashboard models a start page: its grid, the shortcuts and widget
// instances placed on it, and the drag or resize in progress.
//
// State changes go through a single transition function:
//
//	r := dashboard.NewReducer(registry)
//	s := dashboard.NewState()
//	s = r.Reduce(s, dashboard.AddWidget{Type: "clock"})
//	s = r.Reduce(s, dashboard.SetEditMode{On: true})
//	s = r.Reduce(s, dashboard.BeginDrag{ID: s.Layout[0].ID})
//	s = r.Reduce(s, dashboard.DragTo{X: 4, Y: 0})
//	s = r.Reduce(s, dashboard.EndDrag{})
//
// [Reducer.Reduce] never fails and never modifies its input: actions that
// do not apply (unknown ids, a drag outside edit mode) return the state
// unchanged. Callers that need to tell the user why an action was ignored
// use [Reducer.Apply], which checks the action first and returns a coded
// error.
//
// # Interactions
//
// A drag or resize captures the committed layout in a [grid.Snapshot].
// Every DragTo or ResizeTo recomputes the preview from that snapshot, and
// EndDrag or EndResize commits the last preview. While an interaction is
// active [State.DisplayLayout] returns the preview so renderers show it.
package dashboard
