// Package widget holds widget type metadata for the dashboard.
//
// A [Registry] maps a widget type id ("clock", "weather", ...) to its
// [Manifest]: display name, default size and the size limits the grid must
// respect when an instance is added or resized. One registry is built at
// startup and handed to every component that needs widget metadata:
//
//	reg := widget.NewRegistry(logger)
//	widget.RegisterBuiltins(reg)
//
//	m, err := reg.Manifest("clock")
//	if err != nil {
//	    return err // WIDGET_NOT_FOUND
//	}
//	w, h := m.ClampSize(10, 10) // 8, 4
//
// Registration order is preserved by [Registry.All] so listings are stable.
package widget
