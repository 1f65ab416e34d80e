// Package grid positions rectangular items on a discrete column grid and
// resolves the overlaps produced by interactive drag and resize actions.
//
// The package is pure computation: every function takes a [Layout] and
// returns a new one, never mutating its input. It knows nothing about pixels,
// rendering or I/O; [Config.CellSize] and [Config.Gap] are carried only for
// the rendering collaborator.
//
// # Coordinate System
//
// Items are addressed in cell units. Columns run from 0 to Cols-1; rows start
// at 0 and grow without bound ([Config.Rows] is advisory). An item at (x, y)
// with size w×h covers cells [x, x+w) × [y, y+h).
//
// # Core Operations
//
//   - [Overlaps], [ClampX], [ClampY]: geometry primitives
//   - [OccupiedCells]: cell occupancy for free-slot search
//   - [FindFreePosition]: row-major scan for a brand-new item
//   - [FindNearestEmptyPosition]: closest slot to an anchor for a displaced item
//   - [CanPlaceAt]: validity predicate shared by both searches
//   - [ResolveMove], [ResolveResize]: the state transitions behind drag and resize
//
// # Interactions
//
// A drag or resize is driven from a [Snapshot] taken when the pointer goes
// down. Every preview is recomputed from that same snapshot so jitter never
// compounds:
//
//	snap := grid.BeginInteraction(layout, cfg)
//	preview := snap.Preview("clock-1", grid.MoveTo(3, 0))
//	// ... more pointer movement ...
//	layout = snap.Commit("clock-1", grid.MoveTo(4, 1))
//
// Cancelling an interaction is simply dropping the snapshot.
//
// # Invariants
//
// Layouts produced by [ResolveMove], [AddItem] and [FindFreePosition]
// contain no overlapping pairs and keep every item inside 0 <= x, x+w <= Cols,
// provided the input layout already did and every requested width is at
// most Cols. An item wider than the grid fits nowhere: [FindFreePosition]
// then returns its (0, startRow) fallback, which may overlap, so callers must
// not ask for w > Cols.
//
// [ResolveResize] does not push neighbours: growing an item may leave
// overlaps in the result.
//
// Missing ids are never errors. Operations on an unknown id return the input
// layout unchanged so a live editor cannot crash on a stale reference.
package grid
