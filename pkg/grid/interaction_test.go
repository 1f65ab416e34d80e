package grid

import (
	"reflect"
	"testing"
)

func dashboard() Layout {
	return Layout{
		{ID: "clock", X: 0, Y: 0, W: 4, H: 2},
		{ID: "search", X: 4, Y: 0, W: 5, H: 1},
		{ID: "shortcut-1", X: 9, Y: 0, W: 1, H: 1},
	}
}

func TestSnapshotIsolatedFromCaller(t *testing.T) {
	l := dashboard()
	snap := BeginInteraction(l, DefaultConfig())

	l[0].X = 7

	if snap.Base()[0].X != 0 {
		t.Error("snapshot should not see later edits to the caller's layout")
	}
}

func TestPreviewAlwaysStartsFromSnapshot(t *testing.T) {
	l := dashboard()
	snap := BeginInteraction(l, DefaultConfig())

	first := snap.Preview("clock", MoveTo(4, 0))
	if it, _ := first.Find("search"); it.X == 4 && it.Y == 0 {
		t.Fatalf("search should have been pushed, got %+v", it)
	}

	back := snap.Preview("clock", MoveTo(0, 0))
	if !reflect.DeepEqual(back, l) {
		t.Errorf("returning to the start should reproduce the snapshot\n got: %+v\nwant: %+v", back, l)
	}
}

func TestCommitMatchesPreview(t *testing.T) {
	snap := BeginInteraction(dashboard(), DefaultConfig())

	for _, p := range []Proposal{MoveTo(9, 0), MoveTo(2, 3), ResizeTo(6, 3)} {
		if !reflect.DeepEqual(snap.Preview("clock", p), snap.Commit("clock", p)) {
			t.Errorf("Commit and Preview disagree for %+v", p)
		}
	}
}

func TestSnapshotApplyResize(t *testing.T) {
	snap := BeginInteraction(dashboard(), DefaultConfig())

	res := snap.Apply("search", ResizeTo(2, 2))

	if res.Outcome != OutcomeResized {
		t.Errorf("Outcome = %v, want resized", res.Outcome)
	}
	assertItem(t, res.Layout, "search", Rect{4, 0, 2, 2})
}

func TestSnapshotUnknownItem(t *testing.T) {
	l := dashboard()
	snap := BeginInteraction(l, DefaultConfig())

	if got := snap.Commit("deleted-mid-drag", MoveTo(1, 1)); !reflect.DeepEqual(got, l) {
		t.Errorf("commit for a vanished item should be a no-op, got %+v", got)
	}
}

func TestAddItem(t *testing.T) {
	cfg := Config{Cols: 6}
	l := Layout{
		{ID: "a", X: 0, Y: 0, W: 1, H: 1},
		{ID: "b", X: 1, Y: 0, W: 1, H: 1},
	}

	got := AddItem(l, "c", 1, 1, cfg)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	assertItem(t, got, "c", Rect{2, 0, 1, 1})
	if len(l) != 2 {
		t.Error("AddItem mutated its input")
	}
}

func TestAddItemFromStartRow(t *testing.T) {
	got := AddItemFrom(nil, "note", 4, 4, DefaultConfig(), 5)
	assertItem(t, got, "note", Rect{0, 5, 4, 4})
}

func TestAddItemDuplicateID(t *testing.T) {
	l := dashboard()
	got := AddItem(l, "clock", 1, 1, DefaultConfig())
	if !reflect.DeepEqual(got, l) {
		t.Errorf("duplicate id should leave layout unchanged, got %+v", got)
	}
}

func TestRemoveItem(t *testing.T) {
	l := dashboard()

	got := RemoveItem(l, "search")
	if !reflect.DeepEqual(got.IDs(), []string{"clock", "shortcut-1"}) {
		t.Errorf("IDs = %v", got.IDs())
	}
	if len(l) != 3 {
		t.Error("RemoveItem mutated its input")
	}

	if same := RemoveItem(l, "ghost"); !reflect.DeepEqual(same, l) {
		t.Errorf("removing an unknown id changed the layout: %+v", same)
	}
}
