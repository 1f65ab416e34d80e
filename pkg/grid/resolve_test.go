package grid

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func assertItem(t *testing.T, l Layout, id string, want Rect) {
	t.Helper()
	it, ok := l.Find(id)
	if !ok {
		t.Fatalf("item %s missing from layout", id)
	}
	if it.Rect() != want {
		t.Errorf("item %s = %+v, want %+v", id, it.Rect(), want)
	}
}

func TestResolveMoveSwap(t *testing.T) {
	cfg := Config{Cols: 6}
	base := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 2, H: 2},
	}

	res := Resolve("a", 2, 0, base, cfg)

	if res.Outcome != OutcomeSwapped {
		t.Errorf("Outcome = %v, want swapped", res.Outcome)
	}
	assertItem(t, res.Layout, "a", Rect{2, 0, 2, 2})
	assertItem(t, res.Layout, "b", Rect{0, 0, 2, 2})
	if !reflect.DeepEqual(res.Displaced, []string{"b"}) {
		t.Errorf("Displaced = %v, want [b]", res.Displaced)
	}
}

func TestResolveMoveSwapSymmetry(t *testing.T) {
	base := Layout{
		{ID: "A", X: 0, Y: 0, W: 2, H: 2},
		{ID: "B", X: 3, Y: 0, W: 2, H: 2},
	}

	got := ResolveMove("A", 3, 0, base, Config{Cols: 12})

	assertItem(t, got, "A", Rect{3, 0, 2, 2})
	assertItem(t, got, "B", Rect{0, 0, 2, 2})
}

func TestResolveMoveNoOverlap(t *testing.T) {
	base := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 2, H: 2},
	}

	res := Resolve("a", 4, 3, base, Config{Cols: 6})

	if res.Outcome != OutcomeMoved {
		t.Errorf("Outcome = %v, want moved", res.Outcome)
	}
	assertItem(t, res.Layout, "a", Rect{4, 3, 2, 2})
	if res.Layout[1] != base[1] {
		t.Errorf("untouched item changed: %+v", res.Layout[1])
	}
	if len(res.Displaced) != 0 {
		t.Errorf("Displaced = %v, want none", res.Displaced)
	}
}

func TestResolveMoveToOwnPositionIsNoChange(t *testing.T) {
	base := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 1, H: 3},
		{ID: "c", X: 0, Y: 3, W: 4, H: 1},
	}

	for _, it := range base {
		got := ResolveMove(it.ID, it.X, it.Y, base, Config{Cols: 6})
		if !reflect.DeepEqual(got, base) {
			t.Errorf("moving %s onto itself changed the layout: %+v", it.ID, got)
		}
	}
}

func TestResolveMoveUnknownID(t *testing.T) {
	base := Layout{{ID: "a", X: 0, Y: 0, W: 1, H: 1}}

	res := Resolve("ghost", 3, 3, base, Config{Cols: 6})

	if res.Outcome != OutcomeNoop {
		t.Errorf("Outcome = %v, want noop", res.Outcome)
	}
	if !reflect.DeepEqual(res.Layout, base) {
		t.Errorf("layout changed for unknown id: %+v", res.Layout)
	}
}

func TestResolveMoveClampsTarget(t *testing.T) {
	base := Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 1}}

	got := ResolveMove("a", 10, -3, base, Config{Cols: 6})

	assertItem(t, got, "a", Rect{4, 0, 2, 1})
}

func TestResolveMovePushesUnrelatedItem(t *testing.T) {
	cfg := Config{Cols: 6}
	base := Layout{
		{ID: "A", X: 0, Y: 0, W: 2, H: 2},
		{ID: "B", X: 2, Y: 0, W: 1, H: 1},
		{ID: "C", X: 4, Y: 2, W: 2, H: 1},
	}

	res := Resolve("C", 2, 0, base, cfg)

	if res.Outcome != OutcomePushed {
		t.Fatalf("Outcome = %v, want pushed", res.Outcome)
	}
	assertItem(t, res.Layout, "C", Rect{2, 0, 2, 1})
	assertItem(t, res.Layout, "B", Rect{4, 0, 1, 1})
	assertItem(t, res.Layout, "A", Rect{0, 0, 2, 2})
}

func TestResolveMoveOverlappingSwapFallsBackToPush(t *testing.T) {
	base := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 2, H: 2},
	}

	res := Resolve("a", 1, 0, base, Config{Cols: 6})

	if res.Outcome != OutcomePushed {
		t.Fatalf("Outcome = %v, want pushed", res.Outcome)
	}
	assertItem(t, res.Layout, "a", Rect{1, 0, 2, 2})
	assertItem(t, res.Layout, "b", Rect{3, 0, 2, 2})
}

func TestResolveMoveCascadeOrder(t *testing.T) {
	base := Layout{
		{ID: "M", X: 0, Y: 2, W: 4, H: 1},
		{ID: "P", X: 0, Y: 0, W: 1, H: 1},
		{ID: "Q", X: 1, Y: 0, W: 1, H: 1},
		{ID: "R", X: 3, Y: 0, W: 1, H: 1},
	}

	res := Resolve("M", 0, 0, base, Config{Cols: 4})

	if !reflect.DeepEqual(res.Displaced, []string{"P", "Q", "R"}) {
		t.Errorf("Displaced = %v, want [P Q R]", res.Displaced)
	}
	assertItem(t, res.Layout, "M", Rect{0, 0, 4, 1})
	assertItem(t, res.Layout, "P", Rect{0, 1, 1, 1})
	assertItem(t, res.Layout, "Q", Rect{1, 1, 1, 1})
	assertItem(t, res.Layout, "R", Rect{2, 1, 1, 1})
}

func TestResolveMoveDoesNotMutateBase(t *testing.T) {
	base := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 1, H: 1},
	}
	orig := base.Clone()

	_ = ResolveMove("a", 2, 0, base, Config{Cols: 6})
	_ = ResolveResize("a", 3, 3, base, Config{Cols: 6})

	if !reflect.DeepEqual(base, orig) {
		t.Errorf("base mutated: %+v", base)
	}
}

func TestResolveResize(t *testing.T) {
	cfg := Config{Cols: 6}
	base := Layout{
		{ID: "a", X: 0, Y: 0, W: 1, H: 1},
		{ID: "b", X: 1, Y: 0, W: 1, H: 1},
		{ID: "edge", X: 4, Y: 3, W: 1, H: 1},
	}

	tests := []struct {
		name  string
		id    string
		w, h  int
		check func(t *testing.T, got Layout)
	}{
		{
			name: "grow over neighbour leaves overlap",
			id:   "a", w: 2, h: 1,
			check: func(t *testing.T, got Layout) {
				assertItem(t, got, "a", Rect{0, 0, 2, 1})
				assertItem(t, got, "b", Rect{1, 0, 1, 1})
				if len(Check(got, cfg.Cols)) == 0 {
					t.Error("expected the overlap to be left in place")
				}
			},
		},
		{
			name: "width clamped to columns",
			id:   "edge", w: 5, h: 2,
			check: func(t *testing.T, got Layout) {
				assertItem(t, got, "edge", Rect{4, 3, 2, 2})
			},
		},
		{
			name: "minimum size is one cell",
			id:   "a", w: 0, h: -1,
			check: func(t *testing.T, got Layout) {
				assertItem(t, got, "a", Rect{0, 0, 1, 1})
			},
		},
		{
			name: "unknown id",
			id:   "ghost", w: 3, h: 3,
			check: func(t *testing.T, got Layout) {
				if !reflect.DeepEqual(got, base) {
					t.Errorf("layout changed for unknown id: %+v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ResolveResize(tt.id, tt.w, tt.h, base, cfg))
		})
	}
}

func TestResolveMoveKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	cfg := Config{Cols: 8}

	for round := 0; round < 200; round++ {
		var l Layout
		n := 4 + rng.IntN(10)
		for i := 0; i < n; i++ {
			id := string(rune('a' + i))
			l = AddItem(l, id, 1+rng.IntN(4), 1+rng.IntN(3), cfg)
		}
		if vs := Check(l, cfg.Cols); len(vs) != 0 {
			t.Fatalf("round %d: AddItem produced invalid layout: %v", round, vs)
		}

		for step := 0; step < 20; step++ {
			it := l[rng.IntN(len(l))]
			x, y := rng.IntN(cfg.Cols+2)-1, rng.IntN(12)-1
			next := ResolveMove(it.ID, x, y, l, cfg)
			if vs := Check(next, cfg.Cols); len(vs) != 0 {
				t.Fatalf("round %d step %d: moving %s to (%d,%d) broke invariants: %v\nbefore: %+v\nafter:  %+v",
					round, step, it.ID, x, y, vs, l, next)
			}
			if len(next) != len(l) {
				t.Fatalf("round %d step %d: item count changed %d -> %d", round, step, len(l), len(next))
			}
			l = next
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeNoop:    "noop",
		OutcomeMoved:   "moved",
		OutcomeSwapped: "swapped",
		OutcomePushed:  "pushed",
		OutcomeResized: "resized",
		Outcome(99):    "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}
