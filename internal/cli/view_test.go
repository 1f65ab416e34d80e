package cli

import (
	"strings"
	"testing"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/grid"
)

// gridRows strips the frame from a rendered grid and returns its rows.
func gridRows(rendered string) []string {
	var rows []string
	for _, line := range strings.Split(rendered, "\n") {
		line = strings.Trim(line, "│╭╮╰╯─ ")
		if line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestRenderGrid(t *testing.T) {
	l := grid.Layout{
		{ID: "clock-1", X: 0, Y: 0, W: 2, H: 2},
		{ID: "shortcut-1", X: 3, Y: 0, W: 1, H: 1},
	}
	cfg := grid.Config{Cols: 4, Rows: 3}

	got := gridRows(renderGrid(l, cfg, ""))
	want := []string{
		"a a · b",
		"a a · ·",
		"· · · ·",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("renderGrid:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderGridGrowsPastRows(t *testing.T) {
	l := grid.Layout{{ID: "todo-1", X: 1, Y: 2, W: 1, H: 3}}

	got := gridRows(renderGrid(l, grid.Config{Cols: 2, Rows: 1}, ""))
	if len(got) != 5 {
		t.Fatalf("got %d rows, want 5 (layout bottom)", len(got))
	}
	if got[4] != "· a" {
		t.Errorf("last row = %q", got[4])
	}
}

func TestItemKey(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "a"},
		{25, "z"},
		{26, "A"},
		{61, "9"},
		{62, cellOverflow},
	}
	for _, tt := range tests {
		if got := itemKey(tt.i); got != tt.want {
			t.Errorf("itemKey(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestRenderItems(t *testing.T) {
	st := dashboard.NewState()
	st.Shortcuts = []dashboard.Shortcut{{ID: "shortcut-1", Title: "Go", URL: "https://go.dev"}}
	st.Widgets = []dashboard.Widget{{ID: "clock-1", Type: "clock"}}
	st.Layout = grid.Layout{
		{ID: "clock-1", X: 0, Y: 0, W: 4, H: 2},
		{ID: "shortcut-1", X: 4, Y: 0, W: 1, H: 1},
	}

	out := renderItems(st, st.Layout, "")
	for _, want := range []string{"clock-1", "widget", "shortcut-1", "shortcut", "Go", "4×2", "1×1"} {
		if !strings.Contains(out, want) {
			t.Errorf("item table missing %q:\n%s", want, out)
		}
	}
}
