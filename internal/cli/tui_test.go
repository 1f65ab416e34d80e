package cli

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/grid"
	"github.com/echotab/echotab/pkg/widget"
)

func testReducer() *dashboard.Reducer {
	r := dashboard.NewReducer(widget.NewBuiltinRegistry())
	n := 0
	r.NewID = func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
	r.Now = func() time.Time { return time.UnixMilli(1000) }
	return r
}

// clockAndSearch is a clock (0,0) 4×2 next to a search box (4,0) 5×1.
func clockAndSearch(t *testing.T) (*dashboard.Reducer, dashboard.State) {
	t.Helper()
	r := testReducer()
	st := dashboard.NewState()
	var err error
	for _, typ := range []string{"clock", "search"} {
		if st, err = r.Apply(st, dashboard.AddWidget{Type: typ}); err != nil {
			t.Fatal(err)
		}
	}
	return r, st
}

func press(m editorModel, keys ...tea.KeyMsg) editorModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(editorModel)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyRight      = tea.KeyMsg{Type: tea.KeyRight}
	keyDown       = tea.KeyMsg{Type: tea.KeyDown}
	keyShiftDown  = tea.KeyMsg{Type: tea.KeyShiftDown}
	keyShiftRight = tea.KeyMsg{Type: tea.KeyShiftRight}
	keyTab        = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter      = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc        = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestEditorStartsInEditMode(t *testing.T) {
	r, st := clockAndSearch(t)
	m := newEditorModel(r, "home", st)

	if !m.state.EditMode {
		t.Error("editor state is not in edit mode")
	}
	if m.selected != "clock-id1" {
		t.Errorf("selected = %q, want the first item", m.selected)
	}
}

func TestEditorCycle(t *testing.T) {
	r, st := clockAndSearch(t)
	m := newEditorModel(r, "home", st)

	m = press(m, keyTab)
	if m.selected != "search-id2" {
		t.Errorf("after tab selected = %q", m.selected)
	}
	m = press(m, keyTab)
	if m.selected != "clock-id1" {
		t.Errorf("tab should wrap around, selected = %q", m.selected)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.selected != "search-id2" {
		t.Errorf("after shift+tab selected = %q", m.selected)
	}
}

func TestEditorDragCommit(t *testing.T) {
	r, st := clockAndSearch(t)
	m := newEditorModel(r, "home", st)

	m = press(m, keyRight, keyRight, keyRight, keyRight)
	if m.state.Interaction == nil || m.state.Interaction.Kind != dashboard.Drag {
		t.Fatal("arrows should open a drag")
	}
	if it, _ := m.state.DisplayLayout().Find("clock-id1"); it.X != 4 || it.Y != 0 {
		t.Errorf("preview clock at (%d,%d), want (4,0)", it.X, it.Y)
	}
	if it, _ := m.state.Layout.Find("clock-id1"); it.X != 0 {
		t.Errorf("committed layout changed during the drag: clock x=%d", it.X)
	}
	if m.status != "pushed" {
		t.Errorf("status = %q, want pushed", m.status)
	}

	m = press(m, keyEnter)
	if m.state.Interaction != nil {
		t.Error("enter should close the drag")
	}
	if !m.dirty {
		t.Error("commit should mark the model dirty")
	}
	if it, _ := m.state.Layout.Find("clock-id1"); it.X != 4 || it.Y != 0 {
		t.Errorf("committed clock at (%d,%d), want (4,0)", it.X, it.Y)
	}
	if err := grid.Validate(m.state.Layout, m.state.Grid.Cols); err != nil {
		t.Errorf("committed layout: %v", err)
	}
}

func TestEditorDragCancel(t *testing.T) {
	r, st := clockAndSearch(t)
	m := newEditorModel(r, "home", st)

	m = press(m, keyDown, keyDown, keyEsc)
	if m.state.Interaction != nil {
		t.Error("esc should cancel the drag")
	}
	if m.dirty {
		t.Error("a cancelled drag should not mark the model dirty")
	}
	if got := m.state.Layout; got[0] != st.Layout[0] || got[1] != st.Layout[1] {
		t.Errorf("layout changed after cancel: %v", got)
	}
}

func TestEditorResize(t *testing.T) {
	r, st := clockAndSearch(t)
	m := newEditorModel(r, "home", st)

	m = press(m, keyShiftDown, keyShiftDown, keyShiftDown)
	if it, _ := m.state.DisplayLayout().Find("clock-id1"); it.W != 4 || it.H != 4 {
		t.Errorf("preview clock %d×%d, want 4×4 (manifest max height)", it.W, it.H)
	}

	// A drag cannot start while the resize is open.
	m = press(m, keyRight)
	if m.state.Interaction.Kind != dashboard.Resize {
		t.Error("arrow replaced the open resize")
	}

	m = press(m, keyEnter)
	if it, _ := m.state.Layout.Find("clock-id1"); it.H != 4 {
		t.Errorf("committed clock height = %d, want 4", it.H)
	}
}

func TestEditorRemove(t *testing.T) {
	r, st := clockAndSearch(t)
	m := newEditorModel(r, "home", st)

	m = press(m, runeKey('d'))
	if len(m.state.Layout) != 1 || len(m.state.Widgets) != 1 {
		t.Fatalf("layout after remove = %v", m.state.Layout.IDs())
	}
	if m.selected != "search-id2" {
		t.Errorf("selection should move to the next item, got %q", m.selected)
	}
	if !m.dirty {
		t.Error("remove should mark the model dirty")
	}
}

func TestEditorQuit(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantSave bool
	}{
		{"q saves", []tea.KeyMsg{keyRight, keyEnter, runeKey('q')}, true},
		{"ctrl+c discards", []tea.KeyMsg{keyRight, keyEnter, {Type: tea.KeyCtrlC}}, false},
		{"q cancels an open resize", []tea.KeyMsg{keyShiftRight, runeKey('q')}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, st := clockAndSearch(t)
			m := newEditorModel(r, "home", st)

			var cmd tea.Cmd
			for _, k := range tt.keys {
				var next tea.Model
				next, cmd = m.Update(k)
				m = next.(editorModel)
			}
			if cmd == nil {
				t.Fatal("last key did not quit")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("last key did not return tea.Quit")
			}
			if m.save != tt.wantSave {
				t.Errorf("save = %v, want %v", m.save, tt.wantSave)
			}
			if m.state.Interaction != nil {
				t.Error("interaction left open on quit")
			}
		})
	}
}

func TestEditorView(t *testing.T) {
	r, st := clockAndSearch(t)
	m := newEditorModel(r, "home", st)
	m = press(m, keyShiftRight)

	view := m.View()
	for _, want := range []string{"Edit home", "clock  (0,0) 5×2", "resize"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
