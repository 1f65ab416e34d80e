package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
)

// Editor styles
var (
	editorStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	editorErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	editorHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Rearrange the dashboard interactively",
		Long: `Rearrange the dashboard in the terminal.

  tab / shift+tab   select the next / previous item
  arrows            drag the selected item one cell
  shift+arrows      resize the selected item
  enter             commit the drag or resize
  esc               cancel the drag or resize
  d                 remove the selected item
  q                 save and quit
  ctrl+c            quit without saving`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			st, err := c.load(ctx, s)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(newEditorModel(c.reducer(), c.profile, st), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			m := final.(editorModel)
			if !m.save || !m.dirty {
				printInfo("No changes saved")
				return nil
			}

			out := c.reducer().Reduce(m.state, dashboard.SetEditMode{On: false})
			if err := s.Save(ctx, c.profile, &out); err != nil {
				return err
			}
			printSuccess("Saved %s", StyleHighlight.Render(c.profile))
			return nil
		},
	}
}

// =============================================================================
// editorModel - Interactive layout editor
// =============================================================================

// editorModel drives the dashboard reducer from key presses. The state is
// in edit mode for the lifetime of the model.
type editorModel struct {
	reducer *dashboard.Reducer
	profile string
	state   dashboard.State

	// selected is the id of the highlighted item.
	selected string
	status   string
	err      error

	// dirty is set once a change has been committed.
	dirty bool
	// save is set when the user quit with q.
	save bool
}

func newEditorModel(r *dashboard.Reducer, profile string, st dashboard.State) editorModel {
	m := editorModel{
		reducer: r,
		profile: profile,
		state:   r.Reduce(st, dashboard.SetEditMode{On: true}),
	}
	if len(m.state.Layout) > 0 {
		m.selected = m.state.Layout[0].ID
	}
	return m
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch key.String() {
	case "ctrl+c":
		m.save = false
		return m, tea.Quit
	case "q":
		if m.state.Interaction != nil {
			m.apply(dashboard.CancelInteraction{})
		}
		m.save = true
		return m, tea.Quit
	case "tab":
		m.cycle(1)
	case "shift+tab":
		m.cycle(-1)
	case "up", "k":
		m.drag(0, -1)
	case "down", "j":
		m.drag(0, 1)
	case "left", "h":
		m.drag(-1, 0)
	case "right", "l":
		m.drag(1, 0)
	case "shift+up", "K":
		m.resize(0, -1)
	case "shift+down", "J":
		m.resize(0, 1)
	case "shift+left", "H":
		m.resize(-1, 0)
	case "shift+right", "L":
		m.resize(1, 0)
	case "enter":
		m.commit()
	case "esc":
		if m.state.Interaction != nil {
			m.apply(dashboard.CancelInteraction{})
			m.status = "cancelled"
		}
	case "d", "delete":
		m.remove()
	}
	return m, nil
}

// apply runs a through the reducer, keeping the previous state on error.
func (m *editorModel) apply(a dashboard.Action) bool {
	next, err := m.reducer.Apply(m.state, a)
	if err != nil {
		m.err = err
		return false
	}
	m.state = next
	return true
}

func (m *editorModel) cycle(step int) {
	if m.state.Interaction != nil {
		m.status = "press enter or esc to finish first"
		return
	}
	l := m.state.Layout
	if len(l) == 0 {
		return
	}
	i := l.Index(m.selected)
	if i < 0 {
		i = 0
	} else {
		i = (i + step + len(l)) % len(l)
	}
	m.selected = l[i].ID
	m.status = ""
}

// current returns the selected item as currently displayed.
func (m *editorModel) current() (grid.Item, bool) {
	return m.state.DisplayLayout().Find(m.selected)
}

// begin opens an interaction of kind on the selected item unless one is
// already open.
func (m *editorModel) begin(kind dashboard.InteractionKind) bool {
	if in := m.state.Interaction; in != nil {
		if in.Kind != kind {
			m.status = fmt.Sprintf("press enter to finish the %s first", in.Kind)
			return false
		}
		return true
	}
	if m.selected == "" {
		return false
	}
	var a dashboard.Action = dashboard.BeginDrag{ID: m.selected}
	if kind == dashboard.Resize {
		a = dashboard.BeginResize{ID: m.selected}
	}
	return m.apply(a)
}

func (m *editorModel) drag(dx, dy int) {
	if !m.begin(dashboard.Drag) {
		return
	}
	it, ok := m.current()
	if !ok {
		return
	}
	if m.apply(dashboard.DragTo{X: it.X + dx, Y: it.Y + dy}) {
		m.status = m.state.Interaction.Outcome.String()
	}
}

func (m *editorModel) resize(dw, dh int) {
	if !m.begin(dashboard.Resize) {
		return
	}
	it, ok := m.current()
	if !ok {
		return
	}
	w, h := max(it.W+dw, 1), max(it.H+dh, 1)
	if m.apply(dashboard.ResizeTo{W: w, H: h}) {
		m.status = m.state.Interaction.Outcome.String()
	}
}

func (m *editorModel) commit() {
	in := m.state.Interaction
	if in == nil {
		return
	}
	var a dashboard.Action = dashboard.EndDrag{}
	if in.Kind == dashboard.Resize {
		a = dashboard.EndResize{}
	}
	if in.Proposal != nil && m.apply(a) {
		m.dirty = true
		m.status = "committed"
		return
	}
	m.apply(dashboard.CancelInteraction{})
	m.status = ""
}

func (m *editorModel) remove() {
	if m.state.Interaction != nil || m.selected == "" {
		return
	}
	id := m.selected
	var a dashboard.Action = dashboard.RemoveWidget{ID: id}
	if dashboard.IsShortcut(id) {
		a = dashboard.RemoveShortcut{ID: id}
	}
	label := m.state.Label(id)
	i := m.state.Layout.Index(id)
	if !m.apply(a) {
		return
	}
	m.dirty = true
	m.status = "removed " + label
	m.selected = ""
	if n := len(m.state.Layout); n > 0 {
		m.selected = m.state.Layout[min(i, n-1)].ID
	}
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edit " + m.profile))
	b.WriteString("\n")
	b.WriteString(editorHelpStyle.Render("tab select  ←↑↓→ move  shift+←↑↓→ resize  ⏎ commit  esc cancel  d remove  q save"))
	b.WriteString("\n\n")

	l := m.state.DisplayLayout()
	b.WriteString(renderGrid(l, m.state.Grid, m.selected))
	b.WriteString("\n")

	if it, ok := m.current(); ok {
		line := fmt.Sprintf("%s  (%d,%d) %d×%d", m.state.Label(it.ID), it.X, it.Y, it.W, it.H)
		if in := m.state.Interaction; in != nil {
			line += "  " + StyleWarning.Render(in.Kind.String())
		}
		b.WriteString(editorStatusStyle.Render(line))
	} else {
		b.WriteString(editorStatusStyle.Render("empty dashboard"))
	}
	if m.status != "" {
		b.WriteString(editorHelpStyle.Render("  · " + m.status))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(editorErrorStyle.Render(errors.UserMessage(m.err)))
	}
	b.WriteString("\n")

	return b.String()
}
