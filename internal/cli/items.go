package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
)

// =============================================================================
// add
// =============================================================================

// addCommand creates the add command group.
func (c *CLI) addCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a shortcut or widget to the dashboard",
	}

	cmd.AddCommand(c.addShortcutCommand())
	cmd.AddCommand(c.addWidgetCommand())

	return cmd
}

func (c *CLI) addShortcutCommand() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:     "shortcut <title> <url>",
		Short:   "Add a 1×1 shortcut tile",
		Example: `  echotab add shortcut "Go" https://go.dev`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.update(cmd.Context(), dashboard.AddShortcut{Title: args[0], URL: args[1], Icon: icon})
			if err != nil {
				return err
			}
			printAdded(st)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "icon URL or emoji")

	return cmd
}

func (c *CLI) addWidgetCommand() *cobra.Command {
	var (
		w, h int
		sets []string
	)

	cmd := &cobra.Command{
		Use:   "widget <type>",
		Short: "Add a widget from the catalogue",
		Long: `Add a widget from the catalogue. The size defaults to the widget's
default size and is clamped to its limits; see "echotab widgets".`,
		Example: `  echotab add widget clock
  echotab add widget note --w 6 --h 4 --set content="# Today"`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeWidgetTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseSettings(sets)
			if err != nil {
				return err
			}
			st, err := c.update(cmd.Context(), dashboard.AddWidget{Type: args[0], Config: cfg, W: w, H: h})
			if err != nil {
				return err
			}
			printAdded(st)
			return nil
		},
	}

	cmd.Flags().IntVar(&w, "w", 0, "width in cells (default from the widget)")
	cmd.Flags().IntVar(&h, "h", 0, "height in cells (default from the widget)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "widget setting as key=value (repeatable)")

	return cmd
}

// printAdded reports the item appended last to the layout.
func printAdded(st dashboard.State) {
	it := st.Layout[len(st.Layout)-1]
	printSuccess("Added %s", StyleHighlight.Render(it.ID))
	printDetail("%s at (%d,%d) size %d×%d", st.Label(it.ID), it.X, it.Y, it.W, it.H)
}

// =============================================================================
// update
// =============================================================================

func (c *CLI) updateCommand() *cobra.Command {
	var (
		title, url, icon string
		sets             []string
	)

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Change a shortcut's title, URL or icon, or a widget's settings",
		Example: `  echotab update shortcut-1718000000000 --title "Go docs"
  echotab update clock-5f0c... --set format24h=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var a dashboard.Action
			if dashboard.IsShortcut(id) {
				if len(sets) > 0 {
					return errors.New(errors.ErrCodeInvalidInput, "--set applies to widgets only")
				}
				a = dashboard.UpdateShortcut{ID: id, Title: title, URL: url, Icon: icon}
			} else {
				if title != "" || url != "" || icon != "" {
					return errors.New(errors.ErrCodeInvalidInput, "--title, --url and --icon apply to shortcuts only")
				}
				cfg, err := parseSettings(sets)
				if err != nil {
					return err
				}
				a = dashboard.UpdateWidget{ID: id, Config: cfg}
			}

			st, err := c.update(cmd.Context(), a)
			if err != nil {
				return err
			}
			printSuccess("Updated %s", StyleHighlight.Render(st.Label(id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new shortcut title")
	cmd.Flags().StringVar(&url, "url", "", "new shortcut URL")
	cmd.Flags().StringVar(&icon, "icon", "", "new shortcut icon")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "widget setting as key=value (repeatable)")

	return cmd
}

// parseSettings turns key=value pairs into a widget config. Values are read
// as JSON when they parse, as plain strings otherwise.
func parseSettings(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	cfg := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, raw, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "setting %q is not key=value", p)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		cfg[key] = v
	}
	return cfg, nil
}

// =============================================================================
// remove
// =============================================================================

func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <item-id>",
		Aliases:           []string{"rm"},
		Short:             "Remove a shortcut or widget",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeItemIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			var a dashboard.Action = dashboard.RemoveWidget{ID: id}
			if dashboard.IsShortcut(id) {
				a = dashboard.RemoveShortcut{ID: id}
			}
			if _, err := c.update(cmd.Context(), a); err != nil {
				return err
			}
			printSuccess("Removed %s", StyleHighlight.Render(id))
			return nil
		},
	}
}

// =============================================================================
// move / resize
// =============================================================================

func (c *CLI) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <item-id> <x> <y>",
		Short: "Move an item, swapping or pushing whatever is in the way",
		Long: `Move an item to column x, row y. The position is clamped to the grid.
A single same-size item at the target trades places with the mover; any
other overlapped items are pushed to the nearest free slots.`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: c.completeItemIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseCells(args[1], args[2])
			if err != nil {
				return err
			}
			return c.rearrange(cmd, args[0], dashboard.MoveItem{ID: args[0], X: x, Y: y})
		},
	}
}

func (c *CLI) resizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resize <item-id> <w> <h>",
		Short: "Resize an item",
		Long: `Resize an item to w×h cells. Widgets are clamped to their size limits
and every item to the columns right of it. Neighbours are not moved.`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: c.completeItemIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := parseCells(args[1], args[2])
			if err != nil {
				return err
			}
			return c.rearrange(cmd, args[0], dashboard.ResizeItem{ID: args[0], W: w, H: h})
		},
	}
}

// rearrange applies a move or resize and reports every item that changed.
func (c *CLI) rearrange(cmd *cobra.Command, id string, a dashboard.Action) error {
	before, err := c.view(cmd.Context())
	if err != nil {
		return err
	}
	after, err := c.update(cmd.Context(), a)
	if err != nil {
		return err
	}

	it, _ := after.Layout.Find(id)
	printSuccess("%s at (%d,%d) size %d×%d", StyleHighlight.Render(after.Label(id)), it.X, it.Y, it.W, it.H)
	for _, moved := range changed(before.Layout, after.Layout) {
		if moved.ID == id {
			continue
		}
		printDetail("%s %s (%d,%d)", after.Label(moved.ID), iconArrow, moved.X, moved.Y)
	}
	return nil
}

// changed returns the items of after whose geometry differs from before.
func changed(before, after grid.Layout) []grid.Item {
	var out []grid.Item
	for _, it := range after {
		if old, ok := before.Find(it.ID); !ok || old != it {
			out = append(out, it)
		}
	}
	return out
}

func parseCells(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "%q is not a cell count", a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "%q is not a cell count", b)
	}
	return x, y, nil
}

// =============================================================================
// grid
// =============================================================================

func (c *CLI) gridCommand() *cobra.Command {
	var (
		cols, rows, cellSize, gap int
		position                  string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Change the grid of the profile",
		Long: `Change the column count and cell geometry of the profile. Items are
left where they are; run "echotab validate" after shrinking the grid.`,
		Example: `  echotab grid --cols 16
  echotab grid --position lt --gap 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.view(cmd.Context())
			if err != nil {
				return err
			}

			g := st.Grid
			flags := cmd.Flags()
			if flags.Changed("cols") {
				g.Cols = cols
			}
			if flags.Changed("rows") {
				g.Rows = rows
			}
			if flags.Changed("cell-size") {
				g.CellSize = cellSize
			}
			if flags.Changed("gap") {
				g.Gap = gap
			}
			if flags.Changed("position") {
				if !grid.ValidPositions[position] {
					return errors.New(errors.ErrCodeInvalidInput, "unknown position %q", position)
				}
				g.Position = position
			}

			st, err = c.update(cmd.Context(), dashboard.SetGridConfig{Config: g})
			if err != nil {
				return err
			}

			width, height := st.Grid.PixelSize()
			printSuccess("Grid is %d×%d cells", st.Grid.Cols, st.Grid.Rows)
			printDetail("%d×%d px, position %s", width, height, st.Grid.Position)
			for _, v := range grid.Check(st.Layout, st.Grid.Cols) {
				printWarning("%s", v)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 0, "number of columns")
	cmd.Flags().IntVar(&rows, "rows", 0, "visible rows")
	cmd.Flags().IntVar(&cellSize, "cell-size", 0, "cell size in pixels")
	cmd.Flags().IntVar(&gap, "gap", 0, "gap between cells in pixels")
	cmd.Flags().StringVar(&position, "position", "", "alignment anchor (lt, t, rt, l, c, r, lb, b, rb)")

	return cmd
}

// =============================================================================
// Completion helpers
// =============================================================================

func (c *CLI) completeWidgetTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, m := range c.registry().All() {
		out = append(out, fmt.Sprintf("%s\t%s", m.ID, m.Description))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func (c *CLI) completeItemIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	st, err := c.view(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, it := range st.Layout {
		out = append(out, fmt.Sprintf("%s\t%s", it.ID, st.Label(it.ID)))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
