package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echotab/echotab/pkg/dashboard"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the dashboard grid and list its items",
		Example: `  echotab show
  echotab show --profile work --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.view(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeState(st)
			}
			printState(c.profile, st)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored profile as JSON")

	return cmd
}

func writeState(st dashboard.State) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// printState draws the grid and the item table for one profile.
func printState(profile string, st dashboard.State) {
	l := st.DisplayLayout()

	fmt.Fprintln(stdout, StyleTitle.Render(profile)+" "+StyleDim.Render(fmt.Sprintf("%d columns", st.Grid.Cols)))
	fmt.Fprintln(stdout, renderGrid(l, st.Grid, ""))
	printSummary(len(st.Shortcuts), len(st.Widgets), l.Bottom(), st.Interaction != nil)

	if len(l) == 0 {
		printNewline()
		printNextStep("Add a shortcut", "echotab add shortcut <title> <url>")
		printNextStep("Add a widget", "echotab add widget clock")
		return
	}
	fmt.Fprintln(stdout, renderItems(st, l, ""))
}
