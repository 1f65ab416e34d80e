package cli

import (
	"github.com/spf13/cobra"

	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the stored layout for overlaps and out-of-bounds items",
		Long: `Check the stored layout of the profile. Items must have unique ids and a
size of at least 1×1, stay inside the grid columns, and not overlap.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.view(cmd.Context())
			if err != nil {
				return err
			}

			violations := grid.Check(st.Layout, st.Grid.Cols)
			if len(violations) == 0 {
				printSuccess("Layout of %s is valid", StyleHighlight.Render(c.profile))
				printDetail("%d items on %d columns", len(st.Layout), st.Grid.Cols)
				return nil
			}

			for _, v := range violations {
				printError("%s", v)
			}
			printNewline()
			printNextStep("Move an item out of the way", "echotab move <item-id> <x> <y>")
			return errors.New(errors.ErrCodeInvalidLayout, "%d layout problems in %s", len(violations), c.profile)
		},
	}
}
