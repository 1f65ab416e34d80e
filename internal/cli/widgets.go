package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/echotab/echotab/pkg/config"
	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/store"
	"github.com/echotab/echotab/pkg/widget"
)

// widgetsCommand creates the widgets command.
func (c *CLI) widgetsCommand() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "widgets",
		Short: "List the widget catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := c.registry()
			manifests := reg.All()
			if tag != "" {
				manifests = reg.SearchByTag(tag)
			}
			if len(manifests) == 0 {
				printInfo("No widgets tagged %q", tag)
				return nil
			}
			fmt.Fprintln(stdout, renderManifests(manifests))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only list widgets with this tag")

	return cmd
}

func renderManifests(manifests []widget.Manifest) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(manifests))
	for _, m := range manifests {
		d := m.Size()
		rows = append(rows, []string{
			m.ID,
			m.Name,
			fmt.Sprintf("%d×%d", d.W, d.H),
			fmt.Sprintf("%d×%d", m.MinSize.W, m.MinSize.H),
			fmt.Sprintf("%d×%d", m.MaxSize.W, m.MaxSize.H),
			strings.Join(m.Tags, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Name", "Default", "Min", "Max", "Tags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			case col == 5:
				return StyleDim.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return t.Render()
}

// profilesCommand lists the profiles of the file backend.
func (c *CLI) profilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List saved profiles (file backend)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if b := c.cfg.Store.Backend; b != "" && b != config.BackendFile {
				return errors.New(errors.ErrCodeUnsupported, "listing profiles needs the file backend, not %s", b)
			}
			dir, err := c.cfg.ProfileDir()
			if err != nil {
				return err
			}
			fs, err := store.NewFileStore(dir)
			if err != nil {
				return err
			}
			names, err := fs.Profiles()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("No saved profiles")
				printDetail("Directory: %s", fs.Path())
				return nil
			}
			for _, name := range names {
				if name == c.profile {
					fmt.Fprintln(stdout, StyleHighlight.Render(name)+" "+StyleDim.Render("(active)"))
					continue
				}
				fmt.Fprintln(stdout, name)
			}
			return nil
		},
	}
}
