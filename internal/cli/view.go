package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/grid"
)

// itemKeys label layout items in the grid drawing, in layout order.
const itemKeys = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	cellEmpty    = "·"
	cellOverflow = "#"
)

// Items cycle through these colours by layout index.
var itemColors = []lipgloss.Color{colorCyan, colorGreen, colorYellow, colorBlue, colorRed, colorWhite}

var (
	styleCellEmpty = lipgloss.NewStyle().Foreground(colorDim)
	styleGridFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

func itemKey(i int) string {
	if i < len(itemKeys) {
		return string(itemKeys[i])
	}
	return cellOverflow
}

func itemStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(itemColors[i%len(itemColors)])
}

// renderGrid draws l as a character grid with one key per item. The drawing
// covers at least cfg.Rows rows and grows to fit the layout. The item with
// id selected is drawn in bold.
func renderGrid(l grid.Layout, cfg grid.Config, selected string) string {
	rows := max(cfg.Rows, l.Bottom(), 1)
	cols := max(cfg.Cols, 1)

	cells := make([][]int, rows)
	for y := range cells {
		cells[y] = make([]int, cols)
		for x := range cells[y] {
			cells[y][x] = -1
		}
	}
	for i, it := range l {
		for y := it.Y; y < it.Y+it.H && y < rows; y++ {
			for x := it.X; x < it.X+it.W && x < cols; x++ {
				if y >= 0 && x >= 0 {
					cells[y][x] = i
				}
			}
		}
	}

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteString("\n")
		}
		for x, idx := range row {
			if x > 0 {
				b.WriteString(" ")
			}
			if idx < 0 {
				b.WriteString(styleCellEmpty.Render(cellEmpty))
				continue
			}
			style := itemStyle(idx)
			if l[idx].ID == selected {
				style = style.Bold(true).Underline(true)
			}
			b.WriteString(style.Render(itemKey(idx)))
		}
	}
	return styleGridFrame.Render(b.String())
}

// renderItems lists the items of l with their key, label and geometry.
func renderItems(st dashboard.State, l grid.Layout, selected string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(l))
	for i, it := range l {
		kind := "widget"
		if dashboard.IsShortcut(it.ID) {
			kind = "shortcut"
		}
		rows = append(rows, []string{
			itemKey(i),
			it.ID,
			kind,
			st.Label(it.ID),
			strconv.Itoa(it.X),
			strconv.Itoa(it.Y),
			fmt.Sprintf("%d×%d", it.W, it.H),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Kind", "Label", "X", "Y", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(l) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				base = itemStyle(row).Padding(0, 1)
			}
			if l[row].ID == selected {
				return base.Bold(true)
			}
			if col >= 4 {
				return base.Foreground(colorGray)
			}
			return base
		})

	return t.Render()
}
