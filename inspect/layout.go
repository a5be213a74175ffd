package inspect

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/pickergrid"
)

// Layout renders one table row per group of l: origin, height, rows, cell
// count, cell size and collapse label.
func Layout(l *pickergrid.ItemLayout, th Theme) string {
	rows := [][]string{{"#", "group", "y", "height", "rows", "cells", "cell", "collapse"}}
	for i := range l.Groups {
		g := &l.Groups[i]
		collapse := "-"
		if g.Collapse != nil {
			collapse = g.Collapse.Label
		}
		kind := ""
		switch {
		case g.Embedded:
			kind = " (embedded)"
		case g.PlaceholderCount > 0:
			kind = fmt.Sprintf(" (%d loading)", g.PlaceholderCount)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(g.GroupID) + kind,
			formatPoints(g.OriginY),
			formatPoints(g.Height),
			strconv.Itoa(g.Rows),
			strconv.Itoa(g.CellCount()),
			fmt.Sprintf("%s/%d", formatPoints(g.Grid.CellSize), g.Grid.ItemsPerRow),
			collapse,
		})
	}

	title := th.Title.Render(fmt.Sprintf("layout %sx%s", formatPoints(l.Width), formatPoints(l.ContentHeight)))
	grid := th.Muted.Render(fmt.Sprintf("%d per row, cell %s, spacing %s x %s",
		l.Grid.ItemsPerRow, formatPoints(l.Grid.CellSize), formatPoints(l.Grid.HSpacing), formatPoints(l.Grid.VSpacing)))
	return th.Box.Render(lipgloss.JoinVertical(lipgloss.Left, title, grid, "", table(rows, th)))
}

// table lays rows out in left-aligned columns; rows[0] is the header.
func table(rows [][]string, th Theme) string {
	if len(rows) == 0 {
		return ""
	}
	cols := make([]string, len(rows[0]))
	for c := range cols {
		width := 0
		for _, r := range rows {
			if w := lipgloss.Width(r[c]); w > width {
				width = w
			}
		}
		cells := make([]string, len(rows))
		for i, r := range rows {
			st := th.Cell
			if i == 0 {
				st = th.Header
			}
			cells[i] = st.Width(width + 2).Render(r[c])
		}
		cols[c] = lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// formatPoints prints whole points without a fraction.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
