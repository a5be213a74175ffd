package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/pickergrid"
)

// Cell glyphs used by Viewport.
const (
	glyphMissing = "·"
	glyphLoading = "░"
	glyphLoaded  = "■"
	glyphFailed  = "x"
	glyphLabel   = "+"
)

// Viewport renders the cells the grid currently virtualizes as a character
// map: one line per row, one glyph per cell showing its realized state.
func Viewport(g *pickergrid.GridView, th Theme) string {
	l := g.Layout()
	vp := g.Viewport()
	var lines []string
	for _, vg := range g.Visible() {
		geo := &l.Groups[vg.GroupIndex]
		title := string(geo.GroupID)
		if t := l.Source()[vg.GroupIndex].Title; t != "" {
			title = t + " (" + title + ")"
		}
		lines = append(lines, th.Group.Render("── "+title))
		if vg.Range.Empty() {
			continue
		}
		perRow := geo.Grid.ItemsPerRow
		var row strings.Builder
		for ci := vg.Range.Start; ci < vg.Range.End; ci++ {
			n, ok := g.Reconciler().Node(l.KeyAt(vg.GroupIndex, ci))
			row.WriteString(cellGlyph(n, ok, th))
			if (ci+1)%perRow == 0 || ci == vg.Range.End-1 {
				lines = append(lines, row.String())
				row.Reset()
			}
		}
	}

	footer := th.Muted.Render(fmt.Sprintf("scroll %s/%s  live %d  exiting %d  loading %d",
		formatPoints(vp.ScrollY), formatPoints(vp.MaxScroll()),
		g.Reconciler().Len(), len(g.Exiting()), g.Reconciler().Placeholders().Count()))
	if id, ok := g.VisibleTopGroup(); ok {
		footer += th.Muted.Render("  top " + string(id))
	}
	lines = append(lines, "", footer)
	return th.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// cellGlyph returns the glyph for a cell whose node lookup returned (n, ok).
func cellGlyph(n *pickergrid.RealizedNode, ok bool, th Theme) string {
	if !ok {
		return th.Muted.Render(glyphMissing)
	}
	if n.Label != "" {
		return th.Label.Render(glyphLabel)
	}
	switch n.State {
	case pickergrid.ContentLoaded:
		return th.Loaded.Render(glyphLoaded)
	case pickergrid.ContentFailed:
		return th.Failed.Render(glyphFailed)
	case pickergrid.ContentLoading:
		return th.Loading.Render(glyphLoading)
	default:
		return th.Cell.Render(glyphLabel)
	}
}

// Report is Layout followed by Viewport.
func Report(g *pickergrid.GridView, th Theme) string {
	return lipgloss.JoinVertical(lipgloss.Left, Layout(g.Layout(), th), Viewport(g, th))
}
