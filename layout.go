package pickergrid

import (
	"math"
	"strconv"
)

// GridGeometry is the resolved column layout of one grid.
type GridGeometry struct {
	ItemsPerRow int
	CellSize    float64
	HSpacing    float64
	VSpacing    float64
	// LeftInset is the X of the first column, host insets included.
	LeftInset float64
}

// rowStride is the vertical distance between the tops of two rows.
func (g GridGeometry) rowStride() float64 {
	return g.CellSize + g.VSpacing
}

// computeGrid resolves the column count, cell size and spacing for a grid of
// the given width.
//
//	itemsPerRow = max(minItemsPerRow, floor((avail + minSpacing) / (native + minSpacing)))
//	cellSize    = native, or floor((avail - minSpacing*(ipr-1)) / ipr) when
//	              ipr native cells overflow avail
//	hSpacing    = (avail - ipr*cellSize) / (ipr-1)
func computeGrid(width float64, insets Insets, m GridMetrics) GridGeometry {
	minPerRow := m.MinItemsPerRow
	if minPerRow < 1 {
		minPerRow = 1
	}
	native := m.NativeCellSize
	if native < 1 {
		native = 1
	}
	minSpacing := math.Max(0, m.MinSpacing)

	avail := width - insets.Left - insets.Right - 2*m.SideInset
	if avail < 0 {
		avail = 0
	}

	perRow := int(math.Floor((avail + minSpacing) / (native + minSpacing)))
	if perRow < minPerRow {
		perRow = minPerRow
	}

	cell := native
	if float64(perRow)*native > avail {
		cell = math.Min(native, math.Floor((avail-minSpacing*float64(perRow-1))/float64(perRow)))
		if cell < 1 {
			cell = 1
		}
	}

	var hSpacing float64
	if perRow > 1 {
		hSpacing = (avail - float64(perRow)*cell) / float64(perRow-1)
		if hSpacing < 0 {
			hSpacing = 0
		}
	}
	used := float64(perRow)*cell + float64(perRow-1)*hSpacing

	vSpacing := m.VerticalSpacing
	if vSpacing <= 0 {
		vSpacing = hSpacing
	}

	return GridGeometry{
		ItemsPerRow: perRow,
		CellSize:    cell,
		HSpacing:    hSpacing,
		VSpacing:    vSpacing,
		LeftInset:   insets.Left + m.SideInset + (avail-used)/2,
	}
}

// CollapseLabel marks the synthetic "+N" cell of a collapsed group.
type CollapseLabel struct {
	Index  int    // cell index of the label
	Hidden int    // number of items not laid out
	Label  string // "+{Hidden}"
}

// GroupGeometry is the laid-out geometry of one group.
type GroupGeometry struct {
	Index        int
	GroupID      GroupID
	SupergroupID GroupID

	OriginY      float64
	HeaderHeight float64
	Height       float64 // header plus grid
	Spacing      float64 // gap below the group

	Grid GridGeometry

	// ItemCount is the number of real items laid out. It is lower than
	// TotalItemCount when the group is collapsed.
	ItemCount      int
	TotalItemCount int
	Collapse       *CollapseLabel

	// PlaceholderCount loading cells follow the real items.
	PlaceholderCount int

	Rows     int
	Embedded bool
}

// CellCount is the number of grid cells: items, the collapse label and
// placeholders.
func (g *GroupGeometry) CellCount() int {
	n := g.ItemCount + g.PlaceholderCount
	if g.Collapse != nil {
		n++
	}
	return n
}

// GridOriginY is the Y of the first row.
func (g *GroupGeometry) GridOriginY() float64 {
	return g.OriginY + g.HeaderHeight
}

// Span is the vertical extent of the group, header included.
func (g *GroupGeometry) Span() Rect {
	return Rect{X: 0, Y: g.OriginY, Width: math.Inf(1), Height: g.Height}
}

// CellFrame returns the frame of the cell at index. O(1).
func (g *GroupGeometry) CellFrame(index int) Rect {
	perRow := g.Grid.ItemsPerRow
	row := index / perRow
	col := index % perRow
	return Rect{
		X:      g.Grid.LeftInset + float64(col)*(g.Grid.CellSize+g.Grid.HSpacing),
		Y:      g.GridOriginY() + float64(row)*g.Grid.rowStride(),
		Width:  g.Grid.CellSize,
		Height: g.Grid.CellSize,
	}
}

// ItemLayout is the immutable geometry model produced by ComputeLayout.
type ItemLayout struct {
	Width          float64
	ViewportHeight float64
	Insets         Insets
	Grid           GridGeometry // global metrics before per-group overrides
	Groups         []GroupGeometry
	ContentHeight  float64

	source []ItemGroup
}

// LayoutParams are the non-group inputs of ComputeLayout.
type LayoutParams struct {
	Width          float64
	ViewportHeight float64
	Insets         Insets
	Metrics        Metrics
	Expanded       GroupSet
	// Override replaces Metrics.Grid for every group that does not carry
	// its own override.
	Override *GridMetrics
}

// ComputeLayout turns groups into cell geometry. It is a pure function of its
// inputs: identical inputs give identical layouts.
func ComputeLayout(groups []ItemGroup, p LayoutParams) *ItemLayout {
	gridMetrics := p.Metrics.Grid
	if p.Override != nil {
		gridMetrics = *p.Override
	}
	global := computeGrid(p.Width, p.Insets, gridMetrics)

	l := &ItemLayout{
		Width:          p.Width,
		ViewportHeight: p.ViewportHeight,
		Insets:         p.Insets,
		Grid:           global,
		Groups:         make([]GroupGeometry, len(groups)),
		source:         groups,
	}

	y := p.Insets.Top
	lastVisible := -1
	for i := range groups {
		group := &groups[i]
		geo := &l.Groups[i]
		*geo = GroupGeometry{
			Index:          i,
			GroupID:        group.ID,
			SupergroupID:   group.Supergroup(),
			TotalItemCount: len(group.Items),
			Embedded:       group.IsEmbedded,
			Grid:           global,
		}
		if group.LayoutOverride != nil {
			geo.Grid = computeGrid(p.Width, p.Insets, *group.LayoutOverride)
		}

		if group.IsEmbedded {
			geo.HeaderHeight = p.Metrics.EmbeddedHeight
			geo.Height = geo.HeaderHeight
		} else {
			if group.hasHeader() {
				geo.HeaderHeight = p.Metrics.HeaderHeight
			}
			layoutGroupCells(geo, group, p)
			geo.Height = geo.HeaderHeight + gridHeight(geo.Grid, geo.Rows)
		}

		if group.IsFeatured {
			geo.Spacing = p.Metrics.FeaturedGroupSpacing
		} else {
			geo.Spacing = p.Metrics.GroupSpacing
		}

		if geo.Height > 0 && lastVisible >= 0 {
			y += l.Groups[lastVisible].Spacing
		}
		geo.OriginY = y
		y += geo.Height
		if geo.Height > 0 {
			lastVisible = i
		}
	}
	l.ContentHeight = y + p.Insets.Bottom
	return l
}

// layoutGroupCells applies the collapse and placeholder rules.
func layoutGroupCells(geo *GroupGeometry, group *ItemGroup, p LayoutParams) {
	perRow := geo.Grid.ItemsPerRow
	n := len(group.Items)
	geo.ItemCount = n

	if group.CollapsedLineCount != nil && !p.Expanded.Has(group.ID) {
		lines := *group.CollapsedLineCount
		if lines < 1 {
			lines = 1
		}
		if ceilDiv(n, perRow) > lines {
			visible := perRow*lines - 1
			geo.ItemCount = visible
			geo.Collapse = &CollapseLabel{
				Index:  visible,
				Hidden: n - visible,
				Label:  "+" + strconv.Itoa(n-visible),
			}
		}
	}

	if group.FillWithLoadingPlaceholders {
		rowsFit := 1
		if stride := geo.Grid.rowStride(); p.ViewportHeight > 0 && stride > 0 {
			rowsFit = int(math.Floor((p.ViewportHeight + geo.Grid.VSpacing) / stride))
			if rowsFit < 1 {
				rowsFit = 1
			}
		}
		geo.PlaceholderCount = perRow * rowsFit
	}

	geo.Rows = ceilDiv(geo.CellCount(), perRow)
}

func gridHeight(g GridGeometry, rows int) float64 {
	if rows <= 0 {
		return 0
	}
	return float64(rows)*g.CellSize + float64(rows-1)*g.VSpacing
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Frame returns the frame of cell itemIndex in group groupIndex. It depends
// on the layout only. Out-of-range indices return the zero Rect.
func (l *ItemLayout) Frame(groupIndex, itemIndex int) Rect {
	if groupIndex < 0 || groupIndex >= len(l.Groups) || itemIndex < 0 {
		return Rect{}
	}
	return l.Groups[groupIndex].CellFrame(itemIndex)
}

// HeaderFrame returns the frame of a group's title row.
func (l *ItemLayout) HeaderFrame(groupIndex int) Rect {
	if groupIndex < 0 || groupIndex >= len(l.Groups) {
		return Rect{}
	}
	g := &l.Groups[groupIndex]
	return Rect{X: l.Insets.Left, Y: g.OriginY, Width: l.Width - l.Insets.Left - l.Insets.Right, Height: g.HeaderHeight}
}

// Source returns the groups the layout was computed from. The returned slice
// MUST NOT be mutated.
func (l *ItemLayout) Source() []ItemGroup {
	return l.source
}

// GroupIndex returns the index of the group with the given id, or -1.
func (l *ItemLayout) GroupIndex(id GroupID) int {
	for i := range l.Groups {
		if l.Groups[i].GroupID == id {
			return i
		}
	}
	return -1
}

// SupergroupIndex returns the index of the first group targeted by the given
// supergroup id, or -1.
func (l *ItemLayout) SupergroupIndex(id GroupID) int {
	for i := range l.Groups {
		if l.Groups[i].SupergroupID == id {
			return i
		}
	}
	return -1
}

// KeyAt returns the key of a cell.
func (l *ItemLayout) KeyAt(groupIndex, cellIndex int) ItemKey {
	g := &l.Groups[groupIndex]
	switch {
	case cellIndex < g.ItemCount:
		return ItemKeyFor(g.GroupID, l.source[groupIndex].Items[cellIndex].ContentID)
	case g.Collapse != nil && cellIndex == g.Collapse.Index:
		return CollapseLabelKey(g.GroupID)
	default:
		first := g.ItemCount
		if g.Collapse != nil {
			first++
		}
		return PlaceholderKey(g.GroupID, cellIndex-first)
	}
}

// ItemAt returns the item behind a cell. ok is false for pseudo-cells.
func (l *ItemLayout) ItemAt(groupIndex, cellIndex int) (Item, bool) {
	g := &l.Groups[groupIndex]
	if cellIndex < 0 || cellIndex >= g.ItemCount {
		return Item{}, false
	}
	return l.source[groupIndex].Items[cellIndex], true
}

// SubgroupRowY returns the Y of the row holding the first laid-out item
// tagged with subgroup. ok is false when no such item is laid out.
func (l *ItemLayout) SubgroupRowY(groupIndex int, subgroup string) (float64, bool) {
	g := &l.Groups[groupIndex]
	items := l.source[groupIndex].Items
	for i := 0; i < g.ItemCount; i++ {
		if items[i].Subgroup == subgroup {
			return g.CellFrame(i).Y, true
		}
	}
	return 0, false
}
