package pickergrid

import "math"

// RowBoundaryMargin is the number of extra rows VisibleItems may report on
// each side of a query rectangle. Queries are row-granular and biased by one
// row spacing, so a row whose frame only touches the rectangle, or sits in
// the spacing gap next to it, can be reported. Columns are never filtered:
// every cell of a reported row is returned.
const RowBoundaryMargin = 1

// IndexRange is the half-open cell range [Start, End).
type IndexRange struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r IndexRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range holds no indices.
func (r IndexRange) Empty() bool {
	return r.End <= r.Start
}

// VisibleGroup is one entry of a VisibleItems result. An empty Range means the
// group only intersects through its header or the gap below its grid.
type VisibleGroup struct {
	GroupIndex int
	Range      IndexRange
}

// VisibleItems returns the groups whose vertical span intersects rect and,
// per group, the cell range of the rows inside rect. O(groups), with O(1)
// work per intersecting group.
func VisibleItems(layout *ItemLayout, rect Rect) []VisibleGroup {
	return appendVisibleItems(nil, layout, rect)
}

// appendVisibleItems is VisibleItems writing into a caller-owned buffer.
func appendVisibleItems(dst []VisibleGroup, layout *ItemLayout, rect Rect) []VisibleGroup {
	if rect.Height <= 0 {
		return dst
	}
	minY, maxY := rect.MinY(), rect.MaxY()
	for i := range layout.Groups {
		g := &layout.Groups[i]
		if g.Height <= 0 {
			continue
		}
		if g.OriginY >= maxY {
			break
		}
		if g.OriginY+g.Height <= minY {
			continue
		}
		dst = append(dst, VisibleGroup{GroupIndex: i, Range: rowRange(g, minY, maxY)})
	}
	return dst
}

// rowRange maps [minY, maxY) into the group's grid and returns the covered
// cell range.
func rowRange(g *GroupGeometry, minY, maxY float64) IndexRange {
	cells := g.CellCount()
	if cells == 0 || g.Rows == 0 {
		return IndexRange{}
	}
	localMin := minY - g.GridOriginY()
	localMax := maxY - g.GridOriginY()
	if localMax <= 0 {
		return IndexRange{}
	}

	stride := g.Grid.rowStride()
	vs := g.Grid.VSpacing
	minRow := int(math.Floor((localMin - vs) / stride))
	maxRow := int(math.Ceil((localMax - vs) / stride))
	if minRow < 0 {
		minRow = 0
	}
	lastRow := g.Rows - 1
	if maxRow > lastRow {
		maxRow = lastRow
	}
	if minRow > lastRow || maxRow < minRow {
		return IndexRange{}
	}

	perRow := g.Grid.ItemsPerRow
	end := (maxRow + 1) * perRow
	if end > cells {
		end = cells
	}
	return IndexRange{Start: minRow * perRow, End: end}
}

// TopVisibleGroup returns the index of the first group in rect that has at
// least one visible cell or a visible header, or -1.
func TopVisibleGroup(layout *ItemLayout, rect Rect) int {
	for _, vg := range appendVisibleItems(nil, layout, rect) {
		g := &layout.Groups[vg.GroupIndex]
		if !vg.Range.Empty() || g.HeaderHeight > 0 && g.OriginY+g.HeaderHeight > rect.MinY() {
			return vg.GroupIndex
		}
	}
	return -1
}
