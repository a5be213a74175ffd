package pickergrid

import (
	"math/rand"
	"testing"
)

func coverageLayout() *ItemLayout {
	groups := []ItemGroup{
		makeGroup("recent", 40),
		makeGroup("smileys", 77),
		makeGroup("strip", 12),
		makeGroup("animals", 5),
		makeGroup("stickers", 19),
	}
	groups[0].CollapsedLineCount = Lines(2)
	groups[1].Title = "Smileys"
	groups[2].IsEmbedded = true
	groups[3].Title = "Animals"
	groups[3].FillWithLoadingPlaceholders = true
	groups[4].LayoutOverride = &GridMetrics{NativeCellSize: 72, MinSpacing: 8, MinItemsPerRow: 4, VerticalSpacing: 10}
	p := testParams()
	p.Insets = Insets{Top: 8, Bottom: 8}
	return ComputeLayout(groups, p)
}

type cellRef struct{ group, cell int }

func TestVisibleItemsCoverage(t *testing.T) {
	l := coverageLayout()
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 500; iter++ {
		rect := Rect{
			X:      0,
			Y:      rng.Float64()*l.ContentHeight - 50,
			Width:  l.Width,
			Height: rng.Float64() * 300,
		}
		reported := make(map[cellRef]bool)
		for _, vg := range VisibleItems(l, rect) {
			for ci := vg.Range.Start; ci < vg.Range.End; ci++ {
				reported[cellRef{vg.GroupIndex, ci}] = true
			}
		}

		for gi := range l.Groups {
			geo := &l.Groups[gi]
			margin := float64(RowBoundaryMargin) * geo.Grid.rowStride()
			for ci := 0; ci < geo.CellCount(); ci++ {
				f := l.Frame(gi, ci)
				ref := cellRef{gi, ci}
				if f.Intersects(rect) && !reported[ref] {
					t.Fatalf("rect %+v: cell %d/%d intersects but was not reported", rect, gi, ci)
				}
				if reported[ref] && (f.MaxY()+margin <= rect.MinY() || f.MinY()-margin >= rect.MaxY()) {
					t.Fatalf("rect %+v: cell %d/%d reported beyond the row margin", rect, gi, ci)
				}
			}
		}
	}
}

func TestVisibleItemsEmptyRect(t *testing.T) {
	l := coverageLayout()
	if got := VisibleItems(l, Rect{Width: 344}); len(got) != 0 {
		t.Errorf("zero-height rect returned %v", got)
	}
	if got := VisibleItems(l, Rect{Y: l.ContentHeight + 10, Width: 344, Height: 100}); len(got) != 0 {
		t.Errorf("rect below content returned %v", got)
	}
}

func TestVisibleItemsHeaderOnly(t *testing.T) {
	l := coverageLayout()
	geo := l.Groups[1]
	rect := Rect{Y: geo.OriginY + 1, Width: 344, Height: geo.HeaderHeight - 2}

	got := VisibleItems(l, rect)
	if len(got) != 1 || got[0].GroupIndex != 1 {
		t.Fatalf("got %+v, want group 1 only", got)
	}
	if !got[0].Range.Empty() {
		t.Errorf("header-only intersection returned range %+v", got[0].Range)
	}
}

func TestVisibleItemsRangeFromRows(t *testing.T) {
	l := ComputeLayout([]ItemGroup{makeGroup("a", 80)}, testParams())
	stride := l.Groups[0].Grid.rowStride()

	// Rect strictly inside row 3.
	rect := Rect{Y: 3*stride + 5, Width: 344, Height: 10}
	got := VisibleItems(l, rect)
	if len(got) != 1 {
		t.Fatalf("got %+v", got)
	}
	r := got[0].Range
	if r.Start > 24 || r.End < 32 {
		t.Errorf("range %+v does not cover row 3 [24, 32)", r)
	}
	if r.Start < 16 || r.End > 40 {
		t.Errorf("range %+v exceeds one row of margin", r)
	}
	if r.Len() != r.End-r.Start {
		t.Errorf("Len = %d", r.Len())
	}
}

func TestVisibleItemsStopsAfterRect(t *testing.T) {
	groups := make([]ItemGroup, 50)
	for i := range groups {
		groups[i] = makeGroup(string(rune('a'+i%26))+string(rune('a'+i/26)), 16)
	}
	l := ComputeLayout(groups, testParams())

	got := VisibleItems(l, Rect{Width: 344, Height: 100})
	for _, vg := range got {
		if l.Groups[vg.GroupIndex].OriginY >= 100 {
			t.Errorf("group %d starts below the rect", vg.GroupIndex)
		}
	}
	if len(got) == 0 || got[0].GroupIndex != 0 {
		t.Errorf("got %+v, want group 0 first", got)
	}
}

func TestTopVisibleGroup(t *testing.T) {
	l := coverageLayout()

	if gi := TopVisibleGroup(l, Rect{Width: 344, Height: 100}); gi != 0 {
		t.Errorf("top at 0 = %d, want 0", gi)
	}
	g3 := l.Groups[3]
	if gi := TopVisibleGroup(l, Rect{Y: g3.OriginY, Width: 344, Height: 100}); gi != 3 {
		t.Errorf("top at group 3 origin = %d, want 3", gi)
	}
	if gi := TopVisibleGroup(l, Rect{Y: l.ContentHeight + 1, Width: 344, Height: 100}); gi != -1 {
		t.Errorf("top below content = %d, want -1", gi)
	}
}
