package pickergrid

import (
	"testing"
)

// Default compact metrics at width 400: 8 columns of 40, spacing 8, left
// inset 12, row stride 48, header 26, group spacing 8.
//
//	recent   origin 0    header 26, 1 row (7 items + "+13")
//	smileys  origin 74   header 26, 8 rows
//	animals  origin 484  header 26, 4 rows, supergroup "nature", birds from row 2
//	stickers origin 702  header 26, 5 rows
//	content height 960
func testGroups() []ItemGroup {
	recent := makeGroup("recent", 20)
	recent.Title = "Recently Used"
	recent.HasClear = true
	recent.CollapsedLineCount = Lines(1)

	smileys := makeGroup("smileys", 64)
	smileys.Title = "Smileys"

	animals := makeGroup("animals", 32)
	animals.Title = "Animals"
	animals.SupergroupID = "nature"
	for i := 16; i < len(animals.Items); i++ {
		animals.Items[i].Subgroup = "birds"
	}

	stickers := makeGroup("stickers", 40)
	stickers.Title = "Stickers"

	return []ItemGroup{recent, smileys, animals, stickers}
}

func newTestGrid(loader ContentLoader) (*GridView, *IntentQueue) {
	cfg := DefaultConfig()
	cfg.Loader = loader
	g := NewGridView(cfg)
	q := &IntentQueue{}
	g.SetIntentSink(q)
	g.SetSize(400, 200, Insets{})
	g.SetGroups(testGroups(), ContentAnimationHint{})
	return g, q
}

func checkGridVisible(t *testing.T, g *GridView) {
	t.Helper()
	l := g.Layout()
	checkReconciled(t, g.Reconciler(), expectedKeys(l, VisibleItems(l, g.Viewport().Bounds())))
}

func TestGridLayoutGeometry(t *testing.T) {
	g, _ := newTestGrid(nil)
	l := g.Layout()

	if l.ContentHeight != 960 {
		t.Errorf("ContentHeight = %f, want 960", l.ContentHeight)
	}
	wantOrigins := []float64{0, 74, 484, 702}
	for i, want := range wantOrigins {
		if got := l.Groups[i].OriginY; got != want {
			t.Errorf("group %d OriginY = %f, want %f", i, got, want)
		}
	}
	if c := l.Groups[0].Collapse; c == nil || c.Label != "+13" || c.Index != 7 {
		t.Errorf("recent collapse = %+v, want +13 at 7", c)
	}
	if g.Viewport().ContentHeight != 960 {
		t.Errorf("viewport ContentHeight = %f", g.Viewport().ContentHeight)
	}
}

func TestGridRealizesVisibleSet(t *testing.T) {
	g, _ := newTestGrid(nil)
	checkGridVisible(t, g)

	n, ok := g.Reconciler().Node(CollapseLabelKey("recent"))
	if !ok {
		t.Fatal("collapse label not realized")
	}
	if n.Label != "+13" || n.State != ContentNone {
		t.Errorf("label node = %q state %d", n.Label, n.State)
	}
	if _, ok := g.Reconciler().Node(ItemKeyFor("animals", "animals-0")); ok {
		t.Error("off-screen item realized")
	}
}

func TestGridScrollingVirtualizes(t *testing.T) {
	g, _ := newTestGrid(nil)
	for _, y := range []float64{120, 480, 760, 300, 0} {
		g.SetScrollOffset(y)
		if g.Viewport().ScrollY != y {
			t.Fatalf("ScrollY = %f, want %f", g.Viewport().ScrollY, y)
		}
		checkGridVisible(t, g)
		if len(g.Exiting()) != 0 {
			t.Fatalf("scrolling left %d exiting nodes", len(g.Exiting()))
		}
	}

	g.SetScrollOffset(5000)
	if g.Viewport().ScrollY != 760 {
		t.Errorf("ScrollY = %f, want clamped 760", g.Viewport().ScrollY)
	}
	g.ScrollBy(-60)
	if g.Viewport().ScrollY != 700 {
		t.Errorf("ScrollBy: ScrollY = %f, want 700", g.Viewport().ScrollY)
	}
}

func TestGridHitTest(t *testing.T) {
	g, _ := newTestGrid(nil)
	tests := []struct {
		name string
		x, y float64
		want ItemKey
		ok   bool
	}{
		{"first item", 17, 31, ItemKeyFor("recent", "recent-0"), true},
		{"collapse label", 12 + 7*48 + 5, 31, CollapseLabelKey("recent"), true},
		{"smileys row 1", 12 + 2*48 + 1, 100 + 48 + 1, ItemKeyFor("smileys", "smileys-10"), true},
		{"header", 17, 5, ItemKey{}, false},
		{"column gap", 12 + 40 + 3, 31, ItemKey{}, false},
		{"left inset", 4, 31, ItemKey{}, false},
		{"group gap", 17, 70, ItemKey{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := g.HitTest(tt.x, tt.y)
			if ok != tt.ok || key != tt.want {
				t.Errorf("HitTest(%f, %f) = %v, %v; want %v, %v", tt.x, tt.y, key, ok, tt.want, tt.ok)
			}
		})
	}

	g.SetScrollOffset(484)
	key, ok := g.HitTest(17, 26+5)
	if !ok || key != ItemKeyFor("animals", "animals-0") {
		t.Errorf("scrolled HitTest = %v, %v", key, ok)
	}
}

func TestGridActivateItemEmitsIntent(t *testing.T) {
	g, q := newTestGrid(nil)
	if !g.ActivateAt(17, 31, TriggerLongPress) {
		t.Fatal("ActivateAt missed the first item")
	}
	got := q.Drain()
	if len(got) != 1 {
		t.Fatalf("intents = %v", got)
	}
	want := Intent{Kind: IntentItemActivated, Key: ItemKeyFor("recent", "recent-0"), GroupID: "recent", Trigger: TriggerLongPress}
	if got[0] != want {
		t.Errorf("intent = %+v, want %+v", got[0], want)
	}

	if g.ActivateAt(17, 5, TriggerTap) {
		t.Error("ActivateAt on a header reported a hit")
	}
	g.Activate(PlaceholderKey("recent", 0), TriggerTap)
	if len(q.Drain()) != 0 {
		t.Error("placeholder activation emitted an intent")
	}
}

func TestGridActivateCollapseLabelExpands(t *testing.T) {
	g, q := newTestGrid(nil)
	first, _ := g.Reconciler().Node(ItemKeyFor("recent", "recent-0"))
	y0 := first.RenderFrame().Y

	g.ActivateAt(12+7*48+5, 31, TriggerTap)

	got := q.Drain()
	if len(got) != 1 || got[0].Kind != IntentGroupExpandRequested || got[0].GroupID != "recent" {
		t.Fatalf("intents = %v", got)
	}
	if !g.State().IsExpanded("recent") {
		t.Error("recent not expanded")
	}
	geo := g.Layout().Groups[0]
	if geo.Collapse != nil || geo.ItemCount != 20 || geo.Rows != 3 {
		t.Errorf("expanded geometry = %+v", geo)
	}
	checkGridVisible(t, g)

	res := g.Anchor().LastResult()
	if !res.Anchored || res.Offset != 0 {
		t.Errorf("anchor = %+v, want anchored with zero offset", res)
	}
	if n, _ := g.Reconciler().Node(ItemKeyFor("recent", "recent-0")); n != first || n.RenderFrame().Y != y0 {
		t.Error("first item moved or was rebound during expansion")
	}
	if _, ok := g.Reconciler().Node(ItemKeyFor("recent", "recent-7")); !ok {
		t.Error("revealed item not realized")
	}

	// Expanding again is a no-op.
	g.ExpandGroup("recent")
	if len(q.Drain()) != 0 {
		t.Error("second expansion emitted an intent")
	}

	g.CollapseGroup("recent")
	if g.Layout().Groups[0].Collapse == nil {
		t.Error("recent not collapsed again")
	}
	checkGridVisible(t, g)
}

func TestGridCollapseSlidesHiddenItemsIntoLabel(t *testing.T) {
	g, _ := newTestGrid(nil)
	g.ExpandGroup("recent")
	g.Update(1)
	g.CollapseGroup("recent")

	label := g.Layout().Frame(0, 7)
	found := false
	for _, n := range g.Exiting() {
		if n.Key().GroupID != "recent" {
			continue
		}
		found = true
		g.Update(1)
		break
	}
	if !found {
		t.Fatal("no recent items exiting after collapse")
	}
	// All exit tweens ran to completion and released their nodes.
	if len(g.Exiting()) != 0 {
		t.Errorf("%d nodes still exiting", len(g.Exiting()))
	}
	if n, ok := g.Reconciler().Node(CollapseLabelKey("recent")); !ok || n.Frame != label {
		t.Error("label not back at its cell")
	}
}

func TestGridClearGroup(t *testing.T) {
	g, q := newTestGrid(nil)
	if !g.ClearGroup("recent") {
		t.Error("ClearGroup(recent) = false")
	}
	if g.ClearGroup("smileys") {
		t.Error("ClearGroup on a group without clear = true")
	}
	if g.ClearGroup("missing") {
		t.Error("ClearGroup on a missing group = true")
	}
	got := q.Drain()
	if len(got) != 1 || got[0] != (Intent{Kind: IntentGroupCleared, GroupID: "recent"}) {
		t.Errorf("intents = %v", got)
	}
}

func TestGridScrollToItemGroup(t *testing.T) {
	tests := []struct {
		name       string
		supergroup GroupID
		subgroup   string
		wantY      float64
		ok         bool
	}{
		{"group", "nature", "", 484, true},
		{"subgroup row", "nature", "birds", 510 + 2*48, true},
		{"unknown subgroup", "nature", "fish", 484, true},
		{"own id", "smileys", "", 74, true},
		{"last group", "stickers", "", 702, true},
		{"missing", "weather", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGrid(nil)
			if ok := g.ScrollToItemGroup(tt.supergroup, tt.subgroup, false); ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got := g.Viewport().ScrollY; got != tt.wantY {
				t.Errorf("ScrollY = %f, want %f", got, tt.wantY)
			}
			checkGridVisible(t, g)
		})
	}
}

func TestGridAnimatedScroll(t *testing.T) {
	g, _ := newTestGrid(nil)
	var tops []GroupID
	g.OnVisibleTopGroupChanged(func(id GroupID) { tops = append(tops, id) })

	g.ScrollToItemGroup("nature", "", true)
	if !g.Viewport().Scrolling() || g.Viewport().ScrollY != 0 {
		t.Fatalf("animated scroll jumped: ScrollY = %f", g.Viewport().ScrollY)
	}
	for i := 0; i < 10; i++ {
		g.Update(0.05)
		checkGridVisible(t, g)
	}
	if g.Viewport().Scrolling() || g.Viewport().ScrollY != 484 {
		t.Errorf("ScrollY = %f Scrolling = %v, want 484 and stopped", g.Viewport().ScrollY, g.Viewport().Scrolling())
	}
	if len(tops) == 0 || tops[len(tops)-1] != "animals" {
		t.Errorf("top groups = %v, want last animals", tops)
	}

	g.ScrollToTop(true)
	g.Update(1)
	if g.Viewport().ScrollY != 0 {
		t.Errorf("ScrollToTop: ScrollY = %f", g.Viewport().ScrollY)
	}
}

func TestGridTopGroupNotifiesOnChange(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGridView(cfg)
	var tops []GroupID
	g.OnVisibleTopGroupChanged(func(id GroupID) { tops = append(tops, id) })

	g.SetSize(400, 200, Insets{})
	if len(tops) != 0 {
		t.Errorf("empty grid notified %v", tops)
	}
	g.SetGroups(testGroups(), ContentAnimationHint{})
	g.SetScrollOffset(10)
	g.SetScrollOffset(20)
	g.SetScrollOffset(100)
	g.SetScrollOffset(110)

	want := []GroupID{"recent", "smileys"}
	if len(tops) != len(want) {
		t.Fatalf("tops = %v, want %v", tops, want)
	}
	for i := range want {
		if tops[i] != want[i] {
			t.Errorf("tops[%d] = %q, want %q", i, tops[i], want[i])
		}
	}
	if id, ok := g.VisibleTopGroup(); !ok || id != "smileys" {
		t.Errorf("VisibleTopGroup = %q, %v", id, ok)
	}

	g.SetGroups(nil, ContentAnimationHint{})
	if id, ok := g.VisibleTopGroup(); ok || id != "" {
		t.Errorf("VisibleTopGroup on empty = %q, %v", id, ok)
	}
	if tops[len(tops)-1] != "" {
		t.Errorf("last notification = %q, want empty", tops[len(tops)-1])
	}
}

func TestGridInstallHintScrollsToGroup(t *testing.T) {
	g, _ := newTestGrid(nil)
	g.SetScrollOffset(300)

	groups := testGroups()
	trending := makeGroup("trending", 16)
	trending.Title = "Trending"
	groups = append(groups[:2], append([]ItemGroup{trending}, groups[2:]...)...)
	g.SetGroups(groups, GroupInstalledHint("trending", true))

	gi := g.Layout().GroupIndex("trending")
	if gi != 2 {
		t.Fatalf("trending index = %d", gi)
	}
	if want := g.Layout().Groups[gi].OriginY; g.Viewport().ScrollY != want {
		t.Errorf("ScrollY = %f, want %f", g.Viewport().ScrollY, want)
	}
	checkGridVisible(t, g)
	snap := g.Anchor().LastSnapshot()
	for _, e := range snap.Entries {
		if e.Key.GroupID == "trending" {
			t.Fatalf("installed group key %v in snapshot", e.Key)
		}
	}

	// The snapshot is taken at the snapped offset, where the old layout showed
	// animals. They are still present, so they anchor the change.
	if snap.ScrollY != g.Viewport().ScrollY {
		t.Errorf("snapshot ScrollY = %f, want the snapped %f", snap.ScrollY, g.Viewport().ScrollY)
	}
	if len(snap.Entries) == 0 {
		t.Fatal("empty snapshot at the snapped offset")
	}
	res := g.Anchor().LastResult()
	if !res.Anchored || res.AnchorKey.GroupID != "animals" {
		t.Fatalf("anchor = %+v, want anchored on animals", res)
	}
	shift := g.Layout().Groups[gi+1].OriginY - 484
	if !approxEqual(res.Offset, -shift, epsilon) {
		t.Errorf("Offset = %f, want %f", res.Offset, -shift)
	}
}

func TestGridRemoveHintFallsBackToNeighbour(t *testing.T) {
	g, _ := newTestGrid(nil)
	g.ScrollToItemGroup("nature", "", false)

	groups := testGroups()
	groups = append(groups[:2], groups[3:]...)
	g.SetGroups(groups, GroupRemovedHint("animals", true))

	// stickers took index 2.
	if want := g.Layout().Groups[2].OriginY; g.Viewport().ScrollY != g.Viewport().Clamp(want) {
		t.Errorf("ScrollY = %f, want %f", g.Viewport().ScrollY, g.Viewport().Clamp(want))
	}
	for _, k := range g.Reconciler().Keys() {
		if k.GroupID == "animals" {
			t.Fatalf("removed group key %v still live", k)
		}
	}
	g.Update(1)
	if len(g.Exiting()) != 0 {
		t.Errorf("%d nodes still exiting", len(g.Exiting()))
	}
}

func TestGridUpdateAppliesCompletions(t *testing.T) {
	loader := newManualLoader()
	g, _ := newTestGrid(loader)
	key := ItemKeyFor("recent", "recent-0")
	i := loader.lastRequest(key)
	if i < 0 {
		t.Fatal("no load issued for a visible item")
	}
	if loader.requests[i].PixelSize != 40 {
		t.Errorf("PixelSize = %d, want 40", loader.requests[i].PixelSize)
	}

	loader.complete(i, nil)
	n, _ := g.Reconciler().Node(key)
	if n.State != ContentLoading {
		t.Fatal("completion applied outside Update")
	}
	g.Update(1)
	if n.State != ContentLoaded || n.ContentAlpha != 1 {
		t.Errorf("state = %d alpha = %f after Update", n.State, n.ContentAlpha)
	}
	if !g.Shimmer().Active() {
		t.Error("shimmer should stay active while other cells load")
	}
}

func TestGridSetLayoutMode(t *testing.T) {
	g, _ := newTestGrid(nil)
	g.SetLayoutMode(LayoutDetailed)
	if got := g.Layout().Grid.CellSize; got != 72 {
		t.Errorf("CellSize = %f, want 72", got)
	}
	checkGridVisible(t, g)

	g.SetLayoutOverride(&GridMetrics{NativeCellSize: 50, MinSpacing: 4, MinItemsPerRow: 3})
	if got := g.Layout().Grid.CellSize; got != 50 {
		t.Errorf("override CellSize = %f, want 50", got)
	}
	g.SetLayoutOverride(nil)
	if got := g.Layout().Grid.CellSize; got != 72 {
		t.Errorf("CellSize after clearing override = %f, want 72", got)
	}
}

func TestGridSelection(t *testing.T) {
	g, _ := newTestGrid(nil)
	key := ItemKeyFor("smileys", "smileys-3")
	g.SetSelected(key, true)
	n, _ := g.Reconciler().Node(key)
	if !n.Hints.Selected {
		t.Error("live node not marked selected")
	}

	g.SetScrollOffset(700)
	g.SetScrollOffset(0)
	n, _ = g.Reconciler().Node(key)
	if !n.Hints.Selected {
		t.Error("selection lost after re-realizing the node")
	}
}

func TestGridDebugMode(t *testing.T) {
	g, _ := newTestGrid(newManualLoader())
	g.SetDebugMode(true)
	g.SetScrollOffset(200)
	g.ExpandGroup("recent")
	g.Update(0.1)
	checkGridVisible(t, g)
}

func TestGridClose(t *testing.T) {
	loader := newManualLoader()
	g, _ := newTestGrid(loader)
	live := g.Reconciler().Len()
	g.Close()
	if g.Reconciler().Len() != 0 {
		t.Errorf("Len = %d after Close", g.Reconciler().Len())
	}
	if len(loader.cancelled) == 0 || live == 0 {
		t.Error("Close did not cancel in-flight loads")
	}
}
