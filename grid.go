package pickergrid

import (
	"time"
)

// Config configures a GridView. Zero fields are filled from DefaultConfig.
type Config struct {
	// Metrics supplies cell metrics per layout mode.
	Metrics MetricsProvider
	// Mode selects compact (emoji) or detailed (sticker) metrics.
	Mode LayoutMode
	// Loader fetches item content. Nil leaves every item on a static
	// placeholder.
	Loader ContentLoader
	// Timings are the transition durations.
	Timings Timings
	// ShimmerPeriod is the duration of one shimmer sweep.
	ShimmerPeriod float32
	// ScrollDuration is the duration of animated scrolls.
	ScrollDuration float32
	// PixelScale converts points to loader pixels.
	PixelScale float64
	// Debug enables per-update stats on stderr and invariant checks.
	Debug bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Metrics:        DefaultTheme(),
		Mode:           LayoutCompact,
		Timings:        DefaultTimings(),
		ShimmerPeriod:  DefaultShimmerPeriod,
		ScrollDuration: DefaultScrollDuration,
		PixelScale:     1,
	}
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Metrics == nil {
		c.Metrics = d.Metrics
	}
	if c.Timings.Appear == 0 && c.Timings.Disappear == 0 && c.Timings.Move == 0 &&
		c.Timings.Offset == 0 && c.Timings.Crossfade == 0 {
		ease := c.Timings.Ease
		c.Timings = d.Timings
		if ease != nil {
			c.Timings.Ease = ease
		}
	}
	if c.ShimmerPeriod <= 0 {
		c.ShimmerPeriod = d.ShimmerPeriod
	}
	if c.ScrollDuration <= 0 {
		c.ScrollDuration = d.ScrollDuration
	}
	if c.PixelScale <= 0 {
		c.PixelScale = d.PixelScale
	}
}

// GridView is the virtualized grouped grid. It owns the layout, the realized
// nodes and the viewport, and runs every layout-changing update through the
// anchor tracker. All methods must be called from the goroutine that calls
// Update.
type GridView struct {
	cfg      Config
	groups   []ItemGroup
	layout   *ItemLayout
	override *GridMetrics
	insets   Insets
	viewport Viewport

	state  *GroupStateController
	recon  *Reconciler
	anchor *AnchorTracker

	sink         IntentSink
	visible      []VisibleGroup
	topGroup     GroupID
	topValid     bool
	onTopChanged func(GroupID)

	debug     bool
	lastStale int
}

// NewGridView creates an empty grid.
func NewGridView(cfg Config) *GridView {
	cfg.fillDefaults()
	g := &GridView{cfg: cfg, debug: cfg.Debug}
	g.state = NewGroupStateController(g.emit, g.applyLayoutChange)
	placeholders := NewPlaceholderManager(cfg.Timings, cfg.ShimmerPeriod)
	g.recon = NewReconciler(cfg.Loader, placeholders, cfg.Timings)
	g.recon.PixelScale = cfg.PixelScale
	g.anchor = NewAnchorTracker(cfg.Timings)
	g.layout = ComputeLayout(nil, g.layoutParams())
	return g
}

// SetDebugMode enables or disables debug stats and invariant checks.
func (g *GridView) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// SetIntentSink sets where intents go. Nil drops them.
func (g *GridView) SetIntentSink(sink IntentSink) {
	g.sink = sink
}

// OnVisibleTopGroupChanged registers fn to be called whenever the top-most
// visible group changes. fn receives "" when nothing is visible.
func (g *GridView) OnVisibleTopGroupChanged(fn func(GroupID)) {
	g.onTopChanged = fn
}

func (g *GridView) emit(i Intent) {
	if g.sink != nil {
		g.sink.EmitIntent(i)
	}
}

// State returns the group state controller.
func (g *GridView) State() *GroupStateController { return g.state }

// Reconciler returns the node owner.
func (g *GridView) Reconciler() *Reconciler { return g.recon }

// Anchor returns the anchor tracker.
func (g *GridView) Anchor() *AnchorTracker { return g.anchor }

// Layout returns the current layout.
func (g *GridView) Layout() *ItemLayout { return g.layout }

// Viewport returns the scroll surface.
func (g *GridView) Viewport() *Viewport { return &g.viewport }

// Groups returns the current groups. The returned slice MUST NOT be mutated.
func (g *GridView) Groups() []ItemGroup { return g.groups }

// Nodes returns the live nodes in document order.
func (g *GridView) Nodes() []*RealizedNode { return g.recon.Nodes() }

// Exiting returns the nodes running exit animations.
func (g *GridView) Exiting() []*RealizedNode { return g.recon.Exiting() }

// Shimmer returns the shared placeholder shimmer.
func (g *GridView) Shimmer() *Shimmer { return g.recon.Placeholders().Shimmer() }

// Visible returns the result of the last virtualization pass.
func (g *GridView) Visible() []VisibleGroup { return g.visible }

// VisibleTopGroup returns the top-most visible group.
func (g *GridView) VisibleTopGroup() (GroupID, bool) { return g.topGroup, g.topValid }

func (g *GridView) layoutParams() LayoutParams {
	return LayoutParams{
		Width:          g.viewport.Width,
		ViewportHeight: g.viewport.Height,
		Insets:         g.insets,
		Metrics:        g.cfg.Metrics.Metrics(g.cfg.Mode),
		Expanded:       g.state.Expanded(),
		Override:       g.override,
	}
}

// SetGroups replaces the data wholesale. hint describes why the data changed
// and picks the transition.
func (g *GridView) SetGroups(groups []ItemGroup, hint ContentAnimationHint) {
	g.groups = groups
	g.state.SetHint(hint)
	g.applyLayoutChange()
}

// SetSize resizes the viewport. Resizing never animates.
func (g *GridView) SetSize(width, height float64, insets Insets) {
	g.viewport.Width = width
	g.viewport.Height = height
	g.insets = insets
	g.state.SetHint(ContentAnimationHint{})
	g.applyLayoutChange()
}

// SetLayoutMode switches between compact and detailed metrics.
func (g *GridView) SetLayoutMode(mode LayoutMode) {
	if g.cfg.Mode == mode {
		return
	}
	g.cfg.Mode = mode
	g.state.SetHint(GenericHint())
	g.applyLayoutChange()
}

// SetLayoutOverride replaces the grid metrics of every group that has no
// override of its own. Nil restores the mode's metrics.
func (g *GridView) SetLayoutOverride(m *GridMetrics) {
	g.override = m
	g.state.SetHint(GenericHint())
	g.applyLayoutChange()
}

// ExpandGroup expands a collapsed group with an anchored transition.
func (g *GridView) ExpandGroup(id GroupID) {
	g.state.ExpandGroup(id)
}

// CollapseGroup re-collapses an expanded group.
func (g *GridView) CollapseGroup(id GroupID) {
	g.state.CollapseGroup(id)
}

// SetSelected toggles the selection decoration on key.
func (g *GridView) SetSelected(key ItemKey, selected bool) {
	g.state.SetSelected(key, selected)
	g.recon.SetSelected(key, selected)
}

// applyLayoutChange runs one layout-changing update: snapshot, layout,
// virtualize, reconcile, anchor.
func (g *GridView) applyLayoutChange() {
	var stats debugStats
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	hint := g.state.TakeHint()
	prev := g.layout
	next := ComputeLayout(g.groups, g.layoutParams())

	// A scroll-to-target hint snaps first; the snapshot is then taken of the
	// old layout as realized at the snapped offset.
	target := g.viewport.Target()
	y, snap := g.hintScrollTarget(prev, next, hint)
	g.viewport.ContentHeight = next.ContentHeight
	if snap {
		target = g.viewport.Clamp(y)
		g.viewport.SetScrollY(target)
		if prev != nil {
			g.visible = appendVisibleItems(g.visible[:0], prev, g.viewport.Bounds())
			g.recon.Reconcile(prev, g.visible, nil, TransitionNone, g.state.IsSelected)
		}
	}
	g.anchor.Snapshot(g.recon.Nodes(), g.viewport.Bounds(), hint)

	g.layout = next
	if !snap {
		g.viewport.ScrollY = g.viewport.Clamp(g.viewport.ScrollY)
	}
	g.anchor.LayoutRecomputed()

	if g.debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	g.visible = appendVisibleItems(g.visible[:0], g.layout, g.viewport.Bounds())

	if g.debug {
		stats.virtualizeTime = time.Since(t0)
		t0 = time.Now()
	}

	res := g.recon.Reconcile(g.layout, g.visible, g.collapseHints(), hint.transition(), g.state.IsSelected)
	g.anchor.Reconciled()

	if g.debug {
		stats.reconcileTime = time.Since(t0)
		t0 = time.Now()
	}

	ar := g.anchor.Commit(g.recon, g.viewport.ScrollY, target)

	if g.debug {
		stats.anchorTime = time.Since(t0)
		stats.created = len(res.Created)
		stats.removed = len(res.Removed)
		stats.offset = ar.Offset
		g.finishStats(&stats)
	}
	g.notifyTopGroup()
}

// hintScrollTarget returns the scroll offset an install/remove hint asks to
// snap to: the affected group's origin just under the top inset. A removed
// group targets whichever group took its place.
func (g *GridView) hintScrollTarget(prev, next *ItemLayout, hint ContentAnimationHint) (float64, bool) {
	if !hint.ScrollToTarget || !hint.tracksGroupSeparately() {
		return 0, false
	}
	gi := next.GroupIndex(hint.GroupID)
	if gi < 0 && hint.Kind == HintGroupRemoved && prev != nil {
		gi = prev.GroupIndex(hint.GroupID)
		if gi >= len(next.Groups) {
			gi = len(next.Groups) - 1
		}
	}
	if gi < 0 {
		return 0, false
	}
	return next.Groups[gi].OriginY - g.insets.Top, true
}

// collapseHints points every live item of a now-collapsed group at the
// group's "+N" cell, so hidden items slide into it as they fade.
func (g *GridView) collapseHints() PositionHints {
	var hints PositionHints
	for _, k := range g.recon.Keys() {
		if k.Kind != KeyItem {
			continue
		}
		gi := g.layout.GroupIndex(k.GroupID)
		if gi < 0 || g.layout.Groups[gi].Collapse == nil {
			continue
		}
		geo := &g.layout.Groups[gi]
		if hints == nil {
			hints = make(PositionHints)
		}
		f := geo.CellFrame(geo.Collapse.Index)
		hints[k] = Vec2{X: f.X, Y: f.Y}
	}
	return hints
}

// refreshVisible is the plain scrolling path: virtualize and reconcile with
// no transition and no anchoring.
func (g *GridView) refreshVisible() {
	var stats debugStats
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}
	g.visible = appendVisibleItems(g.visible[:0], g.layout, g.viewport.Bounds())
	if g.debug {
		stats.virtualizeTime = time.Since(t0)
		t0 = time.Now()
	}
	res := g.recon.Reconcile(g.layout, g.visible, nil, TransitionNone, g.state.IsSelected)
	if g.debug {
		stats.reconcileTime = time.Since(t0)
		stats.created = len(res.Created)
		stats.removed = len(res.Removed)
		g.finishStats(&stats)
	}
	g.notifyTopGroup()
}

func (g *GridView) finishStats(stats *debugStats) {
	debugCheckNodes(g.recon)
	stats.live = g.recon.Len()
	stats.exiting = len(g.recon.exiting)
	stats.placeholders = g.recon.Placeholders().Count()
	stats.staleLoads = g.recon.StaleLoads() - g.lastStale
	g.lastStale = g.recon.StaleLoads()
	g.debugLog(*stats)
}

func (g *GridView) notifyTopGroup() {
	gi := TopVisibleGroup(g.layout, g.viewport.Bounds())
	var id GroupID
	valid := gi >= 0
	if valid {
		id = g.layout.Groups[gi].GroupID
	}
	if id == g.topGroup && valid == g.topValid {
		return
	}
	g.topGroup, g.topValid = id, valid
	if g.onTopChanged != nil {
		g.onTopChanged(id)
	}
}

// SetScrollOffset jumps to y. Scrolling only virtualizes; it never anchors.
func (g *GridView) SetScrollOffset(y float64) {
	prev := g.viewport.ScrollY
	g.viewport.SetScrollY(y)
	if g.viewport.ScrollY != prev {
		g.refreshVisible()
	}
}

// ScrollBy scrolls by dy points.
func (g *GridView) ScrollBy(dy float64) {
	g.SetScrollOffset(g.viewport.Target() + dy)
}

// ScrollToTop scrolls to offset 0.
func (g *GridView) ScrollToTop(animated bool) {
	g.scrollTo(0, animated)
}

// ScrollToItemGroup scrolls so the first group targeted by supergroup sits
// under the top inset. With a subgroup, it scrolls to the row of the first
// item tagged with it instead, falling back to the group when none is laid
// out. Reports whether the group exists.
func (g *GridView) ScrollToItemGroup(supergroup GroupID, subgroup string, animated bool) bool {
	gi := g.layout.SupergroupIndex(supergroup)
	if gi < 0 {
		return false
	}
	y := g.layout.Groups[gi].OriginY
	if subgroup != "" {
		if rowY, ok := g.layout.SubgroupRowY(gi, subgroup); ok {
			y = rowY
		}
	}
	g.scrollTo(y-g.insets.Top, animated)
	return true
}

func (g *GridView) scrollTo(y float64, animated bool) {
	if !animated {
		g.SetScrollOffset(y)
		return
	}
	g.viewport.ScrollTo(y, g.cfg.ScrollDuration, g.cfg.Timings.easing())
}

// Update advances the grid by dt seconds: applies finished loads, steps the
// scroll animation (virtualizing as it moves), and steps node tweens and the
// shimmer.
func (g *GridView) Update(dt float32) {
	g.recon.ApplyCompletions()
	if g.viewport.update(dt) {
		g.refreshVisible()
	}
	g.recon.Update(dt)
	g.recon.Placeholders().Shimmer().Update(dt)
}

// HitTest maps a viewport point to the cell under it.
func (g *GridView) HitTest(x, y float64) (ItemKey, bool) {
	cy := g.viewport.ScreenToContent(y)
	for gi := range g.layout.Groups {
		geo := &g.layout.Groups[gi]
		if cy < geo.GridOriginY() {
			if cy < geo.OriginY {
				return ItemKey{}, false
			}
			continue
		}
		if cy >= geo.OriginY+geo.Height || geo.Rows == 0 {
			continue
		}
		grid := geo.Grid
		row := int((cy - geo.GridOriginY()) / grid.rowStride())
		col := int((x - grid.LeftInset) / (grid.CellSize + grid.HSpacing))
		if x < grid.LeftInset || col >= grid.ItemsPerRow {
			return ItemKey{}, false
		}
		idx := row*grid.ItemsPerRow + col
		if idx >= geo.CellCount() || !geo.CellFrame(idx).Contains(x, cy) {
			return ItemKey{}, false
		}
		return g.layout.KeyAt(gi, idx), true
	}
	return ItemKey{}, false
}

// Activate acts on a cell. Items emit IntentItemActivated; a collapse label
// expands its group. Placeholder cells ignore activation.
func (g *GridView) Activate(key ItemKey, trigger Trigger) {
	switch key.Kind {
	case KeyItem:
		g.emit(Intent{Kind: IntentItemActivated, Key: key, GroupID: key.GroupID, Trigger: trigger})
	case KeyCollapseLabel:
		g.ExpandGroup(key.GroupID)
	}
}

// ActivateAt hit-tests a viewport point and activates the cell under it.
func (g *GridView) ActivateAt(x, y float64, trigger Trigger) bool {
	key, ok := g.HitTest(x, y)
	if !ok {
		return false
	}
	g.Activate(key, trigger)
	return true
}

// ClearGroup emits IntentGroupCleared for a group that offers a clear
// button. Reports whether the intent was emitted.
func (g *GridView) ClearGroup(id GroupID) bool {
	gi := g.layout.GroupIndex(id)
	if gi < 0 || !g.layout.source[gi].HasClear {
		return false
	}
	g.emit(Intent{Kind: IntentGroupCleared, GroupID: id})
	return true
}

// Close releases every node and cancels in-flight loads.
func (g *GridView) Close() {
	g.recon.ReleaseAll()
}
