// Package pickergrid is the core of a virtualized, grouped picker grid: the
// scrolling emoji/sticker panel of a chat client.
//
// The package owns geometry and node lifecycle only. Drawing, input and
// content fetching belong to the host; see the ebitenhost package for an
// [Ebitengine] host.
//
// # Quick start
//
//	grid := pickergrid.NewGridView(pickergrid.DefaultConfig())
//	grid.SetSize(344, 600, pickergrid.Insets{Top: 8, Bottom: 8})
//	grid.SetGroups(groups, pickergrid.ContentAnimationHint{})
//
//	// every frame
//	grid.Update(dt)
//	for _, n := range grid.Nodes() {
//		draw(n.RenderFrame(), n)
//	}
//
// # Layout
//
// [ComputeLayout] turns a slice of [ItemGroup] into an [ItemLayout]: a
// column count and cell size per group, stacked group spans, collapse
// labels ("+N" cells) for collapsed groups and loading placeholder cells.
// [ItemLayout.Frame] is O(1) and depends on the layout only.
//
// # Virtualization
//
// [VisibleItems] returns, per intersecting group, the range of cells whose
// rows meet a rect. It never scans items. Rows are the unit of precision:
// see [RowBoundaryMargin].
//
// # Reconciliation
//
// A [Reconciler] keeps exactly one [RealizedNode] per visible [ItemKey].
// Keys are content-addressed (group id plus content id), never node
// identity. Nodes are pooled; each binding gets a new generation and load
// completions carrying an older generation are dropped.
//
// # Anchoring
//
// Layout-changing updates (expanding a group, swapping content) run through
// an [AnchorTracker]: visible frames are snapshotted before the change, and
// after reconciliation every node is translated by one offset so the first
// surviving key stays where it was on screen. The offset then decays to
// zero. Plain scrolling never anchors.
//
// # Intents
//
// User actions leave the grid as [Intent] values delivered to an
// [IntentSink], not as callbacks. The ecs package forwards them to a
// donburi world.
//
// [Ebitengine]: https://ebitengine.org
package pickergrid
