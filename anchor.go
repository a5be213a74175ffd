package pickergrid

import "sort"

// AnchorPhase is the step an AnchorTracker is at within one update cycle.
type AnchorPhase uint8

const (
	AnchorIdle AnchorPhase = iota
	AnchorSnapshotTaken
	AnchorLayoutRecomputed
	AnchorReconciled
	AnchorOffsetApplied
)

// String implements fmt.Stringer.
func (p AnchorPhase) String() string {
	switch p {
	case AnchorIdle:
		return "Idle"
	case AnchorSnapshotTaken:
		return "SnapshotTaken"
	case AnchorLayoutRecomputed:
		return "LayoutRecomputed"
	case AnchorReconciled:
		return "Reconciled"
	case AnchorOffsetApplied:
		return "OffsetApplied"
	default:
		return "Unknown"
	}
}

// ScrollDirection is the direction implied by a scroll or edit.
type ScrollDirection int8

const (
	ScrollForward  ScrollDirection = 1  // toward larger offsets (down)
	ScrollBackward ScrollDirection = -1 // toward smaller offsets (up)
)

// DirectionOf returns the direction from current to target. Equal offsets
// count as forward.
func DirectionOf(target, current float64) ScrollDirection {
	if target < current {
		return ScrollBackward
	}
	return ScrollForward
}

// AnchorEntry is one snapshotted node: its key and on-screen frame.
type AnchorEntry struct {
	Key   ItemKey
	Frame Rect
}

// AnchorSnapshot holds the on-screen frames of the nodes visible before a
// layout-changing update. It lives for one update only.
type AnchorSnapshot struct {
	// Entries are ordered top-to-bottom, then left-to-right.
	Entries []AnchorEntry
	// Bounds is the union of Entries' frames.
	Bounds Rect
	// HintGroupFrame is the union of the old frames of the group named by an
	// install/remove hint. Those keys are not in Entries.
	HintGroupFrame Rect
	ScrollY float64
	// Viewport is the visible rect (content coordinates) at snapshot time.
	Viewport Rect
}

// AnchorResult describes the offset committed for one update.
type AnchorResult struct {
	Offset    float64
	AnchorKey ItemKey
	// Anchored is true when a common key fixed the offset.
	Anchored bool
	// Fallback is true when the bounding-box heuristic fixed the offset.
	Fallback bool
}

// AnchorTracker keeps previously visible content visually in place across a
// layout-changing update by translating every node by one compensating
// offset that then decays to zero.
//
// Each cycle runs Snapshot, LayoutRecomputed, Reconciled and Commit in that
// order. Calling a step out of order panics.
type AnchorTracker struct {
	phase   AnchorPhase
	snap    AnchorSnapshot
	hint    ContentAnimationHint
	timings Timings
	last    AnchorResult
}

// NewAnchorTracker creates an idle tracker.
func NewAnchorTracker(timings Timings) *AnchorTracker {
	return &AnchorTracker{timings: timings}
}

// Phase returns the current step.
func (a *AnchorTracker) Phase() AnchorPhase {
	return a.phase
}

// LastSnapshot returns the snapshot of the current or most recent cycle.
func (a *AnchorTracker) LastSnapshot() *AnchorSnapshot {
	return &a.snap
}

// LastResult returns the result of the most recent Commit.
func (a *AnchorTracker) LastResult() AnchorResult {
	return a.last
}

func (a *AnchorTracker) expect(p AnchorPhase, step string) {
	if a.phase != p {
		panic("pickergrid: anchor " + step + " called in phase " + a.phase.String())
	}
}

// presentedFrame is where n currently appears in content coordinates,
// ignoring scale.
func presentedFrame(n *RealizedNode) Rect {
	return Rect{X: n.X + n.OffsetX, Y: n.Y + n.OffsetY, Width: n.Frame.Width, Height: n.Frame.Height}
}

// Snapshot records the on-screen frame of every live node intersecting
// viewport (content coordinates). nodes must be in document order.
func (a *AnchorTracker) Snapshot(nodes []*RealizedNode, viewport Rect, hint ContentAnimationHint) {
	a.expect(AnchorIdle, "Snapshot")
	a.hint = hint
	a.snap.Entries = a.snap.Entries[:0]
	a.snap.Bounds = Rect{}
	a.snap.HintGroupFrame = Rect{}
	a.snap.ScrollY = viewport.Y
	a.snap.Viewport = viewport

	for _, n := range nodes {
		f := presentedFrame(n)
		if !f.Intersects(viewport) {
			continue
		}
		screen := f.Offset(-viewport.X, -viewport.Y)
		if hint.tracksGroupSeparately() && n.key.GroupID == hint.GroupID {
			a.snap.HintGroupFrame = a.snap.HintGroupFrame.Union(screen)
			continue
		}
		a.snap.Entries = append(a.snap.Entries, AnchorEntry{Key: n.key, Frame: screen})
		a.snap.Bounds = a.snap.Bounds.Union(screen)
	}
	sort.SliceStable(a.snap.Entries, func(i, j int) bool {
		fi, fj := a.snap.Entries[i].Frame, a.snap.Entries[j].Frame
		if fi.Y != fj.Y {
			return fi.Y < fj.Y
		}
		return fi.X < fj.X
	})
	a.phase = AnchorSnapshotTaken
}

// LayoutRecomputed marks that the new ItemLayout exists.
func (a *AnchorTracker) LayoutRecomputed() {
	a.expect(AnchorSnapshotTaken, "LayoutRecomputed")
	a.phase = AnchorLayoutRecomputed
}

// Reconciled marks that the reconciler materialized the new visible set.
func (a *AnchorTracker) Reconciled() {
	a.expect(AnchorLayoutRecomputed, "Reconciled")
	a.phase = AnchorReconciled
}

// Commit computes the offset against the reconciled node set and applies it
// to every live and exiting node. scrollY is the scroll offset after the
// update; target is the scroll offset the update was heading for (used for
// the fallback direction). Commit always returns the tracker to Idle.
func (a *AnchorTracker) Commit(r *Reconciler, scrollY, target float64) AnchorResult {
	a.expect(AnchorReconciled, "Commit")

	res := a.computeOffset(r, scrollY, target)
	a.phase = AnchorOffsetApplied

	dScroll := scrollY - a.snap.ScrollY
	if res.Offset != 0 {
		for _, k := range r.Keys() {
			addOffset(r.nodes[k], 0, res.Offset, a.timings)
		}
	}
	for _, n := range r.exiting {
		// Exiting nodes keep their old screen position, then travel with
		// the rest of the window. A node sliding toward a hint starts from
		// its old screen position and still lands on the hint.
		if mv := n.tweens[chanMove]; mv != nil {
			mv.shiftStart(&n.Y, dScroll-res.Offset)
		} else {
			n.Y += dScroll - res.Offset
		}
		if res.Offset != 0 {
			addOffset(n, 0, res.Offset, a.timings)
		}
	}

	a.last = res
	a.phase = AnchorIdle
	return res
}

func (a *AnchorTracker) computeOffset(r *Reconciler, scrollY, target float64) AnchorResult {
	if a.hint.Kind == HintNone {
		return AnchorResult{}
	}
	for _, e := range a.snap.Entries {
		n, ok := r.nodes[e.Key]
		if !ok {
			continue
		}
		now := presentedFrame(n).Offset(-a.snap.Viewport.X, -scrollY)
		return AnchorResult{
			Offset:    e.Frame.MinY() - now.MinY(),
			AnchorKey: e.Key,
			Anchored:  true,
		}
	}

	viewport := a.snap.Viewport
	viewport.Y = scrollY
	var now Rect
	for _, k := range r.Keys() {
		f := presentedFrame(r.nodes[k])
		if f.Intersects(viewport) {
			now = now.Union(f.Offset(-viewport.X, -scrollY))
		}
	}
	old := a.snap.Bounds
	if old.IsEmpty() {
		old = a.snap.HintGroupFrame
	}
	dir := DirectionOf(target, a.snap.ScrollY)
	return AnchorResult{Offset: FallbackOffset(old, now, dir), Fallback: true}
}

// FallbackOffset is the offset used when the old and new visible sets share
// no key. Overlapping boxes slide by the gap between their far edges in the
// scroll direction; disjoint boxes slide the new content in by its full
// height. Either box being empty yields 0.
func FallbackOffset(old, now Rect, dir ScrollDirection) float64 {
	if old.IsEmpty() || now.IsEmpty() {
		return 0
	}
	if old.MinY() < now.MaxY() && now.MinY() < old.MaxY() {
		if dir == ScrollBackward {
			return old.MinY() - now.MinY()
		}
		return old.MaxY() - now.MaxY()
	}
	return now.Height * float64(dir)
}
